// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genarray

import (
	"github.com/grailbio/base/log"
)

// Missing is the sentinel allele value marking an uncalled allele.
const Missing = int8(-1)

// Genotypes is a dense array of genotype calls, indexed
// (variant, sample, ploidy).  Storage is row-major int8.
type Genotypes struct {
	data      []int8
	nVariants int
	nSamples  int
	ploidy    int
}

// NewGenotypes wraps a caller-owned row-major int8 slice as a Genotypes
// array.  The slice length must equal nVariants*nSamples*ploidy; mismatches
// are programmer errors and panic.
func NewGenotypes(data []int8, nVariants, nSamples, ploidy int) *Genotypes {
	if nVariants < 0 || nSamples < 0 || ploidy < 1 {
		log.Panicf("genarray.NewGenotypes: bad shape (%d, %d, %d)", nVariants, nSamples, ploidy)
	}
	if len(data) != nVariants*nSamples*ploidy {
		log.Panicf("genarray.NewGenotypes: data length %d does not match shape (%d, %d, %d)",
			len(data), nVariants, nSamples, ploidy)
	}
	return &Genotypes{data: data, nVariants: nVariants, nSamples: nSamples, ploidy: ploidy}
}

// MakeGenotypes builds a Genotypes array from nested call slices, copying
// the data.  All variants must have the same sample count, and all calls
// the same ploidy.  Intended for tests and small inputs.
func MakeGenotypes(calls [][][]int8) *Genotypes {
	nVariants := len(calls)
	nSamples := 0
	ploidy := 1
	if nVariants > 0 {
		nSamples = len(calls[0])
		if nSamples > 0 {
			ploidy = len(calls[0][0])
		}
	}
	data := make([]int8, 0, nVariants*nSamples*ploidy)
	for v, variant := range calls {
		if len(variant) != nSamples {
			log.Panicf("genarray.MakeGenotypes: variant %d has %d samples, expected %d", v, len(variant), nSamples)
		}
		for s, call := range variant {
			if len(call) != ploidy {
				log.Panicf("genarray.MakeGenotypes: call (%d, %d) has ploidy %d, expected %d", v, s, len(call), ploidy)
			}
			data = append(data, call...)
		}
	}
	return NewGenotypes(data, nVariants, nSamples, ploidy)
}

// NVariants returns the variant-dimension size.
func (g *Genotypes) NVariants() int { return g.nVariants }

// NSamples returns the sample-dimension size.
func (g *Genotypes) NSamples() int { return g.nSamples }

// Ploidy returns the number of allele calls per genotype.
func (g *Genotypes) Ploidy() int { return g.ploidy }

// Values returns the row-major backing storage.
func (g *Genotypes) Values() []int8 { return g.data }

// Call returns the allele pair (or tuple, for ploidy != 2) for one sample at
// one variant, as a view into the backing storage.
func (g *Genotypes) Call(v, s int) []int8 {
	base := (v*g.nSamples + s) * g.ploidy
	return g.data[base : base+g.ploidy]
}

// Get returns a single allele value.
func (g *Genotypes) Get(v, s, p int) int8 {
	return g.data[(v*g.nSamples+s)*g.ploidy+p]
}

// Set overwrites a single allele value.
func (g *Genotypes) Set(v, s, p int, allele int8) {
	g.data[(v*g.nSamples+s)*g.ploidy+p] = allele
}

// Copy returns a Genotypes array of the same shape with freshly allocated
// storage.
func (g *Genotypes) Copy() *Genotypes {
	data := make([]int8, len(g.data))
	copy(data, g.data)
	return &Genotypes{data: data, nVariants: g.nVariants, nSamples: g.nSamples, ploidy: g.ploidy}
}

// IsMissing returns true iff any allele of the call is the Missing sentinel.
func (g *Genotypes) IsMissing(v, s int) bool {
	for _, a := range g.Call(v, s) {
		if a < 0 {
			return true
		}
	}
	return false
}

// IsHomRef returns true iff every allele of the call is the reference
// allele.
func (g *Genotypes) IsHomRef(v, s int) bool {
	for _, a := range g.Call(v, s) {
		if a != 0 {
			return false
		}
	}
	return true
}

// IsHet returns true iff the call is fully called and its alleles are not
// all identical.
func (g *Genotypes) IsHet(v, s int) bool {
	call := g.Call(v, s)
	first := call[0]
	het := false
	for _, a := range call {
		if a < 0 {
			return false
		}
		if a != first {
			het = true
		}
	}
	return het
}

// IsHomAlt returns true iff every allele of the call equals the same
// non-reference allele.
func (g *Genotypes) IsHomAlt(v, s int) bool {
	call := g.Call(v, s)
	first := call[0]
	if first <= 0 {
		return false
	}
	for _, a := range call[1:] {
		if a != first {
			return false
		}
	}
	return true
}

// MaxAllele returns the largest allele index present anywhere in the array,
// or -1 when every value is missing (or the array is empty).
func (g *Genotypes) MaxAllele() int8 {
	max := Missing
	for _, a := range g.data {
		if a > max {
			max = a
		}
	}
	return max
}

// CountAlleles transforms each call into a vector of per-allele copy counts
// over the universe [0, maxAllele].  Missing and out-of-universe values
// contribute nothing, so a fully missing call yields an all-zero vector.
func (g *Genotypes) CountAlleles(maxAllele int8) *AlleleCounts {
	nAlleles := int(maxAllele) + 1
	if nAlleles < 0 {
		nAlleles = 0
	}
	ac := &AlleleCounts{
		data:      make([]int8, g.nVariants*g.nSamples*nAlleles),
		nVariants: g.nVariants,
		nSamples:  g.nSamples,
		nAlleles:  nAlleles,
	}
	for i, a := range g.data {
		if a >= 0 && int(a) < nAlleles {
			ac.data[(i/g.ploidy)*nAlleles+int(a)]++
		}
	}
	return ac
}

// AlleleCounts is the per-call allele-count transform of a Genotypes array,
// indexed (variant, sample, allele).  It is derived data: mutate the source
// array and recount instead of editing it.
type AlleleCounts struct {
	data      []int8
	nVariants int
	nSamples  int
	nAlleles  int
}

// NAlleles returns the size of the allele universe the counts were taken
// over.
func (ac *AlleleCounts) NAlleles() int { return ac.nAlleles }

// Counts returns the count vector for one call, as a view.
func (ac *AlleleCounts) Counts(v, s int) []int8 {
	base := (v*ac.nSamples + s) * ac.nAlleles
	return ac.data[base : base+ac.nAlleles]
}
