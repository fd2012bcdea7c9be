// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genarray

import (
	"github.com/grailbio/base/log"
)

// Haplotypes is a dense array of single-allele calls, indexed
// (variant, haplotype).  Storage is row-major int8.
type Haplotypes struct {
	data        []int8
	nVariants   int
	nHaplotypes int
}

// NewHaplotypes wraps a caller-owned row-major int8 slice as a Haplotypes
// array.  The slice length must equal nVariants*nHaplotypes.
func NewHaplotypes(data []int8, nVariants, nHaplotypes int) *Haplotypes {
	if nVariants < 0 || nHaplotypes < 0 {
		log.Panicf("genarray.NewHaplotypes: bad shape (%d, %d)", nVariants, nHaplotypes)
	}
	if len(data) != nVariants*nHaplotypes {
		log.Panicf("genarray.NewHaplotypes: data length %d does not match shape (%d, %d)",
			len(data), nVariants, nHaplotypes)
	}
	return &Haplotypes{data: data, nVariants: nVariants, nHaplotypes: nHaplotypes}
}

// MakeHaplotypes builds a Haplotypes array from per-variant slices, copying
// the data.
func MakeHaplotypes(calls [][]int8) *Haplotypes {
	nVariants := len(calls)
	nHaplotypes := 0
	if nVariants > 0 {
		nHaplotypes = len(calls[0])
	}
	data := make([]int8, 0, nVariants*nHaplotypes)
	for v, variant := range calls {
		if len(variant) != nHaplotypes {
			log.Panicf("genarray.MakeHaplotypes: variant %d has %d haplotypes, expected %d",
				v, len(variant), nHaplotypes)
		}
		data = append(data, variant...)
	}
	return NewHaplotypes(data, nVariants, nHaplotypes)
}

// NVariants returns the variant-dimension size.
func (h *Haplotypes) NVariants() int { return h.nVariants }

// NHaplotypes returns the haplotype-dimension size.
func (h *Haplotypes) NHaplotypes() int { return h.nHaplotypes }

// Values returns the row-major backing storage.
func (h *Haplotypes) Values() []int8 { return h.data }

// Get returns the allele carried by one haplotype at one variant.
func (h *Haplotypes) Get(v, j int) int8 {
	return h.data[v*h.nHaplotypes+j]
}

// Row returns all haplotype calls at one variant, as a view.
func (h *Haplotypes) Row(v int) []int8 {
	base := v * h.nHaplotypes
	return h.data[base : base+h.nHaplotypes]
}

// IsMissing returns true iff the single allele call is the Missing
// sentinel.
func (h *Haplotypes) IsMissing(v, j int) bool {
	return h.Get(v, j) < 0
}

// MaxAllele returns the largest allele index present anywhere in the array,
// or -1 when every value is missing (or the array is empty).
func (h *Haplotypes) MaxAllele() int8 {
	max := Missing
	for _, a := range h.data {
		if a > max {
			max = a
		}
	}
	return max
}
