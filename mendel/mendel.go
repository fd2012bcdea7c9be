// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mendel

import (
	"fmt"

	"github.com/grailbio/trio/genarray"
)

func errDiploidOnly(what string, ploidy int) error {
	return fmt.Errorf("%s: operation requires diploid data; found ploidy %d", what, ploidy)
}

// Errors locates genotype calls not consistent with Mendelian transmission
// of alleles, returning the per-(variant, progeny) error count.
//
// parents must hold the two parental calls per variant, shape
// (nVariants, 2, 2); progeny holds the progeny calls, shape
// (nVariants, nProgeny, 2).  The count for a call is the number of its
// allele copies that cannot have been transmitted by the given parent pair,
// so it is 0, 1 or 2:
//
//   - Each allele copy beyond what the parents can jointly supply (one copy
//     per parent carrying the allele) counts as one error.  This covers
//     non-parental alleles (1 or 2 errors) and hemi-parental inheritance,
//     where a call carries two copies of an allele only one parent has one
//     copy of (1 error).
//   - When the parents share no allele, a call identical to either parent's
//     diplotype is uni-parental inheritance and counts exactly 1 error,
//     even though every individual allele copy is available.
//   - When either parental call is missing, transmission cannot be
//     evaluated and the count is 0.  This overrides everything above.
func Errors(parents, progeny *genarray.Genotypes) (genarray.ByteMatrix, error) {
	if parents.Ploidy() != 2 {
		return genarray.ByteMatrix{}, errDiploidOnly("mendel.Errors: parents", parents.Ploidy())
	}
	if progeny.Ploidy() != 2 {
		return genarray.ByteMatrix{}, errDiploidOnly("mendel.Errors: progeny", progeny.Ploidy())
	}
	if parents.NSamples() != 2 {
		return genarray.ByteMatrix{}, fmt.Errorf(
			"mendel.Errors: exactly two parent samples required; found %d", parents.NSamples())
	}
	if parents.NVariants() != progeny.NVariants() {
		return genarray.ByteMatrix{}, fmt.Errorf(
			"mendel.Errors: parents cover %d variants, progeny %d", parents.NVariants(), progeny.NVariants())
	}
	nVariants := parents.NVariants()
	nProgeny := progeny.NSamples()

	// The allele universe is shared between both inputs and fixed up front.
	maxAllele := parents.MaxAllele()
	if pm := progeny.MaxAllele(); pm > maxAllele {
		maxAllele = pm
	}
	parentAC := parents.CountAlleles(maxAllele)
	progenyAC := progeny.CountAlleles(maxAllele)
	nAlleles := parentAC.NAlleles()

	me := genarray.MakeByteMatrix(nVariants, nProgeny)
	avail := make([]int8, nAlleles)
	for v := 0; v < nVariants; v++ {
		p1 := parentAC.Counts(v, 0)
		p2 := parentAC.Counts(v, 1)

		// Each parent transmits one gamete, so it can supply at most one
		// copy of any allele it carries; two copies are available only when
		// both parents carry the allele.
		sharesAllele := false
		for a := 0; a < nAlleles; a++ {
			n := int8(0)
			if p1[a] > 0 {
				n++
			}
			if p2[a] > 0 {
				n++
				if p1[a] > 0 {
					sharesAllele = true
				}
			}
			avail[a] = n
		}
		parentMissing := parents.IsMissing(v, 0) || parents.IsMissing(v, 1)

		row := me.Row(v)
		for s := 0; s < nProgeny; s++ {
			pc := progenyAC.Counts(v, s)
			n := uint8(0)
			for a := 0; a < nAlleles; a++ {
				if d := pc[a] - avail[a]; d > 0 {
					n += uint8(d)
				}
			}
			// Uni-parental override: both alleles from a single parent.
			// Must run before the missing-parent override; a missing parent
			// has an all-zero count vector and can spuriously match here.
			if !sharesAllele && (countsEqual(pc, p1) || countsEqual(pc, p2)) {
				n = 1
			}
			if parentMissing {
				n = 0
			}
			row[s] = n
		}
	}
	return me, nil
}

func countsEqual(a, b []int8) bool {
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
