// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mendel

import (
	"fmt"

	"github.com/grailbio/trio/genarray"
)

// Inheritance states assigned by PaintTransmission.
const (
	// InheritUndetermined marks calls no other state claimed.
	InheritUndetermined uint8 = iota
	// InheritParent1 marks alleles inherited from the first parental
	// haplotype.
	InheritParent1
	// InheritParent2 marks alleles inherited from the second parental
	// haplotype.
	InheritParent2
	// InheritNonsegRef marks reference alleles carried by both parental
	// haplotypes (non-segregating, so the source haplotype is unknowable).
	InheritNonsegRef
	// InheritNonsegAlt marks non-reference alleles carried by both parental
	// haplotypes.
	InheritNonsegAlt
	// InheritNonparental marks alleles carried by neither parental
	// haplotype.
	InheritNonparental
	// InheritParentMissing marks calls where either parental haplotype is
	// missing.
	InheritParentMissing
	// InheritMissing marks missing progeny alleles.
	InheritMissing
)

var inheritNames = [...]string{
	"undetermined",
	"parent1",
	"parent2",
	"nonseg-ref",
	"nonseg-alt",
	"nonparental",
	"parent-missing",
	"missing",
}

// InheritName returns a readable name for a painting code, for logs and
// test failure messages.
func InheritName(code uint8) string {
	if int(code) < len(inheritNames) {
		return inheritNames[code]
	}
	return fmt.Sprintf("invalid(%d)", code)
}

// PaintTransmission classifies haplotypes inherited from a single diploid
// parent according to their allelic inheritance.
//
// parents must hold both haplotypes of the parent, shape (nVariants, 2);
// progeny holds haplotypes known to derive from gametes of that parent,
// shape (nVariants, nProgeny).  The result assigns each (variant, progeny
// haplotype) cell one of the Inherit* codes.
//
// Each condition below is evaluated independently and written to the result
// in this order, so a later state overwrites an earlier one when several
// hold at once.  The order is part of the contract.
//
//	InheritParent1        heterozygous parent, allele matches haplotype 1
//	InheritParent2        heterozygous parent, allele matches haplotype 2
//	InheritNonsegRef      homozygous-ref parent, allele matches
//	InheritNonsegAlt      homozygous-alt parent, allele matches
//	InheritNonparental    allele matches neither parental haplotype
//	InheritParentMissing  either parental haplotype missing
//	InheritMissing        progeny allele missing
func PaintTransmission(parents, progeny *genarray.Haplotypes) (genarray.ByteMatrix, error) {
	if parents.NHaplotypes() != 2 {
		return genarray.ByteMatrix{}, fmt.Errorf(
			"mendel.PaintTransmission: exactly two parental haplotypes should be provided; found %d",
			parents.NHaplotypes())
	}
	if parents.NVariants() != progeny.NVariants() {
		return genarray.ByteMatrix{}, fmt.Errorf(
			"mendel.PaintTransmission: parents cover %d variants, progeny %d",
			parents.NVariants(), progeny.NVariants())
	}
	nVariants := parents.NVariants()
	nProgeny := progeny.NHaplotypes()

	painting := genarray.MakeByteMatrix(nVariants, nProgeny)
	for v := 0; v < nVariants; v++ {
		p1 := parents.Get(v, 0)
		p2 := parents.Get(v, 1)
		parentMissing := p1 < 0 || p2 < 0
		// Zygosity of the parent diplotype decides whether a matching
		// allele's source haplotype is distinguishable.
		parentHet := !parentMissing && p1 != p2
		parentHomRef := p1 == 0 && p2 == 0
		parentHomAlt := p1 > 0 && p1 == p2

		row := painting.Row(v)
		for j := 0; j < nProgeny; j++ {
			c := progeny.Get(v, j)
			callable := c >= 0 && !parentMissing

			code := InheritUndetermined
			if callable && parentHet && c == p1 {
				code = InheritParent1
			}
			if callable && parentHet && c == p2 {
				code = InheritParent2
			}
			if callable && parentHomRef && c == p1 {
				code = InheritNonsegRef
			}
			if callable && parentHomAlt && c == p1 {
				code = InheritNonsegAlt
			}
			if callable && c != p1 && c != p2 {
				code = InheritNonparental
			}
			if parentMissing {
				code = InheritParentMissing
			}
			if c < 0 {
				code = InheritMissing
			}
			row[j] = code
		}
	}
	return painting, nil
}
