// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mendel

import (
	"fmt"

	"github.com/grailbio/trio/genarray"
)

// PhaseByTransmission phases progeny genotypes where possible using
// Mendelian transmission.
//
// g must hold the two parents in sample columns 0 and 1 and the progeny in
// columns 2 onward.  A progeny call becomes phased, with its allele pair
// reordered to (allele from parent 1, allele from parent 2), exactly when
// one distinct ordering of the pair is consistent with each parent
// transmitting one of its own alleles.  Calls with no consistent ordering
// (non-Mendelian), two distinct consistent orderings (ambiguous), or a
// missing allele in any of the three calls involved are left in their
// original order and unphased.  Parent columns are always reported
// unphased.
//
// When inPlace is true g itself is reordered and returned; otherwise g is
// untouched on every path and the returned array is an independent copy.
// Each (variant, sample) decision is local, so callers parallelizing over
// variant ranges get correct results as long as each variant row is written
// by one task.
func PhaseByTransmission(g *genarray.Genotypes, inPlace bool) (*genarray.Genotypes, genarray.BoolMatrix, error) {
	if g.Ploidy() != 2 {
		return nil, genarray.BoolMatrix{}, errDiploidOnly("mendel.PhaseByTransmission", g.Ploidy())
	}
	if g.NSamples() < 3 {
		return nil, genarray.BoolMatrix{}, fmt.Errorf(
			"mendel.PhaseByTransmission: at least three samples required (2 parents and 1 or more progeny); found %d",
			g.NSamples())
	}
	if !inPlace {
		g = g.Copy()
	}

	nVariants := g.NVariants()
	nSamples := g.NSamples()
	isPhased := genarray.MakeBoolMatrix(nVariants, nSamples)
	for v := 0; v < nVariants; v++ {
		p1 := g.Call(v, 0)
		p2 := g.Call(v, 1)
		if p1[0] < 0 || p1[1] < 0 || p2[0] < 0 || p2[1] < 0 {
			continue
		}
		phased := isPhased.Row(v)
		for s := 2; s < nSamples; s++ {
			call := g.Call(v, s)
			a1, a2 := call[0], call[1]
			if a1 < 0 || a2 < 0 {
				continue
			}
			// Enumerate the two candidate assignments of the allele pair to
			// the parents.  Each is consistent iff both alleles appear in
			// the respective parent's own pair.
			keepOK := (a1 == p1[0] || a1 == p1[1]) && (a2 == p2[0] || a2 == p2[1])
			swapOK := (a2 == p1[0] || a2 == p1[1]) && (a1 == p2[0] || a1 == p2[1])
			switch {
			case keepOK && (a1 == a2 || !swapOK):
				// A homozygous call admits one distinct ordering, so it is
				// phased whenever consistent.
				phased[s] = true
			case swapOK && !keepOK:
				call[0], call[1] = a2, a1
				phased[s] = true
			}
		}
	}
	return g, isPhased, nil
}
