// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mendel_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/trio/genarray"
	"github.com/grailbio/trio/mendel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitTrio separates a (nVariants, 2+nProgeny, 2) genotype table into
// parent and progeny arrays.
func splitTrio(calls [][][]int8) (parents, progeny *genarray.Genotypes) {
	var parentCalls, progenyCalls [][][]int8
	for _, variant := range calls {
		parentCalls = append(parentCalls, variant[:2])
		progenyCalls = append(progenyCalls, variant[2:])
	}
	return genarray.MakeGenotypes(parentCalls), genarray.MakeGenotypes(progenyCalls)
}

func errorRows(me genarray.ByteMatrix) [][]uint8 {
	rows := make([][]uint8, me.NRow())
	for v := range rows {
		rows[v] = me.Row(v)
	}
	return rows
}

func TestErrorsConsistent(t *testing.T) {
	// Calls consistent with Mendelian transmission, including missing
	// progeny calls, score zero errors.
	parents, progeny := splitTrio([][][]int8{
		// aa x aa -> aa
		{{0, 0}, {0, 0}, {0, 0}, {-1, -1}, {-1, -1}, {-1, -1}},
		{{1, 1}, {1, 1}, {1, 1}, {-1, -1}, {-1, -1}, {-1, -1}},
		{{2, 2}, {2, 2}, {2, 2}, {-1, -1}, {-1, -1}, {-1, -1}},
		// aa x ab -> aa or ab
		{{0, 0}, {0, 1}, {0, 0}, {0, 1}, {-1, -1}, {-1, -1}},
		{{0, 0}, {0, 2}, {0, 0}, {0, 2}, {-1, -1}, {-1, -1}},
		{{1, 1}, {0, 1}, {1, 1}, {0, 1}, {-1, -1}, {-1, -1}},
		// aa x bb -> ab
		{{0, 0}, {1, 1}, {0, 1}, {-1, -1}, {-1, -1}, {-1, -1}},
		{{0, 0}, {2, 2}, {0, 2}, {-1, -1}, {-1, -1}, {-1, -1}},
		{{1, 1}, {2, 2}, {1, 2}, {-1, -1}, {-1, -1}, {-1, -1}},
		// aa x bc -> ab or ac
		{{0, 0}, {1, 2}, {0, 1}, {0, 2}, {-1, -1}, {-1, -1}},
		{{1, 1}, {0, 2}, {0, 1}, {1, 2}, {-1, -1}, {-1, -1}},
		// ab x ab -> aa or ab or bb
		{{0, 1}, {0, 1}, {0, 0}, {0, 1}, {1, 1}, {-1, -1}},
		{{1, 2}, {1, 2}, {1, 1}, {1, 2}, {2, 2}, {-1, -1}},
		{{0, 2}, {0, 2}, {0, 0}, {0, 2}, {2, 2}, {-1, -1}},
		// ab x bc -> ab or ac or bb or bc
		{{0, 1}, {1, 2}, {0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {0, 0}, {0, 1}, {0, 1}, {1, 2}},
		// ab x cd -> ac or ad or bc or bd
		{{0, 1}, {2, 3}, {0, 2}, {0, 3}, {1, 2}, {1, 3}},
	})
	me, err := mendel.Errors(parents, progeny)
	require.NoError(t, err)
	for v, row := range errorRows(me) {
		assert.Equal(t, []uint8{0, 0, 0, 0}, row, "variant %d", v)
	}
}

func TestErrorsNonparental(t *testing.T) {
	// One or two progeny alleles absent from both parents.
	parents, progeny := splitTrio([][][]int8{
		// aa x aa -> ab or ac or bb or cc
		{{0, 0}, {0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 2}},
		{{1, 1}, {1, 1}, {0, 1}, {1, 2}, {0, 0}, {2, 2}},
		{{2, 2}, {2, 2}, {0, 2}, {1, 2}, {0, 0}, {1, 1}},
		// aa x ab -> ac or bc or cc
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 2}},
		{{0, 0}, {0, 2}, {0, 1}, {1, 2}, {1, 1}, {1, 1}},
		{{1, 1}, {0, 1}, {1, 2}, {0, 2}, {2, 2}, {2, 2}},
		// aa x bb -> ac or bc or cc
		{{0, 0}, {1, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 2}},
		{{0, 0}, {2, 2}, {0, 1}, {1, 2}, {1, 1}, {1, 1}},
		{{1, 1}, {2, 2}, {0, 1}, {0, 2}, {0, 0}, {0, 0}},
		// ab x ab -> ac or bc or cc
		{{0, 1}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 2}},
		{{0, 2}, {0, 2}, {0, 1}, {1, 2}, {1, 1}, {1, 1}},
		{{1, 2}, {1, 2}, {0, 1}, {0, 2}, {0, 0}, {0, 0}},
		// ab x bc -> ad or bd or cd or dd
		{{0, 1}, {1, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}},
		{{0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}},
		{{0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}},
		// ab x cd -> ae or be or ce or de
		{{0, 1}, {2, 3}, {0, 4}, {1, 4}, {2, 4}, {3, 4}},
	})
	expected := [][]uint8{
		{1, 1, 2, 2}, {1, 1, 2, 2}, {1, 1, 2, 2},
		{1, 1, 2, 2}, {1, 1, 2, 2}, {1, 1, 2, 2},
		{1, 1, 2, 2}, {1, 1, 2, 2}, {1, 1, 2, 2},
		{1, 1, 2, 2}, {1, 1, 2, 2}, {1, 1, 2, 2},
		{1, 1, 1, 2}, {1, 1, 1, 2}, {1, 1, 1, 2},
		{1, 1, 1, 1},
	}
	me, err := mendel.Errors(parents, progeny)
	require.NoError(t, err)
	assert.Equal(t, expected, errorRows(me))
}

func TestErrorsHemiparental(t *testing.T) {
	// Two copies of an allele only one parent carries one copy of.
	parents, progeny := splitTrio([][][]int8{
		// aa x ab -> bb
		{{0, 0}, {0, 1}, {1, 1}, {-1, -1}},
		{{0, 0}, {0, 2}, {2, 2}, {-1, -1}},
		{{1, 1}, {0, 1}, {0, 0}, {-1, -1}},
		// ab x bc -> aa or cc
		{{0, 1}, {1, 2}, {0, 0}, {2, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 2}, {0, 0}, {1, 1}},
		// ab x cd -> aa or bb or cc or dd
		{{0, 1}, {2, 3}, {0, 0}, {1, 1}},
		{{0, 1}, {2, 3}, {2, 2}, {3, 3}},
	})
	expected := [][]uint8{
		{1, 0}, {1, 0}, {1, 0},
		{1, 1}, {1, 1}, {1, 1},
		{1, 1}, {1, 1},
	}
	me, err := mendel.Errors(parents, progeny)
	require.NoError(t, err)
	assert.Equal(t, expected, errorRows(me))
}

func TestErrorsUniparental(t *testing.T) {
	// Both alleles apparently inherited from a single parent.  The call is
	// allele-for-allele explainable, so the subtractive count alone would
	// score 0; the override charges exactly 1.
	parents, progeny := splitTrio([][][]int8{
		// aa x bb -> aa or bb
		{{0, 0}, {1, 1}, {0, 0}, {1, 1}},
		{{0, 0}, {2, 2}, {0, 0}, {2, 2}},
		{{1, 1}, {2, 2}, {1, 1}, {2, 2}},
		// aa x bc -> aa or bc
		{{0, 0}, {1, 2}, {0, 0}, {1, 2}},
		{{1, 1}, {0, 2}, {1, 1}, {0, 2}},
		// ab x cd -> ab or cd
		{{0, 1}, {2, 3}, {0, 1}, {2, 3}},
	})
	me, err := mendel.Errors(parents, progeny)
	require.NoError(t, err)
	for v, row := range errorRows(me) {
		assert.Equal(t, []uint8{1, 1}, row, "variant %d", v)
	}
}

func TestErrorsParentMissing(t *testing.T) {
	// Any missing parental allele suppresses error calls at that variant,
	// whatever the progeny carries.
	parents, progeny := splitTrio([][][]int8{
		{{-1, -1}, {-1, -1}, {0, 0}, {5, 5}},
		{{0, 0}, {-1, -1}, {1, 1}, {2, 2}},
		{{0, -1}, {1, 1}, {2, 2}, {0, 1}},
		{{-1, -1}, {1, 1}, {3, 3}, {-1, -1}},
	})
	me, err := mendel.Errors(parents, progeny)
	require.NoError(t, err)
	for v, row := range errorRows(me) {
		assert.Equal(t, []uint8{0, 0}, row, "variant %d", v)
	}
}

func TestErrorsValidation(t *testing.T) {
	diploid := genarray.MakeGenotypes([][][]int8{{{0, 0}, {0, 0}}})
	triploid := genarray.MakeGenotypes([][][]int8{{{0, 0, 0}, {0, 0, 0}}})
	threeParents := genarray.MakeGenotypes([][][]int8{{{0, 0}, {0, 0}, {0, 0}}})
	twoVariants := genarray.MakeGenotypes([][][]int8{{{0, 0}}, {{0, 0}}})

	_, err := mendel.Errors(triploid, diploid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires diploid data")
	_, err = mendel.Errors(diploid, triploid)
	assert.Error(t, err)
	_, err = mendel.Errors(threeParents, diploid)
	assert.Error(t, err)
	_, err = mendel.Errors(diploid, twoVariants)
	assert.Error(t, err)
}

// TestErrorsValidTransmission draws random trios where each progeny call
// takes one allele from each parent, and checks that no errors are
// reported.  With a missing parental allele retrofitted in, every count at
// the variant must drop to zero.
func TestErrorsValidTransmission(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	nIter := 100
	for iter := 0; iter < nIter; iter++ {
		nVariants := 1 + rng.Intn(20)
		nProgeny := 1 + rng.Intn(6)
		parentCalls := make([][][]int8, nVariants)
		progenyCalls := make([][][]int8, nVariants)
		for v := range parentCalls {
			p1 := []int8{int8(rng.Intn(4)), int8(rng.Intn(4))}
			p2 := []int8{int8(rng.Intn(4)), int8(rng.Intn(4))}
			parentCalls[v] = [][]int8{p1, p2}
			progenyCalls[v] = make([][]int8, nProgeny)
			for s := range progenyCalls[v] {
				progenyCalls[v][s] = []int8{p1[rng.Intn(2)], p2[rng.Intn(2)]}
			}
		}
		parents := genarray.MakeGenotypes(parentCalls)
		progeny := genarray.MakeGenotypes(progenyCalls)
		me, err := mendel.Errors(parents, progeny)
		require.NoError(t, err)
		for _, n := range me.Values() {
			require.Equal(t, uint8(0), n)
		}

		v := rng.Intn(nVariants)
		parents.Set(v, rng.Intn(2), rng.Intn(2), genarray.Missing)
		me, err = mendel.Errors(parents, progeny)
		require.NoError(t, err)
		for s := 0; s < nProgeny; s++ {
			require.Equal(t, uint8(0), me.At(v, s))
		}
	}
}

func TestErrorSums(t *testing.T) {
	parents, progeny := splitTrio([][][]int8{
		{{0, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 1}, {0, 1}, {0, 0}},
	})
	me, err := mendel.Errors(parents, progeny)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, me.SumRows())
	assert.Equal(t, []int{1, 3}, me.SumCols())
}

func TestMain(m *testing.M) {
	shutdown := grail.Init()
	defer shutdown()
	os.Exit(m.Run())
}
