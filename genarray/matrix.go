// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genarray

import (
	"github.com/grailbio/base/simd"
)

// ByteMatrix is a dense row-major (nRow, nCol) matrix of uint8 values.  It
// is the result-buffer type for per-(variant, sample) codes and counts.
type ByteMatrix struct {
	nRow, nCol int
	data       []uint8
}

// MakeByteMatrix returns a zero-filled nRow x nCol ByteMatrix.
func MakeByteMatrix(nRow, nCol int) ByteMatrix {
	return ByteMatrix{
		nRow: nRow,
		nCol: nCol,
		data: make([]uint8, nRow*nCol),
	}
}

// NRow returns the row-dimension size.
func (m ByteMatrix) NRow() int { return m.nRow }

// NCol returns the column-dimension size.
func (m ByteMatrix) NCol() int { return m.nCol }

// Values returns the row-major backing storage.
func (m ByteMatrix) Values() []uint8 { return m.data }

// At returns the value at (r, c).
func (m ByteMatrix) At(r, c int) uint8 { return m.data[r*m.nCol+c] }

// Set overwrites the value at (r, c).
func (m ByteMatrix) Set(r, c int, v uint8) { m.data[r*m.nCol+c] = v }

// Row returns row r as a view into the backing storage.
func (m ByteMatrix) Row(r int) []uint8 {
	base := r * m.nCol
	return m.data[base : base+m.nCol]
}

// Fill sets every entry to v.
func (m ByteMatrix) Fill(v uint8) {
	simd.Memset8(m.data, v)
}

// SumRows returns per-row totals (e.g. Mendel errors per variant).
func (m ByteMatrix) SumRows() []int {
	sums := make([]int, m.nRow)
	for r := 0; r < m.nRow; r++ {
		tot := 0
		for _, v := range m.Row(r) {
			tot += int(v)
		}
		sums[r] = tot
	}
	return sums
}

// SumCols returns per-column totals (e.g. Mendel errors per progeny
// sample).
func (m ByteMatrix) SumCols() []int {
	sums := make([]int, m.nCol)
	for r := 0; r < m.nRow; r++ {
		row := m.Row(r)
		for c, v := range row {
			sums[c] += int(v)
		}
	}
	return sums
}

// BoolMatrix is a dense row-major (nRow, nCol) matrix of bool values.
type BoolMatrix struct {
	nRow, nCol int
	data       []bool
}

// MakeBoolMatrix returns an all-false nRow x nCol BoolMatrix.
func MakeBoolMatrix(nRow, nCol int) BoolMatrix {
	return BoolMatrix{
		nRow: nRow,
		nCol: nCol,
		data: make([]bool, nRow*nCol),
	}
}

// NRow returns the row-dimension size.
func (m BoolMatrix) NRow() int { return m.nRow }

// NCol returns the column-dimension size.
func (m BoolMatrix) NCol() int { return m.nCol }

// Values returns the row-major backing storage.
func (m BoolMatrix) Values() []bool { return m.data }

// At returns the value at (r, c).
func (m BoolMatrix) At(r, c int) bool { return m.data[r*m.nCol+c] }

// Set overwrites the value at (r, c).
func (m BoolMatrix) Set(r, c int, v bool) { m.data[r*m.nCol+c] = v }

// Row returns row r as a view into the backing storage.
func (m BoolMatrix) Row(r int) []bool {
	base := r * m.nCol
	return m.data[base : base+m.nCol]
}
