// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package genarray provides dense in-memory containers for diploid genotype
// and haplotype calls, along with the small set of whole-array transforms
// (allele counting, missingness and zygosity predicates) needed by the
// trio-statistics packages.
//
// Allele calls are stored as int8 values.  Nonnegative values are allele
// indexes, with 0 conventionally the reference allele; the Missing sentinel
// (-1) marks an uncalled allele.  Arrays are row-major and caller-owned:
// accessors returning slices return views into the backing storage, not
// copies.
package genarray
