// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mendel computes Mendelian-inheritance consistency statistics over
// diploid trios (two parents, one or more progeny).
//
// Three independent transforms are provided:
//
//   - Errors counts, per (variant, progeny) call, the alleles inconsistent
//     with transmission from the two given parents.
//   - PaintTransmission classifies, per (variant, progeny haplotype), the
//     origin of an allele inherited from one diploid parent.
//   - PhaseByTransmission orders progeny allele pairs as (from parent 1,
//     from parent 2) wherever that attribution is unambiguous.
//
// All three are pure, synchronous, single-pass computations over
// genarray containers.  Validation failures are reported before any output
// is allocated; past validation every input value, including the missing
// sentinel, is handled, and no errors occur.
package mendel
