// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons.
//
// Equal is the bit-exact comparison used by the algebraic identities
// (T(T(A)) == A and friends); AllClose is the tolerance-aware one for results
// that went through rounding.

package matrix

import "math"

// Equal reports whether m and b have the same shape and identical values.
// Comparison uses ==, so NaN never equals NaN. Two nil matrices are equal.
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for idx, v := range m.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if every element satisfies the relation, (false, nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//   - +Inf equals +Inf and -Inf equals -Inf; NaN equals nothing.
//
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = a.data[idx], b.data[idx]
		if av == bv { // exact hit, including equal infinities
			continue
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false, nil
		}
		// NaN fails the comparison below.
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}
