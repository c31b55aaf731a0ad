// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape/nil checks and structural predicates.
//  - Keep kernels minimal by delegating guards here.
//  - Validators return plain sentinels (or a tagged wrap of them) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - Symmetry checks scan the strict upper triangle once.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateGrid checks that grid is a non-empty rectangle and returns its shape.
// Errors: ErrEmpty, ErrRagged.
func validateGrid(grid [][]float64) (rows, cols int, err error) {
	if len(grid) == 0 {
		return 0, 0, ErrEmpty
	}
	cols = len(grid[0])
	if cols == 0 {
		return 0, 0, fmt.Errorf("row 0 is empty: %w", ErrRagged)
	}
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(grid[i]), cols, ErrRagged)
		}
	}

	return len(grid), cols, nil
}

// validateDims checks that rows×cols is a positive shape whose element count fits in int.
// Errors: ErrInvalidDimensions.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Used by Add, Sub, Hadamard and AllClose.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch too).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.Rows() == m.Cols() }

// IsSymmetric reports whether m is square and m[i,j] == m[j,i] for all i, j.
//
// Comparison is bit-exact float equality with no tolerance; consequently a NaN
// anywhere in the matrix makes it non-symmetric (NaN != NaN). Use
// IsSymmetricWithin for a tolerance-aware check.
//
// Complexity: O(n²) worst case, early exit on the first mismatch.
func (m *Dense) IsSymmetric() bool {
	if m == nil || m.r != m.c {
		return false
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ { // j == i catches NaN on the diagonal
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// IsSymmetricWithin reports whether m is square and |m[i,j] - m[j,i]| ≤ tol
// for every i < j. A negative tol is treated as |tol|; NaN or Inf tol reports false.
// NaN entries off the diagonal never satisfy the bound.
func (m *Dense) IsSymmetricWithin(tol float64) bool {
	if m == nil || m.r != m.c {
		return false
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false
	}
	tol = math.Abs(tol)

	n := m.r
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, aji = m.data[i*n+j], m.data[j*n+i]
			if aij == aji { // covers equal infinities
				continue
			}
			if !(math.Abs(aij-aji) <= tol) { // NaN fails here
				return false
			}
		}
	}

	return true
}
