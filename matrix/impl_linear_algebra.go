// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels on *Dense.
//
// Purpose:
//   - Element-wise Add/Sub/Hadamard, scalar Scale, matrix product Mul, transpose T,
//     MatVec, Trace and Map.
//   - Every kernel validates first, allocates exactly one result and never mutates operands.
//
// Determinism:
//   - Fixed loop orders; Mul accumulates each cell over k = 0..n-1 in order.

package matrix

import (
	"fmt"
	"math"
)

// zeroSum seeds dot-product accumulators.
const zeroSum = 0.0

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub so validation and allocation live in one place.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape), tagged with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Single flat loop over both buffers.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(a.r, a.c, a.validateNaNInf)
	n := len(res.data)
	for idx := 0; idx < n; idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add returns the element-wise sum m + b.
// Errors: ErrDimensionMismatch when shapes differ; ErrNilMatrix on nil operands.
func (m *Dense) Add(b *Dense) (*Dense, error) { return addSub(m, b, +1, opAdd) }

// Sub returns the element-wise difference m - b.
// Errors: ErrDimensionMismatch when shapes differ; ErrNilMatrix on nil operands.
func (m *Dense) Sub(b *Dense) (*Dense, error) { return addSub(m, b, -1, opSub) }

// Scale returns alpha*m. Total: any alpha is accepted and NaN/Inf propagate
// regardless of the ingestion policy.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense {
	res := newDense(m.r, m.c, m.validateNaNInf)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res
}

// Mul returns the matrix product m × b with shape m.Rows() × b.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == b.Rows).
//   - Stage 2: plain i→j→k triple loop; each cell is the dot product of row i of m
//     and column j of b, accumulated in k order.
//
// Behavior highlights:
//   - No zero-skipping, so 0*Inf yields NaN exactly as the arithmetic says.
//
// Errors:
//   - ErrDimensionMismatch (inner dimensions differ), ErrNilMatrix.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, b.c
	res := newDense(rows, cols, m.validateNaNInf)

	var (
		i, j, k    int
		rowA, rowR int
		sum        float64
	)
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for j = 0; j < cols; j++ {
			sum = zeroSum
			for k = 0; k < inner; k++ {
				sum += m.data[rowA+k] * b.data[k*cols+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}

// T returns the transpose: a cols×rows matrix with t[j,i] = m[i,j].
// Complexity: O(r*c).
func (m *Dense) T() *Dense {
	rows, cols := m.r, m.c
	res := newDense(cols, rows, m.validateNaNInf)

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res
}

// Hadamard returns the element-wise product m ⊙ b.
// Not to be confused with Mul.
func (m *Dense) Hadamard(b *Dense) (*Dense, error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := newDense(m.r, m.c, m.validateNaNInf)
	for idx := range res.data {
		res.data[idx] = m.data[idx] * b.data[idx]
	}

	return res, nil
}

// MatVec returns y = m·x where len(x) must equal m.Cols().
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec,
			fmt.Errorf("len(x)=%d, want %d: %w", len(x), m.c, ErrDimensionMismatch))
	}

	y := make([]float64, m.r)
	var i, j, base int
	var sum float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = zeroSum
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := zeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Map returns a new matrix with out[i,j] = f(i, j, m[i,j]).
//
// Under the finite-only policy a NaN/±Inf produced by f aborts with ErrNaNInf
// and coordinates; no partial result is returned.
//
// Complexity: O(r*c) calls to f.
func (m *Dense) Map(f func(i, j int, v float64) float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opMap, ErrNilMatrix)
	}
	res := newDense(m.r, m.c, m.validateNaNInf)

	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return nil, matrixErrorf(opMap, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			res.data[base+j] = nv
		}
	}

	return res, nil
}
