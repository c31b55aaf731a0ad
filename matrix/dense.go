// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold an immutable rows×cols grid in one contiguous buffer (offset = i*cols + j).
//   - Copy on the way in (constructors) and on the way out (ToArray/Row/Col),
//     so no caller ever aliases the internal buffer.
//   - Keep the public surface panic-free: indexers return errors.
//
// Complexity quicksheet:
//   - New/NewFromData: O(r*c); At: O(1); ToArray/Row/Col: O(r*c)/O(c)/O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt = "At" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtCell    = "%10.6f" // fixed 10-char field, 6 decimals, '.' decimal point
	_fmtRowTerm = "\n"
	_fmtNil     = "<nil>"
)

// Dense is an immutable row-major matrix of float64 values.
//   - r,c hold dimensions; both are ≥ 1 for every value built by this package.
//   - data is a flat buffer of length r*c owned exclusively by the Dense.
//   - validateNaNInf is the ingestion policy inherited by derived matrices.
//
// The zero value is not usable; build values with New, NewFromData,
// NewIdentity, NewZeros or FromGonum. A *Dense is safe for concurrent use
// because nothing mutates it after construction.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // finite-only policy (see WithFiniteOnly)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New builds a Dense from a rectangular grid, copying every value.
//
// Implementation:
//   - Stage 1: validate the grid (non-nil, ≥1 row, first row non-empty, equal row lengths).
//   - Stage 2: copy rows into one freshly allocated row-major buffer.
//   - Stage 3: apply the numeric policy from opts.
//
// Behavior highlights:
//   - The caller may mutate grid afterwards; the Dense is unaffected.
//   - Ragged input is rejected instead of silently truncated.
//
// Errors:
//   - ErrEmpty (nil or zero rows), ErrRagged (unequal or empty rows),
//     ErrNaNInf (non-finite value under WithFiniteOnly). All wrap ErrInvalidArgument.
//
// Complexity:
//   - Time O(r*c), Space O(r*c), one allocation for the buffer.
func New(grid [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	rows, cols, err := validateGrid(grid)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	buf := make([]float64, rows*cols)
	for i, row := range grid {
		copy(buf[i*cols:(i+1)*cols], row)
	}
	if o.validateNaNInf {
		if err = validateFinite(buf, cols); err != nil {
			return nil, matrixErrorf(opNew, err)
		}
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewFromData builds a rows×cols Dense from a row-major flat slice.
// data is copied; len(data) must equal rows*cols.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (under WithFiniteOnly).
// Complexity: O(r*c).
func NewFromData(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFromData, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromData,
			fmt.Errorf("len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch))
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	if o.validateNaNInf {
		if err := validateFinite(buf, cols); err != nil {
			return nil, matrixErrorf(opFromData, err)
		}
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewZeros returns a rows×cols zero matrix.
func NewZeros(rows, cols int) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newDense(rows, cols, DefaultValidateNaNInf), nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Use it as the neutral element of Mul.
func NewIdentity(n int) (*Dense, error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	id := newDense(n, n, DefaultValidateNaNInf)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// newDense allocates a zero-filled result buffer for kernels.
// Callers guarantee rows, cols ≥ 1.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}
}

// Rows returns the row count. A nil receiver reports 0.
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. A nil receiver reports 0.
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// FiniteOnly reports whether m was built under WithFiniteOnly.
func (m *Dense) FiniteOnly() bool { return m != nil && m.validateNaNInf }

// indexOf bounds-checks (row, col) and computes the row-major offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at zero-based (row, col).
//
// Errors:
//   - ErrOutOfRange when either index is negative or ≥ its dimension.
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1), no allocations on success.
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// ToArray returns a fresh [][]float64 copy of the grid.
// Rows share one new backing buffer but are capacity-capped, so appending to
// a returned row never spills into the next one.
// Complexity: O(r*c), two allocations.
func (m *Dense) ToArray() [][]float64 {
	if m == nil {
		return nil
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	out := make([][]float64, m.r)
	var lo, hi int
	for i := 0; i < m.r; i++ {
		lo, hi = i*m.c, (i+1)*m.c
		out[i] = buf[lo:hi:hi]
	}

	return out
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opCol, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opCol, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Do visits each element in row-major order and calls f(i, j, v).
// Iteration stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one line per row, each value as a 10-character field with
// 6 decimal digits ("%10.6f"). Every row, including the last, ends with '\n'.
// Go's fmt is locale-independent, so the decimal point is always '.'.
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m == nil {
		return _fmtNil
	}
	var b strings.Builder
	b.Grow(m.r * (m.c*10 + 1))

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, _fmtCell, m.data[base+j])
		}
		b.WriteString(_fmtRowTerm)
	}

	return b.String()
}

// validateFinite returns ErrNaNInf with coordinates for the first non-finite value.
func validateFinite(data []float64, cols int) error {
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("(%d,%d): %w", idx/cols, idx%cols, ErrNaNInf)
		}
	}

	return nil
}
