// SPDX-License-Identifier: MIT
// Package matrix: gonum interop.
//
// Both directions copy; a *Dense never shares storage with a gonum matrix.

package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// Gonum returns a fresh *mat.Dense holding the same values.
// Complexity: O(r*c).
func (m *Dense) Gonum() *mat.Dense {
	if m == nil {
		return nil
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors:
//   - ErrEmpty for a nil interface, a nil pointer behind it, or a zero-sized matrix.
//   - ErrInvalidDimensions when rows*cols overflows int.
//   - ErrNaNInf under WithFiniteOnly.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilMatrix(src) {
		return nil, matrixErrorf(opFromGonum, ErrEmpty)
	}
	rows, cols := src.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", rows, cols, ErrEmpty))
	}
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	buf := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			buf[i*cols+j] = src.At(i, j)
		}
	}

	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(buf, cols); err != nil {
			return nil, matrixErrorf(opFromGonum, err)
		}
	}

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// isNilMatrix reports whether src is nil or wraps a nil pointer, e.g. (*mat.Dense)(nil).
func isNilMatrix(src mat.Matrix) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
