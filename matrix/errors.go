// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every user-triggered failure in this package is an invalid-argument error.
// ErrInvalidArgument is the umbrella sentinel; the specific sentinels below
// wrap it, so callers may match either the exact cause or the whole family:
//
//	errors.Is(err, matrix.ErrOutOfRange)      // exact cause
//	errors.Is(err, matrix.ErrInvalidArgument) // any argument error
//
// Kernels never panic on user input. Call sites wrap the sentinels with a
// method tag ("Dense.At(3,0): ...") and %w, keeping errors.Is working.

package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind reported by this package.
var ErrInvalidArgument = errors.New("matrix: invalid argument")

// invalid derives a specific sentinel from ErrInvalidArgument.
func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, reason)
}

var (
	// ErrEmpty is returned when a constructor receives a nil or zero-row grid.
	ErrEmpty = invalid("grid is nil or empty")

	// ErrRagged is returned when grid rows differ in length, or the first row is empty.
	ErrRagged = invalid("grid rows have unequal or zero length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = invalid("index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = invalid("dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	// It also matches ErrDimensionMismatch.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrInvalidDimensions indicates non-positive requested dimensions.
	ErrInvalidDimensions = invalid("dimensions must be > 0")

	// ErrNilMatrix indicates a nil *Dense receiver or operand.
	ErrNilMatrix = invalid("nil matrix")

	// ErrNaNInf signals a NaN or ±Inf where the finite-only policy is active.
	ErrNaNInf = invalid("NaN or Inf encountered")
)

// Operation tags for uniform error wrapping.
const (
	opNew       = "New"
	opFromData  = "NewFromData"
	opFromGonum = "FromGonum"
	opIdentity  = "NewIdentity"
	opZeros     = "NewZeros"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opMap       = "Map"
	opAllClose  = "AllClose"
	opRow       = "Row"
	opCol       = "Col"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with Dense method context and the offending indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
