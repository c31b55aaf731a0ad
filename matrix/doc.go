// Package matrix provides Dense, an immutable rows×cols grid of float64
// values with basic linear algebra.
//
// The matrix package provides:
//
//   - Construction from a rectangular [][]float64 (New), a flat row-major
//     slice (NewFromData), or a gonum matrix (FromGonum). Input is always
//     copied; ragged or empty grids are rejected.
//   - Element-wise Add, Sub and Hadamard; Scale by a scalar; matrix product
//     Mul; transpose T; MatVec and Trace.
//   - Structural predicates IsSquare, IsSymmetric (bit-exact) and
//     IsSymmetricWithin (tolerance), plus Equal and AllClose.
//   - Fixed-width text rendering via String / Format ("%10.6f" per value).
//
// Every operation returns a new *Dense; nothing mutates a value after it is
// built, so a *Dense may be shared freely between goroutines.
//
// All failures are invalid-argument errors: match the family with
// errors.Is(err, ErrInvalidArgument) or a specific cause such as
// ErrOutOfRange or ErrDimensionMismatch.
//
// The package performs no pivoting, decompositions or blocking; products are
// the textbook triple loop. See the examples for usage patterns.
package matrix
