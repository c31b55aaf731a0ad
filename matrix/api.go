// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin package-level entry points mirroring the *Dense methods, for call
//     sites that compose functions (e.g. fold over a slice of operands).
//   - Each facade checks for nil operands and delegates; no logic is duplicated.

package matrix

// ---------- Constructors & Utilities ----------

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return NewZeros(m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.r)
}

// ---------- Linear Algebra ----------

// Add returns a + b. See (*Dense).Add.
func Add(a, b *Dense) (*Dense, error) { return a.Add(b) }

// Sub returns a - b. See (*Dense).Sub.
func Sub(a, b *Dense) (*Dense, error) { return a.Sub(b) }

// Mul returns the matrix product a × b. See (*Dense).Mul.
func Mul(a, b *Dense) (*Dense, error) { return a.Mul(b) }

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b *Dense) (*Dense, error) { return a.Hadamard(b) }

// Scale returns alpha*m, or ErrNilMatrix for a nil m.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.Scale(alpha), nil
}

// Transpose returns mᵀ, or ErrNilMatrix for a nil m.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.T(), nil
}

// Product multiplies the operands left to right: ms[0] × ms[1] × ... .
// It needs at least one operand; the first failing step is reported.
func Product(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrEmpty)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := ms[0]
	var err error
	for _, next := range ms[1:] {
		if acc, err = acc.Mul(next); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Symmetrize returns (m + mᵀ)/2 for a square m.
// Composition only: Transpose → Add → Scale.
func Symmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := m.Add(m.T())
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return sum.Scale(0.5), nil
}

// ---------- Predicates & formatting ----------

// Equal reports exact equality; see (*Dense).Equal.
func Equal(a, b *Dense) bool { return a.Equal(b) }

// Format renders m as text: one line per row, "%10.6f" per value.
func Format(m *Dense) string { return m.String() }
