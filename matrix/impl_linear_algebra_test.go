// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub_Known(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	B := MustNew(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := A.Add(B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, sum.ToArray())

	diff, err := B.Sub(A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 4}, {4, 4}}, diff.ToArray())

	// Operands are untouched.
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, A.ToArray())
	require.Equal(t, [][]float64{{5, 6}, {7, 8}}, B.ToArray())
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	B := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := A.Add(B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = A.Sub(B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = A.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSub_Inverse checks Sub(Add(A,B),B) == A on exact integer data.
func TestAddSub_Inverse(t *testing.T) {
	for i, s := range shapes {
		A := RandomDense(t, int64(2*i), s.r, s.c)
		B := RandomDense(t, int64(2*i+1), s.r, s.c)

		sum, err := A.Add(B)
		require.NoError(t, err)
		back, err := sum.Sub(B)
		require.NoError(t, err)
		require.True(t, back.Equal(A), "shape %dx%d", s.r, s.c)
	}
}

func TestScale(t *testing.T) {
	A := MustNew(t, [][]float64{{1, -2}, {0, 4}})
	require.Equal(t, [][]float64{{2.5, -5}, {0, 10}}, A.Scale(2.5).ToArray())
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, A.Scale(0).ToArray())

	inf := A.Scale(math.Inf(1))
	require.True(t, math.IsInf(MustAt(t, inf, 0, 0), 1))
	require.True(t, math.IsNaN(MustAt(t, inf, 1, 0)), "0*Inf is NaN")
}

func TestMul_Known(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	B := MustNew(t, [][]float64{{5, 6}, {7, 8}})

	P, err := A.Mul(B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, P.ToArray())

	// Non-square: (2×3)·(3×1) = 2×1.
	C := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := MustNew(t, [][]float64{{1}, {0}, {-1}})
	y, err := C.Mul(x)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2}, {-2}}, y.ToArray())
}

func TestMul_DimensionMismatch(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	B := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	_, err := A.Mul(B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = A.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Identity checks A·I == A and I·A == A.
func TestMul_Identity(t *testing.T) {
	for i, s := range shapes {
		A := RandomDense(t, int64(40+i), s.r, s.c)

		right, err := A.Mul(MustIdentity(t, s.c))
		require.NoError(t, err)
		require.True(t, right.Equal(A))

		left, err := MustIdentity(t, s.r).Mul(A)
		require.NoError(t, err)
		require.True(t, left.Equal(A))
	}
}

// TestMul_ZeroTimesInf ensures no zero-skipping hides IEEE semantics.
func TestMul_ZeroTimesInf(t *testing.T) {
	A := MustNew(t, [][]float64{{0, 1}})
	B := MustNew(t, [][]float64{{math.Inf(1)}, {2}})
	P, err := A.Mul(B)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, P, 0, 0)))
}

func TestTranspose_Known(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	T := A.T()
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, T.ToArray())
	require.Equal(t, 3, T.Rows())
	require.Equal(t, 2, T.Cols())
}

// TestTranspose_Involution checks T(T(A)) == A.
func TestTranspose_Involution(t *testing.T) {
	for i, s := range shapes {
		A := RandomDense(t, int64(60+i), s.r, s.c)
		require.True(t, A.T().T().Equal(A))
	}
}

func TestHadamard(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	B := MustNew(t, [][]float64{{2, 0}, {-1, 0.5}})
	H, err := A.Hadamard(B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {-3, 2}}, H.ToArray())

	_, err = A.Hadamard(MustNew(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	y, err := A.MatVec([]float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, y)

	_, err = A.MatVec([]float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTrace(t *testing.T) {
	tr, err := MustNew(t, [][]float64{{1, 9}, {9, 4}}).Trace()
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	_, err = MustNew(t, [][]float64{{1, 2, 3}}).Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMap(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	M, err := A.Map(func(i, j int, v float64) float64 { return v*10 + float64(i+j) })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10, 21}, {31, 42}}, M.ToArray())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, A.ToArray())

	F := MustNew(t, [][]float64{{1, 0}}, matrix.WithFiniteOnly())
	_, err = F.Map(func(_, _ int, v float64) float64 { return 1 / v })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Without the policy the same transform is accepted.
	G := MustNew(t, [][]float64{{1, 0}})
	out, err := G.Map(func(_, _ int, v float64) float64 { return 1 / v })
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, out, 0, 1), 1))
}
