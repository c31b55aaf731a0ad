// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestFacades_MatchMethods checks that each facade returns the method's result.
func TestFacades_MatchMethods(t *testing.T) {
	A := RandomDense(t, 1, 3, 3)
	B := RandomDense(t, 2, 3, 3)

	type binary func(a, b *matrix.Dense) (*matrix.Dense, error)
	cases := []struct {
		name   string
		facade binary
		method binary
	}{
		{"Add", matrix.Add, (*matrix.Dense).Add},
		{"Sub", matrix.Sub, (*matrix.Dense).Sub},
		{"Mul", matrix.Mul, (*matrix.Dense).Mul},
		{"Hadamard", matrix.Hadamard, (*matrix.Dense).Hadamard},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.facade(A, B)
			require.NoError(t, err)
			want, err := tc.method(A, B)
			require.NoError(t, err)
			require.True(t, matrix.Equal(got, want))
		})
	}

	s, err := matrix.Scale(A, -3)
	require.NoError(t, err)
	require.True(t, s.Equal(A.Scale(-3)))

	tr, err := matrix.Transpose(A)
	require.NoError(t, err)
	require.True(t, tr.Equal(A.T()))
}

func TestFacades_NilOperands(t *testing.T) {
	A := MustNew(t, [][]float64{{1}})

	_, err := matrix.Add(nil, A)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(A, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestProduct(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}})    // 1×2
	B := MustNew(t, [][]float64{{1}, {1}})  // 2×1
	C := MustNew(t, [][]float64{{2, 3, 4}}) // 1×3
	P, err := matrix.Product(A, B, C)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 9, 12}}, P.ToArray())

	single, err := matrix.Product(A)
	require.NoError(t, err)
	require.True(t, single.Equal(A))

	_, err = matrix.Product()
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.Product(A, C)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLikeConstructors(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}, {3, 4}})

	z, err := matrix.ZerosLike(A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, z.ToArray())

	id, err := matrix.IdentityLike(A)
	require.NoError(t, err)
	require.True(t, id.Equal(MustIdentity(t, 2)))

	_, err = matrix.IdentityLike(MustNew(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSymmetrize(t *testing.T) {
	A := MustNew(t, [][]float64{{1, 2}, {4, 3}})
	S, err := matrix.Symmetrize(A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {3, 3}}, S.ToArray())
	require.True(t, S.IsSymmetric())

	_, err = matrix.Symmetrize(MustNew(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
