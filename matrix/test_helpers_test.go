// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for kernels and property checks.
//   - Random grids hold small integers so sums and products stay exact in float64.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew builds a Dense from grid or fails the test.
func MustNew(t testing.TB, grid [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(grid, opts...)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return id
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomGrid returns an r×c grid of integers in [-9, 9] from a seeded source.
func RandomGrid(seed int64, r, c int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	g := make([][]float64, r)
	for i := range g {
		g[i] = make([]float64, c)
		for j := range g[i] {
			g[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return g
}

// RandomDense wraps RandomGrid into a Dense.
func RandomDense(t testing.TB, seed int64, r, c int) *matrix.Dense {
	t.Helper()

	return MustNew(t, RandomGrid(seed, r, c))
}

// shapes used by property tests; includes vectors and 1×1.
var shapes = []struct{ r, c int }{
	{1, 1}, {1, 5}, {5, 1}, {2, 2}, {2, 3}, {3, 2}, {4, 4}, {7, 3},
}
