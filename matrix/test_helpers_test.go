// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/mvnormal/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback paths in the code under test.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return d
}

// mustDense allocates an r×c zero *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return d
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed uint64) {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// rowsOf unwraps a Matrix result into rows for compact assertions.
func rowsOf(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	d, ok := m.(*matrix.Dense)
	require.True(tb, ok, "kernels return *Dense")

	return d.ToRows()
}
