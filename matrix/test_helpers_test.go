// SPDX-License-Identifier: MIT
// Shared helpers for the matrix test suite.

package matrix_test

import (
	"testing"

	"github.com/denselab/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// NewFilledDense builds a rows×cols Dense from flat row-major values and
// fails the test on any construction error.
func NewFilledDense(t testing.TB, rows, cols int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, rows*cols, "flat value count must match shape")

	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, vals[i*cols+j]))
		}
	}

	return m
}

// MustAt reads m[i,j] and fails the test on error.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// hide wraps any Matrix behind a distinct dynamic type so kernels cannot
// type-assert *Dense; used to force the interface fallback paths.
type hide struct{ matrix.Matrix }

// requireEqualCells asserts element-wise equality of two matrices within
// delta, after checking shapes.
func requireEqualCells(t testing.TB, want, got matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDelta(t, MustAt(t, want, i, j), MustAt(t, got, i, j), delta,
				"cell (%d,%d)", i, j)
		}
	}
}
