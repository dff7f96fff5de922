// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/denselab/densemat/matrix"
	"github.com/stretchr/testify/require"
)

const floatTol = 1e-12

func TestAdd_ElementWise(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})

	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireEqualCells(t, NewFilledDense(t, 2, 2, []float64{11, 22, 33, 44}), got, 0)

	// Operands are untouched.
	requireEqualCells(t, NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4}), a, 0)
}

func TestAdd_CommutativeAndAssociative(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})
	b := NewFilledDense(t, 2, 3, []float64{1.5, -2.5, 3.5, -4.5, 5.5, -6.5})
	c := NewFilledDense(t, 2, 3, []float64{7, 8, 9, 10, 11, 12})

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	requireEqualCells(t, ab, ba, floatTol)

	abc1, err := matrix.Add(ab, c)
	require.NoError(t, err)
	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	abc2, err := matrix.Add(a, bc)
	require.NoError(t, err)
	requireEqualCells(t, abc1, abc2, floatTol)
}

func TestAdd_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	requireEqualCells(t, fast, slow, 0)
}

func TestAdd_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSub_ElementWise(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	got, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireEqualCells(t, NewFilledDense(t, 2, 2, []float64{4, 4, 4, 4}), got, 0)
}

func TestScale_IdentityAndAnnihilator(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, -2, 3, -4})

	// Scale by 1 is the identity transform.
	one, err := matrix.Scale(m, 1)
	require.NoError(t, err)
	requireEqualCells(t, m, one, 0)

	// Scale by 0 yields the all-zero matrix of the same shape.
	zero, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	want, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	requireEqualCells(t, want, zero, 0)

	// General factor.
	twice, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	requireEqualCells(t, NewFilledDense(t, 2, 2, []float64{2, -4, 6, -8}), twice, 0)
}

func TestScale_FallbackPath(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	fast, err := matrix.Scale(m, -3)
	require.NoError(t, err)
	slow, err := matrix.Scale(hide{m}, -3)
	require.NoError(t, err)
	requireEqualCells(t, fast, slow, 0)
}

func TestScale_OverflowNeverFails(t *testing.T) {
	t.Parallel()

	// Scale is a total transform: doubling the max float overflows to +Inf
	// and both the fast path and the interface fallback return it as a
	// value, never as an error.
	m := NewFilledDense(t, 1, 1, []float64{math.MaxFloat64})

	fast, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, fast, 0, 0), 1))

	slow, err := matrix.Scale(hide{m}, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, slow, 0, 0), 1))
}

func TestAddMul_OverflowParityAcrossPaths(t *testing.T) {
	t.Parallel()

	// Non-finite results leave the kernels identically on both code paths.
	a := NewFilledDense(t, 1, 2, []float64{math.MaxFloat64, math.MaxFloat64})

	sumFast, err := matrix.Add(a, a)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hide{a}, a)
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, sumFast, 0, 0), 1))
	require.True(t, math.IsInf(MustAt(t, sumSlow, 0, 0), 1))

	ones := NewFilledDense(t, 2, 1, []float64{1, 1})
	prodFast, err := matrix.Mul(a, ones)
	require.NoError(t, err)
	prodSlow, err := matrix.Mul(hide{a}, hide{ones})
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, prodFast, 0, 0), 1))
	require.True(t, math.IsInf(MustAt(t, prodSlow, 0, 0), 1))
}

func TestMul_KnownProduct(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{2, 0, 1, 2})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// A*B = [[1*2+2*1, 1*0+2*2], [3*2+4*1, 3*0+4*2]] = [[4,4],[10,8]]
	requireEqualCells(t, NewFilledDense(t, 2, 2, []float64{4, 4, 10, 8}), got, 0)
}

func TestMul_RectangularShapes(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 1, []float64{7, 8, 9})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 1, got.Cols())
	requireEqualCells(t, NewFilledDense(t, 2, 1, []float64{50, 122}), got, 0)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(id, m)
	require.NoError(t, err)
	requireEqualCells(t, m, left, 0)

	right, err := matrix.Mul(m, id)
	require.NoError(t, err)
	requireEqualCells(t, m, right, 0)
}

func TestMul_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireEqualCells(t, fast, slow, 0)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFacadeAliases_DelegateToKernels(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	add, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireEqualCells(t, add, sum, 0)

	prod, err := matrix.Product(a, b)
	require.NoError(t, err)
	mul, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireEqualCells(t, mul, prod, 0)
}
