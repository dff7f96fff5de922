// SPDX-License-Identifier: MIT
// Package matrix: element-wise and product kernels on any Matrix
// implementation. All kernels perform strict fail-fast validation through the
// central validators, never mutate their operands, and allocate exactly one
// result matrix. Every kernel carries a *Dense fast path operating on the
// flat backing slice and an interface fallback with fixed loop order.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opScale = "Scale"
	opPow   = "Pow"
	opDet   = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/errors.As keep matching. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign in {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and fast path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result Dense(rows, cols).
//   - Stage 2: fast path if both are *Dense - single flat loop 0..n-1.
//     Otherwise fall back to At reads with fixed i→j order.
//
// Behavior highlights:
//   - Deterministic loop orders; single result allocation; inputs immutable.
//   - Both paths write the flat result buffer directly, so the outcome never
//     depends on the operands' dynamic types or the result's numeric policy.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (both from validation).
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense, single flat loop over the backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv // same raw write as the fast path
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale multiplies every cell of m by k and returns a fresh Dense.
// Total transform: it never fails on values. k==0 yields the zero matrix of
// the same shape, k==1 is the identity transform, and an overflow to ±Inf is
// returned as-is (both paths bypass the result's numeric policy on purpose).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, k float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: flat loop over the backing slice.
	if d, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = d.data[idx] * k
		}

		return res, nil
	}

	// Fallback: fixed i→j order via the interface.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * k // same raw write as the fast path
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: per result cell (i,j), accumulate sum over k of A[i,k]*B[k,j]
//     in ascending k order with a zero-initialized accumulator. Plain
//     floating addition/multiplication, no pivoting or stability correction.
//
// Behavior highlights:
//   - Result shape is (A.Rows, B.Cols); operands are never mutated.
//   - Fast path indexes the flat slices directly; fallback reads via At.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c*n) where n is the shared dimension, Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: both operands are *Dense, stride over flat storage.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, j, k int
			var sum float64
			for i = 0; i < rows; i++ {
				for j = 0; j < cols; j++ {
					sum = 0                     // accumulator starts at zero
					for k = 0; k < inner; k++ { // ascending k, fixed order
						sum += da.data[i*inner+k] * db.data[k*cols+j]
					}
					res.data[i*cols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path, same i→j→k order.
	var i, j, k int
	var sum, av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*cols+j] = sum // same raw write as the fast path
		}
	}

	return res, nil
}
