// SPDX-License-Identifier: MIT
// Package matrix: square-only kernels - determinant and integer power.
//
// Purpose:
//   - Det: closed forms for sizes 0..2, Gaussian elimination with zero-pivot
//     row exchange for sizes >= 3 (determinant = sign * product of pivots).
//   - Pow: repeated self-multiplication with the documented "amount-1
//     multiplications" contract.
//
// Determinism:
//   - Fixed pivot order; a row exchange happens only when the current pivot
//     is exactly zero, and always picks the first non-zero row below.

package matrix

import "math"

// Small-size determinant bounds, kept as constants to avoid magic numbers.
const (
	detSizeEmpty  = 0 // degenerate 0×0 shape
	detSizeSingle = 1 // 1×1: determinant is the sole element
	detSizePair   = 2 // 2×2: closed a*d - b*c form
)

// Det computes the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); else ErrNilMatrix / ErrNonSquare.
//   - Stage 2: closed forms - size 0 yields the documented NaN sentinel
//     ("undefined" degenerate case), size 1 the sole element, size 2 the
//     standard a*d - b*c formula.
//   - Stage 3: for n >= 3, copy into a scratch buffer and run forward
//     elimination. When a pivot is zero, swap in the first row below with a
//     non-zero entry in that column and flip the sign; if none exists the
//     matrix is singular and the determinant is exactly 0. Otherwise the
//     determinant is sign * product of the pivots.
//
// Behavior highlights:
//   - The input is never mutated; elimination runs on a scratch copy.
//   - Row exchanges keep the elimination total on layouts where a plain
//     non-pivoting pass would divide by zero.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n³), Space O(n²) for the scratch copy.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := m.Rows()

	// Closed forms for the small sizes.
	switch n {
	case detSizeEmpty:
		return math.NaN(), nil // determinant of the empty matrix is undefined
	case detSizeSingle:
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDet, err)
		}

		return v, nil
	case detSizePair:
		a, _ := m.At(0, 0)
		b, _ := m.At(0, 1)
		c, _ := m.At(1, 0)
		d, _ := m.At(1, 1)

		return a*d - b*c, nil
	}

	// General case: forward elimination on a flat scratch copy.
	work := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(work, d.data) // fast path: single flat copy
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return 0, matrixErrorf(opDet, err)
				}
				work[i*n+j] = v
			}
		}
	}

	var (
		sign  = 1.0 // flips on every row exchange
		det   = 1.0 // running product of pivots
		pivot float64
	)
	var k, r, j int
	var factor float64
	for k = 0; k < n; k++ {
		pivot = work[k*n+k]
		if pivot == 0 {
			// Find the first row below with a non-zero entry in column k.
			swap := -1
			for r = k + 1; r < n; r++ {
				if work[r*n+k] != 0 {
					swap = r
					break
				}
			}
			if swap < 0 {
				return 0, nil // column is all zero below: singular
			}
			// Exchange rows k and swap; the determinant changes sign.
			for j = 0; j < n; j++ {
				work[k*n+j], work[swap*n+j] = work[swap*n+j], work[k*n+j]
			}
			sign = -sign
			pivot = work[k*n+k]
		}
		det *= pivot
		// Eliminate column k below the pivot row.
		for r = k + 1; r < n; r++ {
			factor = work[r*n+k] / pivot
			if factor == 0 {
				continue // nothing to eliminate in this row
			}
			for j = k; j < n; j++ {
				work[r*n+j] -= factor * work[k*n+j]
			}
		}
	}

	return sign * det, nil
}

// Pow computes the integer power of a square matrix by repeated
// self-multiplication.
//
// Exact semantics: the loop performs amount-1 multiplications when
// amount >= 2. For amount == 1 or amount <= 0 zero multiplications occur and
// the receiver itself is returned unchanged (same reference). This mirrors a
// decrement-before-test loop and is intentional; callers that need M⁰ == I
// should build NewIdentity explicitly.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O((amount-1) * n³), Space O(n²) per intermediate product.
func Pow(m Matrix, amount int) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	res := m
	var err error
	for amount--; amount > 0; amount-- { // decrement before test, on purpose
		res, err = Mul(res, m)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}
