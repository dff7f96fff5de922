// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations (mutating, in place).
//
// Purpose:
//   - Provide the three primitive steps of manual Gaussian-elimination
//     workflows: swap two rows, scale a row, add a scaled row to another.
//   - Validate row indices up front and fail with ErrOutOfRange instead of
//     propagating an undefined access.
//
// Concurrency:
//   - These methods mutate shared storage; instances shared across
//     goroutines require external synchronization.

package matrix

// Method tags for error context on the row operations.
const (
	ctxSwapRows     = "SwapRows"
	ctxScaleRow     = "ScaleRow"
	ctxAddScaledRow = "AddScaledRow"
)

// SwapRows exchanges the contents of rows r1 and r2 in place.
// Swapping the same row is a no-op. Applying the same swap twice restores
// the original row order.
//
// Errors: ErrOutOfRange when either index is invalid.
// Complexity: Time O(c), Space O(1).
func (m *Dense) SwapRows(r1, r2 int) error {
	if err := ValidateRowIndex(m, r1); err != nil {
		return denseErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	if err := ValidateRowIndex(m, r2); err != nil {
		return denseErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	if r1 == r2 {
		return nil
	}

	a := m.data[r1*m.c : (r1+1)*m.c]
	b := m.data[r2*m.c : (r2+1)*m.c]
	for j := 0; j < m.c; j++ { // fixed column order
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// ScaleRow replaces row r with each of its elements multiplied by factor,
// in place. Only row r changes; every other row stays bit-identical.
//
// Errors:
//   - ErrOutOfRange when r is invalid.
//   - ErrNaNInf when the numeric policy rejects a produced value; elements
//     written before the rejection remain updated (same contract as Apply).
//
// Complexity: Time O(c), Space O(1).
func (m *Dense) ScaleRow(r int, factor float64) error {
	if err := ValidateRowIndex(m, r); err != nil {
		return denseErrorf(ctxScaleRow, r, 0, ErrOutOfRange)
	}

	row := m.data[r*m.c : (r+1)*m.c]
	var nv float64
	for j := 0; j < m.c; j++ {
		nv = row[j] * factor
		if err := m.guardFinite(nv); err != nil {
			return denseErrorf(ctxScaleRow, r, j, err)
		}
		row[j] = nv
	}

	return nil
}

// AddScaledRow executes row[dst][j] += row[src][j] * factor for every column
// j, in place on the destination row. The source row is read only. dst and
// src may be equal, which scales the row by (1 + factor).
//
// Errors:
//   - ErrOutOfRange when either index is invalid.
//   - ErrNaNInf when the numeric policy rejects a produced value.
//
// Complexity: Time O(c), Space O(1).
func (m *Dense) AddScaledRow(dst, src int, factor float64) error {
	if err := ValidateRowIndex(m, dst); err != nil {
		return denseErrorf(ctxAddScaledRow, dst, src, ErrOutOfRange)
	}
	if err := ValidateRowIndex(m, src); err != nil {
		return denseErrorf(ctxAddScaledRow, dst, src, ErrOutOfRange)
	}

	d := m.data[dst*m.c : (dst+1)*m.c]
	s := m.data[src*m.c : (src+1)*m.c]
	var nv float64
	for j := 0; j < m.c; j++ {
		nv = d[j] + s[j]*factor
		if err := m.guardFinite(nv); err != nil {
			return denseErrorf(ctxAddScaledRow, dst, j, err)
		}
		d[j] = nv
	}

	return nil
}
