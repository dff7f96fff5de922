// SPDX-License-Identifier: MIT

// Package matrix provides a dense, fixed-shape float64 matrix core.
//
// The matrix package provides:
//
//   - Row-major Dense storage with safe, bounds-checked accessors (At/Set)
//     and uniform copy-returning Row/Col views.
//   - Construction from raw rectangular data (FromRows, rectangularity
//     enforced), from an existing matrix (FromMatrix), and the NewZeros /
//     NewIdentity factories.
//   - Row-major traversal: Do (visit), Apply (in-place transform) and Map
//     (transform into a fresh matrix).
//   - Arithmetic kernels: Add, Sub, Scale and Mul, each with a *Dense fast
//     path over the flat backing slice and an interface fallback.
//   - Square-only operations: Det (closed forms for n ≤ 2, elimination with
//     zero-pivot row exchange beyond) and Pow (repeated self-multiplication
//     with the documented amount-1 contract).
//   - In-place elementary row operations for manual Gaussian-elimination
//     workflows: SwapRows, ScaleRow, AddScaledRow.
//   - Render, a boxed text grid with width-centered cells for human output.
//
// Every user-triggered failure is reported through package sentinels
// (ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare, ErrMalformedInput,
// ErrInvalidDimensions, ErrNaNInf, ErrNilMatrix) matched via errors.Is;
// nothing panics and nothing is logged.
//
// Matrices are ordinary mutable value holders with no internal
// synchronization: sharing one instance across goroutines requires external
// synchronization.
//
// See the examples in this package and the drivers under examples/ for
// usage patterns.
package matrix
