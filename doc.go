// Package densemat is an in-memory playground for dense, fixed-shape
// float64 matrices: build them, transform them, and walk through manual
// Gaussian-elimination workflows step by step.
//
// 🚀 What is densemat?
//
//	A small, focused library that brings together:
//		• Construction: raw rectangular data, copies, zero & identity factories
//		• Safe accessors: bounds-checked At/Set, copy-returning Row/Col
//		• Traversal: Do (visit), Apply (in place), Map (fresh matrix)
//		• Arithmetic: Add, Sub, Scale, Mul with flat fast paths
//		• Square ops: Det (closed forms + elimination) and Pow
//		• Elementary row operations: SwapRows, ScaleRow, AddScaledRow
//		• Render: a boxed, width-centered text grid for humans
//
// ✨ Why choose densemat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Safe by default – sentinel errors instead of panics, finite-value policy
//   - Pure Go core – no cgo, deterministic loop orders everywhere
//
// Everything lives in one subpackage:
//
//	matrix/ — the dense matrix core (storage, kernels, row ops, rendering)
//
// Driver programs under examples/ show the library from the outside: they
// build matrices from literal data, run eliminations and print every
// intermediate state.
//
//	go get github.com/denselab/densemat/matrix
package densemat
