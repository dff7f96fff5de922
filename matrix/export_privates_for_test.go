// SPDX-License-Identifier: MIT
// Package matrix: narrow re-exports of private helpers for the external
// test package. Test-only surface; not part of the public API.

package matrix

// NewZeroShape_TestOnly exposes the internal zero-OK constructor so tests
// can build the degenerate 0×0 shape that public constructors reject.
var NewZeroShape_TestOnly = newDenseZeroOK

// CenterCell_TestOnly exposes the centering rule for padding tests.
var CenterCell_TestOnly = centerCell
