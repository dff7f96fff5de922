// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/FromRows/FromMatrix: O(r*c); At/Set: O(1); Row/Col: O(c)/O(r);
//     Do/Apply/Map/Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxCol   = "Col"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxMap   = "Map"   // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtFloat    = "%g"
)

// denseErrorf wraps an underlying error with Dense method context and the
// callsite indices. Preserves the sentinel via %w so errors.Is still matches.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes (policy
//     default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only via internal zero-OK constructor)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	// make() zero-fills the flat buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used by Det to represent the legal degenerate 0×0 case in tests; public
// constructors keep rejecting empty shapes.
// Complexity: Time O(rows*cols).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// FromRows builds a Dense from raw rectangular data, copying every row.
//
// Implementation:
//   - Stage 1: ValidateRectangular(raw) - empty shapes and ragged rows fail fast.
//   - Stage 2: allocate flat buffer and copy row by row in fixed i order.
//
// Behavior highlights:
//   - The result owns its storage: later mutation of raw does not leak in.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrMalformedInput (ragged rows).
//
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(raw [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRectangular(raw); err != nil {
		return nil, err
	}
	rows, cols := len(raw), len(raw[0])
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ { // fixed row order
		copy(m.data[i*cols:(i+1)*cols], raw[i])
	}

	return m, nil
}

// FromMatrix builds a Dense copy of any Matrix implementation, preserving
// its stored dimensions and values.
//
// Implementation:
//   - Stage 1: ValidateNotNil(src).
//   - Stage 2: fast path for *Dense (single flat copy); otherwise read via
//     At in fixed i→j order, writing the flat buffer directly so stored
//     values transfer verbatim.
//
// Numeric policy: a *Dense source carries its own policy onto the copy;
// other implementations have no policy flag to read, so the copy uses the
// package defaults. Explicit options win in both cases.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func FromMatrix(src Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	// Fast path: source is already a Dense.
	if d, ok := src.(*Dense); ok {
		cp := d.Clone().(*Dense) // Clone preserves the source policy
		if len(opts) > 0 {
			cp.validateNaNInf = gatherOptions(opts...).validateNaNInf
		}

		return cp, nil
	}

	rows, cols := src.Rows(), src.Cols()
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return nil, err
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods wrap with coordinates and
// method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// guardFinite enforces the numeric policy for a single value.
// Returns ErrNaNInf (plain sentinel) when the policy rejects v.
// Complexity: O(1).
func (m *Dense) guardFinite(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a sentinel error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) and returns the error surface of the write:
// bounds first, then numeric policy, then the O(1) flat write.
//
// Errors: ErrOutOfRange (bounds), ErrNaNInf (numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.guardFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a freshly materialized copy of row i.
//
// Ownership: the returned slice is independent of the matrix storage;
// mutating it does not affect the matrix. Row and Col share this one copy
// policy on purpose (uniform ownership, no live aliases).
//
// Errors: ErrOutOfRange.
// Complexity: Time O(c), Space O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a freshly materialized copy of column j, holding the j-th
// element of every row in ascending row order.
//
// Errors: ErrOutOfRange.
// Complexity: Time O(r), Space O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if err := ValidateColIndex(m, j); err != nil {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ { // fixed row order
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. No allocations;
// deterministic fixed i→j order.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects the numeric policy (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//     For all-or-nothing semantics, Map into a fresh matrix instead.
//
// Errors: ErrNaNInf when the transformer produced a non-finite value.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if err := m.guardFinite(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Map builds and returns a new matrix of identical dimensions whose cell
// (i,j) is f(i,j, m[i,j]). The receiver is not mutated.
//
// Behavior highlights:
//   - Same fixed row-major order as Do/Apply.
//   - The result inherits the receiver's numeric policy; a transformer that
//     produces NaN/±Inf under an enabled policy fails with ErrNaNInf and no
//     partial result escapes.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Map(f func(i, j int, v float64) float64) (*Dense, error) {
	out, err := NewDense(m.r, m.c, WithValidateNaNInf(m.validateNaNInf))
	if err != nil {
		return nil, err
	}
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if err = out.guardFinite(nv); err != nil {
				return nil, denseErrorf(ctxMap, i, j, err)
			}
			out.data[base+j] = nv
		}
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the copy do not affect the original.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; for the boxed human-readable grid use Render.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf(_fmtFloat, m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
