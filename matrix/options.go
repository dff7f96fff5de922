// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// Apply and the elementary row operations. When enabled, writes of NaN
	// or ±Inf are rejected with ErrNaNInf.
	DefaultValidateNaNInf = true
)

// Rendering glyphs. The boxed grid wraps the content with a top border,
// left/right rails per row and a bottom border sized to the content width.
const (
	// DefaultGlyphHorizontal draws the top and bottom borders.
	DefaultGlyphHorizontal = "-"

	// DefaultGlyphVertical draws the left and right rails.
	DefaultGlyphVertical = "|"

	// DefaultGlyphCorner marks the four border corners.
	DefaultGlyphCorner = "+"

	// DefaultCellSeparator separates adjacent cells inside a row.
	DefaultCellSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicGlyphEmpty = "matrix: WithGlyphs: glyphs must be non-empty"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries construction and rendering configuration. Fields are
// unexported; use the WithX constructors. The zero value is NOT ready for
// use, call gatherOptions (internal) or pass options to public APIs.
type Options struct {
	validateNaNInf bool   // reject NaN/±Inf on writes when true
	glyphH         string // horizontal border glyph
	glyphV         string // vertical rail glyph
	glyphCorner    string // corner glyph
	cellSep        string // separator between cells in a row
}

// defaultOptions returns the documented defaults. Single source of truth,
// must mirror the Default* constants above.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		glyphH:         DefaultGlyphHorizontal,
		glyphV:         DefaultGlyphVertical,
		glyphCorner:    DefaultGlyphCorner,
		cellSep:        DefaultCellSeparator,
	}
}

// gatherOptions folds opts over the defaults in call order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithValidateNaNInf toggles the finite-only numeric policy for writes.
// Disable only in controlled ingestion paths where non-finite markers are
// meaningful to the caller.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithGlyphs overrides the border glyph set used by Render.
// Panics when any glyph is empty (programmer error, not a user input).
func WithGlyphs(horizontal, vertical, corner string) Option {
	if horizontal == "" || vertical == "" || corner == "" {
		panic(panicGlyphEmpty)
	}

	return func(o *Options) {
		o.glyphH = horizontal
		o.glyphV = vertical
		o.glyphCorner = corner
	}
}
