// SPDX-License-Identifier: MIT
// Package matrix: human-readable boxed-grid rendering.
//
// Purpose:
//   - Produce a boxed text grid: top border, left/right rails per row,
//     bottom border, sized to the content width.
//   - Center every cell's text within a field of the maximum cell width.
//
// Centering rule (kept bit-compatible with the documented contract):
//   - left-padded length = (text_length + max_width) / 2 (integer division),
//     the remainder is right-padded. Even slack splits evenly, odd slack
//     leaves the extra space on the right.
//
// Purely cosmetic: no other operation depends on the rendered form.

package matrix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// renderPadding is the single space between a rail and the row content.
const renderPadding = " "

// Render returns the boxed text grid for m using the default glyph set, or
// the glyphs supplied via WithGlyphs.
//
// Implementation:
//   - Stage 1: format every cell with %g and track the maximum text width.
//   - Stage 2: emit top border, one railed line per row with centered cells,
//     bottom border.
//
// Behavior highlights:
//   - A nil matrix renders as the empty string (diagnostic surface, no
//     error). This covers both an interface nil and a typed-nil *Dense
//     hiding behind the interface.
//   - Fixed row-major traversal; output is fully deterministic.
//
// Complexity: Time O(r*c), Space O(r*c) for the cell texts and builder.
func Render(m Matrix, opts ...Option) string {
	if m == nil {
		return ""
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return "" // typed-nil receiver would panic on Rows()
	}
	o := gatherOptions(opts...)
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return ""
	}

	// Stage 1: materialize cell texts and find the widest one.
	cells := make([]string, rows*cols)
	width := 0
	var i, j int
	var v float64
	var s string
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds are valid by construction of the loops
			s = fmt.Sprintf(_fmtFloat, v)
			cells[i*cols+j] = s
			if n := utf8.RuneCountInString(s); n > width {
				width = n
			}
		}
	}

	// Stage 2: assemble the grid.
	inner := cols*width + (cols-1)*utf8.RuneCountInString(o.cellSep)
	border := o.glyphCorner +
		strings.Repeat(o.glyphH, inner+2*len(renderPadding)) +
		o.glyphCorner

	var b strings.Builder
	b.WriteString(border)
	b.WriteString("\n")
	row := make([]string, cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			row[j] = centerCell(cells[i*cols+j], width)
		}
		b.WriteString(o.glyphV)
		b.WriteString(renderPadding)
		b.WriteString(strings.Join(row, o.cellSep))
		b.WriteString(renderPadding)
		b.WriteString(o.glyphV)
		b.WriteString("\n")
	}
	b.WriteString(border)
	b.WriteString("\n")

	return b.String()
}

// centerCell pads s into a field of the given width. The left-padded length
// is (len+width)/2; the remainder goes to the right.
// Complexity: O(width).
func centerCell(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	leftTotal := (n + width) / 2
	out := strings.Repeat(" ", leftTotal-n) + s

	return out + strings.Repeat(" ", width-leftTotal)
}
