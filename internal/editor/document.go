// Package editor models the slice of an editor surface the navigation core
// touches: a read-only document with line/offset arithmetic, a selection made
// of caret ranges, and the Editor interface the commands drive. The real
// editor lives on the other side of an integration; the buffer-backed
// implementation here serves the CLI and the tests.
package editor

import (
	"strings"

	"lintnav/internal/region"
)

// Document is an immutable text buffer with a line index. All offsets are in
// runes, so column arithmetic matches what a user sees for multi-byte text.
type Document struct {
	name       string
	text       []rune
	lineStarts []int // rune offset of the first rune of each line
}

// NewDocument builds a document from raw text. Lines are split on '\n'; a
// trailing newline yields a final empty line, matching editor buffers.
func NewDocument(name, text string) *Document {
	d := &Document{name: name, text: []rune(text)}
	d.lineStarts = append(d.lineStarts, 0)
	for i, r := range d.text {
		if r == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
	return d
}

// Name returns the document's identifier (its path, for file documents).
func (d *Document) Name() string { return d.name }

// Size returns the document length in runes.
func (d *Document) Size() int { return len(d.text) }

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return len(d.lineStarts) }

// TextPoint converts a (line, column) pair to an absolute rune offset.
// Out-of-range lines clamp to the document ends and out-of-range columns
// clamp to the line, so a stale diagnostic can never produce an offset
// outside the buffer.
func (d *Document) TextPoint(line, col int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.text)
	}
	r := d.lineEnd(line)
	point := d.lineStarts[line] + col
	if col < 0 {
		return d.lineStarts[line]
	}
	if point > r {
		return r
	}
	return point
}

// LineAt returns the 0-based line holding the given offset.
func (d *Document) LineAt(point int) int {
	if point < 0 {
		return 0
	}
	line := 0
	for line+1 < len(d.lineStarts) && d.lineStarts[line+1] <= point {
		line++
	}
	return line
}

// LineRegion returns the region of the given line excluding the trailing
// newline.
func (d *Document) LineRegion(line int) region.Region {
	if line < 0 || line >= len(d.lineStarts) {
		return region.Region{Begin: len(d.text), End: len(d.text)}
	}
	return region.Region{Begin: d.lineStarts[line], End: d.lineEnd(line)}
}

// FullLineRegion returns the region of the given line including the trailing
// newline, if any.
func (d *Document) FullLineRegion(line int) region.Region {
	r := d.LineRegion(line)
	if r.End < len(d.text) && d.text[r.End] == '\n' {
		r.End++
	}
	return r
}

// LineText returns the text of the given line without the trailing newline.
func (d *Document) LineText(line int) string {
	return d.Substr(d.LineRegion(line))
}

// FullLineText returns the text of the given line including the trailing
// newline, if any.
func (d *Document) FullLineText(line int) string {
	return d.Substr(d.FullLineRegion(line))
}

// Substr returns the text covered by the region, clamped to the document.
func (d *Document) Substr(r region.Region) string {
	begin, end := r.Begin, r.End
	if begin < 0 {
		begin = 0
	}
	if end > len(d.text) {
		end = len(d.text)
	}
	if begin >= end {
		return ""
	}
	var b strings.Builder
	for _, ru := range d.text[begin:end] {
		b.WriteRune(ru)
	}
	return b.String()
}

// lineEnd returns the offset just past the last rune of the line, before its
// newline.
func (d *Document) lineEnd(line int) int {
	if line+1 < len(d.lineStarts) {
		return d.lineStarts[line+1] - 1
	}
	return len(d.text)
}
