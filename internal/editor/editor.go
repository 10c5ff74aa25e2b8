package editor

import "lintnav/internal/region"

// Selection is an ordered sequence of caret ranges. The core reads it and
// replaces it wholesale; it never mutates individual ranges in place.
type Selection []region.Region

// SingleEmpty reports whether the selection is exactly one collapsed caret.
// This is the condition under which the navigation engine applies its
// boundary tie-break.
func (s Selection) SingleEmpty() bool {
	return len(s) == 1 && s[0].Empty()
}

// Editor is the surface the navigation commands drive. Integrations provide
// their own implementation; Buffer below backs the CLI and the tests.
type Editor interface {
	Document() *Document
	Selection() Selection
	SetSelection(Selection)
	ScrollIntoView(region.Region)
}

// Buffer is an in-memory Editor over a Document. It records the last scroll
// target so callers can report it.
type Buffer struct {
	doc      *Document
	sel      Selection
	scrolled *region.Region
}

// NewBuffer returns a Buffer with a collapsed selection at offset 0.
func NewBuffer(doc *Document) *Buffer {
	return &Buffer{doc: doc, sel: Selection{{}}}
}

// Document returns the underlying document.
func (b *Buffer) Document() *Document { return b.doc }

// Selection returns the current selection.
func (b *Buffer) Selection() Selection {
	if len(b.sel) == 0 {
		return Selection{{}}
	}
	return b.sel
}

// SetSelection replaces the entire selection.
func (b *Buffer) SetSelection(sel Selection) { b.sel = sel }

// ScrollIntoView records the region the viewport would center on.
func (b *Buffer) ScrollIntoView(r region.Region) { b.scrolled = &r }

// Scrolled returns the last scroll target, or nil if none was requested.
func (b *Buffer) Scrolled() *region.Region { return b.scrolled }
