package region

import (
	"sort"
	"unicode"

	"lintnav/internal/types"
)

// Kind selects a region family.
type Kind string

const (
	KindWarning Kind = "warning"
	KindError   Kind = "error"
	KindMark    Kind = "mark"
)

// LineIndex is the slice of a document the provider needs: offset arithmetic
// over lines. *editor.Document satisfies it.
type LineIndex interface {
	// TextPoint converts a (line, column) pair to an absolute rune offset,
	// clamping out-of-range values to the document.
	TextPoint(line, col int) int
	// LineRegion returns the region of the given line excluding its trailing
	// newline.
	LineRegion(line int) Region
	// LineText returns the text of the given line without the trailing newline.
	LineText(line int) string
}

// Provider derives broad and mark regions for one document from its
// diagnostics. Region sets are recomputed on every call: the provider holds
// no state across lint passes, matching the snapshot lifecycle of the store.
type Provider struct {
	doc  LineIndex
	errs map[int][]types.Diagnostic
}

// NewProvider returns a provider over the given document and its diagnostics.
func NewProvider(doc LineIndex, errs map[int][]types.Diagnostic) *Provider {
	return &Provider{doc: doc, errs: errs}
}

// Regions returns the requested family, sorted ascending by Begin.
func (p *Provider) Regions(kind Kind) []Region {
	if kind == KindMark {
		return p.marks()
	}
	return p.broad(string(kind))
}

// NavigationSet returns the union of the warning and error broad families,
// which is the search space the navigation engine scans.
func (p *Provider) NavigationSet() []Region {
	return Union(p.broad(types.SeverityWarning), p.broad(types.SeverityError))
}

// broad returns one full-line region per diagnostic line of the given
// severity.
func (p *Provider) broad(severity string) []Region {
	seen := make(map[int]bool)
	var regions []Region
	for line, diags := range p.errs {
		for _, d := range diags {
			if d.Severity == severity && !seen[line] {
				seen[line] = true
				regions = append(regions, p.doc.LineRegion(line))
			}
		}
	}
	SortByBegin(regions)
	return regions
}

// marks returns the precise token span of every diagnostic, sorted ascending
// by Begin for the containment search.
func (p *Provider) marks() []Region {
	var marks []Region
	lines := make([]int, 0, len(p.errs))
	for line := range p.errs {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	for _, line := range lines {
		text := []rune(p.doc.LineText(line))
		for _, d := range p.errs[line] {
			marks = append(marks, p.markAt(line, d.Column, text))
		}
	}
	SortByBegin(marks)
	return marks
}

// markAt computes the token span starting at col on the given line: the run
// of word runes from the column, a single rune if the column holds a
// non-space rune, or an empty region at the column otherwise.
func (p *Provider) markAt(line, col int, text []rune) Region {
	begin := p.doc.TextPoint(line, col)
	if col < 0 || col >= len(text) {
		return Region{Begin: begin, End: begin}
	}
	end := col
	for end < len(text) && isWordRune(text[end]) {
		end++
	}
	if end == col && !unicode.IsSpace(text[col]) {
		end = col + 1
	}
	return Region{Begin: begin, End: p.doc.TextPoint(line, end)}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
