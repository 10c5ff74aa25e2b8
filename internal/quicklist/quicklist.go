// Package quicklist flattens a document's diagnostics into the rows of the
// show-all-errors list: one entry per (line, message), sorted, with a
// truncated source-line preview and a marker glyph spliced in at the
// diagnostic's column.
package quicklist

import (
	"fmt"
	"sort"

	"lintnav/internal/errorstore"
	"lintnav/internal/textutil"
	"lintnav/internal/types"
)

// MaxPrefixLen is the visible-prefix budget: diagnostics whose adjusted
// column lies beyond it get an ellipsized preview.
const MaxPrefixLen = 40

// Marker is the glyph spliced into the preview at the diagnostic's column.
const Marker = "➜"

const ellipsis = "..."

// LineTextFunc returns the full source text of a 0-based line, trailing
// newline included or not; Build strips it either way.
type LineTextFunc func(line int) string

// Build produces the display rows for the given diagnostics. Output order is
// deterministic and total: line ascending, then (column, message) ascending.
// Repeated calls over the same inputs yield identical rows.
func Build(errs errorstore.ErrorMap, lineText LineTextFunc) []types.QuickListRow {
	var rows []types.QuickListRow

	for _, lineno := range errs.Lines() {
		// Strip whitespace from the front of the line, but keep track of how
		// much was stripped so we can adjust the column.
		stripped, diff := textutil.StripLeading(lineText(lineno))

		diags := make([]types.Diagnostic, len(errs[lineno]))
		copy(diags, errs[lineno])
		sort.SliceStable(diags, func(i, j int) bool {
			if diags[i].Column != diags[j].Column {
				return diags[i].Column < diags[j].Column
			}
			return diags[i].Message < diags[j].Message
		})

		for _, d := range diags {
			rows = append(rows, types.QuickListRow{
				Line:    lineno,
				Column:  d.Column,
				Label:   fmt.Sprintf("%d  %s", lineno+1, d.Message),
				Preview: preview(stripped, d.Column-diff),
			})
		}
	}
	return rows
}

// preview renders the stripped line with the marker spliced in at the
// adjusted column. Columns beyond the prefix budget shift the window: the
// preview starts with an ellipsis followed by the tail of the line, and the
// marker lands just past the budget. A negative adjusted column (the strip
// removed more than the reported column) clamps to 0: no truncation, marker
// at the front.
func preview(stripped string, column int) string {
	runes := []rune(stripped)

	if column > MaxPrefixLen {
		start := column - MaxPrefixLen
		if start > len(runes) {
			start = len(runes)
		}
		runes = append([]rune(ellipsis), runes[start:]...)
		column = MaxPrefixLen + len(ellipsis)
	}
	return textutil.Splice(string(runes), column, Marker)
}
