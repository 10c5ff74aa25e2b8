// Package types provides shared types used across the lintnav codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Diagnostic is a single finding on a line: the column it points at and the
// linter's message. Diagnostics are immutable once produced by the lint engine.
type Diagnostic struct {
	Line     int
	Column   int
	Message  string
	Severity string // error, warning
}

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Direction of a navigation search.
type Direction string

const (
	Next     Direction = "next"
	Previous Direction = "previous"
)

// QuickListRow is one display entry of the show-all-errors list. Rows are
// derived and ephemeral: rebuilt on every invocation, never persisted.
type QuickListRow struct {
	Line    int    // 0-based document line
	Column  int    // original (unadjusted) diagnostic column
	Label   string // "{line+1}  {message}"
	Preview string // truncated source line with the marker glyph spliced in
}
