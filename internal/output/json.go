package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"lintnav/internal/types"
)

// JSONReport is the machine-readable report envelope.
type JSONReport struct {
	Header  JSONHeader     `json:"header"`
	Rows    []JSONRow      `json:"rows,omitempty"`
	Report  string         `json:"report,omitempty"`
	Message string         `json:"message,omitempty"`
}

// JSONHeader identifies the producing tool.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONRow is one quick-list entry.
type JSONRow struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Label   string `json:"label"`
	Preview string `json:"preview"`
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	w      io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter writing to w.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{w: w, indent: indent}
}

// QuickList emits the rows as JSON.
func (f *JSONFormatter) QuickList(rows []types.QuickListRow) error {
	report := f.envelope()
	for _, row := range rows {
		report.Rows = append(report.Rows, JSONRow(row))
	}
	return f.write(report)
}

// Message emits an informational outcome, such as a navigation command
// finding nothing to jump to, as JSON.
func (f *JSONFormatter) Message(msg string) error {
	report := f.envelope()
	report.Message = msg
	return f.write(report)
}

// Report emits the report text as JSON.
func (f *JSONFormatter) Report(text string) error {
	report := f.envelope()
	report.Report = text
	return f.write(report)
}

func (f *JSONFormatter) envelope() JSONReport {
	return JSONReport{
		Header: JSONHeader{
			Tool:      "lintnav",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
	}
}

func (f *JSONFormatter) write(report JSONReport) error {
	enc := json.NewEncoder(f.w)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("error encoding JSON report: %w", err)
	}
	return nil
}
