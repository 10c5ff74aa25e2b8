package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"lintnav/internal/types"
)

// MarkdownFormatter formats output as Markdown.
type MarkdownFormatter struct {
	w io.Writer
}

// NewMarkdownFormatter creates a new MarkdownFormatter writing to w.
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{w: w}
}

// QuickList emits the rows as a Markdown table.
func (f *MarkdownFormatter) QuickList(rows []types.QuickListRow) error {
	var builder strings.Builder
	f.header(&builder)

	builder.WriteString("| Line | Column | Message | Preview |\n")
	builder.WriteString("|------|--------|---------|--------|\n")
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("| %d | %d | %s | `%s` |\n",
			row.Line+1, row.Column, mdEscape(row.Label), mdEscape(row.Preview)))
	}

	_, err := io.WriteString(f.w, builder.String())
	return err
}

// Report emits the report text as a fenced block under a header.
func (f *MarkdownFormatter) Report(text string) error {
	var builder strings.Builder
	f.header(&builder)
	builder.WriteString("```\n")
	builder.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString("```\n")

	_, err := io.WriteString(f.w, builder.String())
	return err
}

func (f *MarkdownFormatter) header(builder *strings.Builder) {
	builder.WriteString("# lintnav Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
