// Package output renders lintnav results for the terminal: the quick list,
// navigation outcomes, informational messages, and the project report in
// console, JSON, or Markdown form.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lintnav/internal/editor"
	"lintnav/internal/types"
)

// Console formats output for terminal display.
type Console struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, quiet, verbose bool) *Console {
	return &Console{w: w, quiet: quiet, verbose: verbose, colorize: true}
}

// NoColor disables styling, for tests and non-TTY output.
func (c *Console) NoColor() *Console {
	c.colorize = false
	return c
}

// Info prints an informational message. Navigation failures are
// informational here, never fatal: "No next lint error." is a message, not
// an exit code.
func (c *Console) Info(msg string) {
	if c.quiet {
		return
	}
	if c.colorize {
		msg = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(msg)
	}
	fmt.Fprintln(c.w, msg)
}

// QuickList prints the show-all-errors rows, label column padded so the
// previews line up. Row indexes are printed so a --pick argument can refer
// back to them.
func (c *Console) QuickList(rows []types.QuickListRow) {
	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.Label); w > labelWidth {
			labelWidth = w
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	for i, row := range rows {
		label := runewidth.FillRight(row.Label, labelWidth)
		if c.colorize {
			label = labelStyle.Render(label)
		}
		fmt.Fprintf(c.w, "%3d  %s  %s\n", i, label, row.Preview)
	}
}

// Selection prints the navigation result an editor integration applies: the
// document, the range to select, and the line to center the viewport on.
func (c *Console) Selection(document string, line, col int, sel editor.Selection) {
	if len(sel) == 0 {
		return
	}
	r := sel[0]
	fmt.Fprintf(c.w, "%s:%d:%d %d-%d\n", document, line+1, col+1, r.Begin, r.End)
}

// Report prints raw report text.
func (c *Console) Report(text string) {
	fmt.Fprint(c.w, text)
}
