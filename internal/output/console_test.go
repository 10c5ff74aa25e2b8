package output

import (
	"bytes"
	"strings"
	"testing"

	"lintnav/internal/editor"
	"lintnav/internal/region"
	"lintnav/internal/types"
)

func TestConsoleQuickList(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false, false).NoColor()

	c.QuickList([]types.QuickListRow{
		{Line: 4, Column: 2, Label: "5  unused import", Preview: "➜x = y"},
		{Line: 4, Column: 10, Label: "5  undefined name", Preview: "x = y ➜"},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output = %q, want 2 lines", out)
	}
	if !strings.HasPrefix(lines[0], "  0  ") || !strings.Contains(lines[0], "➜x = y") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "5  undefined name") {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Labels pad to a common width so previews line up.
	if strings.Index(lines[0], "➜x = y") != strings.Index(lines[1], "x = y ➜") {
		t.Errorf("previews not aligned:\n%q\n%q", lines[0], lines[1])
	}
}

func TestConsoleInfoQuiet(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true, false).NoColor().Info("No lint errors.")
	if buf.Len() != 0 {
		t.Errorf("quiet Info wrote %q", buf.String())
	}

	NewConsole(&buf, false, false).NoColor().Info("No lint errors.")
	if got := buf.String(); got != "No lint errors.\n" {
		t.Errorf("Info wrote %q", got)
	}
}

func TestConsoleSelection(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false, false).NoColor()

	c.Selection("src/app.py", 4, 2, editor.Selection{region.Region{Begin: 42, End: 48}})
	if got := buf.String(); got != "src/app.py:5:3 42-48\n" {
		t.Errorf("Selection wrote %q", got)
	}
}
