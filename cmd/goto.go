package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lintnav/internal/config"
	"lintnav/internal/editor"
	"lintnav/internal/nav"
	"lintnav/internal/output"
	"lintnav/internal/region"
	"lintnav/internal/types"
)

var (
	gotoPoint     int
	gotoSelection string
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Place the caret at the next lint error",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGoto(types.Next); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Place the caret at the previous lint error",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGoto(types.Previous); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{nextCmd, prevCmd} {
		c.Flags().IntVar(&gotoPoint, "point", -1, "Explicit anchor offset (default: derive from --sel)")
		c.Flags().StringVar(&gotoSelection, "sel", "", "Current selection as begin:end[,begin:end] rune offsets")
		rootCmd.AddCommand(c)
	}
}

func runGoto(dir types.Direction) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	store, err := loadStore(settings)
	if err != nil {
		return err
	}

	console := output.NewConsole(os.Stdout, settings.Quiet, settings.Verbose)

	// Commands are enabled only for documents with diagnostics; handle the
	// empty case defensively all the same.
	if !store.HasDiagnostics(documentPath) {
		return printInfo(settings, console, "No lint errors.")
	}

	buffer, err := loadDocument()
	if err != nil {
		return err
	}
	sel, err := parseSelection(gotoSelection)
	if err != nil {
		return err
	}
	if len(sel) > 0 {
		buffer.SetSelection(sel)
	}

	provider := region.NewProvider(buffer.Document(), store.Get(documentPath))
	regions := provider.NavigationSet()
	marks := provider.Regions(region.KindMark)

	var explicit *int
	if gotoPoint >= 0 {
		explicit = &gotoPoint
	}
	point := nav.Anchor(dir, buffer.Selection(), explicit)

	target, err := nav.Goto(dir, point, buffer.Selection(), regions, settings.WrapFind)
	if err != nil {
		return reportNavOutcome(settings, console, err)
	}

	nav.Apply(buffer, target, marks)
	printSelection(console, buffer)
	return nil
}

// reportNavOutcome turns the informational navigation errors into messages
// and leaves real failures as errors.
func reportNavOutcome(settings *config.Settings, console *output.Console, err error) error {
	var noMore *nav.NoMoreError
	switch {
	case errors.Is(err, nav.ErrNoDiagnostics):
		return printInfo(settings, console, "No lint errors.")
	case errors.As(err, &noMore):
		return printInfo(settings, console, fmt.Sprintf("No %s lint error.", noMore.Direction))
	}
	return err
}

// printInfo routes an informational message through the selected output
// format, so machine consumers of --format json get a message field instead
// of loose text.
func printInfo(settings *config.Settings, console *output.Console, msg string) error {
	if settings.Format == "json" {
		return output.NewJSONFormatter(os.Stdout, true).Message(msg)
	}
	console.Info(msg)
	return nil
}

func printSelection(console *output.Console, buffer *editor.Buffer) {
	sel := buffer.Selection()
	if len(sel) == 0 {
		return
	}
	doc := buffer.Document()
	line := doc.LineAt(sel[0].Begin)
	col := sel[0].Begin - doc.LineRegion(line).Begin
	console.Selection(doc.Name(), line, col, sel)
}

// parseSelection parses "begin:end[,begin:end]" into caret ranges.
func parseSelection(s string) (editor.Selection, error) {
	if s == "" {
		return nil, nil
	}

	var sel editor.Selection
	for _, part := range strings.Split(s, ",") {
		bounds := strings.SplitN(part, ":", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid selection range: %q", part)
		}
		begin, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid selection range: %q", part)
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid selection range: %q", part)
		}
		if end < begin {
			begin, end = end, begin
		}
		sel = append(sel, region.Region{Begin: begin, End: end})
	}
	return sel, nil
}
