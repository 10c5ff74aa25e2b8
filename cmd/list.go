package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lintnav/internal/nav"
	"lintnav/internal/output"
	"lintnav/internal/quicklist"
	"lintnav/internal/region"
)

var (
	listPick      int
	listSelection string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every lint error in the document",
	Long: `Without --pick, list prints one row per diagnostic: an index, a
"line  message" label, and a truncated preview of the source line with a
marker at the diagnostic's column. With --pick N, the command jumps to row N
instead, printing the selection to apply. --pick -1 is a cancelled pick and
does nothing.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(cmd.Flags().Changed("pick")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	listCmd.Flags().IntVar(&listPick, "pick", -1, "Jump to the row with this index")
	listCmd.Flags().StringVar(&listSelection, "sel", "", "Current selection as begin:end[,begin:end] rune offsets")
	rootCmd.AddCommand(listCmd)
}

func runList(pickGiven bool) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	store, err := loadStore(settings)
	if err != nil {
		return err
	}

	console := output.NewConsole(os.Stdout, settings.Quiet, settings.Verbose)

	if !store.HasDiagnostics(documentPath) {
		return printInfo(settings, console, "No lint errors.")
	}

	buffer, err := loadDocument()
	if err != nil {
		return err
	}
	sel, err := parseSelection(listSelection)
	if err != nil {
		return err
	}
	if len(sel) > 0 {
		buffer.SetSelection(sel)
	}

	errs := store.Get(documentPath)
	rows := quicklist.Build(errs, buffer.Document().FullLineText)

	if pickGiven {
		// -1 is a cancelled pick and stays silent.
		if listPick != -1 && (listPick < 0 || listPick >= len(rows)) {
			return fmt.Errorf("no such row: %d", listPick)
		}
		provider := region.NewProvider(buffer.Document(), errs)
		err := nav.Pick(buffer, listPick, rows,
			provider.NavigationSet(), provider.Regions(region.KindMark), settings.WrapFind)
		if err != nil {
			return reportNavOutcome(settings, console, err)
		}
		if listPick != -1 {
			printSelection(console, buffer)
		}
		return nil
	}

	switch settings.Format {
	case "json":
		return output.NewJSONFormatter(os.Stdout, true).QuickList(rows)
	case "markdown":
		return output.NewMarkdownFormatter(os.Stdout).QuickList(rows)
	default:
		console.QuickList(rows)
		return nil
	}
}
