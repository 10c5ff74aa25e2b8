package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lintnav/internal/discovery"
	"lintnav/internal/output"
	"lintnav/internal/project"
	"lintnav/internal/report"
)

var reportOn string

var reportCmd = &cobra.Command{
	Use:   "report [folder...]",
	Short: "Report every lint error across the project",
	Long: `report collects the diagnostics of many documents into one text. Each
document is formatted by its own background worker; output order across
documents is whichever worker finishes first.

--on files reports on every document in the snapshot. --on folders walks the
given folders and reports on the snapshot documents found there. --on both
does both.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOn, "on", string(report.ScopeFiles), "Report scope (files|folders|both)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(folders []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	store, err := loadStore(settings)
	if err != nil {
		return err
	}

	scope, err := report.ParseScope(reportOn)
	if err != nil {
		return err
	}
	if (scope == report.ScopeFolders || scope == report.ScopeBoth) && len(folders) == 0 {
		root, err := project.FindRoot(".")
		if err != nil {
			return fmt.Errorf("scope %s needs a folder: %w", scope, err)
		}
		folders = []string{root}
	}

	walker := discovery.NewWalker(settings.Include, settings.Exclude, settings.FollowSymlinks)
	runner := &report.Runner{
		Store:          store,
		Concurrency:    settings.Concurrency,
		DiscoverFolder: walker.Walk,
	}

	text, err := runner.Run(scope, folders)
	if err != nil {
		return err
	}

	switch settings.Format {
	case "json":
		return output.NewJSONFormatter(os.Stdout, true).Report(text)
	case "markdown":
		return output.NewMarkdownFormatter(os.Stdout).Report(text)
	default:
		output.NewConsole(os.Stdout, settings.Quiet, settings.Verbose).Report(text)
		return nil
	}
}
