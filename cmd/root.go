// Package cmd wires the lintnav command surface: directional error
// navigation, the show-all-errors quick list, the project report, and the
// choose-a-setting commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lintnav/internal/config"
	"lintnav/internal/editor"
	"lintnav/internal/errorstore"
)

var (
	snapshotPath string
	documentPath string
	quiet        bool
	verbose      bool
	outputFormat string
)

// exitFunc is swapped out by tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "lintnav",
	Short: "lintnav - navigate lint diagnostics from your editor",
	Long: `lintnav turns a lint engine's diagnostics snapshot into navigation results
an editor integration can apply: the next/previous error to jump to, a
searchable list of every error in a document, and a whole-project report.

The snapshot is a YAML file the lint engine exports after each pass; lintnav
reads a fresh copy on every invocation and never caches across commands.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&snapshotPath, "snapshot", "s", "", "Diagnostics snapshot file exported by the lint engine")
	rootCmd.PersistentFlags().StringVar(&documentPath, "file", "", "Document the command operates on")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")

	viper.BindPFlag("snapshot", rootCmd.PersistentFlags().Lookup("snapshot"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	configPaths := []string{config.SettingsFile, ".lintnavrc.yaml", ".lintnavrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				exitFunc(1)
			}
			break
		}
	}
}

// loadSettings resolves the effective settings for this invocation.
func loadSettings() (*config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if snapshotPath != "" {
		settings.Snapshot = snapshotPath
	}
	if outputFormat != "" {
		settings.Format = outputFormat
		if err := config.ValidateFormat(settings.Format); err != nil {
			return nil, err
		}
	}
	settings.Quiet = settings.Quiet || quiet
	settings.Verbose = settings.Verbose || verbose
	return settings, nil
}

// loadStore reads the snapshot named by flags or settings.
func loadStore(settings *config.Settings) (*errorstore.Store, error) {
	if settings.Snapshot == "" {
		return nil, fmt.Errorf("no snapshot given: pass --snapshot or set it in %s", config.SettingsFile)
	}
	return errorstore.Load(settings.Snapshot)
}

// loadDocument reads the document named by --file into a buffer editor.
func loadDocument() (*editor.Buffer, error) {
	if documentPath == "" {
		return nil, fmt.Errorf("no document given: pass --file")
	}
	content, err := os.ReadFile(documentPath)
	if err != nil {
		return nil, fmt.Errorf("error reading document: %w", err)
	}
	return editor.NewBuffer(editor.NewDocument(documentPath, string(content))), nil
}
