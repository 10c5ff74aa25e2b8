package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lintnav/internal/config"
)

var lintModeCmd = &cobra.Command{
	Use:   "lint-mode [mode]",
	Short: "Show or set when the lint engine runs",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runChoose("lintMode", config.LintModes, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var markStyleCmd = &cobra.Command{
	Use:   "mark-style [style]",
	Short: "Show or set the diagnostic mark style",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runChoose("markStyle", config.MarkStyles, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var gutterThemeCmd = &cobra.Command{
	Use:   "gutter-theme [theme]",
	Short: "Show or set the gutter icon theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runChoose("gutterTheme", config.GutterThemes, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var showOnSaveCmd = &cobra.Command{
	Use:   "show-on-save [true|false]",
	Short: "Show or set whether errors pop up after every save",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShowOnSave(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(lintModeCmd, markStyleCmd, gutterThemeCmd, showOnSaveCmd)
}

// runChoose lists the options when no value is given, or persists the given
// value. Every choose-a-setting command funnels through here with its own
// option source.
func runChoose(setting string, options []config.Option, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	current := currentValue(settings, setting)

	if len(args) == 0 {
		currentIdx := config.CurrentIndex(options, current)
		for i, o := range options {
			marker := " "
			if i == currentIdx {
				marker = "*"
			}
			fmt.Printf("%s %-20s %s\n", marker, o.Value, o.Description)
		}
		return nil
	}

	index := -1
	want := strings.ToLower(args[0])
	for i, o := range options {
		if strings.ToLower(o.Value) == want {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("unknown value %q for %s", args[0], setting)
	}
	return config.Choose(setting, options, index, current, nil)
}

func runShowOnSave(args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Printf("%v\n", settings.ShowErrorsOnSave)
		return nil
	}

	value, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: want true or false", args[0])
	}
	if value == settings.ShowErrorsOnSave {
		return nil
	}
	return config.ChangeSetting("showErrorsOnSave", value)
}

func currentValue(settings *config.Settings, setting string) string {
	switch setting {
	case "lintMode":
		return settings.LintMode
	case "markStyle":
		return settings.MarkStyle
	case "gutterTheme":
		return settings.GutterTheme
	}
	return ""
}
