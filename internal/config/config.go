// Package config is the lintnav settings store: viper-backed defaults, rc
// file, environment and flag binding, plus the persisted-setting round trip
// the choose-a-setting commands use.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SettingsFile is the rc file ChangeSetting writes back to.
const SettingsFile = ".lintnavrc.json"

// Settings represents the lintnav configuration.
type Settings struct {
	Snapshot         string   `mapstructure:"snapshot"`
	WrapFind         bool     `mapstructure:"wrapFind"`
	LintMode         string   `mapstructure:"lintMode"`
	MarkStyle        string   `mapstructure:"markStyle"`
	GutterTheme      string   `mapstructure:"gutterTheme"`
	ShowErrorsOnSave bool     `mapstructure:"showErrorsOnSave"`
	Format           string   `mapstructure:"format"`
	Include          []string `mapstructure:"include"`
	Exclude          []string `mapstructure:"exclude"`
	FollowSymlinks   bool     `mapstructure:"followSymlinks"`
	Concurrency      int      `mapstructure:"concurrency"`
	Quiet            bool     `mapstructure:"quiet"`
	Verbose          bool     `mapstructure:"verbose"`
}

// Load reads configuration from defaults, the rc file, and the environment.
func Load() (*Settings, error) {
	viper.SetDefault("wrapFind", true)
	viper.SetDefault("lintMode", "background")
	viper.SetDefault("markStyle", "outline")
	viper.SetDefault("gutterTheme", "default")
	viper.SetDefault("showErrorsOnSave", true)
	viper.SetDefault("format", "console")
	viper.SetDefault("exclude", []string{"**/.git/**", "**/node_modules/**"})
	viper.SetDefault("followSymlinks", false)
	viper.SetDefault("concurrency", 10)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	configPaths := []string{SettingsFile, ".lintnavrc.yaml", ".lintnavrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			break
		}
	}

	viper.SetEnvPrefix("LINTNAV")
	viper.AutomaticEnv()

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validate(&settings); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &settings, nil
}

func validate(s *Settings) error {
	if err := ValidateFormat(s.Format); err != nil {
		return err
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	return nil
}

// ValidateFormat checks an output format name. Flag overrides go through
// this too, so a bad --format fails the same way a bad rc-file value does.
func ValidateFormat(format string) error {
	if format != "console" && format != "json" && format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", format)
	}
	return nil
}

// ChangeSetting updates one key and persists the full settings map to the rc
// file, so a chosen value survives the process the way an editor setting
// would.
func ChangeSetting(key string, value any) error {
	viper.Set(key, value)
	return Save(SettingsFile)
}

// Save writes the current settings to the given file as JSON.
func Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	jsonData, err := json.MarshalIndent(viper.AllSettings(), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
