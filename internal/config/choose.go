package config

import (
	"fmt"
	"strings"
)

// Option is one selectable value of a choose-a-setting command.
type Option struct {
	Value       string
	Description string
}

// CurrentIndex returns the index of the current value among the options,
// compared case-insensitively, or 0 if the value is unknown.
func CurrentIndex(options []Option, current string) int {
	current = strings.ToLower(current)
	for i, o := range options {
		if strings.ToLower(o.Value) == current {
			return i
		}
	}
	return 0
}

// Choose applies a picked option: index -1 is a cancelled pick and a no-op,
// and re-picking the current value is also a no-op. Otherwise the setting is
// persisted and onChanged (if any) runs with the new value. Each
// choose-a-setting command supplies its own option source and side effect;
// this helper carries everything they share.
func Choose(setting string, options []Option, index int, current string, onChanged func(string) error) error {
	if index == -1 {
		return nil
	}
	if index < 0 || index >= len(options) {
		return fmt.Errorf("no such option: %d", index)
	}

	value := strings.ToLower(options[index].Value)
	if value == strings.ToLower(current) {
		return nil
	}

	if err := ChangeSetting(setting, value); err != nil {
		return err
	}
	if onChanged != nil {
		return onChanged(value)
	}
	return nil
}

// LintModes are the selectable lint trigger modes.
var LintModes = []Option{
	{Value: "background", Description: "Lint whenever the text is modified"},
	{Value: "load-save", Description: "Lint only when a file is loaded or saved"},
	{Value: "save-only", Description: "Lint only when a file is saved"},
	{Value: "manual", Description: "Lint only when requested"},
}

// MarkStyles are the selectable diagnostic mark styles.
var MarkStyles = []Option{
	{Value: "fill", Description: "Fill the mark region"},
	{Value: "outline", Description: "Outline the mark region"},
	{Value: "solid-underline", Description: "Solid underline under the mark"},
	{Value: "squiggly-underline", Description: "Squiggly underline under the mark"},
	{Value: "stippled-underline", Description: "Stippled underline under the mark"},
	{Value: "none", Description: "Do not mark regions"},
}

// GutterThemes are the selectable gutter icon themes. Themes themselves live
// in the editor integration; lintnav only persists the choice.
var GutterThemes = []Option{
	{Value: "default", Description: "Standard gutter icons"},
	{Value: "circle", Description: "Circle gutter icons"},
	{Value: "dot", Description: "Dot gutter icons"},
	{Value: "none", Description: "Do not display gutter marks"},
}
