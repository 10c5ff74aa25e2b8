package config

import "testing"

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"console", "json", "markdown"} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", format, err)
		}
	}
	if err := ValidateFormat("yaml"); err == nil {
		t.Error("ValidateFormat(\"yaml\") = nil, want error")
	}
}
