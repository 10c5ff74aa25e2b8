// Package textutil holds rune-aware helpers for presenting single source
// lines: stripping indentation while tracking the column shift, and splicing
// a marker into a line at a rune position.
package textutil

import (
	"strings"
	"unicode"
)

// StripLeading removes the trailing line break and the leading whitespace of
// line. It returns the stripped text plus the number of leading runes
// removed, so callers can shift column offsets by the same amount.
func StripLeading(line string) (string, int) {
	line = strings.TrimRight(line, "\n\r")
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	return stripped, len([]rune(line)) - len([]rune(stripped))
}

// Splice inserts insert into s at rune position pos. Positions outside the
// line clamp to its ends.
func Splice(s string, pos int, insert string) string {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	var b strings.Builder
	b.WriteString(string(runes[:pos]))
	b.WriteString(insert)
	b.WriteString(string(runes[pos:]))
	return b.String()
}
