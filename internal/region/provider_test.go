package region

import (
	"testing"

	"lintnav/internal/types"
)

// fakeDoc is a minimal LineIndex over explicit lines.
type fakeDoc struct {
	lines []string
}

func (d *fakeDoc) lineStart(line int) int {
	start := 0
	for i := 0; i < line; i++ {
		start += len([]rune(d.lines[i])) + 1 // newline
	}
	return start
}

func (d *fakeDoc) TextPoint(line, col int) int {
	text := []rune(d.lines[line])
	if col > len(text) {
		col = len(text)
	}
	if col < 0 {
		col = 0
	}
	return d.lineStart(line) + col
}

func (d *fakeDoc) LineRegion(line int) Region {
	start := d.lineStart(line)
	return Region{Begin: start, End: start + len([]rune(d.lines[line]))}
}

func (d *fakeDoc) LineText(line int) string { return d.lines[line] }

func TestBroadRegionsPerSeverity(t *testing.T) {
	doc := &fakeDoc{lines: []string{"aaaa", "bbbb", "cccc"}}
	errs := map[int][]types.Diagnostic{
		0: {{Line: 0, Column: 0, Message: "w", Severity: types.SeverityWarning}},
		2: {{Line: 2, Column: 1, Message: "e", Severity: types.SeverityError}},
	}
	p := NewProvider(doc, errs)

	warnings := p.Regions(KindWarning)
	if len(warnings) != 1 || warnings[0] != (Region{0, 4}) {
		t.Errorf("warning regions = %v, want [{0 4}]", warnings)
	}

	errors := p.Regions(KindError)
	if len(errors) != 1 || errors[0] != (Region{10, 14}) {
		t.Errorf("error regions = %v, want [{10 14}]", errors)
	}
}

func TestNavigationSetUnionsSeverities(t *testing.T) {
	doc := &fakeDoc{lines: []string{"aaaa", "bbbb"}}
	errs := map[int][]types.Diagnostic{
		0: {
			{Line: 0, Column: 0, Message: "w", Severity: types.SeverityWarning},
			{Line: 0, Column: 2, Message: "e", Severity: types.SeverityError},
		},
		1: {{Line: 1, Column: 0, Message: "e", Severity: types.SeverityError}},
	}
	p := NewProvider(doc, errs)

	set := p.NavigationSet()
	want := []Region{{0, 4}, {5, 9}}
	if len(set) != len(want) {
		t.Fatalf("NavigationSet() = %v, want %v", set, want)
	}
	for i := range set {
		if set[i] != want[i] {
			t.Errorf("NavigationSet()[%d] = %v, want %v", i, set[i], want[i])
		}
	}
}

func TestMarks(t *testing.T) {
	doc := &fakeDoc{lines: []string{"x = name_1 +"}}

	tests := []struct {
		name   string
		column int
		want   Region
	}{
		{"word run", 4, Region{4, 10}},
		{"single rune at operator", 11, Region{11, 12}},
		{"mid word", 6, Region{6, 10}},
		{"empty at space", 1, Region{1, 1}},
		{"past end of line", 99, Region{12, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := map[int][]types.Diagnostic{
				0: {{Line: 0, Column: tt.column, Message: "m", Severity: types.SeverityError}},
			}
			marks := NewProvider(doc, errs).Regions(KindMark)
			if len(marks) != 1 || marks[0] != tt.want {
				t.Errorf("marks = %v, want [%v]", marks, tt.want)
			}
		})
	}
}
