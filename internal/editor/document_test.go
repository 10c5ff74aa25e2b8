package editor

import (
	"testing"

	"lintnav/internal/region"
)

const sample = "first\nsecond line\n\nlast"

func TestTextPoint(t *testing.T) {
	doc := NewDocument("doc", sample)

	tests := []struct {
		name string
		line int
		col  int
		want int
	}{
		{"origin", 0, 0, 0},
		{"first line middle", 0, 3, 3},
		{"second line start", 1, 0, 6},
		{"second line middle", 1, 7, 13},
		{"empty line", 2, 0, 18},
		{"column clamped to line", 0, 99, 5},
		{"negative column clamps to line start", 1, -3, 6},
		{"line past end clamps to size", 99, 0, len(sample)},
		{"negative line clamps to zero", -1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.TextPoint(tt.line, tt.col); got != tt.want {
				t.Errorf("TextPoint(%d, %d) = %d, want %d", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	doc := NewDocument("doc", sample)

	tests := []struct {
		point int
		want  int
	}{
		{0, 0},
		{5, 0},  // on the newline, still line 0
		{6, 1},
		{17, 1},
		{18, 2},
		{19, 3},
		{len(sample), 3},
	}

	for _, tt := range tests {
		if got := doc.LineAt(tt.point); got != tt.want {
			t.Errorf("LineAt(%d) = %d, want %d", tt.point, got, tt.want)
		}
	}
}

func TestLineRegions(t *testing.T) {
	doc := NewDocument("doc", sample)

	if got := doc.LineRegion(1); got != (region.Region{Begin: 6, End: 17}) {
		t.Errorf("LineRegion(1) = %v", got)
	}
	if got := doc.FullLineRegion(1); got != (region.Region{Begin: 6, End: 18}) {
		t.Errorf("FullLineRegion(1) = %v", got)
	}
	// Last line has no trailing newline.
	if got := doc.FullLineRegion(3); got != (region.Region{Begin: 19, End: 23}) {
		t.Errorf("FullLineRegion(3) = %v", got)
	}
}

func TestLineText(t *testing.T) {
	doc := NewDocument("doc", sample)

	tests := []struct {
		line int
		want string
	}{
		{0, "first"},
		{1, "second line"},
		{2, ""},
		{3, "last"},
	}

	for _, tt := range tests {
		if got := doc.LineText(tt.line); got != tt.want {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}

	if got := doc.FullLineText(1); got != "second line\n" {
		t.Errorf("FullLineText(1) = %q", got)
	}
}

func TestRuneOffsets(t *testing.T) {
	doc := NewDocument("doc", "héllo\nwörld")

	if got := doc.TextPoint(1, 0); got != 6 {
		t.Errorf("TextPoint(1, 0) = %d, want 6 (rune offsets, not bytes)", got)
	}
	if got := doc.LineText(1); got != "wörld" {
		t.Errorf("LineText(1) = %q", got)
	}
}

func TestBufferSelection(t *testing.T) {
	doc := NewDocument("doc", sample)
	buf := NewBuffer(doc)

	if !buf.Selection().SingleEmpty() {
		t.Fatalf("fresh buffer selection = %v, want single collapsed caret", buf.Selection())
	}

	sel := Selection{{Begin: 2, End: 5}, {Begin: 8, End: 8}}
	buf.SetSelection(sel)
	if buf.Selection().SingleEmpty() {
		t.Error("multi-range selection reported as single empty")
	}

	buf.ScrollIntoView(region.Region{Begin: 6, End: 17})
	if buf.Scrolled() == nil || *buf.Scrolled() != (region.Region{Begin: 6, End: 17}) {
		t.Errorf("Scrolled() = %v", buf.Scrolled())
	}
}
