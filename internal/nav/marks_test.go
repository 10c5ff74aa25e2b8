package nav

import (
	"testing"

	"lintnav/internal/editor"
	"lintnav/internal/region"
)

func TestFindMarkWithin(t *testing.T) {
	tests := []struct {
		name  string
		r     region.Region
		marks []region.Region
		want  *region.Region
	}{
		{
			name:  "no marks",
			r:     region.Region{Begin: 0, End: 10},
			marks: nil,
			want:  nil,
		},
		{
			name:  "single contained",
			r:     region.Region{Begin: 0, End: 10},
			marks: []region.Region{{Begin: 3, End: 7}},
			want:  &region.Region{Begin: 3, End: 7},
		},
		{
			name: "overlapping marks: first by ascending begin wins",
			r:    region.Region{Begin: 0, End: 10},
			marks: []region.Region{
				{Begin: 3, End: 8},
				{Begin: 0, End: 5},
			},
			want: &region.Region{Begin: 0, End: 5},
		},
		{
			name:  "partially outside is not contained",
			r:     region.Region{Begin: 0, End: 10},
			marks: []region.Region{{Begin: 8, End: 12}},
			want:  nil,
		},
		{
			name:  "mark outside region skipped",
			r:     region.Region{Begin: 20, End: 30},
			marks: []region.Region{{Begin: 0, End: 5}, {Begin: 22, End: 25}},
			want:  &region.Region{Begin: 22, End: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMarkWithin(tt.r, tt.marks)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("FindMarkWithin() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("FindMarkWithin() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestApplySelectsMark(t *testing.T) {
	buf := editor.NewBuffer(editor.NewDocument("doc", "0123456789012345678901234567890"))
	buf.SetSelection(editor.Selection{{Begin: 0, End: 3}, {Begin: 5, End: 5}})

	sel := Apply(buf, region.Region{Begin: 10, End: 20}, []region.Region{{Begin: 12, End: 16}})

	if len(sel) != 1 || sel[0] != (region.Region{Begin: 12, End: 16}) {
		t.Fatalf("Apply() selection = %v, want [{12 16}]", sel)
	}
	// The prior selection is replaced wholesale.
	got := buf.Selection()
	if len(got) != 1 || got[0] != (region.Region{Begin: 12, End: 16}) {
		t.Errorf("buffer selection = %v, want [{12 16}]", got)
	}
	if buf.Scrolled() == nil || *buf.Scrolled() != (region.Region{Begin: 12, End: 16}) {
		t.Errorf("scroll target = %v, want {12 16}", buf.Scrolled())
	}
}

func TestApplyFallsBackToRegionBegin(t *testing.T) {
	buf := editor.NewBuffer(editor.NewDocument("doc", "0123456789012345678901234567890"))

	sel := Apply(buf, region.Region{Begin: 10, End: 20}, nil)

	if len(sel) != 1 || sel[0] != (region.Region{Begin: 10, End: 10}) {
		t.Fatalf("Apply() selection = %v, want collapsed caret at 10", sel)
	}
}
