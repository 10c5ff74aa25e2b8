package nav

import (
	"lintnav/internal/editor"
	"lintnav/internal/region"
)

// FindMarkWithin returns the first mark fully contained in r, scanning in
// ascending Begin order. First match wins, which matters when marks overlap.
// Returns nil if no mark lies inside r.
func FindMarkWithin(r region.Region, marks []region.Region) *region.Region {
	sorted := make([]region.Region, len(marks))
	copy(sorted, marks)
	region.SortByBegin(sorted)

	for i := range sorted {
		if r.Contains(sorted[i]) {
			return &sorted[i]
		}
	}
	return nil
}

// Apply lands the caret on the chosen broad region: the selection becomes
// the first mark inside it, or a collapsed caret at the region's begin when
// no mark is contained. The prior selection is replaced wholesale and the
// viewport is centered on the result.
func Apply(ed editor.Editor, r region.Region, marks []region.Region) editor.Selection {
	target := FindMarkWithin(r, marks)
	if target == nil {
		target = &region.Region{Begin: r.Begin, End: r.Begin}
	}

	sel := editor.Selection{*target}
	ed.SetSelection(sel)
	ed.ScrollIntoView(*target)
	return sel
}
