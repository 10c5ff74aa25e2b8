package nav

import (
	"lintnav/internal/editor"
	"lintnav/internal/region"
	"lintnav/internal/types"
)

// Pick binds a quick-list row index back to a document point and jumps
// there. index -1 is a cancelled pick and a silent no-op. The picked point
// lies inside its diagnostic's broad region, so that region is selected
// directly rather than through the directional search, whose tie-break
// rules would step past a point mid-region. A point outside every region
// (a row gone stale against the document) falls back to the forward search.
func Pick(ed editor.Editor, index int, rows []types.QuickListRow, regions, marks []region.Region, wrap bool) error {
	if index == -1 {
		return nil
	}

	row := rows[index]
	point := ed.Document().TextPoint(row.Line, row.Column)

	target, ok := containing(point, regions)
	if !ok {
		var err error
		target, err = Goto(types.Next, point, nil, regions, wrap)
		if err != nil {
			return err
		}
	}
	Apply(ed, target, marks)
	return nil
}

// containing returns the first region holding the point, in ascending Begin
// order.
func containing(point int, regions []region.Region) (region.Region, bool) {
	for _, r := range regions {
		if r.ContainsPoint(point) {
			return r, true
		}
	}
	return region.Region{}, false
}
