// Package nav implements directional navigation over a document's
// diagnostic regions: the search that picks the next or previous broad
// region from an anchor point, the containment lookup that resolves the
// precise mark inside it, and the selection update that lands the caret
// there.
package nav

import (
	"errors"
	"fmt"

	"lintnav/internal/editor"
	"lintnav/internal/region"
	"lintnav/internal/types"
)

// ErrNoDiagnostics is reported when a command runs against a document with
// no diagnostics at all. Informational, never fatal.
var ErrNoDiagnostics = errors.New("no lint errors")

// NoMoreError is reported when no eligible region exists in the requested
// direction and wrapping is disabled (or the only region already holds the
// anchor). The caller's selection is left untouched.
type NoMoreError struct {
	Direction types.Direction
}

func (e *NoMoreError) Error() string {
	return fmt.Sprintf("no %s lint error", e.Direction)
}

// Anchor resolves the point a directional search starts from: the explicit
// point if one was given, otherwise the first selection range's begin for a
// forward search and the last range's end for a backward one.
func Anchor(dir types.Direction, sel editor.Selection, explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	if len(sel) == 0 {
		return 0
	}
	if dir == types.Next {
		return sel[0].Begin
	}
	return sel[len(sel)-1].End
}

// Goto finds the broad region to jump to. regions must be sorted ascending
// by Begin (the navigation set union); wrap controls whether the search
// re-enters from the opposite end when nothing lies further in the requested
// direction.
//
// A caret parked exactly on a region boundary with a collapsed selection
// would otherwise never get past that region; the empty-selection boundary
// case below breaks that deadlock.
func Goto(dir types.Direction, point int, sel editor.Selection, regions []region.Region, wrap bool) (region.Region, error) {
	if len(regions) == 0 {
		return region.Region{}, ErrNoDiagnostics
	}

	if len(sel) == 0 {
		sel = editor.Selection{{}}
	}
	emptySelection := sel.SingleEmpty()
	var target *region.Region

	if dir == types.Next {
		// First region beginning after the point.
		for i := range regions {
			r := regions[i]
			if (point == r.Begin && emptySelection && !r.Empty()) || point < r.Begin {
				target = &regions[i]
				break
			}
		}
	} else {
		// First region, scanning backward, ending before the point.
		for i := len(regions) - 1; i >= 0; i-- {
			r := regions[i]
			if (point == r.End && emptySelection && !r.Empty()) || point > r.End {
				target = &regions[i]
				break
			}
		}
	}

	// If there is only one region and the caret is on it, we cannot move.
	// Otherwise wrap to the first/last region unless settings disallow that.
	if target == nil && (len(regions) > 1 || !regions[0].ContainsPoint(point)) {
		if wrap {
			if dir == types.Next {
				target = &regions[0]
			} else {
				target = &regions[len(regions)-1]
			}
		}
	}

	if target == nil {
		return region.Region{}, &NoMoreError{Direction: dir}
	}
	return *target, nil
}
