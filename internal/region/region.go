// Package region provides the offset intervals the navigation engine moves
// between, and the provider that derives them from a document's diagnostics.
//
// Two disjoint families exist per document: broad regions (one per diagnostic
// line, per severity) used for directional search, and mark regions (the
// precise token span at the diagnostic column) used for exact caret placement.
// A mark is not guaranteed to sit inside any broad region; containment is a
// lookup performed on demand.
package region

import "sort"

// Region is a half-open interval [Begin, End) of rune offsets in
// document-absolute coordinates. Begin <= End always.
type Region struct {
	Begin int
	End   int
}

// Empty reports whether the region covers no text.
func (r Region) Empty() bool {
	return r.Begin == r.End
}

// ContainsPoint reports whether the point lies on the region, boundaries
// included. Inclusive ends match editor caret semantics: a caret at the end
// of a region is still "on" it.
func (r Region) ContainsPoint(point int) bool {
	return r.Begin <= point && point <= r.End
}

// Contains reports whether other lies fully within r.
func (r Region) Contains(other Region) bool {
	return other.Begin >= r.Begin && other.End <= r.End
}

// SortByBegin orders regions ascending by Begin. The sort is stable so that
// regions sharing a Begin keep document order.
func SortByBegin(regions []Region) {
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Begin < regions[j].Begin
	})
}

// Union merges the given region families into one sequence sorted ascending
// by Begin, coalescing regions that overlap or touch. This mirrors how an
// editor selection set normalizes added regions, and it is the search space
// the navigation engine scans: severities are interchangeable here.
func Union(families ...[]Region) []Region {
	var all []Region
	for _, f := range families {
		all = append(all, f...)
	}
	if len(all) == 0 {
		return nil
	}
	SortByBegin(all)

	merged := all[:1]
	for _, r := range all[1:] {
		last := &merged[len(merged)-1]
		if r.Begin <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
