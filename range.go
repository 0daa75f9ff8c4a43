package tetra

import "sort"

// SFCRange is an ordered pair [Start, End] of keys at one level,
// representing all keys k with Start <= k <= End. Ranges are
// ephemeral: created by the enumeration pipeline and discarded after
// merging.
type SFCRange struct {
	Start, End Key
}

// NewSFCRange constructs a range, requiring start and end to be at
// the same level. If end sorts before start, the two are swapped.
func NewSFCRange(start, end Key) (SFCRange, error) {
	if start.level != end.level {
		return SFCRange{}, &LevelOutOfRange{Level: end.level}
	}
	if end.Less(start) {
		start, end = end, start
	}
	return SFCRange{Start: start, End: end}, nil
}

// SingleKeyRange builds a one-key range [k, k].
func SingleKeyRange(k Key) SFCRange { return SFCRange{Start: k, End: k} }

// overlapsOrAdjacent reports whether r and o are at the same level and
// either overlap or touch end-to-end.
func (r SFCRange) overlapsOrAdjacent(o SFCRange) bool {
	if r.Start.level != o.Start.level {
		return false
	}
	if !r.End.Less(o.Start) && !o.End.Less(r.Start) {
		return true // overlap
	}
	return r.End.IsAdjacentTo(o.Start) || o.End.IsAdjacentTo(r.Start)
}

// CanMergeWith reports whether r and o can be fused by Merge: same
// level, and either overlapping or adjacent.
func (r SFCRange) CanMergeWith(o SFCRange) bool {
	return r.overlapsOrAdjacent(o)
}

// Merge fuses r and o into their min-start/max-end union. It fails
// with RangesNotMergeable if the ranges are not adjacent or
// overlapping, or live at different levels.
func (r SFCRange) Merge(o SFCRange) (SFCRange, error) {
	if !r.CanMergeWith(o) {
		return SFCRange{}, &RangesNotMergeable{A: r, B: o}
	}
	start := r.Start
	if o.Start.Less(start) {
		start = o.Start
	}
	end := r.End.Max(o.End)
	return SFCRange{Start: start, End: end}, nil
}

// SortKey returns the key used to order ranges: the range's start.
func (r SFCRange) SortKey() Key { return r.Start }

// MergeRanges sorts ranges by start key and fuses adjacent-or-overlapping
// same-level neighbors, returning a sorted slice with no mergeable pair.
func MergeRanges(ranges []SFCRange) []SFCRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]SFCRange, len(ranges))
	copy(sorted, ranges)
	sortRanges(sorted)

	out := make([]SFCRange, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if merged, err := cur.Merge(next); err == nil {
			cur = merged
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}

func sortRanges(ranges []SFCRange) {
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].SortKey().Less(ranges[j].SortKey())
	})
}
