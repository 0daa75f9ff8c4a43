package tetra

import (
	"sort"
	"sync/atomic"
)

var validationEnabled atomic.Bool

func init() { validationEnabled.Store(true) }

// SetValidationEnabled toggles the validator at runtime, so release
// builds can disable the (diagnostic-only, non-correctness-path)
// checks without a rebuild.
func SetValidationEnabled(enabled bool) { validationEnabled.Store(enabled) }

// ValidationEnabled reports the current toggle state.
func ValidationEnabled() bool { return validationEnabled.Load() }

// TreeStats summarizes the level distribution of a set of tets.
type TreeStats struct {
	CountByLevel map[int]int
	MinLevel     int
	MaxLevel     int
	OrphanCount  int
}

// Report is the validator's diagnostic output for a set of tets. It
// never affects correctness of any other operation; it exists purely
// to surface problems to callers building or importing a tree.
type Report struct {
	InvalidTets          []Tet
	Orphans              []Tet
	OrderingViolations   int
	InvalidParentChild   []Tet
	InvalidFaceNeighbors []FaceNeighborClaim
	Stats                TreeStats
}

// FaceNeighborClaim is a claimed face-neighbor relationship to check
// for the symmetry invariant: t.FaceNeighbor(face) == (reportFace, other).
type FaceNeighborClaim struct {
	T, Other   Tet
	Face       int
	ReportFace int
}

// Validate runs the diagnostic checks from section 4.10 over tets (a
// flat key set, since the core does not own a tree structure): each
// tet's own invariants, orphan detection against the given set,
// ascending-key ordering, and level statistics. It is a no-op,
// returning a zero Report, when validation has been disabled via
// SetValidationEnabled(false).
func Validate(tets []Tet, claims []FaceNeighborClaim) Report {
	var report Report
	if !ValidationEnabled() {
		return report
	}

	present := make(map[Key]bool, len(tets))
	for _, t := range tets {
		present[t.ToKey()] = true
	}

	stats := TreeStats{CountByLevel: make(map[int]int)}
	if len(tets) > 0 {
		stats.MinLevel = tets[0].level
		stats.MaxLevel = tets[0].level
	}

	keys := make([]Key, 0, len(tets))
	for _, t := range tets {
		if _, err := NewValidated(t.x, t.y, t.z, t.level, t.typ); err != nil {
			report.InvalidTets = append(report.InvalidTets, t)
		}

		if t.level > 0 {
			p, err := t.Parent()
			if err != nil {
				report.InvalidParentChild = append(report.InvalidParentChild, t)
			} else if !present[p.ToKey()] {
				report.Orphans = append(report.Orphans, t)
			}
		}

		stats.CountByLevel[t.level]++
		if t.level < stats.MinLevel {
			stats.MinLevel = t.level
		}
		if t.level > stats.MaxLevel {
			stats.MaxLevel = t.level
		}

		keys = append(keys, t.ToKey())
	}
	stats.OrphanCount = len(report.Orphans)
	report.Stats = stats

	if !sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i].Less(keys[j]) }) {
		report.OrderingViolations++
	}

	for _, c := range claims {
		fn, ok := c.T.FaceNeighbor(c.Face)
		if !ok || fn.Face != c.ReportFace || !fn.Tet.Equal(c.Other) {
			report.InvalidFaceNeighbors = append(report.InvalidFaceNeighbors, c)
		}
	}

	return report
}
