package tetra

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// strategy selects which enumeration algorithm a volume's size calls for.
type strategy int

const (
	strategyHierarchical strategy = iota
	strategyDepthAware
	strategyBasic
)

const (
	hierarchicalVolumeThreshold = 10000.0
	adaptiveVolumeThreshold     = 1000.0
	adaptiveExtentThreshold     = 10.0
	hierarchicalMaxDepth        = 3
)

func selectStrategy(b VolumeBounds) strategy {
	vol := b.Volume()
	switch {
	case vol > hierarchicalVolumeThreshold:
		return strategyHierarchical
	case vol > adaptiveVolumeThreshold && b.MaxExtent() > adaptiveExtentThreshold:
		return strategyDepthAware
	default:
		return strategyBasic
	}
}

func cellLength(level int) float64 { return float64(int64(1) << (LMax - level)) }

// containLevel returns the finest level whose cell length is still >=
// span: the deepest level at which a single cell could hold a run of
// that length along one axis.
func containLevel(span float64) int {
	if span <= 1 {
		return LMax
	}
	level := LMax - int(math.Ceil(math.Log2(span)))
	if level < 0 {
		return 0
	}
	if level > LMax {
		return LMax
	}
	return level
}

// optimalLevel returns a level whose cell length falls within
// [maxExtent/4, maxExtent*2], scanning from the root down (coarsest
// match first); containLevel is the fallback for extents too small or
// too large for any level to land inside that window.
func optimalLevel(maxExtent float64) int {
	lo, hi := maxExtent/4, maxExtent*2
	for level := 0; level <= LMax; level++ {
		cl := cellLength(level)
		if cl >= lo && cl <= hi {
			return level
		}
	}
	return containLevel(maxExtent)
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > LMax {
		return LMax
	}
	return level
}

// levelsForStrategy returns the inclusive [lo, hi] level range to sweep.
func levelsForStrategy(strat strategy, b VolumeBounds) (lo, hi int) {
	switch strat {
	case strategyDepthAware:
		optimal := optimalLevel(b.MaxExtent())
		return clampLevel(optimal - 1), clampLevel(optimal + 2)
	default: // strategyBasic, and the hierarchical base case
		contain := containLevel(b.MaxExtent())
		return clampLevel(contain - 2), clampLevel(contain + 3)
	}
}

// skipLevel reports whether a depth-aware sweep should skip this
// level: its cells are far too large (more than 8x the extent), or
// both far too small (under extent/16) and crossing none of bounds'
// axes, in which case a coarser level already covers the same ground.
func skipLevel(strat strategy, b VolumeBounds, level int) bool {
	if strat != strategyDepthAware {
		return false
	}
	cl := cellLength(level)
	extent := b.MaxExtent()
	if cl > 8*extent {
		return true
	}
	if cl < extent/16 && touchedDims(b, level) == 0 {
		return true
	}
	return false
}

// touchedDims returns a 3-bit mask (bit0=x, bit1=y, bit2=z) of which
// axes bounds spans more than one grid cell along, at the given level.
func touchedDims(b VolumeBounds, level int) int {
	cl := cellLength(level)
	mask := 0
	if gridIndex(b.MinX, cl) != gridIndex(b.MaxX, cl) {
		mask |= 1
	}
	if gridIndex(b.MinY, cl) != gridIndex(b.MaxY, cl) {
		mask |= 2
	}
	if gridIndex(b.MinZ, cl) != gridIndex(b.MaxZ, cl) {
		mask |= 4
	}
	return mask
}

func gridIndex(coord, cellLen float64) int64 {
	return int64(math.Floor(coord / cellLen))
}

func maxGridIndex(level int) int64 { return (int64(1) << level) - 1 }

func clampIndex(idx, maxIdx int64) int64 {
	if idx < 0 {
		return 0
	}
	if idx > maxIdx {
		return maxIdx
	}
	return idx
}

// axisRange returns the [lo, hi] grid indices to iterate along one
// axis at level: the full span if touched, otherwise the single cell
// containing the bounds' center on that axis.
func axisRange(minCoord, maxCoord float64, cellLen float64, maxIdx int64, touched bool) (lo, hi int64) {
	if touched {
		lo = clampIndex(gridIndex(minCoord, cellLen), maxIdx)
		hi = clampIndex(gridIndex(maxCoord, cellLen), maxIdx)
		return lo, hi
	}
	center := gridIndex((minCoord+maxCoord)/2, cellLen)
	center = clampIndex(center, maxIdx)
	return center, center
}

// hybridPasses runs the cube-AABB rejection followed by a per-type
// containment or intersection test against bounds, and reports whether
// any of the cell's six tetrahedra pass.
func hybridPasses(anchor [3]int64, level int, bounds VolumeBounds, includeIntersecting bool) bool {
	cl := int64(cellLength(level))
	cellBounds := VolumeBounds{
		MinX: float64(anchor[0]), MinY: float64(anchor[1]), MinZ: float64(anchor[2]),
		MaxX: float64(anchor[0] + cl), MaxY: float64(anchor[1] + cl), MaxZ: float64(anchor[2] + cl),
	}
	if !boundsOverlap(cellBounds, bounds) {
		return false
	}
	for typ := 0; typ < NumTypes; typ++ {
		t := NewUnchecked(anchor[0], anchor[1], anchor[2], level, typ)
		if includeIntersecting {
			if t.AABBIntersect(bounds) {
				return true
			}
		} else if t.AABBContains(bounds) {
			return true
		}
	}
	return false
}

// emitCell yields the six one-key ranges for every tet in the cube
// cell anchored at anchor/level, one per type.
func emitCell(anchor [3]int64, level int, yield func(SFCRange) bool) bool {
	for typ := 0; typ < NumTypes; typ++ {
		t := NewUnchecked(anchor[0], anchor[1], anchor[2], level, typ)
		if !yield(SingleKeyRange(t.ToKey())) {
			return false
		}
	}
	return true
}

// sweepLevel iterates the candidate grid cells of bounds at level,
// touching only the axes bounds actually crosses, and emits ranges for
// every cell whose hybrid test passes.
func sweepLevel(strat strategy, bounds VolumeBounds, level int, includeIntersecting bool, yield func(SFCRange) bool) bool {
	if skipLevel(strat, bounds, level) {
		return true
	}
	cl := cellLength(level)
	maxIdx := maxGridIndex(level)
	touched := touchedDims(bounds, level)

	xlo, xhi := axisRange(bounds.MinX, bounds.MaxX, cl, maxIdx, touched&1 != 0)
	ylo, yhi := axisRange(bounds.MinY, bounds.MaxY, cl, maxIdx, touched&2 != 0)
	zlo, zhi := axisRange(bounds.MinZ, bounds.MaxZ, cl, maxIdx, touched&4 != 0)

	icl := int64(cl)
	for gx := xlo; gx <= xhi; gx++ {
		for gy := ylo; gy <= yhi; gy++ {
			for gz := zlo; gz <= zhi; gz++ {
				anchor := [3]int64{gx * icl, gy * icl, gz * icl}
				if !hybridPasses(anchor, level, bounds, includeIntersecting) {
					continue
				}
				if !emitCell(anchor, level, yield) {
					return false
				}
			}
		}
	}
	return true
}

// splitLargestAxis halves bounds' largest-extent axis at its midpoint.
func splitLargestAxis(b VolumeBounds) (left, right VolumeBounds) {
	ex, ey, ez := b.MaxX-b.MinX, b.MaxY-b.MinY, b.MaxZ-b.MinZ
	left, right = b, b
	switch {
	case ex >= ey && ex >= ez:
		mid := (b.MinX + b.MaxX) / 2
		left.MaxX, right.MinX = mid, mid
	case ey >= ex && ey >= ez:
		mid := (b.MinY + b.MaxY) / 2
		left.MaxY, right.MinY = mid, mid
	default:
		mid := (b.MinZ + b.MaxZ) / 2
		left.MaxZ, right.MinZ = mid, mid
	}
	return left, right
}

func enumerate(bounds VolumeBounds, includeIntersecting bool, depthRemaining int, yield func(SFCRange) bool) bool {
	strat := selectStrategy(bounds)
	if strat == strategyHierarchical {
		if depthRemaining > 0 {
			left, right := splitLargestAxis(bounds)
			if !enumerate(left, includeIntersecting, depthRemaining-1, yield) {
				return false
			}
			return enumerate(right, includeIntersecting, depthRemaining-1, yield)
		}
		strat = strategyDepthAware
	}

	lo, hi := levelsForStrategy(strat, bounds)
	for level := lo; level <= hi; level++ {
		if !sweepLevel(strat, bounds, level, includeIntersecting, yield) {
			return false
		}
	}
	return true
}

// CandidateRanges lazily enumerates one-key ranges for every grid cell
// the volume query touches, before merging. include_intersecting true
// selects "bounding" semantics (a tet counts if it merely intersects
// bounds); false selects "bounded by" semantics (a tet counts only if
// fully contained in bounds).
func CandidateRanges(bounds VolumeBounds, includeIntersecting bool) iter.Seq[SFCRange] {
	return func(yield func(SFCRange) bool) {
		enumerate(bounds, includeIntersecting, hierarchicalMaxDepth, yield)
	}
}

// EnumerateRanges runs the full volume query pipeline: strategy
// selection, level sweep, hybrid cell testing, and range merging. The
// expansion of a returned range into individual keys is left to the
// caller, since arithmetic on arbitrary TM-keys beyond a range's own
// boundary is not defined.
func EnumerateRanges(bounds VolumeBounds, includeIntersecting bool) []SFCRange {
	var candidates []SFCRange
	for r := range CandidateRanges(bounds, includeIntersecting) {
		candidates = append(candidates, r)
	}
	return MergeRanges(candidates)
}

// Bounding returns the merged ranges of tets that intersect bounds at
// all (bounding(bounds) -> Stream<Key> in section 6; "bounding"
// semantics, the looser of the two range queries).
func Bounding(bounds VolumeBounds) []SFCRange { return EnumerateRanges(bounds, true) }

// BoundedBy returns the merged ranges of tets fully contained within
// bounds (bounded_by(bounds) -> Stream<Key> in section 6; "strictly
// bounded" semantics).
func BoundedBy(bounds VolumeBounds) []SFCRange { return EnumerateRanges(bounds, false) }

// Intersecting answers the existence query intersecting(bounds) ->
// Option<Key> from section 6: does any tet touch bounds at all, and if
// so, which one. It stops at the first candidate cell whose hybrid
// test passes, rather than sweeping and merging every range.
func Intersecting(bounds VolumeBounds) (Key, bool) {
	for r := range CandidateRanges(bounds, true) {
		return r.Start, true
	}
	return Key{}, false
}

// EnclosingPoint is the point-location primitive (enclosing(point,
// level) -> Key in section 6, called locate_point in the worked
// scenarios): it snaps p to the grid cell at level and returns the key
// of the unique one of the 6 types whose tetrahedron contains p.
func EnclosingPoint(p r3.Vec, level int) (Key, error) {
	if level < 0 || level > LMax {
		return Key{}, &LevelOutOfRange{Level: level}
	}
	cl := cellLength(level)
	anchor := [3]int64{
		int64(math.Floor(p.X/cl)) * int64(cl),
		int64(math.Floor(p.Y/cl)) * int64(cl),
		int64(math.Floor(p.Z/cl)) * int64(cl),
	}
	for typ := 0; typ < NumTypes; typ++ {
		t := NewUnchecked(anchor[0], anchor[1], anchor[2], level, typ)
		if t.ContainsPoint(p) {
			return t.ToKey(), nil
		}
	}
	return Key{}, &NotLocated{Point: p, Level: level}
}

// EnclosingBounds is enclosing(bounds) -> Key from section 6: the key
// of the smallest single tet that fully contains bounds. It walks
// levels from the root downward, keeping the finest level whose
// single grid cell still covers bounds entirely, then picks the one
// of the 6 types at that cell whose tetrahedron contains all of
// bounds' corners.
func EnclosingBounds(bounds VolumeBounds) (Key, error) {
	best := Root
	haveBest := false

	for level := 0; level <= LMax; level++ {
		cl := cellLength(level)
		minIdx := [3]int64{gridIndex(bounds.MinX, cl), gridIndex(bounds.MinY, cl), gridIndex(bounds.MinZ, cl)}
		maxIdx := [3]int64{gridIndex(bounds.MaxX, cl), gridIndex(bounds.MaxY, cl), gridIndex(bounds.MaxZ, cl)}
		if minIdx != maxIdx {
			break // bounds spans more than one cell at this level; the previous level was the finest single-cell fit
		}

		anchor := [3]int64{minIdx[0] * int64(cl), minIdx[1] * int64(cl), minIdx[2] * int64(cl)}
		typ, ok := enclosingType(anchor, level, bounds)
		if !ok {
			break // no type at this level fully contains bounds; the previous level was the finest fit
		}
		best = NewUnchecked(anchor[0], anchor[1], anchor[2], level, typ)
		haveBest = true
	}

	if !haveBest {
		return Key{}, &NotLocated{Level: -1}
	}
	return best.ToKey(), nil
}

// enclosingType returns the type of the cell at anchor/level whose
// tetrahedron contains every corner of bounds, if any.
func enclosingType(anchor [3]int64, level int, bounds VolumeBounds) (int, bool) {
	corners := bounds.corners()
	for typ := 0; typ < NumTypes; typ++ {
		t := NewUnchecked(anchor[0], anchor[1], anchor[2], level, typ)
		all := true
		for _, c := range corners {
			if !t.ContainsPoint(c) {
				all = false
				break
			}
		}
		if all {
			return typ, true
		}
	}
	return 0, false
}
