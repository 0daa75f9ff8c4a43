// Package tetra implements a hierarchical, adaptive tetrahedral spatial
// index over the positive octant: a bijection between tetrahedra
// (anchor, level, type) and 128-bit hierarchical keys (TM-keys), the
// Bey refinement used to subdivide each tetrahedron into eight
// children, geometric predicates (point containment, ray and AABB
// intersection) robust to the six tetrahedron types' mirrored pair,
// and volume-to-key-range enumeration with adaptive level selection.
//
// The index covers only the positive octant: all coordinates lie in
// [0, 2^LMax). A Tet is the fundamental value; a Key is its encoded
// form, ordered and comparable without decoding. Tet and Key values
// are immutable and safe to share across goroutines; the only mutable
// state the package owns is the optional Cache (see cache.go), which
// is safe for concurrent use.
//
// Hot-path predicates (containment, ray/AABB tests) never return
// errors: they treat malformed input as the caller's precondition
// violation. Construction and navigation that can fail return typed
// errors (see errors.go) so callers can distinguish failure kinds with
// errors.As.
package tetra
