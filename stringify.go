package tetra

import "fmt"

// String renders t as anchor/level/type, e.g. "(0,0,0)@0:0".
func (t Tet) String() string {
	return fmt.Sprintf("(%d,%d,%d)@%d:%d", t.x, t.y, t.z, t.level, t.typ)
}

// String renders k as level:high:low, the level in decimal and both
// words in 0x-prefixed hex, e.g. "5:0x0:0x2a". The high
// word is always shown, even when zero, so compact and extended keys
// are visually distinguishable from their level alone.
func (k Key) String() string {
	return fmt.Sprintf("%d:%#x:%#x", k.level, k.high, k.low)
}

// String renders r as its two endpoint keys.
func (r SFCRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start, r.End)
}
