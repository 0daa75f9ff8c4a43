package tetra

import "github.com/tetrakit/tetra/internal/conn"

// ToKey encodes t into its TM-key (Tet::tm_index in the spec).
func (t Tet) ToKey() Key {
	if t.level == 0 {
		return RootKey
	}

	types := typesAlongPath(t.x, t.y, t.z, t.level)

	var low, high uint64
	for i := 0; i < t.level; i++ {
		shift := uint(LMax - 1 - i)
		coordBits := uint64(cubeIDBits(t.x, t.y, t.z, shift))
		slot := (coordBits << 3) | uint64(types[i+1])
		if i < compactLevelThreshold {
			low |= slot << uint(slotBits*i)
		} else {
			high |= slot << uint(slotBits*(i-compactLevelThreshold))
		}
	}
	return Key{low: low, high: high, level: t.level}
}

// typesAlongPath returns the type of every ancestor of (x,y,z) from
// the root (index 0) down to the given level (index level),
// inclusive, by walking the coordinate-bit path forward.
func typesAlongPath(x, y, z int64, level int) []int {
	types := make([]int, level+1)
	types[0] = 0
	for i := 0; i < level; i++ {
		shift := uint(LMax - 1 - i)
		cubeID := cubeIDBits(x, y, z, shift)
		types[i+1] = conn.Gen.ParentTypeLocalIndexToType[types[i]][cubeID]
	}
	return types
}

// FromKey decodes a Key back into its Tet (Tet::from_key in the spec).
func FromKey(k Key) Tet {
	if k.level == 0 {
		return Root
	}

	var x, y, z int64
	typ := 0
	for i := 0; i < k.level; i++ {
		var slot uint64
		if i < compactLevelThreshold {
			slot = (k.low >> uint(slotBits*i)) & 0x3f
		} else {
			slot = (k.high >> uint(slotBits*(i-compactLevelThreshold))) & 0x3f
		}
		typ = int(slot & 0x7)
		coordBits := int(slot >> 3)
		bitPos := uint(LMax - 1 - i)
		if coordBits&1 != 0 {
			x |= int64(1) << bitPos
		}
		if coordBits&2 != 0 {
			y |= int64(1) << bitPos
		}
		if coordBits&4 != 0 {
			z |= int64(1) << bitPos
		}
	}
	return Tet{x: x, y: y, z: z, level: k.level, typ: typ}
}

// ConsecutiveIndex packs, for each level from the root down to t's own
// level, the TYPE_CUBE_ID_TO_LOCAL_INDEX[type][cube_id] 3-bit value,
// LSB = deepest level. Unlike the TM-key this value does not carry its
// own level; once the (index, level) pairing is registered with
// Cache.RegisterIndexLevel, Cache.LevelFromIndex can recover it later.
func (t Tet) ConsecutiveIndex() uint64 {
	types := typesAlongPath(t.x, t.y, t.z, t.level)
	var idx uint64
	for i := 0; i < t.level; i++ {
		shift := uint(LMax - 1 - i)
		cubeID := cubeIDBits(t.x, t.y, t.z, shift)
		typ := types[i+1]
		localIdx := conn.Gen.TypeCubeIDToLocalIndex[typ][cubeID]
		// LSB = deepest level: level i+1 is deeper than level i, and
		// is packed into the lower bits as i increases.
		shiftOut := uint(3 * (t.level - 1 - i))
		idx |= uint64(localIdx) << shiftOut
	}
	return idx
}

