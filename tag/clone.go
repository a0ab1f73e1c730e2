package tag

// Clone performs a deep copy of t: composite payloads (List, Compound,
// ByteArray, IntArray, LongArray) get fresh backing storage (§3.3).
func (t Tag) Clone() Tag {
	switch t.kind {
	case KindByteArray:
		b := make([]byte, len(t.bytes))
		copy(b, t.bytes)

		return Tag{kind: KindByteArray, bytes: b}
	case KindIntArray:
		v := make([]int32, len(t.ints))
		copy(v, t.ints)

		return Tag{kind: KindIntArray, ints: v}
	case KindLongArray:
		v := make([]int64, len(t.longs))
		copy(v, t.longs)

		return Tag{kind: KindLongArray, longs: v}
	case KindList:
		return Tag{kind: KindList, list: t.list.Clone()}
	case KindCompound:
		return Tag{kind: KindCompound, compound: t.compound.Clone()}
	default:
		// End and every scalar kind hold no owned storage; the value
		// receiver is already a copy.
		return t
	}
}
