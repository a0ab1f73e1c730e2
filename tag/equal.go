package tag

// Equal reports structural equality between t and other, per the per-kind
// rules in §3.2: Compound equality ignores ordering, List equality requires
// the same element-type and order, and numeric tags compare by kind and bit
// pattern (so distinct NaN encodings are never spuriously equal).
func (t Tag) Equal(other Tag) bool {
	if t.kind != other.kind {
		return false
	}

	switch t.kind {
	case KindEnd:
		return true
	case KindByte, KindShort, KindInt, KindLong:
		return t.num == other.num
	case KindFloat:
		return float32Bits(float32(t.f)) == float32Bits(float32(other.f))
	case KindDouble:
		return float64Bits(t.f) == float64Bits(other.f)
	case KindString:
		return t.s == other.s
	case KindByteArray:
		return bytesEqual(t.bytes, other.bytes)
	case KindIntArray:
		return int32sEqual(t.ints, other.ints)
	case KindLongArray:
		return int64sEqual(t.longs, other.longs)
	case KindList:
		return t.list.Equal(other.list)
	case KindCompound:
		return t.compound.Equal(other.compound)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func int32sEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func int64sEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
