package binary

import "github.com/voxelfmt/nbt/tag"

// decodeValue reads the payload for a tag of kind k. It never returns an
// error: once src has overflowed, its Get* calls keep returning the zero
// value, and decodeValue simply builds a zero-valued (possibly nonsensical)
// tag rather than aborting, matching the lenient decode contract on Decode
// (§4.2.2). Callers check src.IsOverflowed() once, at the end, to learn
// whether anything went wrong.
func decodeValue(src source, k tag.Kind) tag.Tag {
	switch k {
	case tag.KindEnd:
		return tag.End()
	case tag.KindByte:
		v, _ := src.Byte()
		return tag.NewByte(v)
	case tag.KindShort:
		v, _ := src.Short()
		return tag.NewShort(v)
	case tag.KindInt:
		v, _ := src.Int()
		return tag.NewInt(v)
	case tag.KindLong:
		v, _ := src.Long()
		return tag.NewLong(v)
	case tag.KindFloat:
		v, _ := src.Float()
		return tag.NewFloat(v)
	case tag.KindDouble:
		v, _ := src.Double()
		return tag.NewDouble(v)
	case tag.KindString:
		v, _ := src.Str()
		return tag.NewString(v)
	case tag.KindByteArray:
		n := clampLen(src, src.Len, 1)
		b := make([]byte, 0, n)
		if raw, err := src.RawBytes(n); err == nil {
			b = append(b, raw...)
		}
		return tag.NewByteArray(b)
	case tag.KindIntArray:
		n := clampLen(src, src.Len, 1)
		v := make([]int32, n)
		for i := range v {
			v[i], _ = src.Int()
		}
		return tag.NewIntArray(v)
	case tag.KindLongArray:
		n := clampLen(src, src.Len, 1)
		v := make([]int64, n)
		for i := range v {
			v[i], _ = src.Long()
		}
		return tag.NewLongArray(v)
	case tag.KindList:
		elemKindByte, _ := src.Byte()
		elemKind := tag.Kind(elemKindByte)
		n := clampLen(src, src.Len, 1)
		elems := make([]tag.Tag, n)
		for i := range elems {
			elems[i] = decodeValue(src, elemKind)
		}
		return tag.NewList(tag.NewListOf(elemKind, elems))
	case tag.KindCompound:
		return tag.NewCompound(decodeCompound(src))
	default:
		return tag.End()
	}
}

// clampLen reads a length/count field via lenFn and clamps it to the
// remaining bytes in src (each element assumed to occupy at least
// minElemSize bytes), so a corrupt or adversarial length prefix cannot force
// an unbounded allocation.
func clampLen(src source, lenFn func() (int, error), minElemSize int) int {
	n, err := lenFn()
	if err != nil || n < 0 {
		return 0
	}
	if remaining := src.Size() - src.Position(); minElemSize > 0 && n > remaining/minElemSize {
		return remaining / minElemSize
	}

	return n
}

// decodeCompound reads a Compound's entries until an End type byte or
// overflow (§4.2).
func decodeCompound(src source) *tag.Compound {
	c := tag.NewCompoundEmpty()
	for {
		if src.IsOverflowed() {
			return c
		}
		kindByte, err := src.Byte()
		if err != nil {
			return c
		}
		kind := tag.Kind(kindByte)
		if kind == tag.KindEnd {
			return c
		}
		key, _ := src.Str()
		c.Set(key, decodeValue(src, kind))
	}
}
