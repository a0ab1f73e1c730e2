package tag

import (
	"math"

	"github.com/voxelfmt/nbt/errs"
)

// Tag is the closed polymorphic family over the 13 NBT variants (§3.1).
//
// Tag is a value type: copying a Tag copies the struct header, but List and
// Compound payloads are held by pointer to a privately owned backing store,
// so copying a Tag that wraps a List or Compound does NOT deep-copy its
// children — use Clone for that (§3.3, "Tags own their payload exclusively").
type Tag struct {
	kind Kind

	num int64   // Byte/Short/Int/Long: sign-extended value. Float/Double: unused.
	f   float64 // Float/Double: value.
	s   string  // String: raw bytes, stored as string (may not be valid UTF-8).

	bytes []byte  // ByteArray payload.
	ints  []int32 // IntArray payload.
	longs []int64 // LongArray payload.

	list     *List     // List payload.
	compound *Compound // Compound payload.
}

// End returns the sentinel End tag: the Compound terminator on the wire and
// the "absent" value at the variant-façade level (§3.2).
func End() Tag { return Tag{kind: KindEnd} }

func NewByte(v uint8) Tag   { return Tag{kind: KindByte, num: int64(v)} }
func NewShort(v int16) Tag  { return Tag{kind: KindShort, num: int64(v)} }
func NewInt(v int32) Tag    { return Tag{kind: KindInt, num: int64(v)} }
func NewLong(v int64) Tag   { return Tag{kind: KindLong, num: v} }
func NewFloat(v float32) Tag { return Tag{kind: KindFloat, f: float64(v)} }
func NewDouble(v float64) Tag { return Tag{kind: KindDouble, f: v} }

// NewString wraps an arbitrary byte sequence as a String tag. Any byte
// sequence is accepted on the model level (§3.2); UTF-8 validity is only
// required at SNBT emission time.
func NewString(v string) Tag { return Tag{kind: KindString, s: v} }

// NewByteArray takes ownership of b.
func NewByteArray(b []byte) Tag { return Tag{kind: KindByteArray, bytes: b} }

// NewIntArray takes ownership of v.
func NewIntArray(v []int32) Tag { return Tag{kind: KindIntArray, ints: v} }

// NewLongArray takes ownership of v.
func NewLongArray(v []int64) Tag { return Tag{kind: KindLongArray, longs: v} }

// NewList wraps an existing *List.
func NewList(l *List) Tag { return Tag{kind: KindList, list: l} }

// NewCompound wraps an existing *Compound.
func NewCompound(c *Compound) Tag { return Tag{kind: KindCompound, compound: c} }

// Kind returns the tag's variant discriminant.
func (t Tag) Kind() Kind { return t.kind }

// IsEnd reports whether t is the End sentinel.
func (t Tag) IsEnd() bool { return t.kind == KindEnd }

// Byte returns the Byte payload.
func (t Tag) Byte() (uint8, error) {
	if t.kind != KindByte {
		return 0, errs.ErrWrongTagType
	}
	return uint8(t.num), nil
}

// Short returns the Short payload.
func (t Tag) Short() (int16, error) {
	if t.kind != KindShort {
		return 0, errs.ErrWrongTagType
	}
	return int16(t.num), nil
}

// Int returns the Int payload.
func (t Tag) Int() (int32, error) {
	if t.kind != KindInt {
		return 0, errs.ErrWrongTagType
	}
	return int32(t.num), nil
}

// Long returns the Long payload.
func (t Tag) Long() (int64, error) {
	if t.kind != KindLong {
		return 0, errs.ErrWrongTagType
	}
	return t.num, nil
}

// Float returns the Float payload.
func (t Tag) Float() (float32, error) {
	if t.kind != KindFloat {
		return 0, errs.ErrWrongTagType
	}
	return float32(t.f), nil
}

// Double returns the Double payload.
func (t Tag) Double() (float64, error) {
	if t.kind != KindDouble {
		return 0, errs.ErrWrongTagType
	}
	return t.f, nil
}

// String returns the String payload's raw bytes reinterpreted as a string.
func (t Tag) String() (string, error) {
	if t.kind != KindString {
		return "", errs.ErrWrongTagType
	}
	return t.s, nil
}

// ByteArray returns the ByteArray payload. The returned slice aliases the
// tag's internal storage; callers must not mutate it in place.
func (t Tag) ByteArray() ([]byte, error) {
	if t.kind != KindByteArray {
		return nil, errs.ErrWrongTagType
	}
	return t.bytes, nil
}

// IntArray returns the IntArray payload.
func (t Tag) IntArray() ([]int32, error) {
	if t.kind != KindIntArray {
		return nil, errs.ErrWrongTagType
	}
	return t.ints, nil
}

// LongArray returns the LongArray payload.
func (t Tag) LongArray() ([]int64, error) {
	if t.kind != KindLongArray {
		return nil, errs.ErrWrongTagType
	}
	return t.longs, nil
}

// List returns the List payload.
func (t Tag) List() (*List, error) {
	if t.kind != KindList {
		return nil, errs.ErrWrongTagType
	}
	return t.list, nil
}

// Compound returns the Compound payload.
func (t Tag) Compound() (*Compound, error) {
	if t.kind != KindCompound {
		return nil, errs.ErrWrongTagType
	}
	return t.compound, nil
}

// rawNumeric returns the tag's numeric payload normalized to a float64 and a
// bool indicating the tag was a numeric kind.
func (t Tag) rawNumeric() (float64, bool) {
	switch t.kind {
	case KindByte, KindShort, KindInt, KindLong:
		return float64(t.num), true
	case KindFloat, KindDouble:
		return t.f, true
	default:
		return 0, false
	}
}

// float32Bits and float64Bits expose Float/Double payloads as bit patterns,
// so that comparing them is total: a NaN equals a NaN with the same bits,
// unlike Go's own float equality (NaN != NaN).
func float32Bits(f float32) uint32  { return math.Float32bits(f) }
func float64Bits(f float64) uint64 { return math.Float64bits(f) }
