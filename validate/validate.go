// Package validate implements the non-materializing structural check over a
// byte stream (§4.3): it walks the same five dialects the binary package
// encodes and decodes, but never builds a tag.Tag, only confirming that
// every length, count, and type code it encounters is consistent with the
// bytes actually present.
package validate

import (
	"github.com/voxelfmt/nbt/format"
	"github.com/voxelfmt/nbt/tag"
)

// Validate reports whether data is a well-formed NBT document under dialect
// d. When strictMatchSize is true, it additionally requires that decoding
// consumes every byte of data with none left over (§4.3).
func Validate(data []byte, d format.Dialect, strictMatchSize bool) bool {
	body := data

	if d.HasHeader() {
		if len(data) < format.HeaderSize {
			return false
		}
		body = data[format.HeaderSize:]
	}

	r := newReader(d, body)

	rootKind, err := r.Byte()
	if err != nil || tag.Kind(rootKind) != tag.KindCompound {
		return false
	}
	if _, err := r.Str(); err != nil {
		return false
	}
	if !walkCompound(r) {
		return false
	}

	if strictMatchSize && r.Position() != r.Size() {
		return false
	}

	return true
}

// walkValue validates the payload bytes for a tag of kind k, recursing into
// List and Compound. It returns false the instant any bounds check, length
// read, or type code fails (§4.3).
func walkValue(r reader, k tag.Kind) bool {
	switch k {
	case tag.KindEnd:
		return true
	case tag.KindByte:
		_, err := r.Byte()
		return err == nil
	case tag.KindShort:
		_, err := r.Short()
		return err == nil
	case tag.KindInt:
		_, err := r.Int()
		return err == nil
	case tag.KindLong:
		_, err := r.Long()
		return err == nil
	case tag.KindFloat:
		_, err := r.Float()
		return err == nil
	case tag.KindDouble:
		_, err := r.Double()
		return err == nil
	case tag.KindString:
		_, err := r.Str()
		return err == nil
	case tag.KindByteArray:
		n, err := r.Len()
		if err != nil || n < 0 {
			return false
		}
		_, err = r.RawBytes(n)
		return err == nil
	case tag.KindIntArray:
		return walkFixedCountArray(r, func() error { _, err := r.Int(); return err })
	case tag.KindLongArray:
		return walkFixedCountArray(r, func() error { _, err := r.Long(); return err })
	case tag.KindList:
		return walkList(r)
	case tag.KindCompound:
		return walkCompound(r)
	default:
		return false
	}
}

func walkFixedCountArray(r reader, readElem func() error) bool {
	n, err := r.Len()
	if err != nil || n < 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if err := readElem(); err != nil {
			return false
		}
	}

	return true
}

func walkList(r reader) bool {
	elemKindByte, err := r.Byte()
	if err != nil {
		return false
	}
	elemKind := tag.Kind(elemKindByte)
	if !elemKind.Valid() {
		return false
	}

	n, err := r.Len()
	if err != nil || n < 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if !walkValue(r, elemKind) {
			return false
		}
	}

	return true
}

func walkCompound(r reader) bool {
	for {
		kindByte, err := r.Byte()
		if err != nil {
			return false
		}
		kind := tag.Kind(kindByte)
		if kind == tag.KindEnd {
			return true
		}
		if !kind.Valid() {
			return false
		}
		if _, err := r.Str(); err != nil {
			return false
		}
		if !walkValue(r, kind) {
			return false
		}
	}
}
