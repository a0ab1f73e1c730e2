package tag

import (
	"hash/fnv"

	"github.com/voxelfmt/nbt/endian"
	"github.com/voxelfmt/nbt/iobuf"
)

// Hash computes the FNV-1a hash of t's canonical little-endian binary
// encoding (§3.3): its type byte then its payload. This is a pure structural
// hash (no dialect header, no root-name framing) so that two equal tags always
// hash equal regardless of how they were produced.
//
// hash/fnv is used directly rather than the xxhash dependency wired
// elsewhere in this module, because the spec names FNV-1a specifically as
// the structural hash algorithm (§3.3) — see DESIGN.md.
func (t Tag) Hash() uint64 {
	w := iobuf.NewWriter(endian.GetLittleEndianEngine())
	defer w.Release()

	w.PutByte(uint8(t.kind))
	encodeForHash(w, t)

	h := fnv.New64a()
	_, _ = h.Write(w.Bytes())

	return h.Sum64()
}

// encodeForHash writes t's payload in the little-endian binary layout,
// recursively: strings carry an int16 length, Lists carry their element type
// and int32 count before untyped elements, and Compound entries are a type
// byte, key, and payload, closed by an End byte. Hash writes the leading
// type byte of the top-level tag.
func encodeForHash(w *iobuf.Writer, t Tag) {
	switch t.kind {
	case KindEnd:
	case KindByte:
		b, _ := t.Byte()
		w.PutByte(b)
	case KindShort:
		v, _ := t.Short()
		w.PutShort(v)
	case KindInt:
		v, _ := t.Int()
		w.PutInt(v)
	case KindLong:
		v, _ := t.Long()
		w.PutInt64(v)
	case KindFloat:
		v, _ := t.Float()
		w.PutFloat(v)
	case KindDouble:
		v, _ := t.Double()
		w.PutDouble(v)
	case KindString:
		s, _ := t.String()
		w.PutString(s)
	case KindByteArray:
		b, _ := t.ByteArray()
		w.PutInt(int32(len(b))) //nolint:gosec
		w.PutBytes(b)
	case KindIntArray:
		v, _ := t.IntArray()
		w.PutInt(int32(len(v))) //nolint:gosec
		for _, e := range v {
			w.PutInt(e)
		}
	case KindLongArray:
		v, _ := t.LongArray()
		w.PutInt(int32(len(v))) //nolint:gosec
		for _, e := range v {
			w.PutInt64(e)
		}
	case KindList:
		l, _ := t.List()
		w.PutByte(uint8(l.ElemKind()))
		w.PutInt(int32(l.Len())) //nolint:gosec
		for _, e := range l.Elements() {
			encodeForHash(w, e)
		}
	case KindCompound:
		c, _ := t.Compound()
		c.Range(func(key string, v Tag) bool {
			w.PutByte(uint8(v.Kind()))
			w.PutString(key)
			encodeForHash(w, v)

			return true
		})
		w.PutByte(uint8(KindEnd))
	}
}
