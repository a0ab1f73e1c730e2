package binary

import "github.com/voxelfmt/nbt/tag"

// encodeValue writes t's payload (not its type byte) per the wire rules in
// §4.2. Callers that need the type byte (List elements under a known element
// type, Compound entries) write it themselves before calling this.
func encodeValue(s sink, t tag.Tag) {
	switch t.Kind() {
	case tag.KindEnd:
		// no payload
	case tag.KindByte:
		v, _ := t.Byte()
		s.Byte(v)
	case tag.KindShort:
		v, _ := t.Short()
		s.Short(v)
	case tag.KindInt:
		v, _ := t.Int()
		s.Int(v)
	case tag.KindLong:
		v, _ := t.Long()
		s.Long(v)
	case tag.KindFloat:
		v, _ := t.Float()
		s.Float(v)
	case tag.KindDouble:
		v, _ := t.Double()
		s.Double(v)
	case tag.KindString:
		v, _ := t.String()
		s.Str(v)
	case tag.KindByteArray:
		v, _ := t.ByteArray()
		s.Len(len(v))
		s.RawBytes(v)
	case tag.KindIntArray:
		v, _ := t.IntArray()
		s.Len(len(v))
		for _, e := range v {
			s.Int(e)
		}
	case tag.KindLongArray:
		v, _ := t.LongArray()
		s.Len(len(v))
		for _, e := range v {
			s.Long(e)
		}
	case tag.KindList:
		l, _ := t.List()
		s.Byte(uint8(l.ElemKind()))
		s.Len(l.Len())
		for _, e := range l.Elements() {
			encodeValue(s, e)
		}
	case tag.KindCompound:
		c, _ := t.Compound()
		encodeCompound(s, c)
	}
}

// encodeCompound writes a Compound's entries (§4.2: repeated {type byte, key,
// payload}, terminated by a bare End type byte) without a leading type byte
// of its own, since the Compound's type byte is written by its container
// (root framing, a List element, or another Compound entry).
func encodeCompound(s sink, c *tag.Compound) {
	c.Range(func(key string, v tag.Tag) bool {
		s.Byte(uint8(v.Kind()))
		s.Str(key)
		encodeValue(s, v)

		return true
	})
	s.Byte(uint8(tag.KindEnd))
}
