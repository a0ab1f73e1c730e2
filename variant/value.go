package variant

import (
	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/tag"
)

// Value is a JSON-like wrapper around a single tag.Tag (§4.5).
type Value struct {
	t tag.Tag
}

// Of wraps an existing tag.
func Of(t tag.Tag) Value { return Value{t: t} }

// Null returns the façade's null value (the End tag).
func Null() Value { return Value{t: tag.End()} }

// Bool wraps b as a Byte tag (0 or 1), NBT's conventional boolean encoding.
func Bool(b bool) Value {
	if b {
		return Value{t: tag.NewByte(1)}
	}

	return Value{t: tag.NewByte(0)}
}

// Int wraps v as the narrowest signed integer kind that can represent it —
// Byte, Short, Int, or Long, in that order (§4.5, "integer literals
// auto-select the smallest tag kind by width at construction time").
func Int(v int64) Value {
	switch {
	case v >= -128 && v <= 127:
		return Value{t: tag.NewByte(uint8(int8(v)))}
	case v >= -32768 && v <= 32767:
		return Value{t: tag.NewShort(int16(v))}
	case v >= -2147483648 && v <= 2147483647:
		return Value{t: tag.NewInt(int32(v))}
	default:
		return Value{t: tag.NewLong(v)}
	}
}

// Float32 wraps v as a Float tag.
func Float32(v float32) Value { return Value{t: tag.NewFloat(v)} }

// Float64 wraps v as a Double tag.
func Float64(v float64) Value { return Value{t: tag.NewDouble(v)} }

// String wraps s as a String tag.
func String(s string) Value { return Value{t: tag.NewString(s)} }

// Array returns a new, empty List-backed value.
func Array() Value { return Value{t: tag.NewList(tag.NewEmptyList())} }

// Object returns a new, empty Compound-backed value.
func Object() Value { return Value{t: tag.NewCompound(tag.NewCompoundEmpty())} }

// Tag returns the underlying tag.
func (v Value) Tag() tag.Tag { return v.t }

// Kind returns the underlying tag's kind.
func (v Value) Kind() tag.Kind { return v.t.Kind() }

func (v Value) IsArray() bool   { return v.t.Kind() == tag.KindList }
func (v Value) IsObject() bool  { return v.t.Kind() == tag.KindCompound }
func (v Value) IsString() bool  { return v.t.Kind() == tag.KindString }
func (v Value) IsBoolean() bool { return v.t.Kind() == tag.KindByte }
func (v Value) IsNull() bool    { return v.t.Kind() == tag.KindEnd }

func (v Value) IsBinary() bool {
	switch v.t.Kind() {
	case tag.KindByteArray, tag.KindIntArray, tag.KindLongArray:
		return true
	default:
		return false
	}
}

func (v Value) IsNumberInteger() bool {
	switch v.t.Kind() {
	case tag.KindByte, tag.KindShort, tag.KindInt, tag.KindLong:
		return true
	default:
		return false
	}
}

func (v Value) IsNumberFloat() bool {
	switch v.t.Kind() {
	case tag.KindFloat, tag.KindDouble:
		return true
	default:
		return false
	}
}

func (v Value) IsNumber() bool { return v.IsNumberInteger() || v.IsNumberFloat() }

func (v Value) IsPrimitive() bool {
	return v.IsNull() || v.IsString() || v.IsNumber() || v.IsBinary()
}

func (v Value) IsStructured() bool { return v.IsArray() || v.IsObject() }

// Len reports the value's size: 1 for scalars, element/entry count for
// containers, and 0 for End (§4.5 size()).
func (v Value) Len() int {
	switch v.t.Kind() {
	case tag.KindEnd:
		return 0
	case tag.KindList:
		l, _ := v.t.List()

		return l.Len()
	case tag.KindCompound:
		c, _ := v.t.Compound()

		return c.Len()
	case tag.KindByteArray:
		b, _ := v.t.ByteArray()

		return len(b)
	case tag.KindIntArray:
		a, _ := v.t.IntArray()

		return len(a)
	case tag.KindLongArray:
		a, _ := v.t.LongArray()

		return len(a)
	default:
		return 1
	}
}

// Get looks up key on an object value.
func (v Value) Get(key string) (Value, bool) {
	c, err := v.t.Compound()
	if err != nil {
		return Value{}, false
	}
	t, ok := c.Get(key)

	return Value{t: t}, ok
}

// Index looks up an element of an array value by position.
func (v Value) Index(i int) (Value, error) {
	l, err := v.t.List()
	if err != nil {
		return Value{}, errs.ErrDomain
	}
	t, err := l.Get(i)
	if err != nil {
		return Value{}, err
	}

	return Value{t: t}, nil
}

// Set inserts or overwrites key on an object value.
func (v Value) Set(key string, val Value) error {
	c, err := v.t.Compound()
	if err != nil {
		return errs.ErrDomain
	}
	c.Set(key, val.t)

	return nil
}

// SetIndex replaces the element at i on an array value. val's kind must
// match the array's existing element type.
func (v Value) SetIndex(i int, val Value) error {
	l, err := v.t.List()
	if err != nil {
		return errs.ErrDomain
	}

	return l.Set(i, val.t)
}

// PushBack appends val to an array value (§4.5 push_back).
func (v Value) PushBack(val Value) error {
	l, err := v.t.List()
	if err != nil {
		return errs.ErrDomain
	}

	return l.Append(val.t)
}

// Remove deletes key from an object value, reporting whether it was present.
func (v Value) Remove(key string) bool {
	c, err := v.t.Compound()
	if err != nil {
		return false
	}
	had := c.Has(key)
	c.Delete(key)

	return had
}

// RemoveIndex deletes the element at i from an array value.
func (v Value) RemoveIndex(i int) error {
	l, err := v.t.List()
	if err != nil {
		return errs.ErrDomain
	}

	return l.RemoveAt(i)
}

// Rename moves the value at oldKey to newKey on an object value.
func (v Value) Rename(oldKey, newKey string) bool {
	c, err := v.t.Compound()
	if err != nil {
		return false
	}

	return c.Rename(oldKey, newKey)
}

// Range calls fn for every entry of an object value in sorted key order.
func (v Value) Range(fn func(key string, val Value) bool) error {
	c, err := v.t.Compound()
	if err != nil {
		return errs.ErrDomain
	}
	c.Range(func(key string, t tag.Tag) bool {
		return fn(key, Value{t: t})
	})

	return nil
}

// RangeArray calls fn for every element of an array value in order.
func (v Value) RangeArray(fn func(i int, val Value) bool) error {
	l, err := v.t.List()
	if err != nil {
		return errs.ErrDomain
	}
	for i, t := range l.Elements() {
		if !fn(i, Value{t: t}) {
			return nil
		}
	}

	return nil
}
