package variant

import (
	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/tag"
)

// Int64 widens any integer-kind tag to int64. Returns errs.ErrDomain for any
// other kind (§4.5, "numeric coercion operators are checked casts that
// signal a domain error on mismatch").
func (v Value) Int64() (int64, error) {
	switch v.t.Kind() {
	case tag.KindByte:
		b, _ := v.t.Byte()

		return int64(int8(b)), nil
	case tag.KindShort:
		s, _ := v.t.Short()

		return int64(s), nil
	case tag.KindInt:
		i, _ := v.t.Int()

		return int64(i), nil
	case tag.KindLong:
		l, _ := v.t.Long()

		return l, nil
	default:
		return 0, errs.ErrDomain
	}
}

// Float64 widens any numeric-kind tag (integer or float) to float64.
func (v Value) Float64() (float64, error) {
	switch v.t.Kind() {
	case tag.KindFloat:
		f, _ := v.t.Float()

		return float64(f), nil
	case tag.KindDouble:
		d, _ := v.t.Double()

		return d, nil
	default:
		i, err := v.Int64()
		if err != nil {
			return 0, errs.ErrDomain
		}

		return float64(i), nil
	}
}

// Bool reports a Byte tag's truthiness (nonzero is true).
func (v Value) Bool() (bool, error) {
	b, err := v.t.Byte()
	if err != nil {
		return false, errs.ErrDomain
	}

	return b != 0, nil
}

// StringValue returns the payload of a String tag.
func (v Value) StringValue() (string, error) {
	s, err := v.t.String()
	if err != nil {
		return "", errs.ErrDomain
	}

	return s, nil
}

// ByteArrayValue returns the payload of a ByteArray tag.
func (v Value) ByteArrayValue() ([]byte, error) {
	b, err := v.t.ByteArray()
	if err != nil {
		return nil, errs.ErrDomain
	}

	return b, nil
}

// IntArrayValue returns the payload of an IntArray tag.
func (v Value) IntArrayValue() ([]int32, error) {
	a, err := v.t.IntArray()
	if err != nil {
		return nil, errs.ErrDomain
	}

	return a, nil
}

// LongArrayValue returns the payload of a LongArray tag.
func (v Value) LongArrayValue() ([]int64, error) {
	a, err := v.t.LongArray()
	if err != nil {
		return nil, errs.ErrDomain
	}

	return a, nil
}
