// Package iobuf provides the L0 byte I/O primitives the binary codec builds
// on: a bounds-checked reader/writer pair over fixed-width dialects (§4.1),
// and a LEB128 varint stream for the Network dialect (§6.3).
package iobuf

import (
	"math"

	"github.com/voxelfmt/nbt/endian"
	"github.com/voxelfmt/nbt/errs"
)

// Reader reads fixed-width primitives and length-prefixed strings from an
// immutable byte view, honoring a configurable endianness.
//
// Once a read fails, the reader becomes "overflowed" and every subsequent
// read silently fails without touching the cursor further (§4.1, "sticky
// overflow"). The validator, not the reader, is the authoritative safety net
// for whether a stream is well-formed (§4.2.2).
type Reader struct {
	data       []byte
	pos        int
	engine     endian.EndianEngine
	overflowed bool
}

// NewReader creates a Reader over data using the given endian engine.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Position returns the current read cursor.
func (r *Reader) Position() int { return r.pos }

// Size returns the total length of the underlying byte view.
func (r *Reader) Size() int { return len(r.data) }

// IsOverflowed reports whether a prior read has failed.
func (r *Reader) IsOverflowed() bool { return r.overflowed }

// HasDataLeft reports whether any unread bytes remain.
func (r *Reader) HasDataLeft() bool { return !r.overflowed && r.pos < len(r.data) }

// fail marks the reader overflowed and returns the sticky error.
func (r *Reader) fail() error {
	r.overflowed = true
	return errs.ErrShortBuffer
}

// ReadBytes returns the next n bytes, or fails if fewer remain or the reader
// has already overflowed.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.overflowed {
		return nil, errs.ErrOverflowed
	}
	if n < 0 || r.pos+n > len(r.data) {
		return nil, r.fail()
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// IgnoreBytes advances the cursor by n bytes without returning them.
func (r *Reader) IgnoreBytes(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// GetByte reads one unsigned byte.
func (r *Reader) GetByte() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// GetShort reads a signed 16-bit integer.
func (r *Reader) GetShort() (int16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return int16(r.engine.Uint16(b)), nil
}

// GetInt reads a signed 32-bit integer.
func (r *Reader) GetInt() (int32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(b)), nil
}

// GetInt64 reads a signed 64-bit integer.
func (r *Reader) GetInt64() (int64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return int64(r.engine.Uint64(b)), nil
}

// GetFloat reads an IEEE-754 binary32 value.
func (r *Reader) GetFloat() (float32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(r.engine.Uint32(b)), nil
}

// GetDouble reads an IEEE-754 binary64 value.
func (r *Reader) GetDouble() (float64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(b)), nil
}

// GetString reads a signed 16-bit length then that many bytes.
func (r *Reader) GetString() (string, error) {
	n, err := r.GetShort()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", r.fail()
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// GetLongString reads a signed 32-bit length then that many bytes.
func (r *Reader) GetLongString() (string, error) {
	n, err := r.GetInt()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", r.fail()
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}
