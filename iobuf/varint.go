package iobuf

import (
	"math"

	"github.com/voxelfmt/nbt/endian"
	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/internal/pool"
)

// maxVarint32Bytes and maxVarint64Bytes bound the LEB128 byte count a
// conforming varint may use; streams exceeding them are malformed (§6.3).
const (
	maxVarint32Bytes = 5
	maxVarint64Bytes = 10
)

// VarintReader is the L1 varint stream used by the Network dialect (§6.3).
// Byte, Short, Float, and Double are unaffected by the dialect and are read
// as raw little-endian fields, matching the wire convention the Network
// dialect inherits from the fixed-width dialects for those tag kinds (§4.2).
type VarintReader struct {
	data       []byte
	pos        int
	overflowed bool
}

// NewVarintReader creates a VarintReader over data.
func NewVarintReader(data []byte) *VarintReader {
	return &VarintReader{data: data}
}

func (r *VarintReader) Position() int      { return r.pos }
func (r *VarintReader) Size() int          { return len(r.data) }
func (r *VarintReader) IsOverflowed() bool { return r.overflowed }
func (r *VarintReader) HasDataLeft() bool  { return !r.overflowed && r.pos < len(r.data) }

func (r *VarintReader) fail() error {
	r.overflowed = true
	return errs.ErrShortBuffer
}

func (r *VarintReader) ReadBytes(n int) ([]byte, error) {
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

func (r *VarintReader) IgnoreBytes(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// GetByte reads one unsigned byte.
func (r *VarintReader) GetByte() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// GetSignedShort reads a raw little-endian signed 16-bit integer (§4.2
// table: Short is "identical" between the fixed-width and network dialects).
func (r *VarintReader) GetSignedShort() (int16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return int16(endian.GetLittleEndianEngine().Uint16(b)), nil
}

// GetFloat reads a raw little-endian IEEE-754 binary32 value.
func (r *VarintReader) GetFloat() (float32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(endian.GetLittleEndianEngine().Uint32(b)), nil
}

// GetDouble reads a raw little-endian IEEE-754 binary64 value.
func (r *VarintReader) GetDouble() (float64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(endian.GetLittleEndianEngine().Uint64(b)), nil
}

// GetUnsignedVarInt reads an unsigned LEB128-encoded uint32. It fails if the
// encoding uses more than 5 bytes (§6.3).
func (r *VarintReader) GetUnsignedVarInt() (uint32, error) {
	v, err := r.getUnsignedVarintN(maxVarint32Bytes)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}

// GetUnsignedVarInt64 reads an unsigned LEB128-encoded uint64, up to 10
// bytes.
func (r *VarintReader) GetUnsignedVarInt64() (uint64, error) {
	return r.getUnsignedVarintN(maxVarint64Bytes)
}

func (r *VarintReader) getUnsignedVarintN(maxBytes int) (uint64, error) {
	if r.overflowed {
		return 0, errs.ErrOverflowed
	}

	var result uint64
	var shift uint
	for i := 0; i < maxBytes; i++ {
		b, err := r.GetByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}

	return 0, r.fail()
}

// GetVarInt reads a zig-zag-encoded signed LEB128 int32.
func (r *VarintReader) GetVarInt() (int32, error) {
	u, err := r.GetUnsignedVarInt()
	if err != nil {
		return 0, err
	}

	return int32(u>>1) ^ -(int32(u & 1)), nil
}

// GetVarInt64 reads a zig-zag-encoded signed LEB128 int64.
func (r *VarintReader) GetVarInt64() (int64, error) {
	u, err := r.GetUnsignedVarInt64()
	if err != nil {
		return 0, err
	}

	return int64(u>>1) ^ -(int64(u & 1)), nil
}

// GetString reads an unsigned varint length then that many bytes.
func (r *VarintReader) GetString() (string, error) {
	n, err := r.GetUnsignedVarInt()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// VarintWriter is the symmetric writer counterpart of VarintReader.
type VarintWriter struct {
	buf *pool.ByteBuffer
}

// NewVarintWriter creates a VarintWriter backed by a pooled buffer.
func NewVarintWriter() *VarintWriter {
	return &VarintWriter{buf: pool.GetBuffer()}
}

func (w *VarintWriter) Bytes() []byte { return w.buf.Bytes() }
func (w *VarintWriter) Len() int      { return w.buf.Len() }
func (w *VarintWriter) Release()      { pool.PutBuffer(w.buf) }

func (w *VarintWriter) PutBytes(b []byte) {
	w.buf.Grow(len(b))
	w.buf.MustWrite(b)
}

// PutByte appends one unsigned byte.
func (w *VarintWriter) PutByte(v uint8) {
	w.buf.Grow(1)
	w.buf.MustWrite([]byte{v})
}

// PutSignedShort appends a raw little-endian signed 16-bit integer.
func (w *VarintWriter) PutSignedShort(v int16) {
	tmp := make([]byte, 2)
	endian.GetLittleEndianEngine().PutUint16(tmp, uint16(v))
	w.PutBytes(tmp)
}

// PutFloat appends a raw little-endian IEEE-754 binary32 value.
func (w *VarintWriter) PutFloat(v float32) {
	tmp := make([]byte, 4)
	endian.GetLittleEndianEngine().PutUint32(tmp, math.Float32bits(v))
	w.PutBytes(tmp)
}

// PutDouble appends a raw little-endian IEEE-754 binary64 value.
func (w *VarintWriter) PutDouble(v float64) {
	tmp := make([]byte, 8)
	endian.GetLittleEndianEngine().PutUint64(tmp, math.Float64bits(v))
	w.PutBytes(tmp)
}

// PutUnsignedVarInt appends v as an unsigned LEB128 varint.
func (w *VarintWriter) PutUnsignedVarInt(v uint32) {
	w.putUnsignedVarint64(uint64(v))
}

// PutUnsignedVarInt64 appends v as an unsigned LEB128 varint.
func (w *VarintWriter) PutUnsignedVarInt64(v uint64) {
	w.putUnsignedVarint64(v)
}

func (w *VarintWriter) putUnsignedVarint64(v uint64) {
	for v >= 0x80 {
		w.PutByte(byte(v) | 0x80)
		v >>= 7
	}
	w.PutByte(byte(v))
}

// PutVarInt appends v as a zig-zag-encoded signed LEB128 int32.
func (w *VarintWriter) PutVarInt(v int32) {
	u := (uint32(v) << 1) ^ uint32(v>>31)
	w.PutUnsignedVarInt(u)
}

// PutVarInt64 appends v as a zig-zag-encoded signed LEB128 int64.
func (w *VarintWriter) PutVarInt64(v int64) {
	u := (uint64(v) << 1) ^ uint64(v>>63)
	w.PutUnsignedVarInt64(u)
}

// PutString writes an unsigned varint length then s's bytes.
func (w *VarintWriter) PutString(s string) {
	w.PutUnsignedVarInt(uint32(len(s))) //nolint:gosec
	w.PutBytes([]byte(s))
}
