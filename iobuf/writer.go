package iobuf

import (
	"math"

	"github.com/voxelfmt/nbt/endian"
	"github.com/voxelfmt/nbt/internal/pool"
)

// Writer appends fixed-width primitives and length-prefixed strings to an
// owned, pooled byte buffer, honoring a configurable endianness. It mirrors
// Reader (§4.1).
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer backed by a pooled buffer.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{buf: pool.GetBuffer(), engine: engine}
}

// Bytes returns the accumulated output. The slice aliases the writer's
// internal buffer and is only valid until the next write.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// Release returns the writer's buffer to the pool. Callers that need the
// bytes past this point must have already copied them out.
func (w *Writer) Release() { pool.PutBuffer(w.buf) }

// PutBytes appends b verbatim.
func (w *Writer) PutBytes(b []byte) {
	w.buf.Grow(len(b))
	w.buf.MustWrite(b)
}

// PutByte appends one unsigned byte.
func (w *Writer) PutByte(v uint8) {
	w.buf.Grow(1)
	w.buf.MustWrite([]byte{v})
}

// PutShort appends a signed 16-bit integer.
func (w *Writer) PutShort(v int16) {
	w.buf.Grow(2)
	tmp := make([]byte, 2)
	w.engine.PutUint16(tmp, uint16(v))
	w.buf.MustWrite(tmp)
}

// PutInt appends a signed 32-bit integer.
func (w *Writer) PutInt(v int32) {
	w.buf.Grow(4)
	tmp := make([]byte, 4)
	w.engine.PutUint32(tmp, uint32(v))
	w.buf.MustWrite(tmp)
}

// PutInt64 appends a signed 64-bit integer.
func (w *Writer) PutInt64(v int64) {
	w.buf.Grow(8)
	tmp := make([]byte, 8)
	w.engine.PutUint64(tmp, uint64(v))
	w.buf.MustWrite(tmp)
}

// PutFloat appends an IEEE-754 binary32 value.
func (w *Writer) PutFloat(v float32) {
	w.buf.Grow(4)
	tmp := make([]byte, 4)
	w.engine.PutUint32(tmp, math.Float32bits(v))
	w.buf.MustWrite(tmp)
}

// PutDouble appends an IEEE-754 binary64 value.
func (w *Writer) PutDouble(v float64) {
	w.buf.Grow(8)
	tmp := make([]byte, 8)
	w.engine.PutUint64(tmp, math.Float64bits(v))
	w.buf.MustWrite(tmp)
}

// PutString writes a signed 16-bit length then s's bytes.
func (w *Writer) PutString(s string) {
	w.PutShort(int16(len(s))) //nolint:gosec
	w.PutBytes([]byte(s))
}

// PutLongString writes a signed 32-bit length then s's bytes.
func (w *Writer) PutLongString(s string) {
	w.PutInt(int32(len(s))) //nolint:gosec
	w.PutBytes([]byte(s))
}

// WriteAt overwrites the header-sized prefix of the buffer with header,
// used by the header-bearing dialects to backpatch payload_length once the
// payload has been fully encoded.
func (w *Writer) WriteAt(offset int, data []byte) {
	copy(w.buf.Bytes()[offset:offset+len(data)], data)
}
