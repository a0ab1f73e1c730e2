package binary

import (
	"github.com/voxelfmt/nbt/endian"
	"github.com/voxelfmt/nbt/iobuf"
)

// sink abstracts the per-tag wire rules that differ between the fixed-width
// dialects and the Network (varint) dialect (§4.2 table). Every other piece
// of the codec is written once, against this interface.
type sink interface {
	Byte(v uint8)
	Short(v int16)
	Int(v int32)
	Long(v int64)
	Float(v float32)
	Double(v float64)
	RawBytes(b []byte)
	// Len writes a count or length field: int32 for the fixed-width
	// dialects, an unsigned varint for Network. Used for array lengths and
	// List element counts alike, since both share that rule in §4.2.
	Len(n int)
	// Str writes a length-prefixed string: signed int16 length for fixed-width,
	// unsigned-varint-length for Network. Used for both String tags and
	// Compound keys.
	Str(s string)
	Bytes() []byte
	Release()
}

// source is the read-side mirror of sink.
type source interface {
	Byte() (uint8, error)
	Short() (int16, error)
	Int() (int32, error)
	Long() (int64, error)
	Float() (float32, error)
	Double() (float64, error)
	RawBytes(n int) ([]byte, error)
	Len() (int, error)
	Str() (string, error)
	Position() int
	Size() int
	IsOverflowed() bool
}

// fixedSink implements sink for LittleEndian/BigEndian (with or without
// header).
type fixedSink struct{ w *iobuf.Writer }

func newFixedSink(engine endian.EndianEngine) *fixedSink {
	return &fixedSink{w: iobuf.NewWriter(engine)}
}

func (s *fixedSink) Byte(v uint8)      { s.w.PutByte(v) }
func (s *fixedSink) Short(v int16)     { s.w.PutShort(v) }
func (s *fixedSink) Int(v int32)       { s.w.PutInt(v) }
func (s *fixedSink) Long(v int64)      { s.w.PutInt64(v) }
func (s *fixedSink) Float(v float32)   { s.w.PutFloat(v) }
func (s *fixedSink) Double(v float64)  { s.w.PutDouble(v) }
func (s *fixedSink) RawBytes(b []byte) { s.w.PutBytes(b) }
func (s *fixedSink) Len(n int)         { s.w.PutInt(int32(n)) } //nolint:gosec
func (s *fixedSink) Str(v string)      { s.w.PutString(v) }
func (s *fixedSink) Bytes() []byte     { return s.w.Bytes() }
func (s *fixedSink) Release()          { s.w.Release() }

// fixedSource implements source for LittleEndian/BigEndian.
type fixedSource struct{ r *iobuf.Reader }

func newFixedSource(data []byte, engine endian.EndianEngine) *fixedSource {
	return &fixedSource{r: iobuf.NewReader(data, engine)}
}

func (s *fixedSource) Byte() (uint8, error)     { return s.r.GetByte() }
func (s *fixedSource) Short() (int16, error)    { return s.r.GetShort() }
func (s *fixedSource) Int() (int32, error)      { return s.r.GetInt() }
func (s *fixedSource) Long() (int64, error)     { return s.r.GetInt64() }
func (s *fixedSource) Float() (float32, error)  { return s.r.GetFloat() }
func (s *fixedSource) Double() (float64, error) { return s.r.GetDouble() }
func (s *fixedSource) RawBytes(n int) ([]byte, error) {
	return s.r.ReadBytes(n)
}
func (s *fixedSource) Len() (int, error) {
	n, err := s.r.GetInt()
	return int(n), err
}
func (s *fixedSource) Str() (string, error) { return s.r.GetString() }
func (s *fixedSource) Position() int        { return s.r.Position() }
func (s *fixedSource) Size() int            { return s.r.Size() }
func (s *fixedSource) IsOverflowed() bool   { return s.r.IsOverflowed() }

// netSink implements sink for the Network dialect.
type netSink struct{ w *iobuf.VarintWriter }

func newNetSink() *netSink { return &netSink{w: iobuf.NewVarintWriter()} }

func (s *netSink) Byte(v uint8)      { s.w.PutByte(v) }
func (s *netSink) Short(v int16)     { s.w.PutSignedShort(v) }
func (s *netSink) Int(v int32)       { s.w.PutVarInt(v) }
func (s *netSink) Long(v int64)      { s.w.PutVarInt64(v) }
func (s *netSink) Float(v float32)   { s.w.PutFloat(v) }
func (s *netSink) Double(v float64)  { s.w.PutDouble(v) }
func (s *netSink) RawBytes(b []byte) { s.w.PutBytes(b) }
func (s *netSink) Len(n int)         { s.w.PutUnsignedVarInt(uint32(n)) } //nolint:gosec
func (s *netSink) Str(v string)      { s.w.PutString(v) }
func (s *netSink) Bytes() []byte     { return s.w.Bytes() }
func (s *netSink) Release()          { s.w.Release() }

// netSource implements source for the Network dialect.
type netSource struct{ r *iobuf.VarintReader }

func newNetSource(data []byte) *netSource { return &netSource{r: iobuf.NewVarintReader(data)} }

func (s *netSource) Byte() (uint8, error)     { return s.r.GetByte() }
func (s *netSource) Short() (int16, error)    { return s.r.GetSignedShort() }
func (s *netSource) Int() (int32, error)      { return s.r.GetVarInt() }
func (s *netSource) Long() (int64, error)     { return s.r.GetVarInt64() }
func (s *netSource) Float() (float32, error)  { return s.r.GetFloat() }
func (s *netSource) Double() (float64, error) { return s.r.GetDouble() }
func (s *netSource) RawBytes(n int) ([]byte, error) {
	return s.r.ReadBytes(n)
}
func (s *netSource) Len() (int, error) {
	n, err := s.r.GetUnsignedVarInt()
	return int(n), err
}
func (s *netSource) Str() (string, error) { return s.r.GetString() }
func (s *netSource) Position() int        { return s.r.Position() }
func (s *netSource) Size() int            { return s.r.Size() }
func (s *netSource) IsOverflowed() bool   { return s.r.IsOverflowed() }
