package validate

import (
	"github.com/voxelfmt/nbt/endian"
	"github.com/voxelfmt/nbt/format"
	"github.com/voxelfmt/nbt/iobuf"
)

// reader is validate's own minimal read-side dialect abstraction. It mirrors
// binary's unexported source interface (same per-tag wire rules, §4.2) but
// is kept separate and unexported so the validator never needs to import,
// or construct, a single tag.Tag — it only ever asks "did that many bytes
// exist", which is the entire point of a non-materializing pass (§4.3).
type reader interface {
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
}

type fixedReader struct{ r *iobuf.Reader }

func (f fixedReader) Byte() (uint8, error)     { return f.r.GetByte() }
func (f fixedReader) Short() (int16, error)    { return f.r.GetShort() }
func (f fixedReader) Int() (int32, error)      { return f.r.GetInt() }
func (f fixedReader) Long() (int64, error)     { return f.r.GetInt64() }
func (f fixedReader) Float() (float32, error)  { return f.r.GetFloat() }
func (f fixedReader) Double() (float64, error) { return f.r.GetDouble() }
func (f fixedReader) RawBytes(n int) ([]byte, error) {
	return f.r.ReadBytes(n)
}
func (f fixedReader) Len() (int, error) {
	n, err := f.r.GetInt()
	return int(n), err
}
func (f fixedReader) Str() (string, error) { return f.r.GetString() }
func (f fixedReader) Position() int        { return f.r.Position() }
func (f fixedReader) Size() int            { return f.r.Size() }

type netReader struct{ r *iobuf.VarintReader }

func (n netReader) Byte() (uint8, error)     { return n.r.GetByte() }
func (n netReader) Short() (int16, error)    { return n.r.GetSignedShort() }
func (n netReader) Int() (int32, error)      { return n.r.GetVarInt() }
func (n netReader) Long() (int64, error)     { return n.r.GetVarInt64() }
func (n netReader) Float() (float32, error)  { return n.r.GetFloat() }
func (n netReader) Double() (float64, error) { return n.r.GetDouble() }
func (n netReader) RawBytes(b int) ([]byte, error) {
	return n.r.ReadBytes(b)
}
func (n netReader) Len() (int, error) {
	v, err := n.r.GetUnsignedVarInt()
	return int(v), err
}
func (n netReader) Str() (string, error) { return n.r.GetString() }
func (n netReader) Position() int        { return n.r.Position() }
func (n netReader) Size() int            { return n.r.Size() }

func newReader(d format.Dialect, body []byte) reader {
	switch {
	case d.IsNetwork():
		return netReader{r: iobuf.NewVarintReader(body)}
	case d.IsLittleEndian():
		return fixedReader{r: iobuf.NewReader(body, endian.GetLittleEndianEngine())}
	default:
		return fixedReader{r: iobuf.NewReader(body, endian.GetBigEndianEngine())}
	}
}
