package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/voxelfmt/nbt/format"
)

// ZlibCompressor wraps klauspost/compress's zlib implementation, the second
// of the two compression wrappers the format names explicitly (§6.2).
type ZlibCompressor struct {
	level int
}

var _ Codec = ZlibCompressor{}

// NewZlibCompressor creates a zlib codec at level, or the package default
// when level is format.DefaultLevel.
func NewZlibCompressor(level format.CompressionLevel) ZlibCompressor {
	l := int(level)
	if level == format.DefaultLevel {
		l = zlib.DefaultCompression
	}

	return ZlibCompressor{level: l}
}

func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
