package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/voxelfmt/nbt/format"
)

// GzipCompressor wraps klauspost/compress's gzip implementation, one of the
// two compression wrappers the format names explicitly (§6.2).
type GzipCompressor struct {
	level int
}

var _ Codec = GzipCompressor{}

// NewGzipCompressor creates a gzip codec at level, or the package default
// when level is format.DefaultLevel.
func NewGzipCompressor(level format.CompressionLevel) GzipCompressor {
	l := int(level)
	if level == format.DefaultLevel {
		l = gzip.DefaultCompression
	}

	return GzipCompressor{level: l}
}

func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, c.level)
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

func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
