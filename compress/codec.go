package compress

import (
	"fmt"

	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/format"
)

// Compressor compresses a full NBT byte stream (§6.2): a complete dialect-
// encoded Tree, optionally already header-framed, compressed whole rather
// than field by field.
type Compressor interface {
	// Compress compresses data and returns the compressed result. The
	// returned slice is newly allocated; data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's Compress.
type Decompressor interface {
	// Decompress decompresses data that was produced by the matching
	// Compressor. Returns an error if data is corrupted or was compressed
	// with a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of one compress/decompress operation,
// for callers that want to log or compare codec effectiveness.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// Ratio is the ratio of compressed size to original size (< 1.0 for compression)
	Ratio float64

	// CompressionTimeNs is the time taken to compress the data, in nanoseconds
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data (if applicable), in nanoseconds
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size. Below 1.0 means
// the data shrank; at or above 1.0 means no benefit or overhead.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec builds a Codec for compressionType at level (format.DefaultLevel
// for Zstd/S2/LZ4/None, which don't expose a level knob here). target names
// the caller's use site, for the error message on an unrecognized type.
func CreateCodec(compressionType format.CompressionType, level format.CompressionLevel, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(level), nil
	case format.CompressionZlib:
		return NewZlibCompressor(level), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

// GetCodec retrieves a built-in Codec for compressionType at the package
// default compression level.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(format.DefaultLevel), nil
	case format.CompressionZlib:
		return NewZlibCompressor(format.DefaultLevel), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
	}
}
