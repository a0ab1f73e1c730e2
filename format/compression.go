package format

// CompressionType identifies the outer byte-stream wrapper applied after
// binary encoding (§6.2). None/Gzip/Zlib are the spec-mandated wrappers;
// Zstd, S2, and LZ4 are additional dialects this module supports for the
// same collaborator interface, following the teacher's compression registry.
type CompressionType uint8

const (
	// CompressionNone applies no wrapper; the binary payload is used as-is.
	CompressionNone CompressionType = 0x1
	// CompressionGzip wraps the payload in a gzip stream (magic 1F 8B).
	CompressionGzip CompressionType = 0x2
	// CompressionZlib wraps the payload in a zlib stream (magic 78 {01,9C,DA}).
	CompressionZlib CompressionType = 0x3
	// CompressionZstd wraps the payload in a Zstandard frame.
	CompressionZstd CompressionType = 0x4
	// CompressionS2 wraps the payload in an S2 (Snappy-compatible) stream.
	CompressionS2 CompressionType = 0x5
	// CompressionLZ4 wraps the payload in a raw LZ4 block.
	CompressionLZ4 CompressionType = 0x6
)

// String returns the human-readable compression type name.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionLevel mirrors zlib/gzip's conventional level range: -1 selects
// the implementation default, 0 disables compression, 1-9 trade speed for
// ratio (§6.2).
type CompressionLevel int

// DefaultLevel requests the codec's own default compression level.
const DefaultLevel CompressionLevel = -1
