package compress

// ZstdCompressor wraps Zstandard, an additional compression dialect beyond
// the two the format names explicitly (§6.2) — favors ratio over speed.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
