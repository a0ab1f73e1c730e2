// Package compress wraps a complete encoded NBT byte stream in an outer
// compression codec (§6.2). Compression is applied after binary encoding
// (and its optional header), never inside it — a Tree is fully encoded
// first, then the resulting bytes are handed to a Codec as an opaque blob.
//
// Gzip and Zlib are the two wrappers the format names explicitly. Zstd, S2,
// and LZ4 are additional codecs this module also supports through the same
// Codec interface, so the reader/writer paths can produce and read any of
// the six. detect.ContentCompression recognizes only Gzip and Zlib and
// reports anything else as None; Zstd, S2, or LZ4 input is decoded only when
// the compression is named explicitly (nbt.WithCompression).
//
//	codec, err := compress.GetCodec(format.CompressionGzip)
//	compressed, err := codec.Compress(encoded)
//	...
//	original, err := codec.Decompress(compressed)
package compress
