// Package nbt implements Named Binary Tag: Mojang's tagged binary format for
// hierarchical game data, plus its human-readable stringified form (SNBT).
//
// # Core features
//
//   - A 13-variant tag value type (tag.Tag) covering the primitive, array,
//     and container kinds NBT defines
//   - Five on-wire binary dialects: little/big-endian, with or without the
//     8-byte storage header, plus the LEB128-varint network dialect
//   - Format and compression auto-detection, and a non-materializing
//     structural validator
//   - A full SNBT parser and serializer, including a lossy JSON projection
//   - An optional JSON-like façade (variant.Value) for callers that want
//     dynamic indexing and checked coercions instead of the typed tag API
//   - Six compression wrappers applied to the complete encoded stream: None,
//     Gzip, Zlib (the two the format itself anticipates), and Zstd, S2, LZ4
//     as additional supported dialects
//
// # Package structure
//
// This package provides convenience wrappers around binary, snbt, detect,
// and compress for the common round trip: detect dialect and compression,
// decompress, decode; or encode, compress. For fine-grained control (custom
// storage_version handling, streaming a specific dialect, picking a
// non-default compression level) use those packages directly.
//
// # Basic usage
//
// Decoding an unknown blob:
//
//	tree, err := nbt.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := tree.Root.Get("Name")
//
// Encoding a tree back to bytes, compressed:
//
//	out, err := nbt.Encode(tree, format.LittleEndian, format.CompressionGzip)
//
// Working with SNBT text:
//
//	v, _, err := nbt.ParseSNBT(`{Name: "Steve", Health: 20.0f}`)
//	text := v.ToSNBT(snbt.Default, 2)
package nbt
