// Package binary implements the five on-wire binary dialects (§4.2): the
// fixed-width LittleEndian/BigEndian pair, each with an optional 8-byte
// storage header, and the LEB128-varint Network dialect. A single pair of
// recursive encode/decode functions drives all five, parameterized over the
// sink/source abstraction in sink_source.go.
package binary

import (
	"github.com/voxelfmt/nbt/endian"
	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/format"
	"github.com/voxelfmt/nbt/internal/options"
	"github.com/voxelfmt/nbt/tag"
)

// Tree is a fully framed top-level NBT document: a named root Compound
// (§6.1), plus the storage header when the dialect carries one.
type Tree struct {
	Name string
	Root *tag.Compound

	// Header is non-nil only when the document was encoded with, or decoded
	// from, a header-bearing dialect.
	Header *Header

	// Overflowed reports whether decoding ran past the end of the input.
	// The returned tree may be structurally incomplete in that case (§4.2.2);
	// callers that need a hard guarantee should run validate.Validate first.
	Overflowed bool
}

// EncodeOption customizes Encode, built on the teacher's generic
// internal/options functional-option plumbing (see blob.NumericEncoderOption
// in the teacher repo) rather than a bespoke closure type.
type EncodeOption = options.Option[*encodeOptions]

type encodeOptions struct {
	storageVersion *int32
}

// WithStorageVersion overrides the header's storage_version field, taking
// precedence over a "StorageVersion" child of the root compound (§6.1).
func WithStorageVersion(v int32) EncodeOption {
	return options.NoError(func(o *encodeOptions) { o.storageVersion = &v })
}

func newSink(d format.Dialect) sink {
	switch {
	case d.IsNetwork():
		return newNetSink()
	case d.IsLittleEndian():
		return newFixedSink(endian.GetLittleEndianEngine())
	default:
		return newFixedSink(endian.GetBigEndianEngine())
	}
}

func newSource(d format.Dialect, data []byte) source {
	switch {
	case d.IsNetwork():
		return newNetSource(data)
	case d.IsLittleEndian():
		return newFixedSource(data, endian.GetLittleEndianEngine())
	default:
		return newFixedSource(data, endian.GetBigEndianEngine())
	}
}

// headerEngine returns the byte order of the 8-byte storage header, which
// follows the dialect it is attached to: big-endian for BigEndianHdr,
// little-endian otherwise.
func headerEngine(d format.Dialect) endian.EndianEngine {
	if d == format.BigEndianHdr {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Encode serializes t using dialect d, returning the complete framed byte
// stream (§4.2, §6.1).
func Encode(t *Tree, d format.Dialect, opts ...EncodeOption) ([]byte, error) {
	var o encodeOptions
	if err := options.Apply(&o, opts...); err != nil {
		return nil, err
	}

	s := newSink(d)
	defer s.Release()

	var fs *fixedSink
	if d.HasHeader() {
		// Header-bearing dialects only ever use the fixed-width sink (Network
		// has no header). Reserve the 8-byte placeholder up front so the
		// payload that follows lands at the same offsets it will occupy in
		// the final stream, then backpatch it once the payload length is
		// known (§6.1).
		fs = s.(*fixedSink)
		fs.w.PutBytes(make([]byte, format.HeaderSize))
	}

	s.Byte(uint8(tag.KindCompound))
	s.Str(t.Name)
	encodeCompound(s, t.Root)

	payload := s.Bytes()

	if !d.HasHeader() {
		out := make([]byte, len(payload))
		copy(out, payload)

		return out, nil
	}

	sv := resolveStorageVersion(t.Root, o.storageVersion)
	hdr := make([]byte, format.HeaderSize)
	eng := headerEngine(d)
	eng.PutUint32(hdr[0:4], uint32(sv)) //nolint:gosec
	eng.PutUint32(hdr[4:8], uint32(len(payload)-format.HeaderSize))
	fs.w.WriteAt(0, hdr)

	out := make([]byte, len(payload))
	copy(out, s.Bytes())

	return out, nil
}

// Decode parses a framed byte stream under dialect d (§4.2, §6.1).
//
// Decode is lenient about truncated payloads: a short read marks the
// returned Tree as Overflowed and the affected fields take their zero value,
// rather than aborting the parse (§4.2.2). It returns an error only when no
// tree can be produced at all: the input is too short to even carry the
// header/root framing, or the root tag is not a Compound.
func Decode(data []byte, d format.Dialect) (*Tree, error) {
	var hdr *Header
	body := data

	if d.HasHeader() {
		if len(data) < format.HeaderSize {
			return nil, errs.ErrShortBuffer
		}
		eng := headerEngine(d)
		hdr = &Header{
			StorageVersion: int32(eng.Uint32(data[0:4])), //nolint:gosec
			PayloadLength:  int32(eng.Uint32(data[4:8])), //nolint:gosec
		}
		body = data[format.HeaderSize:]
	}

	src := newSource(d, body)

	rootKind, err := src.Byte()
	if err != nil {
		return nil, errs.ErrShortBuffer
	}
	if tag.Kind(rootKind) != tag.KindCompound {
		return nil, errs.ErrRootNotCompound
	}

	name, _ := src.Str()
	root := decodeCompound(src)

	return &Tree{
		Name:       name,
		Root:       root,
		Header:     hdr,
		Overflowed: src.IsOverflowed(),
	}, nil
}
