package nbt

import (
	"fmt"

	"github.com/voxelfmt/nbt/binary"
	"github.com/voxelfmt/nbt/compress"
	"github.com/voxelfmt/nbt/detect"
	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/format"
	"github.com/voxelfmt/nbt/snbt"
	"github.com/voxelfmt/nbt/variant"
)

// DecodeOptions customizes Decode.
type DecodeOptions struct {
	// Dialect, if non-zero, skips auto-detection and decodes data under this
	// dialect directly.
	Dialect format.Dialect

	// Compression, if non-zero, skips auto-detection and decompresses data
	// with this algorithm before decoding. CompressionNone means "data is
	// already the raw encoded stream".
	Compression format.CompressionType

	// LenientMatchSize allows the detected dialect's validator to accept a
	// valid prefix of data rather than requiring it to consume every byte.
	// Detection defaults to strict, since several dialects can otherwise
	// validate the same short prefix ambiguously (§4.6).
	LenientMatchSize bool
}

// DecodeOption customizes Decode.
type DecodeOption func(*DecodeOptions)

// WithDialect skips dialect auto-detection and decodes under d.
func WithDialect(d format.Dialect) DecodeOption {
	return func(o *DecodeOptions) { o.Dialect = d }
}

// WithCompression skips compression auto-detection and decompresses with c.
func WithCompression(c format.CompressionType) DecodeOption {
	return func(o *DecodeOptions) { o.Compression = c }
}

// WithLenientMatchSize allows dialect detection to accept a valid prefix of
// data instead of requiring the whole buffer to match.
func WithLenientMatchSize() DecodeOption {
	return func(o *DecodeOptions) { o.LenientMatchSize = true }
}

// Decode decompresses and decodes data into a binary.Tree, auto-detecting
// both the compression wrapper and the binary dialect unless overridden by
// WithCompression/WithDialect (§4.6).
func Decode(data []byte, opts ...DecodeOption) (*binary.Tree, error) {
	var o DecodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	compType := o.Compression
	if compType == 0 {
		var ok bool
		compType, ok = detect.ContentCompression(data)
		if !ok {
			return nil, errs.ErrUnsupportedCompression
		}
	}

	payload := data
	if compType != format.CompressionNone {
		codec, err := compress.GetCodec(compType)
		if err != nil {
			return nil, fmt.Errorf("nbt: decode: %w", err)
		}
		payload, err = codec.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("nbt: decode: %w", err)
		}
	}

	dialect := o.Dialect
	if dialect == 0 {
		var ok bool
		dialect, ok = detect.ContentFormat(payload, !o.LenientMatchSize)
		if !ok {
			return nil, errs.ErrUnsupportedDialect
		}
	}

	return binary.Decode(payload, dialect)
}

// Encode serializes t under dialect and, when compression is not
// format.CompressionNone, compresses the resulting stream at the package
// default compression level (§4.2, §6.2). Pass binary.EncodeOption values in
// encOpts to customize header framing (e.g. binary.WithStorageVersion).
func Encode(t *binary.Tree, dialect format.Dialect, compression format.CompressionType, encOpts ...binary.EncodeOption) ([]byte, error) {
	payload, err := binary.Encode(t, dialect, encOpts...)
	if err != nil {
		return nil, fmt.Errorf("nbt: encode: %w", err)
	}

	if compression == format.CompressionNone {
		return payload, nil
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("nbt: encode: %w", err)
	}

	out, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("nbt: encode: %w", err)
	}

	return out, nil
}

// ParseSNBT reads a single SNBT value from s, returning the variant.Value
// façade wrapping it and the number of bytes consumed.
func ParseSNBT(s string, opts ...snbt.ParseOption) (variant.Value, int, error) {
	return variant.Parse(s, opts...)
}
