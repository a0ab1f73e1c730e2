// Package detect implements format and compression auto-detection (§4.6):
// trying each binary dialect in a fixed precedence order until one validates,
// and recognizing the magic bytes of the supported compression wrappers.
package detect

import (
	"github.com/voxelfmt/nbt/format"
	"github.com/voxelfmt/nbt/validate"
)

// ContentFormat tries each dialect in format.DetectionOrder, returning the
// first whose validator accepts data, and ok=false if none do (§4.6).
func ContentFormat(data []byte, strictMatchSize bool) (d format.Dialect, ok bool) {
	for _, candidate := range format.DetectionOrder {
		if validate.Validate(data, candidate, strictMatchSize) {
			return candidate, true
		}
	}

	return 0, false
}

// gzip and zlib magic bytes (§4.6 via §6.2).
const (
	gzipMagic0 = 0x1F
	gzipMagic1 = 0x8B

	zlibMagic0 = 0x78
)

// zlibMagic1Candidates are the CMF/FLG second bytes zlib commonly emits; the
// exact value depends on the compression level the stream was written with.
var zlibMagic1Candidates = [...]byte{0x01, 0x9C, 0xDA}

// ContentCompression inspects data's leading bytes to identify the
// compression wrapper applied after binary encoding. It returns
// (CompressionNone, true) for input too short to carry any magic, since an
// empty or tiny payload cannot be compressed by any of the recognized
// wrappers.
func ContentCompression(data []byte) (format.CompressionType, bool) {
	if len(data) < 2 {
		return format.CompressionNone, true
	}

	if data[0] == gzipMagic0 && data[1] == gzipMagic1 {
		return format.CompressionGzip, true
	}

	if data[0] == zlibMagic0 {
		for _, b := range zlibMagic1Candidates {
			if data[1] == b {
				return format.CompressionZlib, true
			}
		}
	}

	return format.CompressionNone, true
}
