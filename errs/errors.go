// Package errs collects the sentinel errors returned across the nbt module.
//
// Callers should use errors.Is against these values rather than matching on
// error strings.
package errs

import "errors"

var (
	// ErrShortBuffer is returned when a reader or writer is asked to consume or
	// produce more bytes than are available.
	ErrShortBuffer = errors.New("nbt: short buffer")

	// ErrOverflowed is returned by an operation attempted on a reader that has
	// already failed once; see the sticky-overflow behavior in iobuf.Reader.
	ErrOverflowed = errors.New("nbt: reader has overflowed")

	// ErrInvalidTagType is returned when a byte does not correspond to any
	// known tag type code.
	ErrInvalidTagType = errors.New("nbt: invalid tag type")

	// ErrWrongTagType is returned by a typed accessor called on the wrong tag
	// variant, e.g. asking an Int tag for its List payload.
	ErrWrongTagType = errors.New("nbt: wrong tag type")

	// ErrListElementType is returned when an element appended to a non-empty
	// List does not match the List's recorded element type.
	ErrListElementType = errors.New("nbt: list element type mismatch")

	// ErrUnsupportedDialect is returned when no binary dialect could decode or
	// validate a byte stream.
	ErrUnsupportedDialect = errors.New("nbt: unsupported or undetectable dialect")

	// ErrRootNotCompound is returned when the top-level tag is not a Compound,
	// violating the mandatory top-level framing (§4.2, §6.1).
	ErrRootNotCompound = errors.New("nbt: root tag is not a compound")

	// ErrTrailingBytes is returned by snbt.Parse under WithStrictTrailing when
	// input remains after a complete, well-formed parse.
	ErrTrailingBytes = errors.New("nbt: trailing bytes after parse")

	// ErrSyntax is returned by the SNBT parser on any lexical or grammatical
	// failure: unterminated string, unknown escape, unbalanced brackets,
	// missing key separator, and so on.
	ErrSyntax = errors.New("nbt: snbt syntax error")

	// ErrNumberRange is returned when an SNBT numeric literal overflows the
	// range implied by its declared type suffix.
	ErrNumberRange = errors.New("nbt: number out of range for suffix")

	// ErrInvalidSurrogate is returned when a \u escape sequence contains a
	// lone UTF-16 surrogate with no matching partner.
	ErrInvalidSurrogate = errors.New("nbt: invalid surrogate pair")

	// ErrDomain is returned by variant façade coercions when the underlying
	// tag's kind does not support the requested view.
	ErrDomain = errors.New("nbt: domain error")

	// ErrUnsupportedCompression is returned when a compression type code is
	// not recognized by the detector or codec registry.
	ErrUnsupportedCompression = errors.New("nbt: unsupported compression type")
)
