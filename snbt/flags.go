package snbt

// Flags controls SNBT emission (§4.4.2). Each flag is one bit; they combine
// by bitwise OR, mirroring the source format's SnbtFormat bitmask.
type Flags uint16

const (
	// CompoundLineFeed puts each Compound entry on its own indented line.
	CompoundLineFeed Flags = 1 << iota
	// ListArrayLineFeed puts each List element on its own indented line.
	ListArrayLineFeed
	// BinaryArrayLineFeed puts each Byte/Int/Long-array element on its own
	// indented line.
	BinaryArrayLineFeed
	// ForceLineFeedIgnoreIndent applies line-feed formatting even when the
	// indent width is 0.
	ForceLineFeedIgnoreIndent
	// ForceAscii escapes any non-ASCII character using \uXXXX, including
	// surrogate pairs for codepoints above the BMP.
	ForceAscii
	// ForceQuote always quotes strings, even when they would be legal
	// unquoted.
	ForceQuote
	// ForceUppercase uppercases the numeric type marker suffix letter.
	ForceUppercase
	// MarkIntTag emits an explicit 'i' suffix on Int values (otherwise
	// omitted, since a bare integer in Int range already defaults to Int).
	MarkIntTag
	// MarkDoubleTag emits an explicit 'd' suffix on Double values
	// (otherwise omitted, since a bare fractional literal already defaults
	// to Double).
	MarkDoubleTag
	// CommentMarks emits the numeric type marker as a /* ... */ comment
	// rather than a bare trailing letter.
	CommentMarks
)

// ArrayLineFeed combines the List and numeric-array line-feed flags.
const ArrayLineFeed = ListArrayLineFeed | BinaryArrayLineFeed

// AlwaysLineFeed combines every line-feed flag.
const AlwaysLineFeed = CompoundLineFeed | ArrayLineFeed

// MarkExtra combines the two optional numeric-tag markers.
const MarkExtra = MarkIntTag | MarkDoubleTag

// PrettyFilePrint is the conventional "pretty-printed" combination: each
// compound entry and list element on its own line, arrays left inline.
const PrettyFilePrint = CompoundLineFeed | ListArrayLineFeed

// Classic adds ForceQuote to PrettyFilePrint.
const Classic = PrettyFilePrint | ForceQuote

// Default is PrettyFilePrint, this package's zero-config emission style.
const Default = PrettyFilePrint

// Has reports whether every bit in bit is set in f.
func (f Flags) Has(bit Flags) bool { return f&bit == bit }

// anyLineFeed reports whether any of the three line-feed flags is set; used
// by the emitter's isMinimize to decide whether any container may break
// across lines at all.
func (f Flags) anyLineFeed() bool {
	return f.Has(CompoundLineFeed) || f.Has(ListArrayLineFeed) || f.Has(BinaryArrayLineFeed)
}
