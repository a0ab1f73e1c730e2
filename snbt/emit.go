package snbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voxelfmt/nbt/tag"
)

// emitter accumulates SNBT text under a fixed Flags combination and indent
// width (§4.4.2). dumpJSON narrows emission to the JSON projection: bare
// numbers, no type markers, numeric arrays collapsed to plain arrays.
type emitter struct {
	flags    Flags
	indent   int
	dumpJSON bool
	buf      strings.Builder
}

// Emit serializes t to SNBT text under flags, indenting nested containers by
// indent spaces per level (§4.4.2). indent of 0 combined with a line-feed
// flag still breaks lines unless ForceLineFeedIgnoreIndent is absent, in
// which case containers with no indent stay on one line (matching the
// "isMinimize" rule of the source serializer).
func Emit(t tag.Tag, flags Flags, indent int) string {
	e := &emitter{flags: flags, indent: indent}
	e.value(t, 0)

	return e.buf.String()
}

// ToJSON renders t as JSON text (§4.4.2's JSON mode, §9): AlwaysLineFeed |
// ForceQuote with bare numeric literals, no type markers, and the three
// numeric array kinds collapsed to plain JSON arrays of numbers. This
// direction is lossy: a round trip through ToJSON cannot recover whether a
// numeric array was ByteArray, IntArray, or LongArray (§9).
func ToJSON(t tag.Tag, indent int) string {
	e := &emitter{flags: AlwaysLineFeed | ForceQuote, indent: indent, dumpJSON: true}
	e.value(t, 0)

	return e.buf.String()
}

// isMinimize reports whether no line-feed flag applies at all, meaning
// containers render fully inline with no internal newlines (matching the
// source serializer's same-named predicate).
func (e *emitter) isMinimize() bool {
	if e.flags.Has(ForceLineFeedIgnoreIndent) {
		return false
	}

	return e.indent == 0 || !e.flags.anyLineFeed()
}

func (e *emitter) writeIndent(depth int) {
	for i := 0; i < depth*e.indent; i++ {
		e.buf.WriteByte(' ')
	}
}

func (e *emitter) value(t tag.Tag, depth int) {
	switch t.Kind() {
	case tag.KindEnd:
		e.buf.WriteString("null")
	case tag.KindByte:
		v, _ := t.Byte()
		e.numeric(strconv.FormatInt(int64(v), 10), 'b', false)
	case tag.KindShort:
		v, _ := t.Short()
		e.numeric(strconv.FormatInt(int64(v), 10), 's', false)
	case tag.KindInt:
		v, _ := t.Int()
		e.numeric(strconv.FormatInt(int64(v), 10), 'i', e.flags.Has(MarkIntTag))
	case tag.KindLong:
		v, _ := t.Long()
		e.numeric(strconv.FormatInt(v, 10), 'l', false)
	case tag.KindFloat:
		v, _ := t.Float()
		e.numeric(strconv.FormatFloat(float64(v), 'g', -1, 32), 'f', false)
	case tag.KindDouble:
		v, _ := t.Double()
		lit := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(lit, ".eIN") {
			lit += ".0"
		}
		e.numeric(lit, 'd', e.flags.Has(MarkDoubleTag))
	case tag.KindString:
		v, _ := t.String()
		e.stringValue(v)
	case tag.KindByteArray:
		v, _ := t.ByteArray()
		e.numArray('B', len(v), func(i int) string {
			return strconv.FormatInt(int64(v[i]), 10)
		}, true, depth)
	case tag.KindIntArray:
		v, _ := t.IntArray()
		e.numArray('I', len(v), func(i int) string {
			return strconv.FormatInt(int64(v[i]), 10)
		}, e.flags.Has(MarkIntTag), depth)
	case tag.KindLongArray:
		v, _ := t.LongArray()
		e.numArray('L', len(v), func(i int) string {
			return strconv.FormatInt(v[i], 10)
		}, true, depth)
	case tag.KindList:
		l, _ := t.List()
		e.list(l, depth)
	case tag.KindCompound:
		c, _ := t.Compound()
		e.compound(c, depth)
	}
}

// numeric writes a bare numeric literal, optionally followed by its type
// marker letter (§4.4.1). extraMark forces the marker even when it would
// otherwise be suppressed (Byte/Short/Long/Float are always marked; Int and
// Double only when the corresponding Mark*Tag flag is set).
func (e *emitter) numeric(literal string, mark byte, extraMark bool) {
	if e.dumpJSON {
		e.buf.WriteString(literal)

		return
	}

	e.buf.WriteString(literal)

	always := mark == 'b' || mark == 's' || mark == 'l' || mark == 'f'
	if !always && !extraMark {
		return
	}

	e.writeMark(mark)
}

func (e *emitter) writeMark(mark byte) {
	letter := mark
	if e.flags.Has(ForceUppercase) {
		letter = letter - 'a' + 'A'
	}

	if e.flags.Has(CommentMarks) {
		e.buf.WriteString(" /*")
		e.buf.WriteByte(letter)
		e.buf.WriteString("*/")

		return
	}

	e.buf.WriteByte(letter)
}

// numArray writes a [B;...]/[I;...]/[L;...] array (§4.4.1). elemMark
// reports whether each element additionally carries its own trailing type
// marker (Byte and Long elements always do; Int elements only under
// MarkIntTag). In dumpJSON mode the array collapses to a plain JSON array
// with no prefix and no per-element markers (§4.4.2, §9).
func (e *emitter) numArray(code byte, n int, elem func(i int) string, elemMark bool, depth int) {
	if e.dumpJSON {
		e.plainArray(n, func(i int) string { return elem(i) })

		return
	}

	e.buf.WriteByte('[')
	if e.flags.Has(CommentMarks) {
		e.buf.WriteString(" /*")
		e.buf.WriteByte(codeLetter(code, e.flags))
		e.buf.WriteString(";*/")
	} else {
		e.buf.WriteByte(codeLetter(code, e.flags))
		e.buf.WriteByte(';')
	}

	breakLines := e.flags.Has(BinaryArrayLineFeed) && !e.isMinimize()
	for i := 0; i < n; i++ {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if breakLines {
			e.buf.WriteByte('\n')
			e.writeIndent(depth + 1)
		} else if i > 0 {
			e.buf.WriteByte(' ')
		}
		e.buf.WriteString(elem(i))
		var mark byte
		switch code {
		case 'B':
			mark = 'b'
		case 'I':
			mark = 'i'
		case 'L':
			mark = 'l'
		}
		if elemMark {
			e.writeMark(mark)
		}
	}
	if breakLines && n > 0 {
		e.buf.WriteByte('\n')
		e.writeIndent(depth)
	}
	e.buf.WriteByte(']')
}

// codeLetter returns the array prefix letter, which is always the uppercase
// B/I/L that the parser recognizes, whatever the flags.
func codeLetter(code byte, _ Flags) byte {
	return code
}

func (e *emitter) plainArray(n int, elem func(i int) string) {
	e.buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.buf.WriteString(elem(i))
	}
	e.buf.WriteByte(']')
}

func (e *emitter) list(l *tag.List, depth int) {
	n := l.Len()
	if e.dumpJSON {
		e.buf.WriteByte('[')
		if n > 0 {
			e.buf.WriteByte('\n')
		}
		for i := 0; i < n; i++ {
			v, _ := l.Get(i)
			e.writeIndent(depth + 1)
			e.value(v, depth+1)
			if i < n-1 {
				e.buf.WriteByte(',')
			}
			e.buf.WriteByte('\n')
		}
		if n > 0 {
			e.writeIndent(depth)
		}
		e.buf.WriteByte(']')

		return
	}

	breakLines := e.flags.Has(ListArrayLineFeed) && !e.isMinimize()
	e.buf.WriteByte('[')
	for i := 0; i < n; i++ {
		v, _ := l.Get(i)
		if breakLines {
			e.buf.WriteByte('\n')
			e.writeIndent(depth + 1)
		} else if i > 0 {
			e.buf.WriteString(", ")
		}
		e.value(v, depth+1)
		if breakLines && i < n-1 {
			e.buf.WriteByte(',')
		}
	}
	if breakLines && n > 0 {
		e.buf.WriteByte('\n')
		e.writeIndent(depth)
	}
	e.buf.WriteByte(']')
}

func (e *emitter) compound(c *tag.Compound, depth int) {
	keys := c.Keys()
	n := len(keys)

	breakLines := e.dumpJSON || (e.flags.Has(CompoundLineFeed) && !e.isMinimize())
	e.buf.WriteByte('{')
	for i, k := range keys {
		v, _ := c.Get(k)
		if breakLines {
			e.buf.WriteByte('\n')
			e.writeIndent(depth + 1)
		} else if i > 0 {
			e.buf.WriteString(", ")
		}
		e.key(k)
		e.buf.WriteByte(':')
		e.buf.WriteByte(' ')
		e.value(v, depth+1)
		if breakLines && i < n-1 {
			e.buf.WriteByte(',')
		}
	}
	if breakLines && n > 0 {
		e.buf.WriteByte('\n')
		e.writeIndent(depth)
	}
	e.buf.WriteByte('}')
}

func (e *emitter) key(k string) {
	if e.dumpJSON {
		e.writeQuoted(k)

		return
	}

	if !e.flags.Has(ForceQuote) && isTrivialKey(k) {
		e.buf.WriteString(k)

		return
	}

	e.writeQuoted(k)
}

// isTrivialKey reports whether k can be written unquoted: every byte is an
// unquoted-identifier character and, unlike value triviality, a key is never
// ambiguous with a number since it is always followed by ':' or '=' (§4.4.2).
func isTrivialKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		if !isUnquotedChar(k[i]) {
			return false
		}
	}

	return true
}

// stringValue writes a String tag's payload, choosing between unquoted,
// quoted, and base64-fallback spellings (§4.4.2, §4.4.4).
func (e *emitter) stringValue(s string) {
	if !validUTF8([]byte(s)) {
		e.writeQuoted(encodeBase64([]byte(s)))
		e.buf.WriteString(base64Marker)

		return
	}

	if e.dumpJSON || e.flags.Has(ForceQuote) || !isTrivialValue(s) {
		e.writeQuoted(s)

		return
	}

	e.buf.WriteString(s)
}

// isTrivialValue reports whether s can be written unquoted as a value. A
// value beginning with a digit, '-', '+', or '.' is never trivial: the parser
// reads a leading digit, '-', or '.' followed by a digit as a number, and a
// leading '+' is quoted as well (matching the source serializer's
// key-vs-value distinction).
func isTrivialValue(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '-', '+', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return false
	}
	switch s {
	case "true", "false", "null":
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUnquotedChar(s[i]) {
			return false
		}
	}

	return true
}

func (e *emitter) writeQuoted(s string) {
	e.buf.WriteByte('"')
	if e.flags.Has(ForceAscii) {
		e.writeAsciiEscaped(s)
	} else {
		e.writeEscaped(s)
	}
	e.buf.WriteByte('"')
}

func (e *emitter) writeEscaped(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			e.buf.WriteString(`\"`)
		case '\\':
			e.buf.WriteString(`\\`)
		case '\n':
			e.buf.WriteString(`\n`)
		case '\r':
			e.buf.WriteString(`\r`)
		case '\t':
			e.buf.WriteString(`\t`)
		default:
			e.buf.WriteByte(c)
		}
	}
}

// writeAsciiEscaped escapes every non-ASCII codepoint as \uXXXX, emitting a
// surrogate pair for codepoints above the BMP (§4.4.2, ForceAscii).
func (e *emitter) writeAsciiEscaped(s string) {
	for _, r := range s {
		switch {
		case r == '"':
			e.buf.WriteString(`\"`)
		case r == '\\':
			e.buf.WriteString(`\\`)
		case r == '\n':
			e.buf.WriteString(`\n`)
		case r == '\r':
			e.buf.WriteString(`\r`)
		case r == '\t':
			e.buf.WriteString(`\t`)
		case r < 0x80:
			e.buf.WriteByte(byte(r))
		case r <= 0xFFFF:
			fmt.Fprintf(&e.buf, `\u%04x`, r)
		default:
			r -= 0x10000
			hi := 0xD800 + (r >> 10)
			lo := 0xDC00 + (r & 0x3FF)
			fmt.Fprintf(&e.buf, `\u%04x\u%04x`, hi, lo)
		}
	}
}
