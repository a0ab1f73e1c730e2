package snbt

import (
	"strconv"
	"unicode/utf8"

	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/tag"
)

// ParseOption customizes Parse, mirroring the functional-option shape used
// throughout this module (internal/options; see binary.EncodeOption).
type ParseOption func(*parseConfig)

type parseConfig struct {
	requireFullConsume bool
}

// WithStrictTrailing requires Parse to consume the entire input, returning
// errs.ErrTrailingBytes if anything but trailing whitespace/comments remains
// after the parsed value.
func WithStrictTrailing() ParseOption {
	return func(c *parseConfig) { c.requireFullConsume = true }
}

// parser walks an input string left to right. It never backs up except for
// small fixed lookaheads (array-prefix disambiguation), matching the
// source's string_view-slicing parser.
type parser struct {
	s   string
	pos int
}

func (p *parser) rest() string { return p.s[p.pos:] }
func (p *parser) eof() bool    { return p.pos >= len(p.s) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.s[p.pos]
}

func (p *parser) advance(n int) { p.pos += n }

func (p *parser) hasPrefix(prefix string) bool {
	return len(p.rest()) >= len(prefix) && p.rest()[:len(prefix)] == prefix
}

// Parse reads a single SNBT value from the start of s (§4.4.1), returning
// the value and the number of bytes of s consumed by the value plus any
// surrounding whitespace/comments.
func Parse(s string, opts ...ParseOption) (tag.Tag, int, error) {
	var cfg parseConfig
	for _, o := range opts {
		o(&cfg)
	}

	p := &parser{s: s}
	if err := p.skipWhitespace(); err != nil {
		return tag.Tag{}, 0, err
	}

	v, err := p.parseValue()
	if err != nil {
		return tag.Tag{}, 0, err
	}

	if err := p.skipWhitespace(); err != nil {
		return tag.Tag{}, 0, err
	}

	if cfg.requireFullConsume && !p.eof() {
		return tag.Tag{}, 0, errs.ErrTrailingBytes
	}

	return v, p.pos, nil
}

// skipWhitespace consumes runs of ASCII whitespace interleaved with line
// comments (// # ;) and block comments (/* ... */) (§4.4.1).
func (p *parser) skipWhitespace() error {
	for {
		for !p.eof() && isSpace(p.peek()) {
			p.advance(1)
		}
		if p.eof() {
			return nil
		}
		switch p.peek() {
		case '/':
			if p.hasPrefix("/*") {
				if err := p.skipBlockComment(); err != nil {
					return err
				}

				continue
			}
			if p.hasPrefix("//") {
				p.skipLineComment()
				continue
			}

			return nil
		case '#', ';':
			p.skipLineComment()
			continue
		default:
			return nil
		}
	}
}

func (p *parser) skipLineComment() {
	for !p.eof() && p.peek() != '\n' && p.peek() != '\r' {
		p.advance(1)
	}
}

func (p *parser) skipBlockComment() error {
	p.advance(2) // "/*"
	for {
		if p.eof() {
			return errs.ErrSyntax
		}
		if p.hasPrefix("*/") {
			p.advance(2)

			return nil
		}
		p.advance(1)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isUnquotedChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '_' || c == '+' || c == '-' || c == '.'
}

// parseValue dispatches on the next byte to the appropriate production
// (§4.4.1).
func (p *parser) parseValue() (tag.Tag, error) {
	if p.eof() {
		return tag.Tag{}, errs.ErrSyntax
	}

	switch c := p.peek(); {
	case c == '{':
		return p.parseCompound()
	case c == '[':
		return p.parseListOrArray()
	case c == '"' || c == '\'':
		s, err := p.parseQuotedString(c)
		if err != nil {
			return tag.Tag{}, err
		}

		return tag.NewString(s), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '.' && p.pos+1 < len(p.s) && p.s[p.pos+1] >= '0' && p.s[p.pos+1] <= '9':
		return p.parseNumber()
	case p.hasPrefix("true") && !followsIdent(p.s, p.pos+4):
		p.advance(4)

		return tag.NewByte(1), nil
	case p.hasPrefix("false") && !followsIdent(p.s, p.pos+5):
		p.advance(5)

		return tag.NewByte(0), nil
	case p.hasPrefix("null") && !followsIdent(p.s, p.pos+4):
		p.advance(4)

		return tag.End(), nil
	default:
		s, err := p.parseUnquotedString()
		if err != nil {
			return tag.Tag{}, err
		}

		return tag.NewString(s), nil
	}
}

// followsIdent reports whether s[at] continues an unquoted-identifier run,
// which disqualifies a keyword match (e.g. "nullable" is not the keyword
// null).
func followsIdent(s string, at int) bool {
	return at < len(s) && isUnquotedChar(s[at])
}

func (p *parser) parseUnquotedString() (string, error) {
	start := p.pos
	for !p.eof() && isUnquotedChar(p.peek()) {
		p.advance(1)
	}
	if p.pos == start {
		return "", errs.ErrSyntax
	}

	return p.s[start:p.pos], nil
}

// parseKeyOrString parses a Compound key: either a quoted string or an
// unquoted identifier (§4.4.1). Unlike parseValue, a leading digit never
// routes into number parsing here; keys are never ambiguous with numbers
// since they are always followed by ':' or '='.
func (p *parser) parseKeyOrString() (string, error) {
	if p.eof() {
		return "", errs.ErrSyntax
	}
	if c := p.peek(); c == '"' || c == '\'' {
		return p.parseQuotedString(c)
	}

	return p.parseUnquotedString()
}

func (p *parser) parseQuotedString(quote byte) (string, error) {
	p.advance(1) // opening quote
	var out []byte
	for {
		if p.eof() {
			return "", errs.ErrSyntax
		}
		c := p.peek()
		switch {
		case c == quote:
			p.advance(1)
			if quote == '"' && p.hasPrefix(base64Marker) {
				p.advance(len(base64Marker))
				decoded, err := decodeBase64(string(out))
				if err != nil {
					return "", errs.ErrSyntax
				}

				return string(decoded), nil
			}

			return string(out), nil
		case c == '\\':
			p.advance(1)
			decoded, err := p.parseEscape(quote)
			if err != nil {
				return "", err
			}
			out = append(out, decoded...)
		default:
			out = append(out, c)
			p.advance(1)
		}
	}
}

// parseEscape handles one backslash escape sequence (§4.4.1). The caller
// has already consumed the backslash.
func (p *parser) parseEscape(quote byte) ([]byte, error) {
	if p.eof() {
		return nil, errs.ErrSyntax
	}
	c := p.peek()
	p.advance(1)

	switch c {
	case '\n', '\r':
		if err := p.skipWhitespace(); err != nil {
			return nil, err
		}

		return nil, nil
	case '"', '\'':
		if c != quote {
			return nil, errs.ErrSyntax
		}

		return []byte{c}, nil
	case '\\':
		return []byte{'\\'}, nil
	case '/':
		return []byte{'/'}, nil
	case 'b':
		return []byte{'\b'}, nil
	case 'f':
		return []byte{'\f'}, nil
	case 'n':
		return []byte{'\n'}, nil
	case 'r':
		return []byte{'\r'}, nil
	case 't':
		return []byte{'\t'}, nil
	case 'v':
		return []byte{'\v'}, nil
	case 'u':
		return p.parseUnicodeEscape()
	default:
		return nil, errs.ErrSyntax
	}
}

// parseUnicodeEscape handles \uXXXX, including surrogate-pair reassembly up
// to U+10FFFF (§4.4.1, §9).
func (p *parser) parseUnicodeEscape() ([]byte, error) {
	cp1, err := p.readHex4()
	if err != nil {
		return nil, err
	}

	var codepoint rune
	switch {
	case cp1 >= 0xD800 && cp1 <= 0xDBFF:
		if !p.hasPrefix(`\u`) {
			return nil, errs.ErrInvalidSurrogate
		}
		p.advance(2)
		cp2, err := p.readHex4()
		if err != nil {
			return nil, err
		}
		if cp2 < 0xDC00 || cp2 > 0xDFFF {
			return nil, errs.ErrInvalidSurrogate
		}
		codepoint = ((rune(cp1) - 0xD800) << 10) + (rune(cp2) - 0xDC00) + 0x10000
	case cp1 >= 0xDC00 && cp1 <= 0xDFFF:
		return nil, errs.ErrInvalidSurrogate
	default:
		codepoint = rune(cp1)
	}

	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, codepoint)

	return buf[:n], nil
}

func (p *parser) readHex4() (int, error) {
	if len(p.rest()) < 4 {
		return 0, errs.ErrSyntax
	}
	v, err := strconv.ParseInt(p.rest()[:4], 16, 32)
	if err != nil {
		return 0, errs.ErrSyntax
	}
	p.advance(4)

	return int(v), nil
}

func (p *parser) parseCompound() (tag.Tag, error) {
	p.advance(1) // '{'
	c := tag.NewCompoundEmpty()

	if err := p.skipWhitespace(); err != nil {
		return tag.Tag{}, err
	}
	if p.peek() == '}' {
		p.advance(1)

		return tag.NewCompound(c), nil
	}

	for {
		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		key, err := p.parseKeyOrString()
		if err != nil {
			return tag.Tag{}, err
		}
		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		if p.eof() || (p.peek() != ':' && p.peek() != '=') {
			return tag.Tag{}, errs.ErrSyntax
		}
		p.advance(1)
		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		v, err := p.parseValue()
		if err != nil {
			return tag.Tag{}, err
		}
		c.Set(key, v)

		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		if p.eof() {
			return tag.Tag{}, errs.ErrSyntax
		}
		switch p.peek() {
		case '}':
			p.advance(1)

			return tag.NewCompound(c), nil
		case ',':
			p.advance(1)
			if err := p.skipWhitespace(); err != nil {
				return tag.Tag{}, err
			}
			if p.peek() == '}' { // trailing comma
				p.advance(1)

				return tag.NewCompound(c), nil
			}
		default:
			return tag.Tag{}, errs.ErrSyntax
		}
	}
}

// parseListOrArray parses '[' onward, disambiguating a plain List from the
// [B;...]/[I;...]/[L;...] numeric array forms, including their /*X;*/
// block-comment spelling (§4.4.1).
func (p *parser) parseListOrArray() (tag.Tag, error) {
	p.advance(1) // '['

	save := p.pos
	if p.hasPrefix(" /*") {
		// " /*X;*/" spelling: consume " /*", then expect "X;" below, then an
		// optional trailing "*/".
		p.advance(3)
	}

	switch {
	case p.hasPrefix("B;"):
		p.advance(2)
		p.consumeOptional("*/")

		return p.parseNumArray(tag.KindByte)
	case p.hasPrefix("I;"):
		p.advance(2)
		p.consumeOptional("*/")

		return p.parseNumArray(tag.KindInt)
	case p.hasPrefix("L;"):
		p.advance(2)
		p.consumeOptional("*/")

		return p.parseNumArray(tag.KindLong)
	default:
		p.pos = save

		return p.parseList()
	}
}

func (p *parser) consumeOptional(prefix string) {
	if p.hasPrefix(prefix) {
		p.advance(len(prefix))
	}
}

func (p *parser) parseNumArray(kind tag.Kind) (tag.Tag, error) {
	if err := p.skipWhitespace(); err != nil {
		return tag.Tag{}, err
	}
	if p.peek() == ']' {
		p.advance(1)

		return newEmptyArray(kind), nil
	}

	var bytes []byte
	var ints []int32
	var longs []int64

	for {
		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		elem, err := p.parseNumber()
		if err != nil {
			return tag.Tag{}, err
		}
		if elem.Kind() != kind {
			return tag.Tag{}, errs.ErrSyntax
		}
		switch kind {
		case tag.KindByte:
			v, _ := elem.Byte()
			bytes = append(bytes, v)
		case tag.KindInt:
			v, _ := elem.Int()
			ints = append(ints, v)
		case tag.KindLong:
			v, _ := elem.Long()
			longs = append(longs, v)
		}

		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		if p.eof() {
			return tag.Tag{}, errs.ErrSyntax
		}
		switch p.peek() {
		case ']':
			p.advance(1)

			return buildArray(kind, bytes, ints, longs), nil
		case ',':
			p.advance(1)
			if err := p.skipWhitespace(); err != nil {
				return tag.Tag{}, err
			}
			if p.peek() == ']' {
				p.advance(1)

				return buildArray(kind, bytes, ints, longs), nil
			}
		default:
			return tag.Tag{}, errs.ErrSyntax
		}
	}
}

func newEmptyArray(kind tag.Kind) tag.Tag {
	return buildArray(kind, nil, nil, nil)
}

func buildArray(kind tag.Kind, bytes []byte, ints []int32, longs []int64) tag.Tag {
	switch kind {
	case tag.KindByte:
		return tag.NewByteArray(bytes)
	case tag.KindInt:
		return tag.NewIntArray(ints)
	default:
		return tag.NewLongArray(longs)
	}
}

func (p *parser) parseList() (tag.Tag, error) {
	l := tag.NewEmptyList()

	if err := p.skipWhitespace(); err != nil {
		return tag.Tag{}, err
	}
	if p.peek() == ']' {
		p.advance(1)

		return tag.NewList(l), nil
	}

	for {
		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		v, err := p.parseValue()
		if err != nil {
			return tag.Tag{}, err
		}
		if err := l.Append(v); err != nil {
			return tag.Tag{}, err
		}

		if err := p.skipWhitespace(); err != nil {
			return tag.Tag{}, err
		}
		if p.eof() {
			return tag.Tag{}, errs.ErrSyntax
		}
		switch p.peek() {
		case ']':
			p.advance(1)

			return tag.NewList(l), nil
		case ',':
			p.advance(1)
			if err := p.skipWhitespace(); err != nil {
				return tag.Tag{}, err
			}
			if p.peek() == ']' {
				p.advance(1)

				return tag.NewList(l), nil
			}
		default:
			return tag.Tag{}, errs.ErrSyntax
		}
	}
}
