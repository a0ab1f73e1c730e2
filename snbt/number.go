package snbt

import (
	"strconv"
	"strings"

	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/tag"
)

// parseNumber reads a decimal literal with an optional type-marker suffix
// (§4.4.1). The marker may be a bare trailing letter or a " /*x*/"
// block-comment spelling. Without a marker, an integral literal in Int
// range becomes Int, an integral literal outside Int range becomes Long,
// and any literal with a fractional part or exponent becomes Double.
func (p *parser) parseNumber() (tag.Tag, error) {
	start := p.pos
	if p.peek() == '-' {
		p.advance(1)
	}
	sawDigit := false
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.advance(1)
		sawDigit = true
	}
	isFloat := false
	if !p.eof() && p.peek() == '.' {
		isFloat = true
		p.advance(1)
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.advance(1)
			sawDigit = true
		}
	}
	if !p.eof() && (p.peek() == 'e' || p.peek() == 'E') {
		save := p.pos
		p.advance(1)
		if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
			p.advance(1)
		}
		expStart := p.pos
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.advance(1)
		}
		if p.pos == expStart {
			p.pos = save // no exponent digits: not an exponent after all
		} else {
			isFloat = true
		}
	}
	if !sawDigit {
		return tag.Tag{}, errs.ErrSyntax
	}

	token := p.s[start:p.pos]

	mark, upper, ok := p.readMarker()
	if ok {
		return p.buildMarked(token, isFloat, mark, upper)
	}

	return defaultNumberTag(token, isFloat)
}

// readMarker consumes a trailing type-marker suffix, either a bare letter
// (b/s/i/l/f/d, any case) or the " /*x*/" comment spelling (§4.4.1).
func (p *parser) readMarker() (mark byte, upper bool, ok bool) {
	if !p.eof() && isMarkerLetter(p.peek()) {
		c := p.peek()
		p.advance(1)

		return lowerMark(c), isUpperLetter(c), true
	}

	rest := p.rest()
	for _, pat := range markerComments {
		if strings.HasPrefix(rest, pat.text) {
			p.advance(len(pat.text))

			return pat.mark, pat.upper, true
		}
	}

	return 0, false, false
}

type markerComment struct {
	text  string
	mark  byte
	upper bool
}

var markerComments = func() []markerComment {
	var out []markerComment
	for _, m := range []byte{'b', 's', 'i', 'l', 'f', 'd'} {
		out = append(out, markerComment{text: " /*" + string(m) + "*/", mark: m, upper: false})
		upperM := m - 'a' + 'A'
		out = append(out, markerComment{text: " /*" + string(upperM) + "*/", mark: m, upper: true})
	}

	return out
}()

func isMarkerLetter(c byte) bool {
	switch c {
	case 'b', 'B', 's', 'S', 'i', 'I', 'l', 'L', 'f', 'F', 'd', 'D':
		return true
	default:
		return false
	}
}

func isUpperLetter(c byte) bool { return c >= 'A' && c <= 'Z' }

func lowerMark(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}

	return c
}

// buildMarked constructs the tag named by an explicit type marker,
// validating the literal's range against that type (§4.4.1, "Overflow
// outside the declared marker's range fails the parse").
func (p *parser) buildMarked(token string, isFloat bool, mark byte, _ bool) (tag.Tag, error) {
	switch mark {
	case 'b':
		v, err := parseIntToken(token, isFloat, 0, 255)
		if err != nil {
			return tag.Tag{}, err
		}

		return tag.NewByte(uint8(v)), nil
	case 's':
		v, err := parseIntToken(token, isFloat, -32768, 32767)
		if err != nil {
			return tag.Tag{}, err
		}

		return tag.NewShort(int16(v)), nil
	case 'i':
		v, err := parseIntToken(token, isFloat, -2147483648, 2147483647)
		if err != nil {
			return tag.Tag{}, err
		}

		return tag.NewInt(int32(v)), nil
	case 'l':
		v, err := parseLongToken(token, isFloat)
		if err != nil {
			return tag.Tag{}, err
		}

		return tag.NewLong(v), nil
	case 'f':
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return tag.Tag{}, errs.ErrSyntax
		}
		if f > 3.4028234663852886e+38 || f < -3.4028234663852886e+38 {
			return tag.Tag{}, errs.ErrNumberRange
		}

		return tag.NewFloat(float32(f)), nil
	case 'd':
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return tag.Tag{}, errs.ErrSyntax
		}

		return tag.NewDouble(f), nil
	default:
		return tag.Tag{}, errs.ErrSyntax
	}
}

func parseIntToken(token string, isFloat bool, lo, hi int64) (int64, error) {
	var v int64
	if isFloat {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, errs.ErrSyntax
		}
		if f != float64(int64(f)) {
			return 0, errs.ErrNumberRange
		}
		v = int64(f)
	} else {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return 0, errs.ErrNumberRange
		}
		v = n
	}
	if v < lo || v > hi {
		return 0, errs.ErrNumberRange
	}

	return v, nil
}

func parseLongToken(token string, isFloat bool) (int64, error) {
	if isFloat {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, errs.ErrSyntax
		}
		if f != float64(int64(f)) {
			return 0, errs.ErrNumberRange
		}

		return int64(f), nil
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, errs.ErrNumberRange
	}

	return v, nil
}

// defaultNumberTag implements the suffix-free default (§4.4.1): integral
// literals that fit Int become Int, wider integral literals become Long,
// and any literal with a fractional part or exponent becomes Double.
func defaultNumberTag(token string, isFloat bool) (tag.Tag, error) {
	if isFloat {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return tag.Tag{}, errs.ErrSyntax
		}

		return tag.NewDouble(f), nil
	}

	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return tag.Tag{}, errs.ErrNumberRange
	}
	if n >= -2147483648 && n <= 2147483647 {
		return tag.NewInt(int32(n)), nil
	}

	return tag.NewLong(n), nil
}
