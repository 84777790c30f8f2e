package doc

import (
	"strconv"

	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/internal/wire"
	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// Encode parses text as JSON and produces its binary encoding. Object key
// order and array element order are preserved; duplicate keys within one
// object are kept as written (no dedup pass).
func Encode(text string) ([]byte, error) {
	e := &encoder{text: text, limits: DefaultLimits()}
	e.skipWhitespace()
	if e.pos >= len(e.text) {
		return nil, types.ErrEmptyInput
	}
	if err := e.value(0); err != nil {
		return nil, err
	}
	e.skipWhitespace()
	if e.pos != len(e.text) {
		return nil, types.ErrTrailingBytes
	}
	return e.out, nil
}

type encoder struct {
	text   string
	pos    int
	out    []byte
	limits Limits
}

func (e *encoder) skipWhitespace() {
	for e.pos < len(e.text) {
		switch e.text[e.pos] {
		case ' ', '\t', '\n', '\r':
			e.pos++
		default:
			return
		}
	}
}

func (e *encoder) value(depth int) error {
	if !e.limits.depthOK(depth) {
		return types.ErrDepthExceeded
	}
	if e.pos >= len(e.text) {
		return types.ErrUnexpectedByte
	}
	switch c := e.text[e.pos]; {
	case c == '{':
		return e.object(depth)
	case c == '[':
		return e.array(depth)
	case c == '"':
		return e.string()
	case c == 't':
		return e.constant("true", wire.True)
	case c == 'f':
		return e.constant("false", wire.False)
	case c == 'n':
		return e.constant("null", wire.Null)
	case c == '-' || (c >= '0' && c <= '9'):
		return e.number()
	default:
		return types.ErrUnexpectedByte
	}
}

func (e *encoder) closeContainer(tag wire.Tag, startOut int) {
	body := append([]byte(nil), e.out[startOut:]...)
	hdr := make([]byte, 1, 1+varint.MaxBytes)
	hdr[0] = byte(tag)
	hdr = varint.Append(hdr, uint64(len(body)))
	e.out = append(e.out[:startOut], hdr...)
	e.out = append(e.out, body...)
}

func (e *encoder) object(depth int) error {
	startOut := len(e.out)
	e.pos++ // consume '{'
	e.skipWhitespace()
	if e.pos < len(e.text) && e.text[e.pos] == '}' {
		e.pos++
		e.closeContainer(wire.Object, startOut)
		return nil
	}
	for {
		e.skipWhitespace()
		if e.pos >= len(e.text) || e.text[e.pos] != '"' {
			return types.ErrUnexpectedByte
		}
		if err := e.string(); err != nil {
			return err
		}
		e.skipWhitespace()
		if e.pos >= len(e.text) || e.text[e.pos] != ':' {
			return types.ErrUnexpectedByte
		}
		e.pos++
		e.skipWhitespace()
		if err := e.value(depth + 1); err != nil {
			return err
		}
		e.skipWhitespace()
		if e.pos >= len(e.text) {
			return types.ErrUnterminated
		}
		switch e.text[e.pos] {
		case ',':
			e.pos++
			continue
		case '}':
			e.pos++
			e.closeContainer(wire.Object, startOut)
			return nil
		default:
			return types.ErrUnexpectedByte
		}
	}
}

func (e *encoder) array(depth int) error {
	startOut := len(e.out)
	e.pos++ // consume '['
	e.skipWhitespace()
	if e.pos < len(e.text) && e.text[e.pos] == ']' {
		e.pos++
		e.closeContainer(wire.Array, startOut)
		return nil
	}
	for {
		e.skipWhitespace()
		if err := e.value(depth + 1); err != nil {
			return err
		}
		e.skipWhitespace()
		if e.pos >= len(e.text) {
			return types.ErrUnterminated
		}
		switch e.text[e.pos] {
		case ',':
			e.pos++
			continue
		case ']':
			e.pos++
			e.closeContainer(wire.Array, startOut)
			return nil
		default:
			return types.ErrUnexpectedByte
		}
	}
}

// string consumes a JSON string literal (the current byte must be '"')
// and appends its binary string encoding. The bytes between the quotes
// are copied verbatim: escapes and \uXXXX sequences are scanned over
// (to find the closing quote) but never decoded, matching the original
// transform's lexical, not semantic, treatment of strings.
func (e *encoder) string() error {
	e.pos++ // consume opening quote
	start := e.pos
	for {
		if e.pos >= len(e.text) {
			return types.ErrUnterminated
		}
		switch e.text[e.pos] {
		case '\\':
			if e.pos+1 >= len(e.text) {
				return types.ErrUnterminated
			}
			if e.text[e.pos+1] == 'u' {
				if e.pos+6 > len(e.text) {
					return types.ErrUnterminated
				}
				e.pos += 6
			} else {
				e.pos += 2
			}
		case '"':
			payload := e.text[start:e.pos]
			e.pos++
			e.out = append(e.out, byte(wire.String))
			e.out = varint.Append(e.out, uint64(len(payload)))
			e.out = append(e.out, payload...)
			return nil
		default:
			e.pos++
		}
	}
}

func (e *encoder) number() error {
	start := e.pos
	isDouble := false
	if e.text[e.pos] == '-' {
		e.pos++
	}
	for e.pos < len(e.text) {
		c := e.text[e.pos]
		if c >= '0' && c <= '9' {
			e.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			isDouble = true
			e.pos++
			continue
		}
		break
	}
	lit := e.text[start:e.pos]
	if lit == "" || lit == "-" {
		return types.ErrBadNumber
	}
	if isDouble {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return types.ErrBadNumber
		}
		e.out = append(e.out, NewDouble(f)...)
		return nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return types.ErrBadNumber
	}
	e.out = append(e.out, NewInteger(i)...)
	return nil
}

func (e *encoder) constant(lit string, tag wire.Tag) error {
	if e.pos+len(lit) > len(e.text) || e.text[e.pos:e.pos+len(lit)] != lit {
		return types.ErrUnexpectedByte
	}
	e.pos += len(lit)
	e.out = append(e.out, byte(tag))
	return nil
}
