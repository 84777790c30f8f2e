package doc

import (
	"strconv"

	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/internal/wire"
	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// Decode walks bin and renders it as whitespace-free JSON. A well-formed
// empty buffer maps to the literal "{}"; decoding never re-escapes string
// payloads, pasting them verbatim between quotes.
func Decode(bin []byte) (string, error) {
	if len(bin) == 0 {
		return "{}", nil
	}
	d := &decoder{buf: bin, limits: DefaultLimits()}
	if err := d.value(0, len(bin)); err != nil {
		return "", err
	}
	if d.pos != len(bin) {
		return "", types.ErrTrailingBytes
	}
	return string(d.out), nil
}

// decoder threads an explicit limit through every recursive call so a
// nested value can never read past its container's declared body, even
// when the overall buffer extends further (e.g. while walking one
// sibling in an object whose later siblings still remain unread).
type decoder struct {
	buf    []byte
	pos    int
	out    []byte
	limits Limits
}

func (d *decoder) value(depth, limit int) error {
	if !d.limits.depthOK(depth) {
		return types.ErrDepthExceeded
	}
	if d.pos >= limit {
		return types.ErrUnterminated
	}
	switch wire.Tag(d.buf[d.pos]) {
	case wire.Object:
		return d.object(depth, limit)
	case wire.Array:
		return d.array(depth, limit)
	case wire.String:
		return d.string(limit)
	case wire.Double:
		return d.double(limit)
	case wire.Integer:
		return d.integer(limit)
	case wire.True:
		return d.constant("true", limit)
	case wire.False:
		return d.constant("false", limit)
	case wire.Null:
		return d.constant("null", limit)
	default:
		return types.ErrUnknownTag
	}
}

// bodyBounds consumes the tag byte at d.pos (without checking it) and
// its varint length prefix, and returns the body's [start, limit) span
// within the outer limit.
func (d *decoder) bodyBounds(limit int) (start, bodyLimit int, err error) {
	d.pos++
	n, consumed, derr := varint.Decode(d.buf[d.pos:minInt(d.pos+varint.MaxBytes, limit)])
	if derr != nil {
		return 0, 0, derr
	}
	if !d.limits.bodyLenOK(n) {
		return 0, 0, types.ErrResourceExhausted
	}
	d.pos += consumed
	start = d.pos
	bodyLimit = start + int(n)
	if bodyLimit > limit {
		return 0, 0, types.ErrBadLength
	}
	return start, bodyLimit, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (d *decoder) object(depth, limit int) error {
	_, bodyLimit, err := d.bodyBounds(limit)
	if err != nil {
		return err
	}
	d.out = append(d.out, '{')
	first := true
	for d.pos < bodyLimit {
		if !first {
			d.out = append(d.out, ',')
		}
		first = false
		if wire.Tag(d.buf[d.pos]) != wire.String {
			return types.ErrUnexpectedByte
		}
		if err := d.string(bodyLimit); err != nil {
			return err
		}
		d.out = append(d.out, ':')
		if err := d.value(depth+1, bodyLimit); err != nil {
			return err
		}
	}
	if d.pos != bodyLimit {
		return types.ErrBadLength
	}
	d.out = append(d.out, '}')
	return nil
}

func (d *decoder) array(depth, limit int) error {
	_, bodyLimit, err := d.bodyBounds(limit)
	if err != nil {
		return err
	}
	d.out = append(d.out, '[')
	first := true
	for d.pos < bodyLimit {
		if !first {
			d.out = append(d.out, ',')
		}
		first = false
		if err := d.value(depth+1, bodyLimit); err != nil {
			return err
		}
	}
	if d.pos != bodyLimit {
		return types.ErrBadLength
	}
	d.out = append(d.out, ']')
	return nil
}

func (d *decoder) string(limit int) error {
	start, bodyLimit, err := d.bodyBounds(limit)
	if err != nil {
		return err
	}
	d.out = append(d.out, '"')
	d.out = append(d.out, d.buf[start:bodyLimit]...)
	d.out = append(d.out, '"')
	d.pos = bodyLimit
	return nil
}

// double requires strictly more than DoubleBodyLen remaining bytes before
// the limit — a defect in the original source used >=, which rejects a
// double that legitimately ends exactly at the limit; the corrected
// comparison here is `>`.
func (d *decoder) double(limit int) error {
	if d.pos+1+wire.DoubleBodyLen > limit {
		return types.ErrTruncatedVarint
	}
	f := ToDouble(d.buf[d.pos : d.pos+1+wire.DoubleBodyLen])
	d.out = append(d.out, strconv.FormatFloat(f, 'g', -1, 64)...)
	d.pos += 1 + wire.DoubleBodyLen
	return nil
}

func (d *decoder) integer(limit int) error {
	d.pos++
	v, consumed, err := varint.Decode(d.buf[d.pos:minInt(d.pos+varint.MaxBytes, limit)])
	if err != nil {
		return err
	}
	d.out = strconv.AppendInt(d.out, int64(v), 10)
	d.pos += consumed
	return nil
}

func (d *decoder) constant(lit string, limit int) error {
	if d.pos+1 > limit {
		return types.ErrTruncatedVarint
	}
	d.out = append(d.out, lit...)
	d.pos++
	return nil
}
