package doc

import (
	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/internal/wire"
	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// Validate reports whether bin is a well-formed binary document under
// DefaultLimits. Unlike Decode, an empty buffer is NOT a special case
// here and is rejected: validation asks "is this buffer a value", and
// the empty buffer is not one.
func Validate(bin []byte) error {
	return ValidateWithLimits(bin, DefaultLimits())
}

// ValidateWithLimits is Validate with an explicit resource ceiling,
// letting a caller reject deeply nested or oversized input before
// Decode or a transform walks it.
func ValidateWithLimits(bin []byte, limits Limits) error {
	v := &validator{buf: bin, limits: limits}
	if err := v.value(0, len(bin)); err != nil {
		return err
	}
	if v.pos != len(bin) {
		return types.ErrTrailingBytes
	}
	return nil
}

type validator struct {
	buf    []byte
	pos    int
	limits Limits
}

func (v *validator) value(depth, limit int) error {
	if !v.limits.depthOK(depth) {
		return types.ErrDepthExceeded
	}
	if v.pos >= limit {
		return types.ErrUnterminated
	}
	switch wire.Tag(v.buf[v.pos]) {
	case wire.Object:
		return v.container(depth, limit, true)
	case wire.Array:
		return v.container(depth, limit, false)
	case wire.String:
		_, bodyLimit, err := v.bodyBounds(limit)
		if err != nil {
			return err
		}
		v.pos = bodyLimit
		return nil
	case wire.Double:
		if v.pos+1+wire.DoubleBodyLen > limit {
			return types.ErrTruncatedVarint
		}
		v.pos += 1 + wire.DoubleBodyLen
		return nil
	case wire.Integer:
		v.pos++
		_, consumed, err := varint.Decode(v.buf[v.pos:minInt(v.pos+varint.MaxBytes, limit)])
		if err != nil {
			return err
		}
		v.pos += consumed
		return nil
	case wire.True, wire.False, wire.Null:
		v.pos++
		return nil
	default:
		return types.ErrUnknownTag
	}
}

func (v *validator) bodyBounds(limit int) (start, bodyLimit int, err error) {
	v.pos++
	n, consumed, derr := varint.Decode(v.buf[v.pos:minInt(v.pos+varint.MaxBytes, limit)])
	if derr != nil {
		return 0, 0, derr
	}
	if !v.limits.bodyLenOK(n) {
		return 0, 0, types.ErrResourceExhausted
	}
	v.pos += consumed
	start = v.pos
	bodyLimit = start + int(n)
	if bodyLimit > limit {
		return 0, 0, types.ErrBadLength
	}
	return start, bodyLimit, nil
}

func (v *validator) container(depth, limit int, isObject bool) error {
	_, bodyLimit, err := v.bodyBounds(limit)
	if err != nil {
		return err
	}
	for v.pos < bodyLimit {
		if isObject {
			if wire.Tag(v.buf[v.pos]) != wire.String {
				return types.ErrUnexpectedByte
			}
			_, keyLimit, err := v.bodyBounds(bodyLimit)
			if err != nil {
				return err
			}
			v.pos = keyLimit
		}
		if err := v.value(depth+1, bodyLimit); err != nil {
			return err
		}
	}
	if v.pos != bodyLimit {
		return types.ErrBadLength
	}
	return nil
}
