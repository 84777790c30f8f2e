package doc

import (
	"math"

	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/internal/wire"
)

// NewString encodes a single binary string value: tag 0x42, varint body
// length, then the payload bytes verbatim (no escaping, no validation
// that the bytes are valid UTF-8).
func NewString(s []byte) []byte {
	out := make([]byte, 0, 1+varint.MaxBytes+len(s))
	out = append(out, byte(wire.String))
	out = varint.Append(out, uint64(len(s)))
	out = append(out, s...)
	return out
}

// NewInteger encodes a single binary integer value by reinterpreting i's
// two's-complement bit pattern as an unsigned varint, per the on-wire
// contract — not zig-zag.
func NewInteger(i int64) []byte {
	out := make([]byte, 0, 1+varint.MaxBytes)
	out = append(out, byte(wire.Integer))
	out = varint.Append(out, uint64(i))
	return out
}

// NewDouble encodes a single binary double value: tag 0x43 followed by 8
// bytes of big-endian IEEE-754.
func NewDouble(f float64) []byte {
	bits := math.Float64bits(f)
	out := make([]byte, 9)
	out[0] = byte(wire.Double)
	out[1] = byte(bits >> 56)
	out[2] = byte(bits >> 48)
	out[3] = byte(bits >> 40)
	out[4] = byte(bits >> 32)
	out[5] = byte(bits >> 24)
	out[6] = byte(bits >> 16)
	out[7] = byte(bits >> 8)
	out[8] = byte(bits)
	return out
}

// isSingleValue reports whether the framing of the value at bin[0]
// accounts for exactly every byte of bin.
func isSingleValue(bin []byte) bool {
	n, err := wire.Size(bin)
	return err == nil && n == len(bin)
}

// IsString reports whether bin is a single well-formed string value.
func IsString(bin []byte) bool {
	return len(bin) > 0 && wire.Tag(bin[0]) == wire.String && isSingleValue(bin)
}

// IsInteger reports whether bin is a single well-formed integer value.
func IsInteger(bin []byte) bool {
	return len(bin) > 0 && wire.Tag(bin[0]) == wire.Integer && isSingleValue(bin)
}

// IsDouble reports whether bin is a single well-formed double value.
func IsDouble(bin []byte) bool {
	return len(bin) > 0 && wire.Tag(bin[0]) == wire.Double && isSingleValue(bin)
}

// ToString extracts the payload of a string value. The caller must have
// checked IsString first; behavior on violation is unspecified (ToString
// does not check the tag, and panics rather than returning an error when
// the buffer is shorter than its length prefix declares).
func ToString(bin []byte) []byte {
	n, consumed, err := varint.Decode(bin[1:])
	if err != nil {
		panic(err)
	}
	start := 1 + consumed
	return bin[start : start+int(n)]
}

// ToInteger extracts the value of an integer value. See ToString for the
// precondition contract.
func ToInteger(bin []byte) int64 {
	v, _, err := varint.Decode(bin[1:])
	if err != nil {
		panic(err)
	}
	return int64(v)
}

// ToDouble extracts the value of a double value. See ToString for the
// precondition contract.
func ToDouble(bin []byte) float64 {
	b := bin[1 : 1+wire.DoubleBodyLen]
	bits := uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
	return math.Float64frombits(bits)
}
