// Package varint implements the unsigned 64-bit little-endian base-128
// varint encoding used to frame every length-prefixed value in the binary
// document format: 7 payload bits per byte, continuation flag in bit 7,
// at most 10 bytes.
package varint

import "github.com/tlvdoc/tlvdoc/pkg/types"

// MaxBytes is the widest a varint is ever allowed to be. 10 bytes covers
// the full 64-bit range (ceil(64/7) == 10).
const MaxBytes = 10

// Length returns the number of bytes Append would write for v.
func Length(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Append encodes v as a varint and appends it to dst, returning the
// extended slice.
func Append(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Decode reads a varint from the front of b, returning the value and the
// number of bytes consumed. It fails on truncation (continuation bit set
// through the end of b) or on a value that would require more than
// MaxBytes bytes.
func Decode(b []byte) (uint64, int, error) {
	var v uint64
	for i := 0; i < len(b) && i < MaxBytes; i++ {
		c := b[i]
		v |= uint64(c&0x7f) << (7 * uint(i))
		if c&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	if len(b) >= MaxBytes {
		return 0, 0, types.ErrVarintTooLong
	}
	return 0, 0, types.ErrTruncatedVarint
}
