package wire

import (
	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// Size returns the total byte length (tag + framing + payload) of the
// single value starting at buf[0], per the child-size table:
//
//	Object/Array/String: 1 + varintLen(n) + n
//	Double:               9
//	Integer:              1 + varintLen
//	True/False/Null:      1
//
// It does not recurse into object/array bodies — the caller strides past
// the returned size without validating the body's internal structure.
func Size(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, types.ErrTruncatedVarint
	}

	tag := Tag(buf[0])

	switch tag {
	case Object, Array, String:
		n, consumed, err := varint.Decode(buf[1:])
		if err != nil {
			return 0, err
		}
		total := 1 + consumed + int(n)
		if total < 0 || uint64(1+consumed)+n > uint64(len(buf)) {
			return 0, types.ErrBadLength
		}
		return total, nil
	case Double:
		if len(buf) < 1+DoubleBodyLen {
			return 0, types.ErrTruncatedVarint
		}
		return 1 + DoubleBodyLen, nil
	case Integer:
		_, consumed, err := varint.Decode(buf[1:])
		if err != nil {
			return 0, err
		}
		return 1 + consumed, nil
	case True, False, Null:
		return 1, nil
	default:
		return 0, types.ErrUnknownTag
	}
}
