package transform

import (
	"github.com/tlvdoc/tlvdoc/doc/path"
	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/internal/wire"
	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// descend walks buf following p, pushing one stub per level reached. A
// field not present in an object, or an index out of range in an array,
// stops the walk early without error — the caller distinguishes "found"
// from "fell short" by comparing len(stubs) to len(p)+1. Reaching a
// scalar with components still left also stops the walk without error.
// A genuine structural problem (malformed buffer, or an index component
// against an object or a field component against an array) is reported
// as an error.
func descend(buf []byte, p path.Path) ([]stub, error) {
	var stubs []stub
	err := descendValue(buf, p, 0, len(buf), 0, len(buf), 0, &stubs)
	return stubs, err
}

func descendValue(buf []byte, p path.Path, delStart, delLimit, setStart, setLimit, depth int, stubs *[]stub) error {
	if setStart >= setLimit {
		return types.ErrBadLength
	}
	tag := wire.Tag(buf[setStart])
	if !tag.Valid() {
		return types.ErrUnknownTag
	}
	*stubs = append(*stubs, stub{tag: tag, delStart: delStart, delLimit: delLimit, setStart: setStart, setLimit: setLimit})

	if len(p) <= depth {
		return nil
	}

	switch tag {
	case wire.Object:
		return descendObject(buf, p, setStart, setLimit, depth, stubs)
	case wire.Array:
		return descendArray(buf, p, setStart, setLimit, depth, stubs)
	default:
		// A scalar can't be descended into further; the path asked for
		// more than this value has, so the walk stops here.
		return nil
	}
}

func descendObject(buf []byte, p path.Path, setStart, setLimit, depth int, stubs *[]stub) error {
	c := p[depth]
	if c.Kind != path.Field {
		return types.ErrNotObject
	}

	n, consumed, err := varint.Decode(buf[setStart+1 : setLimit])
	if err != nil {
		return err
	}
	bodyStart := setStart + 1 + consumed
	bodyLimit := bodyStart + int(n)
	if bodyLimit > setLimit {
		return types.ErrBadLength
	}

	tmp := bodyStart
	for tmp < bodyLimit {
		if wire.Tag(buf[tmp]) != wire.String {
			return types.ErrUnknownTag
		}
		keyStart := tmp
		kn, kconsumed, err := varint.Decode(buf[tmp+1 : bodyLimit])
		if err != nil {
			return err
		}
		keySzEnd := tmp + 1 + kconsumed
		// Conservative: also rejects a last key ending exactly at the
		// body limit, since any value is at least one byte.
		if keySzEnd+int(kn) >= bodyLimit {
			return types.ErrBadLength
		}
		keyLimit := keySzEnd + int(kn)
		valStart := keyLimit
		valSz, err := wire.Size(buf[valStart:bodyLimit])
		if err != nil {
			return err
		}
		valLimit := valStart + valSz
		tmp = valLimit

		if c.Field == string(buf[keySzEnd:keyLimit]) {
			return descendValue(buf, p, keyStart, valLimit, valStart, valLimit, depth+1, stubs)
		}
	}

	return nil
}

func descendArray(buf []byte, p path.Path, setStart, setLimit, depth int, stubs *[]stub) error {
	c := p[depth]
	if c.Kind != path.Index {
		return types.ErrNotArray
	}

	n, consumed, err := varint.Decode(buf[setStart+1 : setLimit])
	if err != nil {
		return err
	}
	bodyStart := setStart + 1 + consumed
	bodyLimit := bodyStart + int(n)
	if bodyLimit > setLimit {
		return types.ErrBadLength
	}

	var elems []stub
	tmp := bodyStart
	for tmp < bodyLimit {
		sz, err := wire.Size(buf[tmp:bodyLimit])
		if err != nil {
			return err
		}
		elemLimit := tmp + sz
		elems = append(elems, stub{tag: wire.Tag(buf[tmp]), delStart: tmp, delLimit: elemLimit, setStart: tmp, setLimit: elemLimit})
		tmp = elemLimit
	}

	idx := c.Index
	var sel *stub
	switch {
	case idx >= 0 && int(idx) < len(elems):
		sel = &elems[idx]
	case idx < 0 && int(-idx) <= len(elems):
		sel = &elems[int64(len(elems))+idx]
	}
	if sel == nil {
		return nil
	}
	return descendValue(buf, p, sel.delStart, sel.delLimit, sel.setStart, sel.setLimit, depth+1, stubs)
}
