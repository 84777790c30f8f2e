package transform

import (
	"github.com/tlvdoc/tlvdoc/doc"
	"github.com/tlvdoc/tlvdoc/doc/path"
	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/internal/wire"
	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// Unset removes the value addressed by p. It fails, leaving the
// document unchanged, if p does not resolve to an existing value.
// Unset(root path) removes the entire document, which collapses to the
// canonical empty object.
func (t *Transformer) Unset(p path.Path) error {
	stubs, err := descend(t.buf, p)
	if err != nil {
		return err
	}
	if len(stubs) != len(p)+1 {
		return types.ErrNotFound
	}
	target := stubs[len(stubs)-1]
	return t.replace(stubs, target.delStart, target.delLimit, nil)
}

// Set overwrites or creates the value addressed by p. At the root it
// replaces the entire document without validating v. If p's parent
// exists as an object and the final component is an absent field, the
// (key, v) pair is appended to that object's body. Missing intermediate
// objects are created recursively as empty objects. Set fails against a
// missing array index (use ArrayPrepend/ArrayAppend) and whenever a path
// component's kind does not match the container it addresses.
func (t *Transformer) Set(p path.Path, v []byte) error {
	// set may create intermediate objects before failing on the final
	// component; restore the original buffer so a failed Set changes
	// nothing. replace always installs a fresh slice, so orig is intact.
	orig := t.buf
	if err := t.set(p, v); err != nil {
		t.buf = orig
		return err
	}
	return nil
}

func (t *Transformer) set(p path.Path, v []byte) error {
	stubs, err := descend(t.buf, p)
	if err != nil {
		return err
	}

	if len(p) == 0 {
		return t.replace(stubs, 0, len(t.buf), [][]byte{v})
	}

	switch {
	case len(stubs) == len(p):
		parent := stubs[len(stubs)-1]
		last := p[len(p)-1]
		switch {
		case parent.tag == wire.Object && last.Kind == path.Field:
			key := doc.NewString([]byte(last.Field))
			return t.replace(stubs, parent.delLimit, parent.delLimit, [][]byte{key, v})
		case parent.tag == wire.Array && last.Kind == path.Index:
			return types.ErrIndexMissing
		case last.Kind == path.Field:
			return types.ErrNotObject
		default:
			return types.ErrNotArray
		}

	case len(stubs) == len(p)+1:
		target := stubs[len(stubs)-1]
		return t.replace(stubs, target.setStart, target.setLimit, [][]byte{v})

	case len(stubs) < len(p):
		if err := t.set(p[:len(p)-1], wire.EmptyObject); err != nil {
			return err
		}
		return t.set(p, v)

	default:
		return types.ErrBadPath
	}
}

// Extract copies the addressed span (tag and payload) into a fresh
// buffer. It fails if p does not resolve to an existing value.
func (t *Transformer) Extract(p path.Path) ([]byte, error) {
	stubs, err := descend(t.buf, p)
	if err != nil {
		return nil, err
	}
	if len(stubs) != len(p)+1 {
		return nil, types.ErrNotFound
	}
	target := stubs[len(stubs)-1]
	out := make([]byte, target.setLimit-target.setStart)
	copy(out, t.buf[target.setStart:target.setLimit])
	return out, nil
}

// ArrayPrepend inserts v at the front of the array addressed by p.
func (t *Transformer) ArrayPrepend(p path.Path, v []byte) error {
	return t.arrayInsert(p, v, true)
}

// ArrayAppend inserts v at the back of the array addressed by p.
func (t *Transformer) ArrayAppend(p path.Path, v []byte) error {
	return t.arrayInsert(p, v, false)
}

func (t *Transformer) arrayInsert(p path.Path, v []byte, prepend bool) error {
	stubs, err := descend(t.buf, p)
	if err != nil {
		return err
	}
	if len(stubs) != len(p)+1 || stubs[len(stubs)-1].tag != wire.Array {
		return types.ErrTargetNotArray
	}
	target := stubs[len(stubs)-1]

	n, consumed, err := varint.Decode(t.buf[target.setStart+1 : target.setLimit])
	if err != nil {
		return err
	}
	bodyStart := target.setStart + 1 + consumed
	if bodyStart+int(n) != target.setLimit {
		return types.ErrBadLength
	}
	oldBody := append([]byte(nil), t.buf[bodyStart:target.setLimit]...)

	hdr := make([]byte, 1, 1+varint.MaxBytes)
	hdr[0] = byte(wire.Array)
	hdr = varint.Append(hdr, uint64(len(v))+n)

	var reps [][]byte
	if prepend {
		reps = [][]byte{hdr, v, oldBody}
	} else {
		reps = [][]byte{hdr, oldBody, v}
	}
	return t.replace(stubs, target.setStart, target.setLimit, reps)
}
