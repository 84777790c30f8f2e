package transform

import (
	"github.com/tlvdoc/tlvdoc/internal/varint"
	"github.com/tlvdoc/tlvdoc/internal/wire"
	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// replace removes buf[cutStart:cutLimit] and splices reps in its place,
// then repairs every ancestor stub's length varint to account for the
// size delta. stubs must be the root-to-target chain produced by
// descend; the edit is applied to t.buf only once the whole computation
// succeeds, preserving the strong guarantee that a failed edit leaves
// the transformer unchanged.
func (t *Transformer) replace(stubs []stub, cutStart, cutLimit int, reps [][]byte) error {
	cumulRep := 0
	for _, r := range reps {
		cumulRep += len(r)
	}

	newSz := len(t.buf) + cumulRep + varint.Length(uint64(cumulRep))*(1+len(stubs))
	newBuf := make([]byte, newSz)
	diff := cumulRep - (cutLimit - cutStart)

	out := newSz
	remnants := len(t.buf) - cutLimit
	out -= remnants
	copy(newBuf[out:out+remnants], t.buf[cutLimit:])

	for i := len(reps) - 1; i >= 0; i-- {
		out -= len(reps[i])
		copy(newBuf[out:out+len(reps[i])], reps[i])
	}

	prev := cutStart

	for i := len(stubs) - 1; i >= 0; i-- {
		s := stubs[i]
		if s.setStart < prev {
			v, consumed, err := varint.Decode(t.buf[s.setStart+1 : prev])
			if err != nil {
				return err
			}
			varintEnd := s.setStart + 1 + consumed
			if varintEnd+int(v) != s.setLimit {
				return types.ErrBadLength
			}

			n := prev - varintEnd
			out -= n
			copy(newBuf[out:out+n], t.buf[varintEnd:prev])

			newVarint := varint.Append(make([]byte, 0, varint.MaxBytes), uint64(int64(v)+int64(diff)))
			out -= len(newVarint)
			copy(newBuf[out:out+len(newVarint)], newVarint)

			out--
			newBuf[out] = byte(s.tag)

			diff += len(newVarint) - consumed
			prev = s.setStart
		}
	}

	final := append([]byte(nil), newBuf[out:]...)
	if len(final) == 0 {
		final = append([]byte(nil), wire.EmptyObject...)
	}
	t.buf = final
	return nil
}
