// Package path parses the field/index path grammar used to address a
// value inside a binary document without decoding the whole document.
package path

import (
	"strconv"
	"strings"

	"github.com/tlvdoc/tlvdoc/pkg/types"
)

// Kind distinguishes a field component from an index component.
type Kind int

const (
	Field Kind = iota
	Index
)

// Component is one step of a parsed Path: either a field name or a
// signed array index (negative addresses from the array's end).
type Component struct {
	Kind  Kind
	Field string
	Index int64
}

// Path is a parsed, validated sequence of path components. The zero
// Path addresses the document root.
type Path []Component

// prevState tracks what kind of token was last accepted, mirroring the
// single-character state the source tracks while scanning: '\0' at
// start, 'I' after an index, 'F' after a field, '.' after a bare dot
// awaiting its field.
type prevState byte

const (
	stateStart prevState = 0
	stateIndex prevState = 'I'
	stateField prevState = 'F'
	stateDot   prevState = '.'
)

// Parse validates and parses a path string. The empty string is a valid
// path addressing the document root.
func Parse(s string) (Path, error) {
	var out Path
	prev := stateStart
	i := 0
	for i < len(s) {
		switch s[i] {
		case '[':
			if prev != stateStart && prev != stateIndex && prev != stateField {
				return nil, types.ErrBadPath
			}
			start := i + 1
			end := start
			for end < len(s) && s[end] != ']' {
				end++
			}
			if end >= len(s) || end == start {
				return nil, types.ErrBadPath
			}
			idx, err := strconv.ParseInt(s[start:end], 0, 64)
			if err != nil {
				return nil, types.ErrBadPath
			}
			out = append(out, Component{Kind: Index, Index: idx})
			i = end + 1
			prev = stateIndex
		case '.':
			if prev != stateIndex && prev != stateField {
				return nil, types.ErrBadPath
			}
			i++
			prev = stateDot
		default:
			if prev != stateStart && prev != stateDot {
				return nil, types.ErrBadPath
			}
			end := i
			for end < len(s) && s[end] != '[' && s[end] != ']' && s[end] != '.' {
				end++
			}
			if end < len(s) && s[end] == ']' {
				return nil, types.ErrBadPath
			}
			out = append(out, Component{Kind: Field, Field: s[i:end]})
			i = end
			prev = stateField
		}
	}
	// A trailing '.' with no following field is accepted and simply
	// contributes no further component, matching the source parser,
	// which only checks transition validity on the next byte read.
	return out, nil
}

func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		switch c.Kind {
		case Field:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(c.Field)
		case Index:
			b.WriteByte('[')
			b.WriteString(strconv.FormatInt(c.Index, 10))
			b.WriteByte(']')
		}
	}
	return b.String()
}
