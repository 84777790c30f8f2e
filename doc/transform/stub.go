package transform

import "github.com/tlvdoc/tlvdoc/internal/wire"

// stub records one ancestor's byte span during a path descent.
//
// del spans the bytes that disappear entirely when this value is
// removed (for an object entry, that includes the key); set spans just
// the value itself. For the root, and for array elements, del and set
// coincide.
type stub struct {
	tag      wire.Tag
	delStart int
	delLimit int
	setStart int
	setLimit int
}
