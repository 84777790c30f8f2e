package doc

// Limits bounds the resources a decode or validate pass may consume.
// These are not part of the wire format; they exist so a server handling
// untrusted input can reject pathological documents before spending time
// or memory on them, mirroring the DefaultLimits/StrictLimits/RelaxedLimits
// preset shape used elsewhere in this codebase's configuration surface.
type Limits struct {
	// MaxDepth bounds object/array nesting. Zero means unlimited.
	MaxDepth int
	// MaxBodyLen bounds the declared byte length of any single
	// object/array/string body. Zero means unlimited.
	MaxBodyLen uint64
}

// DefaultLimits is permissive enough for any document produced by Encode
// with default settings, while still rejecting runaway nesting from
// adversarial input.
func DefaultLimits() Limits {
	return Limits{MaxDepth: 512, MaxBodyLen: 1 << 30}
}

// StrictLimits suits untrusted input from an open network listener.
func StrictLimits() Limits {
	return Limits{MaxDepth: 64, MaxBodyLen: 1 << 20}
}

// RelaxedLimits removes both bounds; use only for trusted input, since a
// crafted buffer can otherwise force unbounded recursion or allocation.
func RelaxedLimits() Limits {
	return Limits{MaxDepth: 0, MaxBodyLen: 0}
}

func (l Limits) depthOK(depth int) bool {
	return l.MaxDepth <= 0 || depth <= l.MaxDepth
}

func (l Limits) bodyLenOK(n uint64) bool {
	return l.MaxBodyLen == 0 || n <= l.MaxBodyLen
}
