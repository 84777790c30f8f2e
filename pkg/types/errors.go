// Package types holds the error vocabulary shared by the doc, doc/path, and
// doc/transform packages.
package types

// ErrKind classifies an Error so callers can branch on intent rather than
// matching error strings.
type ErrKind int

const (
	// ErrKindMalformed covers truncated varints, unknown tags, container
	// body under/overflow, and lexical JSON errors.
	ErrKindMalformed ErrKind = iota
	// ErrKindPath covers syntactically invalid paths.
	ErrKindPath
	// ErrKindLookup covers a well-formed path whose target, or target's
	// parent, does not exist in the document.
	ErrKindLookup
	// ErrKindType covers a field component against an array parent (or
	// vice versa), and array-index insertion via Set on a missing index.
	ErrKindType
	// ErrKindResource covers allocation failure and limit overruns.
	ErrKindResource
)

// String names the kind for diagnostics.
func (k ErrKind) String() string {
	switch k {
	case ErrKindMalformed:
		return "malformed"
	case ErrKindPath:
		return "path"
	case ErrKindLookup:
		return "lookup"
	case ErrKindType:
		return "type"
	case ErrKindResource:
		return "resource"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause, grounded on the
// same Kind/Msg/Err shape the rest of the corpus uses for classifiable
// failures.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (possibly wrapped with additional context via
// fmt.Errorf("...: %w", sentinel)) by the doc, doc/path, and doc/transform
// packages.
var (
	ErrTruncatedVarint = &Error{Kind: ErrKindMalformed, Msg: "truncated varint"}
	ErrVarintTooLong   = &Error{Kind: ErrKindMalformed, Msg: "varint exceeds 10 bytes"}
	ErrUnknownTag      = &Error{Kind: ErrKindMalformed, Msg: "unknown value tag"}
	ErrBadLength       = &Error{Kind: ErrKindMalformed, Msg: "declared length exceeds buffer"}
	ErrTrailingBytes   = &Error{Kind: ErrKindMalformed, Msg: "trailing bytes after top-level value"}
	ErrEmptyInput      = &Error{Kind: ErrKindMalformed, Msg: "empty input"}
	ErrUnterminated    = &Error{Kind: ErrKindMalformed, Msg: "unterminated container or string"}
	ErrBadNumber       = &Error{Kind: ErrKindMalformed, Msg: "malformed number literal"}
	ErrUnexpectedByte  = &Error{Kind: ErrKindMalformed, Msg: "unexpected byte in JSON input"}

	ErrBadPath = &Error{Kind: ErrKindPath, Msg: "malformed path"}

	ErrNotFound       = &Error{Kind: ErrKindLookup, Msg: "path does not resolve to a value"}
	ErrTargetNotArray = &Error{Kind: ErrKindLookup, Msg: "array_prepend/array_append target is not an array"}

	ErrNotObject    = &Error{Kind: ErrKindType, Msg: "field component against a non-object parent"}
	ErrNotArray     = &Error{Kind: ErrKindType, Msg: "index component against a non-array parent"}
	ErrIndexMissing = &Error{Kind: ErrKindType, Msg: "set cannot create a missing array index; use array_prepend/array_append"}

	ErrResourceExhausted = &Error{Kind: ErrKindResource, Msg: "resource exhausted"}
	ErrDepthExceeded     = &Error{Kind: ErrKindResource, Msg: "nesting depth exceeds configured limit"}
)
