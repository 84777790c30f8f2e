package transform

import "github.com/tlvdoc/tlvdoc/doc/path"

// These thin wrappers give callers a plain success/failure boolean for
// each mutating operation. Go callers that want the underlying
// *types.Error should call Unset, Set, ArrayPrepend and ArrayAppend
// instead.

func (t *Transformer) UnsetOK(p path.Path) bool { return t.Unset(p) == nil }

func (t *Transformer) SetOK(p path.Path, v []byte) bool { return t.Set(p, v) == nil }

func (t *Transformer) ArrayPrependOK(p path.Path, v []byte) bool { return t.ArrayPrepend(p, v) == nil }

func (t *Transformer) ArrayAppendOK(p path.Path, v []byte) bool { return t.ArrayAppend(p, v) == nil }
