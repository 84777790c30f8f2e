// Package doc implements the JSON-equivalent binary document format: a
// length-prefixed encoding of objects, arrays, strings, doubles, integers,
// and the true/false/null literals, plus the encoder, decoder, validator,
// and scalar constructors that operate on it.
//
// # Overview
//
// A binary document is a single tagged value. Containers (objects, arrays,
// strings) carry a varint byte-length prefix; everything nests without
// padding or gaps, so a well-formed buffer's size is fully determined by
// its top-level value. See the wire tags in internal/wire for the exact
// layout.
//
// # Encoding and decoding
//
//	bin, err := doc.Encode(`{"a":[1,2.5,true]}`)
//	text, err := doc.Decode(bin)
//	err = doc.Validate(bin)
//
// Decode never re-escapes string payloads and never reformats whitespace;
// it emits the shortest round-trip-safe representation for doubles and a
// base-10 representation for integers. A second Encode/Decode round trip
// on already-canonical output is byte-identical; the first is not,
// because Decode does not preserve the source JSON's whitespace or number
// formatting.
//
// # Scalar construction
//
// doc/scalar.go exposes constructors (NewString, NewInteger, NewDouble)
// and predicates/extractors (IsString/ToString, ...) for building and
// inspecting single binary values outside of a full document — the
// doc/transform package uses these to build replacement spans.
//
// # Editing documents
//
// Surgical, path-addressed edits (without decoding to JSON or building an
// in-memory tree) live in the sibling doc/transform package.
package doc
