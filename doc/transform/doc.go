// Package transform edits binary documents in place, addressed by path,
// without ever materializing a tree. A Transformer owns a single byte
// buffer; each mutating call allocates a replacement buffer and swaps it
// in only on success, leaving the owned buffer untouched on any failure.
//
// The core move is a backward single pass: splice the replacement bytes
// into the tail of a generously-sized new buffer, then walk the chain of
// ancestor stubs from the target outward, re-emitting each ancestor's
// tag and length varint with its body length adjusted by the cumulative
// size delta. Because a varint's own width can change, the delta
// cascades outward one ancestor at a time.
package transform
