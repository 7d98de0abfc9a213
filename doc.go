// Package flatbuffers provides facilities to read and write flatbuffers
// objects: a Builder that serializes object graphs into a single contiguous
// buffer, a Table/Struct accessor layer that reads finished buffers without
// copying or allocating, and a Verifier that bounds-checks untrusted
// buffers before accessors touch them.
//
// The Builder fills its buffer back-to-front: children are written before
// the objects that reference them, so every stored offset is an unsigned
// distance to data that already exists, and the root object ends up at the
// highest addresses. All multi-byte values are little-endian and aligned to
// their own size, which keeps finished buffers bit-identical across
// platforms and readable in place.
//
// Tables store their fields through a vtable, a small array of 16-bit
// offsets shared between tables of the same shape. A field whose value
// equals its schema default is omitted from both the table and its vtable;
// readers fall back to the default supplied at the call site. Structs, by
// contrast, are fixed-layout and always stored inline with C-style padding.
//
// A Builder is a state machine with at most one table, vector or string
// under construction at a time. Out-of-order use (nesting objects, writing
// a struct away from the current write position, ending an object that was
// never started) panics immediately without corrupting buffer state; these
// are bugs in calling code, not data errors. Malformed input buffers, on
// the other hand, are an expected runtime condition and surface as ordinary
// errors from the Verifier.
//
// A Builder must only be used by one goroutine at a time. Finished buffers
// are immutable and may be read concurrently by any number of Tables and
// Verifiers.
package flatbuffers
