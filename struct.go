package flatbuffers

// Struct wraps a byte slice and provides read access to its data.
//
// Structs do not have a vtable: their fields live at compile-time-known
// offsets from Pos, padded and aligned like a C struct, so access needs no
// indirection.
type Struct struct {
	Table
}
