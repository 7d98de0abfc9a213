package flatbuffers

// FlatBuffer is the interface that generated (or hand-written) accessor
// types satisfy.
type FlatBuffer interface {
	Table() Table
	Init(buf []byte, i UOffsetT)
}

// GetRootAs initializes fb to point to the root table of the buffer,
// located at the given byte offset (usually 0).
func GetRootAs(buf []byte, offset UOffsetT, fb FlatBuffer) {
	n := GetUOffsetT(buf[offset:])
	fb.Init(buf, n+offset)
}

// GetIndirectOffset retrieves the relative offset in the provided buffer
// stored at `offset` and resolves it to an absolute position.
func GetIndirectOffset(buf []byte, offset UOffsetT) UOffsetT {
	return offset + GetUOffsetT(buf[offset:])
}

// BufferHasIdentifier reports whether the buffer carries the given 4-byte
// file identifier directly after its root offset.
func BufferHasIdentifier(buf []byte, identifier string) bool {
	if len(identifier) != fileIdentifierLength {
		panic("flatbuffers: incorrect file identifier length")
	}
	if len(buf) < SizeUOffsetT+fileIdentifierLength {
		return false
	}
	return string(buf[SizeUOffsetT:SizeUOffsetT+fileIdentifierLength]) == identifier
}
