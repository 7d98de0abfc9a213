package flatbuffers

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Offset types used throughout the wire format. All of them are stored
// little-endian regardless of host byte order.
type (
	// UOffsetT is an unsigned byte distance from a storage location forward
	// (towards higher addresses) to the start of the referenced table,
	// vector or string.
	UOffsetT uint32

	// SOffsetT is a signed byte distance from a table to its vtable.
	SOffsetT int32

	// VOffsetT is a byte distance from a table's start to one of its inline
	// fields, stored inside the vtable. Zero marks an absent field.
	VOffsetT uint16
)

// Byte widths of the scalar types the format supports.
const (
	SizeBool = 1
	SizeByte = 1

	SizeUint8  = 1
	SizeUint16 = 2
	SizeUint32 = 4
	SizeUint64 = 8

	SizeInt8  = 1
	SizeInt16 = 2
	SizeInt32 = 4
	SizeInt64 = 8

	SizeFloat32 = 4
	SizeFloat64 = 8

	SizeUOffsetT = 4
	SizeSOffsetT = 4
	SizeVOffsetT = 2
)

// VtableMetadataFields is the count of metadata fields in each vtable:
// the vtable byte size and the object inline byte size.
const VtableMetadataFields = 2

// GetBool decodes a little-endian bool from a byte slice.
func GetBool(buf []byte) bool {
	return buf[0] == 1
}

// GetByte decodes a little-endian byte from a byte slice.
func GetByte(buf []byte) byte {
	return buf[0]
}

// GetUint8 decodes a little-endian uint8 from a byte slice.
func GetUint8(buf []byte) uint8 {
	return buf[0]
}

// GetUint16 decodes a little-endian uint16 from a byte slice.
func GetUint16(buf []byte) uint16 {
	return binary.LittleEndian.Uint16(buf)
}

// GetUint32 decodes a little-endian uint32 from a byte slice.
func GetUint32(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

// GetUint64 decodes a little-endian uint64 from a byte slice.
func GetUint64(buf []byte) uint64 {
	return binary.LittleEndian.Uint64(buf)
}

// GetInt8 decodes a little-endian int8 from a byte slice.
func GetInt8(buf []byte) int8 {
	return int8(buf[0])
}

// GetInt16 decodes a little-endian int16 from a byte slice.
func GetInt16(buf []byte) int16 {
	return int16(binary.LittleEndian.Uint16(buf))
}

// GetInt32 decodes a little-endian int32 from a byte slice.
func GetInt32(buf []byte) int32 {
	return int32(binary.LittleEndian.Uint32(buf))
}

// GetInt64 decodes a little-endian int64 from a byte slice.
func GetInt64(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf))
}

// GetFloat32 decodes a little-endian float32 from a byte slice.
func GetFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

// GetFloat64 decodes a little-endian float64 from a byte slice.
func GetFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}

// GetUOffsetT decodes a little-endian UOffsetT from a byte slice.
func GetUOffsetT(buf []byte) UOffsetT {
	return UOffsetT(binary.LittleEndian.Uint32(buf))
}

// GetSOffsetT decodes a little-endian SOffsetT from a byte slice.
func GetSOffsetT(buf []byte) SOffsetT {
	return SOffsetT(binary.LittleEndian.Uint32(buf))
}

// GetVOffsetT decodes a little-endian VOffsetT from a byte slice.
func GetVOffsetT(buf []byte) VOffsetT {
	return VOffsetT(binary.LittleEndian.Uint16(buf))
}

// WriteBool encodes a little-endian bool into a byte slice.
func WriteBool(buf []byte, b bool) {
	if b {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
}

// WriteByte encodes a little-endian byte into a byte slice.
func WriteByte(buf []byte, n byte) {
	buf[0] = n
}

// WriteUint8 encodes a little-endian uint8 into a byte slice.
func WriteUint8(buf []byte, n uint8) {
	buf[0] = n
}

// WriteUint16 encodes a little-endian uint16 into a byte slice.
func WriteUint16(buf []byte, n uint16) {
	binary.LittleEndian.PutUint16(buf, n)
}

// WriteUint32 encodes a little-endian uint32 into a byte slice.
func WriteUint32(buf []byte, n uint32) {
	binary.LittleEndian.PutUint32(buf, n)
}

// WriteUint64 encodes a little-endian uint64 into a byte slice.
func WriteUint64(buf []byte, n uint64) {
	binary.LittleEndian.PutUint64(buf, n)
}

// WriteInt8 encodes a little-endian int8 into a byte slice.
func WriteInt8(buf []byte, n int8) {
	buf[0] = byte(n)
}

// WriteInt16 encodes a little-endian int16 into a byte slice.
func WriteInt16(buf []byte, n int16) {
	binary.LittleEndian.PutUint16(buf, uint16(n))
}

// WriteInt32 encodes a little-endian int32 into a byte slice.
func WriteInt32(buf []byte, n int32) {
	binary.LittleEndian.PutUint32(buf, uint32(n))
}

// WriteInt64 encodes a little-endian int64 into a byte slice.
func WriteInt64(buf []byte, n int64) {
	binary.LittleEndian.PutUint64(buf, uint64(n))
}

// WriteFloat32 encodes a little-endian float32 into a byte slice.
func WriteFloat32(buf []byte, n float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(n))
}

// WriteFloat64 encodes a little-endian float64 into a byte slice.
func WriteFloat64(buf []byte, n float64) {
	binary.LittleEndian.PutUint64(buf, math.Float64bits(n))
}

// WriteUOffsetT encodes a little-endian UOffsetT into a byte slice.
func WriteUOffsetT(buf []byte, n UOffsetT) {
	binary.LittleEndian.PutUint32(buf, uint32(n))
}

// WriteSOffsetT encodes a little-endian SOffsetT into a byte slice.
func WriteSOffsetT(buf []byte, n SOffsetT) {
	binary.LittleEndian.PutUint32(buf, uint32(n))
}

// WriteVOffsetT encodes a little-endian VOffsetT into a byte slice.
func WriteVOffsetT(buf []byte, n VOffsetT) {
	binary.LittleEndian.PutUint16(buf, uint16(n))
}

// byteSliceToString converts a []byte to string without a heap allocation.
// The result aliases the buffer, which must stay immutable for the lifetime
// of the string.
func byteSliceToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
