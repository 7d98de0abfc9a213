package flatbuffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// event is a minimal hand-written accessor type, shaped the way generated
// code shapes them.
type event struct {
	_tab Table
}

func (e *event) Init(buf []byte, i UOffsetT) {
	e._tab.Bytes = buf
	e._tab.Pos = i
}

func (e *event) Table() Table {
	return e._tab
}

func (e *event) Id() uint32 {
	return e._tab.GetUint32Slot(4, 0)
}

func (e *event) Name() string {
	if off := e._tab.Offset(6); off != 0 {
		return e._tab.String(e._tab.Pos + UOffsetT(off))
	}
	return ""
}

func buildEvent(id uint32, name string) []byte {
	b := NewBuilder(0)
	n := b.CreateString(name)
	b.StartObject(2)
	b.PrependUint32Slot(0, id, 0)
	b.PrependUOffsetTSlot(1, n, 0)
	b.Finish(b.EndObject())
	return b.FinishedBytes()
}

func TestGetRootAs(t *testing.T) {
	buf := buildEvent(77, "restart")

	var e event
	GetRootAs(buf, 0, &e)
	assert.Equal(t, uint32(77), e.Id())
	assert.Equal(t, "restart", e.Name())

	// The same root, read through a buffer with a prefix before it.
	prefixed := append(make([]byte, 8), buf...)
	WriteUOffsetT(prefixed, 0) // the prefix itself is opaque
	GetRootAs(prefixed, 8, &e)
	assert.Equal(t, uint32(77), e.Id())
	assert.Equal(t, "restart", e.Name())
}

func TestStringAliasesBuffer(t *testing.T) {
	buf := buildEvent(1, "alias")
	var e event
	GetRootAs(buf, 0, &e)

	// Mutating the buffer must be visible through a previously read
	// string, proving no copy was made.
	s := e.Name()
	off := e._tab.Offset(6)
	require.NotZero(t, off)
	pos := e._tab.Pos + UOffsetT(off)
	pos += GetUOffsetT(buf[pos:]) + SizeUOffsetT
	buf[pos] = 'A'
	assert.Equal(t, "Alias", s)
}

func TestVectorAccess(t *testing.T) {
	b := NewBuilder(0)
	b.StartVector(SizeUint32, 3, SizeUint32)
	b.PrependUint32(30)
	b.PrependUint32(20)
	b.PrependUint32(10)
	vec := b.EndVector(3)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec, 0)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	tab := &Table{Bytes: buf, Pos: GetUOffsetT(buf)}
	voff := UOffsetT(tab.Offset(4))
	require.NotZero(t, voff)

	assert.Equal(t, 3, tab.VectorLen(voff))
	start := tab.Vector(voff)
	assert.Zero(t, int(start)%SizeUint32)
	for i, want := range []uint32{10, 20, 30} {
		assert.Equal(t, want, tab.GetUint32(start+UOffsetT(i*SizeUint32)))
	}
}

func TestVectorOfTables(t *testing.T) {
	b := NewBuilder(0)
	var offs [3]UOffsetT
	for i := range offs {
		b.StartObject(1)
		b.PrependInt16Slot(0, int16(i+1), 0)
		offs[i] = b.EndObject()
	}
	b.StartVector(SizeUOffsetT, 3, SizeUOffsetT)
	b.PrependUOffsetT(offs[2])
	b.PrependUOffsetT(offs[1])
	b.PrependUOffsetT(offs[0])
	vec := b.EndVector(3)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec, 0)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	tab := &Table{Bytes: buf, Pos: GetUOffsetT(buf)}
	voff := UOffsetT(tab.Offset(4))
	require.Equal(t, 3, tab.VectorLen(voff))
	start := tab.Vector(voff)
	for i := 0; i < 3; i++ {
		pos := tab.Indirect(start + UOffsetT(i*SizeUOffsetT))
		elem := &Table{Bytes: buf, Pos: pos}
		assert.Equal(t, int16(i+1), elem.GetInt16Slot(4, 0))
	}
}

func TestUnion(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 123, 0)
	payload := b.EndObject()

	// Union fields travel as a (type, table offset) pair.
	b.StartObject(2)
	b.PrependByteSlot(0, 1, 0)
	b.PrependUOffsetTSlot(1, payload, 0)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	tab := &Table{Bytes: buf, Pos: GetUOffsetT(buf)}
	assert.Equal(t, byte(1), tab.GetByteSlot(4, 0))

	voff := tab.Offset(6)
	require.NotZero(t, voff)
	var inner Table
	tab.Union(&inner, UOffsetT(voff))
	assert.Equal(t, int32(123), inner.GetInt32Slot(4, 0))
}

func TestGetVOffsetTSlot(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(2)
	b.PrependInt16Slot(1, 5, 0)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	tab := &Table{Bytes: buf, Pos: GetUOffsetT(buf)}
	assert.Equal(t, VOffsetT(99), tab.GetVOffsetTSlot(4, 99), "absent field")
	assert.NotEqual(t, VOffsetT(0), tab.GetVOffsetTSlot(6, 0))
}

func TestMutateSlots(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(3)
	b.PrependInt32Slot(0, 7, 0)
	b.PrependFloat64Slot(2, 1.5, 0)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	tab := &Table{Bytes: buf, Pos: GetUOffsetT(buf)}

	assert.True(t, tab.MutateInt32Slot(4, -7))
	assert.Equal(t, int32(-7), tab.GetInt32Slot(4, 0))

	assert.True(t, tab.MutateFloat64Slot(8, 2.25))
	assert.Equal(t, 2.25, tab.GetFloat64Slot(8, 0))

	// Absent fields cannot be mutated in place.
	assert.False(t, tab.MutateInt16Slot(6, 1))
	assert.Equal(t, int16(0), tab.GetInt16Slot(6, 0))
}

func TestMutateDirect(t *testing.T) {
	b := NewBuilder(0)
	b.StartObject(1)
	b.PrependUint16Slot(0, 0xABCD, 0)
	b.Finish(b.EndObject())

	buf := b.FinishedBytes()
	tab := &Table{Bytes: buf, Pos: GetUOffsetT(buf)}
	off := tab.Pos + UOffsetT(tab.Offset(4))
	require.True(t, tab.MutateUint16(off, 0x1234))
	assert.Equal(t, uint16(0x1234), tab.GetUint16(off))
}
