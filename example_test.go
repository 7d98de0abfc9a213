package flatbuffers_test

import (
	"fmt"

	flatbuffers "github.com/layzerar/flatbuffers"
)

// Monster is a hand-written accessor type in the shape schema-generated
// code takes: a thin wrapper over Table plus free functions that drive the
// Builder slot by slot.
type Monster struct {
	_tab flatbuffers.Table
}

func GetRootAsMonster(buf []byte, offset flatbuffers.UOffsetT) *Monster {
	m := &Monster{}
	flatbuffers.GetRootAs(buf, offset, m)
	return m
}

func (m *Monster) Init(buf []byte, i flatbuffers.UOffsetT) {
	m._tab.Bytes = buf
	m._tab.Pos = i
}

func (m *Monster) Table() flatbuffers.Table {
	return m._tab
}

func (m *Monster) Hp() int16 {
	return m._tab.GetInt16Slot(4, 100)
}

func (m *Monster) Name() string {
	if o := m._tab.Offset(6); o != 0 {
		return m._tab.String(m._tab.Pos + flatbuffers.UOffsetT(o))
	}
	return ""
}

func (m *Monster) InventoryLength() int {
	if o := m._tab.Offset(8); o != 0 {
		return m._tab.VectorLen(flatbuffers.UOffsetT(o))
	}
	return 0
}

func (m *Monster) Inventory(j int) byte {
	if o := m._tab.Offset(8); o != 0 {
		a := m._tab.Vector(flatbuffers.UOffsetT(o))
		return m._tab.GetByte(a + flatbuffers.UOffsetT(j))
	}
	return 0
}

func MonsterStart(b *flatbuffers.Builder) {
	b.StartObject(3)
}

func MonsterAddHp(b *flatbuffers.Builder, hp int16) {
	b.PrependInt16Slot(0, hp, 100)
}

func MonsterAddName(b *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, name, 0)
}

func MonsterAddInventory(b *flatbuffers.Builder, inv flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, inv, 0)
}

func MonsterEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}

func Example() {
	b := flatbuffers.NewBuilder(0)

	// Children first: strings and vectors must exist before the table
	// that references them.
	name := b.CreateString("Orc")
	inv := b.CreateByteVector([]byte{9, 8, 7})

	MonsterStart(b)
	MonsterAddHp(b, 80)
	MonsterAddName(b, name)
	MonsterAddInventory(b, inv)
	b.Finish(MonsterEnd(b))

	m := GetRootAsMonster(b.FinishedBytes(), 0)
	fmt.Printf("%s has %d hp and carries %d items\n", m.Name(), m.Hp(), m.InventoryLength())
	fmt.Println("first item:", m.Inventory(0))
	// Output:
	// Orc has 80 hp and carries 3 items
	// first item: 9
}

func ExampleVerifier() {
	b := flatbuffers.NewBuilder(0)
	name := b.CreateString("Orc")
	MonsterStart(b)
	MonsterAddName(b, name)
	b.Finish(MonsterEnd(b))
	buf := b.FinishedBytes()

	if err := flatbuffers.NewVerifier(buf, nil).VerifyRoot(); err == nil {
		fmt.Println("intact buffer verifies")
	}
	if err := flatbuffers.NewVerifier(buf[:4], nil).VerifyRoot(); err != nil {
		fmt.Println("truncated buffer rejected")
	}
	// Output:
	// intact buffer verifies
	// truncated buffer rejected
}
