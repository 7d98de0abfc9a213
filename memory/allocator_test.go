package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoAllocatorZeroes(t *testing.T) {
	a := NewGoAllocator()
	buf := a.Allocate(64)
	assert.Len(t, buf, 64)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("byte %d not zeroed", i)
		}
	}
}

func TestGoAllocatorReallocate(t *testing.T) {
	a := NewGoAllocator()
	buf := a.Allocate(4)
	copy(buf, []byte{1, 2, 3, 4})

	grown := a.Reallocate(8, buf)
	assert.Len(t, grown, 8)
	assert.Equal(t, []byte{1, 2, 3, 4}, grown[:4])

	same := a.Reallocate(8, grown)
	assert.Equal(t, &grown[0], &same[0], "same-size reallocate must not copy")
}

func TestCheckedAllocatorCounts(t *testing.T) {
	a := NewCheckedAllocator(NewGoAllocator())
	b1 := a.Allocate(16)
	b2 := a.Allocate(32)
	assert.Equal(t, 2, a.Allocations())
	assert.Equal(t, 2, a.Outstanding())

	a.Free(b1)
	assert.Equal(t, 1, a.Outstanding())
	a.Free(b2)
	assert.Equal(t, 0, a.Outstanding())
}
