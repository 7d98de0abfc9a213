package memory

// CheckedAllocator wraps another Allocator and tracks outstanding
// allocations and the number of grow operations. It exists for tests that
// want to assert on the Builder's allocation behavior.
type CheckedAllocator struct {
	mem Allocator

	allocs int
	frees  int
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

func (a *CheckedAllocator) Allocate(size int) []byte {
	a.allocs++
	return a.mem.Allocate(size)
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	return a.mem.Reallocate(size, b)
}

func (a *CheckedAllocator) Free(b []byte) {
	a.frees++
	a.mem.Free(b)
}

// Allocations returns the total number of Allocate calls seen.
func (a *CheckedAllocator) Allocations() int { return a.allocs }

// Outstanding returns the number of buffers allocated but not yet freed.
func (a *CheckedAllocator) Outstanding() int { return a.allocs - a.frees }

var _ Allocator = (*CheckedAllocator)(nil)
