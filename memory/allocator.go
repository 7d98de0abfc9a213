// Package memory provides the allocation strategy used by the flatbuffers
// Builder for its backing buffer. The default allocator defers to the Go
// runtime; callers with pooling or accounting needs can plug in their own.
package memory

// Allocator reserves and releases the byte buffers a Builder writes into.
//
// Allocate must return a zeroed slice of exactly the requested length.
// Free is advisory; implementations backed by the garbage collector may
// ignore it.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// DefaultAllocator is the allocator used when none is supplied.
var DefaultAllocator Allocator = NewGoAllocator()

// GoAllocator allocates buffers with the built-in make and leaves
// reclamation to the garbage collector.
type GoAllocator struct{}

func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

func (a *GoAllocator) Allocate(size int) []byte { return make([]byte, size) }

func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	newBuf := a.Allocate(size)
	copy(newBuf, b)
	return newBuf
}

func (a *GoAllocator) Free(b []byte) {}

var _ Allocator = (*GoAllocator)(nil)
