package vector

import (
	"errors"
	"math"
	"unsafe"
)

// ErrTooLarge is returned when a requested capacity's byte size does not
// fit in an int. Larger requests cannot be expressed as a Go allocation.
var ErrTooLarge = errors.New("vector: requested capacity too large")

// Buffer owns a block of raw element slots. It never treats a slot as a
// live value: constructing and destroying elements is the job of the
// Vector that owns the buffer. A Buffer is move-only: transfer ownership
// with MoveFrom or Swap, never by copying the struct.
type Buffer[T any] struct {
	slots []T // nil when capacity is 0
}

// NewBuffer reserves storage for capacity slots. A capacity of 0 yields
// the empty buffer without allocating. No element construction happens.
func NewBuffer[T any](capacity int) (Buffer[T], error) {
	if capacity < 0 {
		panic("vector: negative buffer capacity")
	}
	if capacity == 0 {
		return Buffer[T]{}, nil
	}
	if elem := int(unsafe.Sizeof(*new(T))); elem > 0 && capacity > math.MaxInt/elem {
		return Buffer[T]{}, ErrTooLarge
	}
	return Buffer[T]{slots: make([]T, capacity)}, nil
}

// Cap returns the number of slots the buffer was sized for.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// At returns the address of slot i. The slot may be dead; callers track
// liveness themselves.
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vector: buffer index out of range")
	}
	return &b.slots[i]
}

// Swap exchanges the storage of two buffers in O(1). This is the commit
// primitive for reallocation: build a scratch buffer, then Swap it in.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases b's own storage and steals other's. The source is
// left empty.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	b.Release()
	b.slots = other.slots
	other.slots = nil
}

// Release drops the storage. It never runs element teardown; the owner
// must have destroyed any live elements first.
func (b *Buffer[T]) Release() {
	b.slots = nil
}
