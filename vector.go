package vector

import (
	"fmt"
	"math"
)

// Vector is a growable contiguous sequence of T built on a raw slot
// Buffer. Slots [0, Len()) hold live elements in order; slots beyond that
// are dead storage that only become live through an explicit construct.
//
// Mutating operations that can fail either fully succeed or leave the
// vector exactly as it was: reallocation builds the new state in a
// scratch buffer and commits it with an O(1) swap only once every
// fallible step has succeeded.
//
// Not safe for concurrent mutation. Element addresses and cursors are
// valid only until the next operation that reallocates or shifts
// elements.
type Vector[T any] struct {
	hooks Hooks[T]
	buf   Buffer[T]
	size  int
}

// New returns an empty vector with plain element semantics: zero-value
// construction, assignment copies, zeroing teardown.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewFunc returns an empty vector using h for element lifecycle.
func NewFunc[T any](h Hooks[T]) *Vector[T] {
	return &Vector[T]{hooks: h}
}

// NewLen returns a vector of n zero-valued elements with capacity n.
func NewLen[T any](n int) (*Vector[T], error) {
	return NewLenFunc[T](n, Hooks[T]{})
}

// NewLenFunc returns a vector of n default-constructed elements using h.
// If construction fails partway, everything built so far is destroyed and
// the storage released before the error is returned; no vector comes into
// existence.
func NewLenFunc[T any](n int, h Hooks[T]) (*Vector[T], error) {
	if n < 0 {
		panic("vector: negative length")
	}
	buf, err := NewBuffer[T](n)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{hooks: h, buf: buf}
	if h.New != nil {
		for i := 0; i < n; i++ {
			x, err := h.construct()
			if err != nil {
				h.dropRange(v.buf.slots[:i])
				v.buf.Release()
				return nil, fmt.Errorf("vector: construct element %d: %w", i, err)
			}
			v.buf.slots[i] = x
		}
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the vector can hold before it must
// reallocate.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// At returns the address of element i. Valid until the next reallocating
// or shifting operation.
func (v *Vector[T]) At(i int) *T {
	v.check(i)
	return &v.buf.slots[i]
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) T {
	v.check(i)
	return v.buf.slots[i]
}

// Set replaces element i with x, destroying the previous value. The
// vector takes ownership of x.
func (v *Vector[T]) Set(i int, x T) {
	v.check(i)
	v.hooks.drop(&v.buf.slots[i])
	v.buf.slots[i] = x
}

func (v *Vector[T]) check(i int) {
	if i < 0 || i >= v.size {
		panic("vector: index out of range")
	}
}

// Reserve grows capacity to at least c. When c does not exceed the
// current capacity it does nothing: element addresses and contents are
// untouched. Otherwise the new capacity is exactly c.
func (v *Vector[T]) Reserve(c int) error {
	if c <= v.buf.Cap() {
		return nil
	}
	scratch, err := NewBuffer[T](c)
	if err != nil {
		return err
	}
	moveSlots(scratch.slots[:v.size], v.buf.slots[:v.size])
	v.buf.Swap(&scratch)
	scratch.Release()
	return nil
}

// Resize sets the length to n. Shrinking destroys the elements beyond n;
// growing reserves capacity and default-constructs the new elements. If a
// construction fails, the elements built so far are destroyed again: the
// length and existing values are unchanged, though capacity may have
// grown.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: negative length")
	}
	if n < v.size {
		v.hooks.dropRange(v.buf.slots[n:v.size])
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		x, err := v.hooks.construct()
		if err != nil {
			v.hooks.dropRange(v.buf.slots[v.size:i])
			return fmt.Errorf("vector: construct element %d: %w", i, err)
		}
		v.buf.slots[i] = x
	}
	v.size = n
	return nil
}

// Clear destroys all live elements but keeps the storage.
func (v *Vector[T]) Clear() {
	v.hooks.dropRange(v.buf.slots[:v.size])
	v.size = 0
}

// Release destroys all live elements and drops the storage. The vector is
// empty afterwards and may be reused.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Release()
}

// Swap exchanges the contents of two vectors in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.hooks, other.hooks = other.hooks, v.hooks
}

// Clone returns an independent copy of the vector, with capacity equal to
// the source length. If cloning an element fails, everything already
// copied is destroyed and the new storage released before the error is
// returned.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	buf, err := cloneSlots(v.hooks, v.buf.slots[:v.size])
	if err != nil {
		return nil, err
	}
	return &Vector[T]{hooks: v.hooks, buf: buf, size: v.size}, nil
}

// cloneSlots builds a buffer holding clones of the elements in src, made
// with h. On failure everything built so far is dropped and the buffer
// released.
func cloneSlots[T any](h Hooks[T], src []T) (Buffer[T], error) {
	buf, err := NewBuffer[T](len(src))
	if err != nil {
		return Buffer[T]{}, err
	}
	for i := range src {
		x, err := h.clone(src[i])
		if err != nil {
			h.dropRange(buf.slots[:i])
			buf.Release()
			return Buffer[T]{}, fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		buf.slots[i] = x
	}
	return buf, nil
}

// CloneFrom replaces v's contents with copies of src's elements. The
// copies are made with v's own hooks, and v keeps them afterwards,
// whichever path runs. Cloning into itself is a no-op.
//
// When src does not fit in v's current capacity the copy is built on the
// side and swapped in, so a failure leaves v untouched. When capacity
// suffices the elements are replaced in place: the shared prefix is
// cloned element by element, a surplus tail is destroyed, and missing
// elements are cloned into dead slots. A failure while extending destroys
// the partially built extension; the length is unchanged.
func (v *Vector[T]) CloneFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.buf.Cap() {
		scratch, err := cloneSlots(v.hooks, src.buf.slots[:src.size])
		if err != nil {
			return err
		}
		v.hooks.dropRange(v.buf.slots[:v.size])
		v.buf.Swap(&scratch)
		scratch.Release()
		v.size = src.size
		return nil
	}
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		x, err := v.hooks.clone(src.buf.slots[i])
		if err != nil {
			return fmt.Errorf("vector: clone element %d: %w", i, err)
		}
		v.hooks.drop(&v.buf.slots[i])
		v.buf.slots[i] = x
	}
	if src.size < v.size {
		v.hooks.dropRange(v.buf.slots[src.size:v.size])
	} else {
		for i := v.size; i < src.size; i++ {
			x, err := v.hooks.clone(src.buf.slots[i])
			if err != nil {
				v.hooks.dropRange(v.buf.slots[v.size:i])
				return fmt.Errorf("vector: clone element %d: %w", i, err)
			}
			v.buf.slots[i] = x
		}
	}
	v.size = src.size
	return nil
}

// MoveFrom steals src's storage and elements, destroying v's previous
// contents first. src is left empty with no storage. O(1), cannot fail.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Clear()
	v.buf.MoveFrom(&src.buf)
	v.size = src.size
	v.hooks = src.hooks
	src.size = 0
}

// growCapacity is the doubling rule applied when an append or insert runs
// out of slots.
func (v *Vector[T]) growCapacity() (int, error) {
	if v.size == 0 {
		return 1, nil
	}
	if v.size > math.MaxInt/2 {
		return 0, ErrTooLarge
	}
	return v.size * 2, nil
}
