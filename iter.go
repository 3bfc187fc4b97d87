package vector

import "iter"

// Iterator is a random-access cursor over a vector's live elements.
// It is a small value; advancing returns a new cursor rather than
// mutating in place.
//
// A cursor is positional: any reallocation or shifting mutation after its
// creation breaks the correspondence between the cursor and the element
// it pointed at.
type Iterator[T any] struct {
	vec *Vector[T]
	pos int
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v}
}

// End returns the cursor one past the last element. It does not refer to
// an element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, pos: v.size}
}

// Valid reports whether the cursor refers to a live element.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.pos >= 0 && it.pos < it.vec.size
}

// Pos returns the cursor's index.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next returns the cursor advanced by one.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Prev returns the cursor stepped back by one.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}

// Seek returns the cursor displaced by delta positions.
func (it Iterator[T]) Seek(delta int) Iterator[T] {
	it.pos += delta
	return it
}

// Ref returns the address of the element under the cursor. Panics if the
// cursor is not Valid.
func (it Iterator[T]) Ref() *T {
	if !it.Valid() {
		panic("vector: dereference of invalid cursor")
	}
	return &it.vec.buf.slots[it.pos]
}

// Get returns a copy of the element under the cursor.
func (it Iterator[T]) Get() T {
	return *it.Ref()
}

// Set replaces the element under the cursor, destroying the old value.
// Panics if the cursor is not Valid.
func (it Iterator[T]) Set(x T) {
	if !it.Valid() {
		panic("vector: dereference of invalid cursor")
	}
	it.vec.Set(it.pos, x)
}

// All returns an index/value sequence over the live elements, in order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Values returns a value sequence over the live elements, in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.slots[i]) {
				return
			}
		}
	}
}
