package vector

// Hooks customizes element lifecycle for types whose construction or
// copying can fail, or that hold resources needing explicit teardown.
// Every field is optional:
//
//   - New default-constructs an element. Nil means the zero value.
//   - Clone copies an element. Nil means plain assignment, which cannot
//     fail in Go.
//   - Drop destroys a live element. Nil means the slot is zeroed so the
//     vector stops retaining whatever the element referenced.
//
// Moves are not hooked: a move is always plain assignment followed by
// zeroing the source slot, and cannot fail.
type Hooks[T any] struct {
	New   func() (T, error)
	Clone func(T) (T, error)
	Drop  func(*T)
}

// construct default-constructs one element.
func (h Hooks[T]) construct() (T, error) {
	if h.New != nil {
		return h.New()
	}
	var zero T
	return zero, nil
}

// clone copies one element.
func (h Hooks[T]) clone(x T) (T, error) {
	if h.Clone != nil {
		return h.Clone(x)
	}
	return x, nil
}

// drop destroys the live element in *p and leaves the slot dead.
func (h Hooks[T]) drop(p *T) {
	if h.Drop != nil {
		h.Drop(p)
		return
	}
	var zero T
	*p = zero
}

// dropRange destroys every live element in s, highest index first.
func (h Hooks[T]) dropRange(s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		h.drop(&s[i])
	}
}

// moveSlots transfers live elements from src into dst by assignment and
// kills the source slots. Ownership of anything the elements reference
// follows the move, so no Drop runs on the source. The ranges must not
// overlap; in-place shifts use copy directly.
func moveSlots[T any](dst, src []T) {
	copy(dst, src)
	clear(src)
}
