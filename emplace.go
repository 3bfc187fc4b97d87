package vector

// PushBack appends x, growing capacity if needed. The vector takes
// ownership of x; clone it first if the caller keeps using it.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.EmplaceBack(func() (T, error) { return x, nil })
	return err
}

// EmplaceBack appends an element produced by ctor and returns its
// address. If ctor or the allocation fails, the vector is exactly as it
// was: with spare capacity the target slot is simply never made live; on
// a growth path the element is constructed into the scratch buffer before
// any existing element is touched, and a failure discards the scratch.
// Callers may ignore the returned address.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if v.size == v.buf.Cap() {
		return v.emplaceGrow(v.size, ctor)
	}
	x, err := ctor()
	if err != nil {
		return nil, err
	}
	p := &v.buf.slots[v.size]
	*p = x
	v.size++
	return p, nil
}

// PopBack removes the last element, destroying it. Panics on an empty
// vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.hooks.drop(&v.buf.slots[v.size-1])
	v.size--
}

// Insert places x before position i, shifting later elements right. The
// vector takes ownership of x. i may equal Len(), which appends. Returns
// a cursor to the inserted element; callers may ignore it.
func (v *Vector[T]) Insert(i int, x T) (Iterator[T], error) {
	return v.Emplace(i, func() (T, error) { return x, nil })
}

// Emplace inserts an element produced by ctor before position i. ctor
// runs before any element is moved, so a construction failure leaves the
// vector untouched; on a growth path the usual scratch-then-swap
// discipline applies.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (Iterator[T], error) {
	if i < 0 || i > v.size {
		panic("vector: insert position out of range")
	}
	if i == v.size {
		if _, err := v.EmplaceBack(ctor); err != nil {
			return Iterator[T]{}, err
		}
		return Iterator[T]{vec: v, pos: i}, nil
	}
	if v.size == v.buf.Cap() {
		if _, err := v.emplaceGrow(i, ctor); err != nil {
			return Iterator[T]{}, err
		}
		return Iterator[T]{vec: v, pos: i}, nil
	}
	x, err := ctor()
	if err != nil {
		return Iterator[T]{}, err
	}
	// copy is overlap-safe, so the shift is a single backward move.
	copy(v.buf.slots[i+1:v.size+1], v.buf.slots[i:v.size])
	v.buf.slots[i] = x
	v.size++
	return Iterator[T]{vec: v, pos: i}, nil
}

// emplaceGrow reallocates at doubled capacity while adding an element at
// position i. The new element is constructed into the scratch buffer
// first; existing elements move around it only after that succeeds, and
// the scratch is committed with a swap. Any failure leaves the original
// buffer, still holding every element, as the vector's state.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) (*T, error) {
	c, err := v.growCapacity()
	if err != nil {
		return nil, err
	}
	scratch, err := NewBuffer[T](c)
	if err != nil {
		return nil, err
	}
	x, err := ctor()
	if err != nil {
		scratch.Release()
		return nil, err
	}
	scratch.slots[i] = x
	moveSlots(scratch.slots[:i], v.buf.slots[:i])
	moveSlots(scratch.slots[i+1:v.size+1], v.buf.slots[i:v.size])
	v.buf.Swap(&scratch)
	scratch.Release()
	v.size++
	return &v.buf.slots[i], nil
}

// Erase removes element i, shifting later elements left. Panics unless
// i < Len(). Returns a cursor to the element that now occupies position
// i (End() when the last element was erased).
func (v *Vector[T]) Erase(i int) Iterator[T] {
	v.check(i)
	v.hooks.drop(&v.buf.slots[i])
	copy(v.buf.slots[i:v.size-1], v.buf.slots[i+1:v.size])
	clear(v.buf.slots[v.size-1 : v.size])
	v.size--
	return Iterator[T]{vec: v, pos: i}
}
