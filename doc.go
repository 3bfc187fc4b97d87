// Package vector implements a growable contiguous sequence container
// built on an explicit raw-storage buffer.
//
// # Overview
//
// A Vector[T] owns exactly one Buffer[T]: a move-only block of element
// slots that performs no element construction or destruction itself. The
// vector tracks how many slots currently hold live elements and runs
// every construct, clone, and drop explicitly. This split is what makes
// the failure behavior precise: a mutating operation that must
// reallocate builds the new state in a scratch buffer and commits it
// with an O(1) swap only after every fallible step has succeeded, so a
// failure leaves the vector exactly as it was.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 5)            // [1 5 2]
//	v.Erase(0)                // [5 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Fallible Element Types
//
// Types whose construction or copying can fail, or that hold resources
// needing explicit teardown, supply lifecycle hooks:
//
//	v := vector.NewFunc(vector.Hooks[*os.File]{
//		Clone: dupFile,
//		Drop:  func(f **os.File) { (*f).Close() },
//	})
//
// Operations that run a hook report its error to the caller unchanged.
// If the error occurred on a reallocating path, the vector's length,
// capacity, and contents are exactly as before the call.
//
// # Growth
//
// Appending or inserting into a full vector reallocates at twice the
// current length (minimum 1), amortizing growth to O(1) per append.
// Reserve(c) with c at or below the current capacity is a guaranteed
// no-op: element addresses are untouched.
//
// # Invalidation
//
// Element addresses and cursors are valid only until the next operation
// that reallocates (Reserve growth, a growing append or insert) or
// shifts elements (Insert, Erase). This is part of the contract, not an
// implementation detail.
//
// # Thread Safety
//
// Vector and Buffer are not safe for concurrent mutation. Confine an
// instance to one goroutine at a time or synchronize externally.
//
// # Preconditions
//
// Indexed access, PopBack, and Erase require in-range positions on a
// non-empty vector. Violations panic with a "vector:" prefixed message;
// they are not recoverable errors.
package vector
