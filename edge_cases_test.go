package vector_test

import (
	"math"
	"testing"

	"github.com/pavanmanishd/vector"
)

// TestEdgeCases covers boundary behavior through the public API only.
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroSizeElements", func(t *testing.T) {
		v := vector.New[struct{}]()
		for i := 0; i < 100; i++ {
			if err := v.PushBack(struct{}{}); err != nil {
				t.Fatalf("PushBack error = %v", err)
			}
		}
		if v.Len() != 100 {
			t.Errorf("Len() = %d, want 100", v.Len())
		}
		if v.BytesLive() != 0 {
			t.Errorf("BytesLive() = %d, want 0 for zero-size elements", v.BytesLive())
		}
		v.Erase(50)
		v.PopBack()
		if v.Len() != 98 {
			t.Errorf("Len() = %d, want 98", v.Len())
		}
	})

	t.Run("ReserveZeroOnEmpty", func(t *testing.T) {
		v := vector.New[int]()
		if err := v.Reserve(0); err != nil {
			t.Fatalf("Reserve(0) error = %v", err)
		}
		if v.Cap() != 0 {
			t.Errorf("Cap() = %d, want 0", v.Cap())
		}
	})

	t.Run("ResizeToSameLength", func(t *testing.T) {
		v := vector.New[int]()
		v.PushBack(1)
		v.PushBack(2)
		if err := v.Resize(2); err != nil {
			t.Fatalf("Resize(2) error = %v", err)
		}
		if v.Len() != 2 || v.Get(0) != 1 || v.Get(1) != 2 {
			t.Error("Resize to current length disturbed the vector")
		}
	})

	t.Run("ResizeToZero", func(t *testing.T) {
		v := vector.New[int]()
		v.PushBack(1)
		v.PushBack(2)
		if err := v.Resize(0); err != nil {
			t.Fatalf("Resize(0) error = %v", err)
		}
		if v.Len() != 0 {
			t.Errorf("Len() = %d, want 0", v.Len())
		}
		// Storage survives; the next push needs no growth.
		c := v.Cap()
		v.PushBack(9)
		if v.Cap() != c {
			t.Errorf("Cap() changed from %d to %d", c, v.Cap())
		}
	})

	t.Run("FirstPushFromZeroCapacity", func(t *testing.T) {
		v := vector.New[int]()
		v.PushBack(1)
		if v.Cap() != 1 {
			t.Errorf("Cap() after first push = %d, want 1", v.Cap())
		}
	})

	t.Run("CloneEmpty", func(t *testing.T) {
		v := vector.New[int]()
		dup, err := v.Clone()
		if err != nil {
			t.Fatalf("Clone error = %v", err)
		}
		if dup.Len() != 0 || dup.Cap() != 0 {
			t.Errorf("clone of empty: Len=%d Cap=%d, want 0, 0", dup.Len(), dup.Cap())
		}
	})

	t.Run("MoveFromEmptySource", func(t *testing.T) {
		dst := vector.New[int]()
		dst.PushBack(1)
		src := vector.New[int]()

		dst.MoveFrom(src)
		if dst.Len() != 0 {
			t.Errorf("dst Len() = %d, want 0 after moving from empty", dst.Len())
		}
	})

	t.Run("LargeStructElements", func(t *testing.T) {
		type big struct {
			data [128]byte
			id   int
		}
		v := vector.New[big]()
		for i := 0; i < 50; i++ {
			if err := v.PushBack(big{id: i}); err != nil {
				t.Fatalf("PushBack error = %v", err)
			}
		}
		for i := 0; i < 50; i++ {
			if v.Get(i).id != i {
				t.Fatalf("element %d has id %d", i, v.Get(i).id)
			}
		}
	})

	t.Run("InterleavedMutations", func(t *testing.T) {
		v := vector.New[int]()
		want := []int{}
		for i := 0; i < 200; i++ {
			switch i % 4 {
			case 0, 1:
				v.PushBack(i)
				want = append(want, i)
			case 2:
				v.Insert(0, i)
				want = append([]int{i}, want...)
			case 3:
				if len(want) > 0 {
					v.Erase(v.Len() / 2)
					want = append(want[:len(want)/2], want[len(want)/2+1:]...)
				}
			}
		}
		if v.Len() != len(want) {
			t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
		}
		for i := range want {
			if v.Get(i) != want[i] {
				t.Fatalf("element %d = %d, want %d", i, v.Get(i), want[i])
			}
		}
	})

	t.Run("TooLargeReserve", func(t *testing.T) {
		v := vector.New[[1024]byte]()
		err := v.Reserve(math.MaxInt / 512)
		if err == nil {
			t.Fatal("expected an error for an impossible capacity")
		}
	})
}
