package stats

import (
	"errors"
	"testing"
)

// TestFromSizes_Buckets checks the size-to-bucket mapping, including
// the overflow bucket and the empty-ring skip.
func TestFromSizes_Buckets(t *testing.T) {
	h := FromSizes([]int{1, 1, 2, 10, 11, 25, 0})
	if h[0] != 2 {
		t.Errorf("bucket 0 = %d; want 2", h[0])
	}
	if h[1] != 1 {
		t.Errorf("bucket 1 = %d; want 1", h[1])
	}
	if h[9] != 1 {
		t.Errorf("bucket 9 = %d; want 1", h[9])
	}
	if h[MaxBucket] != 2 {
		t.Errorf("overflow bucket = %d; want 2", h[MaxBucket])
	}
	if h.Total() != 6 {
		t.Errorf("total = %d; want 6 (empty ring skipped)", h.Total())
	}
}

// TestTracedFrom counts pre-attack sizes of rings that became
// singletons.
func TestTracedFrom(t *testing.T) {
	pre := []int{1, 3, 4, 5}
	post := []int{1, 1, 4, 1}
	h, err := TracedFrom(pre, post)
	if err != nil {
		t.Fatalf("TracedFrom failed: %v", err)
	}
	if h[0] != 1 || h[2] != 1 || h[4] != 1 {
		t.Errorf("histogram = %v; want buckets 0,2,4 set", h)
	}
	if h.Total() != 3 {
		t.Errorf("total = %d; want 3", h.Total())
	}
}

// TestTracedFrom_LengthMismatch rejects non-parallel slices.
func TestTracedFrom_LengthMismatch(t *testing.T) {
	if _, err := TracedFrom([]int{1}, []int{1, 1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v; want ErrLengthMismatch", err)
	}
}

// TestSub checks bucket-wise subtraction and the underflow guard.
func TestSub(t *testing.T) {
	a := FromSizes([]int{1, 1, 2})
	b := FromSizes([]int{1})

	d, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if d[0] != 1 || d[1] != 1 {
		t.Errorf("difference = %v; want buckets [1 1 ...]", d)
	}

	if _, err := b.Sub(a); !errors.Is(err, ErrUnderflow) {
		t.Errorf("got %v; want ErrUnderflow", err)
	}
}

// TestString renders the bracketed count list.
func TestString(t *testing.T) {
	h := FromSizes([]int{1})
	want := "[1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]"
	if h.String() != want {
		t.Errorf("String() = %q; want %q", h.String(), want)
	}
}
