package future

import (
	"sync"
	"testing"
	"time"
)

func TestGetReturnsFulfilledValue(t *testing.T) {
	f := New[int]()
	go f.Fulfill(42)

	if v := f.Get(); v != 42 {
		t.Fatalf("Get: got %d, want 42", v)
	}
	// Re-reads return the identical value.
	for i := 0; i < 3; i++ {
		if v := f.Get(); v != 42 {
			t.Fatalf("re-read %d: got %d, want 42", i, v)
		}
	}
}

func TestFulfillTwicePanics(t *testing.T) {
	f := Fulfilled("first")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on second Fulfill")
		}
	}()
	f.Fulfill("second")
}

func TestTryGet(t *testing.T) {
	f := New[string]()
	if _, ok := f.TryGet(); ok {
		t.Fatalf("TryGet on empty future reported fulfilled")
	}

	f.Fulfill("ready")
	v, ok := f.TryGet()
	if !ok || v != "ready" {
		t.Fatalf("TryGet: got (%q, %v), want (\"ready\", true)", v, ok)
	}
}

func TestConcurrentReaders(t *testing.T) {
	f := New[int]()

	const readers = 16
	results := make([]int, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.Get()
		}(i)
	}

	time.Sleep(10 * time.Millisecond)
	f.Fulfill(7)
	wg.Wait()

	for i, v := range results {
		if v != 7 {
			t.Fatalf("reader %d: got %d, want 7", i, v)
		}
	}
}

func TestDoneSelectable(t *testing.T) {
	f := New[int]()
	select {
	case <-f.Done():
		t.Fatalf("Done closed before fulfillment")
	default:
	}

	f.Fulfill(1)
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatalf("Done not closed after fulfillment")
	}
}

func TestThen(t *testing.T) {
	f := New[int]()
	g := Then(f, func(v int) int { return v * 2 })

	f.Fulfill(21)
	if v := g.Get(); v != 42 {
		t.Fatalf("Then: got %d, want 42", v)
	}
}
