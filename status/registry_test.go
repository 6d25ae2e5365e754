package status

import (
	"sync"
	"testing"
)

// TestMetricMapGetCachesPointer verifies repeated Get returns the same metric
func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("assets.written")
	b := r.Ints.Get("assets.written")
	if a != b {
		t.Error("Expected Get to return the cached pointer")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}

	if r.TotalCount() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.TotalCount())
	}
}

// TestMetricMapRangeSorted verifies deterministic iteration order
func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	for _, k := range []string{"zeta", "alpha", "mid"} {
		m.Get(k).Store(k)
	}

	var keys []string
	m.Range(func(key string, ptr *AtomicString) {
		if ptr.Load() != key {
			t.Errorf("Expected value %s, got %s", key, ptr.Load())
		}
		keys = append(keys, key)
	})

	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

// TestAtomicFloatConcurrentAdd verifies no delta is lost under contention
func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if f.Get() != 4000 {
		t.Errorf("Expected 4000, got %f", f.Get())
	}

	f.Set(1.25)
	if f.Get() != 1.25 {
		t.Errorf("Expected 1.25 after Set, got %f", f.Get())
	}
}

// TestAtomicStringZeroValue verifies the zero value loads empty
func TestAtomicStringZeroValue(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected empty string, got %q", s.Load())
	}
	s.Store("number_remove.wav")
	if s.Load() != "number_remove.wav" {
		t.Errorf("Expected full name to be kept, got %q", s.Load())
	}
}
