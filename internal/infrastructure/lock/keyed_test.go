package lock

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	m := NewKeyedMutex(8)

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("acct-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Fatalf("expected 100 increments, got %d", counter)
	}
}

func TestKeyedMutex_StableStripe(t *testing.T) {
	m := NewKeyedMutex(16)
	if m.stripeIndex("acct-1") != m.stripeIndex("acct-1") {
		t.Fatalf("same key mapped to different stripes")
	}
}

func TestKeyedMutex_DefaultStripes(t *testing.T) {
	m := NewKeyedMutex(0)
	if len(m.stripes) != defaultStripes {
		t.Fatalf("expected %d stripes, got %d", defaultStripes, len(m.stripes))
	}
}
