package session

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	var km keyedMutex
	var a, b int
	var wg sync.WaitGroup

	bump := func(key string, n *int) {
		defer wg.Done()
		unlock := km.lock(key)
		defer unlock()
		*n++
	}

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go bump("a", &a)
		go bump("b", &b)
	}
	wg.Wait()

	if a != 50 || b != 50 {
		t.Fatalf("lost updates under keyed lock: a=%d b=%d", a, b)
	}
}

func TestKeyedMutex_DropsIdleEntries(t *testing.T) {
	var km keyedMutex
	unlock := km.lock("x")
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.held) != 0 {
		t.Fatalf("expected no retained entries, got %d", len(km.held))
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	bad := DefaultConfig()
	bad.GapConfidenceThreshold = 1.2
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for out-of-range threshold")
	}

	bad = DefaultConfig()
	bad.MaxProbes = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero probe cap")
	}
}
