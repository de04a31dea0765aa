package keylock

import (
	"runtime"
	"sync"
	"testing"
)

func TestLock_SerializesSameKey(t *testing.T) {
	m := New()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("loan-1")
			defer unlock()
			c := counter
			c++
			counter = c
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
	if n := m.Len(); n != 0 {
		t.Fatalf("entries left = %d, want 0", n)
	}
}

func TestLock_DifferentKeysIndependent(t *testing.T) {
	m := New()
	unlockA := m.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := m.Lock("b")
		unlock()
		close(done)
	}()
	<-done
}

func TestLock_ReleasesEntries(t *testing.T) {
	m := New()
	for i := 0; i < 100; i++ {
		m.Lock(string(rune('a' + i%26)))()
	}
	if n := m.Len(); n != 0 {
		t.Fatalf("entries left = %d, want 0", n)
	}
}

func TestLock_WaiterKeepsEntry(t *testing.T) {
	m := New()
	unlock := m.Lock("k")

	acquired := make(chan func())
	go func() { acquired <- m.Lock("k") }()

	// wait until the second caller has registered
	for {
		m.mu.Lock()
		refs := m.locks["k"].refs
		m.mu.Unlock()
		if refs == 2 {
			break
		}
		runtime.Gosched()
	}

	unlock()
	second := <-acquired
	if n := m.Len(); n != 1 {
		t.Fatalf("entries while held = %d, want 1", n)
	}
	second()
	if n := m.Len(); n != 0 {
		t.Fatalf("entries left = %d, want 0", n)
	}
}
