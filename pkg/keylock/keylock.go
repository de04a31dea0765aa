// Package keylock hands out one mutex per key.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Map drops a key's entry once its last holder or waiter unlocks.
type Map struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func New() *Map { return &Map{locks: map[string]*entry{}} }

// Lock blocks until key is free and returns its unlock func.
func (m *Map) Lock(key string) (unlock func()) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		m.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(m.locks, key)
		}
		m.mu.Unlock()
	}
}

// Len is the number of keys currently held or awaited.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
