// Package locks implements ports.ScopeLocker: an in-process keyed mutex and
// a Redis-backed lock for deployments with more than one instance.
package locks

import (
	"context"
	"sync"
)

// KeyedMutex serializes callers per key inside one process. Idle keys are
// dropped so the map only holds keys that are locked or awaited.
type KeyedMutex struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	token chan struct{}
	refs  int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[string]*slot)}
}

// Lock waits for key or for ctx to end.
func (m *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	s := m.acquire(key)

	select {
	case s.token <- struct{}{}:
	case <-ctx.Done():
		m.release(key, s, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { m.release(key, s, true) })
	}, nil
}

func (m *KeyedMutex) acquire(key string) *slot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[key]
	if !ok {
		s = &slot{token: make(chan struct{}, 1)}
		m.slots[key] = s
	}
	s.refs++
	return s
}

func (m *KeyedMutex) release(key string, s *slot, held bool) {
	if held {
		<-s.token
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(m.slots, key)
	}
}

// size reports the number of tracked keys.
func (m *KeyedMutex) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}
