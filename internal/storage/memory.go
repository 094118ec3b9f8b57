package storage

import (
	"context"
	"sync"
	"time"
)

type memoryNamespace struct {
	values    map[string][]byte
	updatedAt time.Time
}

// MemoryStore keeps everything in process memory. Used by tests and by
// STORAGE_DRIVER=memory for throwaway demos.
type MemoryStore struct {
	mu  sync.RWMutex
	ns  map[string]*memoryNamespace
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ns: make(map[string]*memoryNamespace), now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, namespace, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.ns[namespace]
	if !ok {
		return nil, ErrNotFound
	}
	v, ok := n.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.ns[namespace]
	if !ok {
		n = &memoryNamespace{values: make(map[string][]byte)}
		m.ns[namespace] = n
	}
	v := make([]byte, len(value))
	copy(v, value)
	n.values[key] = v
	n.updatedAt = m.now()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, namespace string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.ns[namespace]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(n.values, k)
	}
	if len(n.values) == 0 {
		delete(m.ns, namespace)
	}
	return nil
}

func (m *MemoryStore) EvictIdle(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for name, n := range m.ns {
		if n.updatedAt.Before(cutoff) {
			delete(m.ns, name)
			evicted++
		}
	}
	return evicted, nil
}

func (m *MemoryStore) Touch(_ context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.ns[namespace]; ok {
		n.updatedAt = m.now()
	}
	return nil
}
