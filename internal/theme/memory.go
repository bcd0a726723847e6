package theme

import (
	"context"
	"sync"
)

type MemoryStore struct {
	values map[string]string
	mutex  sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = value
	return nil
}
