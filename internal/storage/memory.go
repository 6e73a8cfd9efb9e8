package storage

import (
	"context"
	"sync"
)

// Memory is an in-memory KV for tests and ephemeral runs.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(value))
	copy(out, value)
	m.values[key] = out
	return nil
}
