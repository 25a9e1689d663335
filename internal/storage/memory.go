package storage

import (
	"strconv"
	"sync"
)

// Memory is an in-process key-value store.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Raise stores value under key unless the stored integer is already at least value.
func (m *Memory) Raise(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, err := strconv.Atoi(m.values[key]); err == nil && cur >= value {
		return nil
	}
	m.values[key] = strconv.Itoa(value)
	return nil
}
