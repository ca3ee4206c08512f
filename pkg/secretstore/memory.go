package secretstore

import (
	"context"
	"fmt"
	"sync"
)

// Memory keeps secrets in process memory (no encryption). Intended for tests
// and local demos.
type Memory struct {
	mu    sync.RWMutex
	store map[string]string
	calls map[string]int
}

var _ Store = (*Memory)(nil)

// NewMemory builds an in-memory store seeded with optional values.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{
		store: make(map[string]string, len(seed)),
		calls: make(map[string]int),
	}
	for k, v := range seed {
		m.store[k] = v
	}
	return m
}

func (m *Memory) GetSecret(_ context.Context, key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["get"]++
	v, ok := m.store[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return v, nil
}

func (m *Memory) CreateSecret(_ context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["create"]++
	if _, ok := m.store[key]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyExist, key)
	}
	m.store[key] = value
	return nil
}

func (m *Memory) UpdateSecret(_ context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["update"]++
	if _, ok := m.store[key]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	m.store[key] = value
	return nil
}

// Calls reports how many times op ("get", "create", "update") was invoked.
func (m *Memory) Calls(op string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[op]
}
