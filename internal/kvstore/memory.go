package kvstore

import (
	"context"
	"sync"
)

// Memory is a thread-safe in-memory Store. Hooks and injected faults make
// read and write failures, and interleavings between callers, testable.
type Memory struct {
	mu     sync.Mutex
	values map[string]string

	// OnGet runs after a successful read, outside the lock.
	OnGet func(key string)
	// OnSet runs before a write is applied, outside the lock.
	OnSet func(key, value string)
	// FailGet, when set, is returned by every Get.
	FailGet error
	// FailSet, when set, is returned by every Set and nothing is written.
	FailSet error

	gets int
	sets int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	m.mu.Lock()
	m.gets++
	if m.FailGet != nil {
		err := m.FailGet
		m.mu.Unlock()
		return "", false, err
	}
	v, ok := m.values[key]
	hook := m.OnGet
	m.mu.Unlock()

	if hook != nil {
		hook(key)
	}
	return v, ok, nil
}

// Set replaces the value stored under key.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	hook := m.OnSet
	m.mu.Unlock()
	if hook != nil {
		hook(key, value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.FailSet != nil {
		return m.FailSet
	}
	m.values[key] = value
	return nil
}

// Seed stores value under key without counting it as a Set.
func (m *Memory) Seed(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Raw returns the stored value without counting it as a Get.
func (m *Memory) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Gets returns the number of Get calls.
func (m *Memory) Gets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets
}

// Sets returns the number of Set calls.
func (m *Memory) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
