package store

import (
	"context"
	"sync"
)

// Memory is a map-backed Store. It serves tests and DB-less runs; state is
// lost on restart, which degrades to "session does not survive a reload".
type Memory struct {
	mu       sync.Mutex
	sessions map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]map[string]string)}
}

func (m *Memory) Put(ctx context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kv, ok := m.sessions[sessionID]
	if !ok {
		kv = make(map[string]string)
		m.sessions[sessionID] = kv
	}
	kv[key] = value
	return nil
}

func (m *Memory) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.sessions[sessionID][key]
	return value, ok, nil
}

func (m *Memory) Remove(ctx context.Context, sessionID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions[sessionID], key)
	return nil
}
