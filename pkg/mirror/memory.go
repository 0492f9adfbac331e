package mirror

import (
	"encoding/json"
	"sync"
)

// Memory is a Mirror held entirely in process. Used in tests and in contexts
// where persistence across restarts does not matter.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]json.RawMessage)}
}

func (m *Memory) Load(key string, out any) bool {
	m.mu.RLock()
	blob, ok := m.blobs[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(blob, out) == nil
}

func (m *Memory) Store(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blobs[key] = blob
	m.mu.Unlock()
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	delete(m.blobs, key)
	m.mu.Unlock()
	return nil
}
