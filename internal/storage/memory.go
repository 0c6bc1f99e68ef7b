package storage

import (
	"context"
	"sync"
)

// Memory keeps device namespaces in process memory. Useful for development and
// tests; contents are lost on restart.
type Memory struct {
	mu      sync.RWMutex
	devices map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{devices: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, device, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.devices[device][key]; ok {
		return v, nil
	}
	return "", ErrNotFound
}

func (m *Memory) Set(_ context.Context, device, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ns, ok := m.devices[device]
	if !ok {
		ns = make(map[string]string)
		m.devices[device] = ns
	}
	ns[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, device string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ns := m.devices[device]
	for _, k := range keys {
		delete(ns, k)
	}
	if len(ns) == 0 {
		delete(m.devices, device)
	}
	return nil
}
