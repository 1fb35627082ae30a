package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

var _ ports.DocumentBackend = (*MemoryBackend)(nil)

// MemoryBackend keeps documents in a process-local map. Contents are lost on
// restart.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (m *MemoryBackend) Name() string { return "store.memory" }

func (m *MemoryBackend) HealthCheck(context.Context) error { return nil }

func (m *MemoryBackend) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[key]
	if !ok {
		return nil, fmt.Errorf("document %q: %w", key, domain.ErrNotFound)
	}
	return bytes.Clone(data), nil
}

func (m *MemoryBackend) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[key] = bytes.Clone(data)
	return nil
}
