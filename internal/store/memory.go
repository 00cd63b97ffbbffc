package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/mastermind-backend/internal/model"
)

// Memory is a map-backed Store for tests and ephemeral runs. Snapshots are
// kept in their serialized form so loads exercise the same round-trip as a
// durable backend.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{snapshots: make(map[string][]byte)}
}

func (m *Memory) Save(ctx context.Context, roomID string, state *model.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[roomID] = data
	return nil
}

func (m *Memory) Load(ctx context.Context, roomID string) (*model.GameState, error) {
	m.mu.RLock()
	data, ok := m.snapshots[roomID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var state model.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &state, nil
}

func (m *Memory) Close(ctx context.Context) error {
	return nil
}
