package store

import (
	"sort"
	"sync"

	"github.com/vivekkr1809/brass-birmingham/internal/engine"
)

// memory is an in-memory map-based Store implementation. Concurrency-safe via
// RWMutex; state is lost when the process restarts.
type memory struct {
	mu    sync.RWMutex
	games map[string]*engine.GameState
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*engine.GameState)}
}

func (m *memory) Get(id string) (*engine.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Set(id string, g *engine.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = g
	return nil
}

func (m *memory) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return false
	}
	delete(m.games, id)
	return true
}

// List returns stored games ordered by creation time, oldest first.
func (m *memory) List() []*engine.GameState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*engine.GameState, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
