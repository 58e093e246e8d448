package lobby

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// Manager manages multiple lobbies.
type Manager struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby
}

func NewManager() *Manager {
	return &Manager{lobbies: make(map[string]*Lobby)}
}

// Create creates a new lobby for the given seat count and returns it.
func (m *Manager) Create(playerCount int) (*Lobby, error) {
	if playerCount < 2 || playerCount > 4 {
		return nil, fmt.Errorf("player count must be 2-4, got %d", playerCount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := generateID()
	l := NewLobby(id, playerCount)
	m.lobbies[id] = l
	return l, nil
}

// Get returns a lobby by ID.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

// Remove drops a lobby, typically once its game has started.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lobbies, id)
}

func generateID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
