package lobby

import (
	"fmt"
	"sync"
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
}

// Lobby represents a table waiting for players. Unlike a free-for-all lobby it
// is created for an exact seat count, because the board setup (merchants, deck
// size, round count) depends on it.
type Lobby struct {
	mu          sync.Mutex
	ID          string
	PlayerCount int
	Players     []*PlayerInfo
	Started     bool
}

// NewLobby creates a new lobby for the given seat count.
func NewLobby(id string, playerCount int) *Lobby {
	return &Lobby{
		ID:          id,
		PlayerCount: playerCount,
	}
}

// Join adds a player to the lobby.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("game already started")
	}
	// Rejoin keeps the seat; only the name may change.
	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	if len(l.Players) >= l.PlayerCount {
		return fmt.Errorf("lobby is full")
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	return nil
}

// Leave removes a player from the lobby.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return
		}
	}
}

// SetReady toggles a player's ready state.
func (l *Lobby) SetReady(id string, ready bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return
		}
	}
}

// CanStart returns true once every seat is filled and ready.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.Players) != l.PlayerCount {
		return false
	}
	for _, p := range l.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// Start marks the lobby as started.
func (l *Lobby) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("already started")
	}
	if len(l.Players) != l.PlayerCount {
		return fmt.Errorf("need %d players, have %d", l.PlayerCount, len(l.Players))
	}
	l.Started = true
	return nil
}

// GetPlayers returns a copy of the player list in join order.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}

// PlayerIDs returns the seated player ids in join order.
func (l *Lobby) PlayerIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]string, len(l.Players))
	for i, p := range l.Players {
		ids[i] = p.ID
	}
	return ids
}
