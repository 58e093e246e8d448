package store

import (
	"errors"

	"github.com/vivekkr1809/brass-birmingham/internal/engine"
)

// ErrNotFound is returned by Get for an unknown game id.
var ErrNotFound = errors.New("game not found")

// Store is the persistence interface for game states. Implementations may be
// backed by memory (this package), Redis, SQL, etc. The engine does not care
// about the backing medium; durability is out of scope here.
type Store interface {
	// Get retrieves a game by id, or ErrNotFound.
	Get(id string) (*engine.GameState, error)

	// Set persists or updates a game state.
	Set(id string, g *engine.GameState) error

	// Delete removes a game, reporting whether it existed.
	Delete(id string) bool

	// List returns every stored game.
	List() []*engine.GameState
}
