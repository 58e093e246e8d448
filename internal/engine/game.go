package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Config holds the parameters for creating a new game.
type Config struct {
	PlayerCount int
	MaxRounds   int // 0 means derive from player count

	// Rand drives deck shuffling and initial turn order. Leave nil for a
	// time-seeded source; inject a fixed-seed source for reproducible games.
	Rand *rand.Rand

	// NewID generates ids for the game, cards, tiles, and links.
	// Defaults to uuid.NewString.
	NewID func() string
}

// Starting values per the base rules.
const (
	startingMoney     = 17
	startingIncome    = 10
	startingLinkTiles = 14
	handSize          = 8
)

// maxRoundsFor returns the printed round count for a player count.
func maxRoundsFor(playerCount int) int {
	switch playerCount {
	case 2:
		return 10
	case 3:
		return 9
	default:
		return 8
	}
}

// GameState is the root aggregate. It is exclusively owned by the engine and
// mutated in place by action executors; the caller must serialize all
// mutating calls per game.
type GameState struct {
	GameID      string    `json:"game_id"`
	Phase       GamePhase `json:"phase"`
	Era         Era       `json:"era"`
	Round       int       `json:"round"`
	MaxRounds   int       `json:"max_rounds"`
	PlayerCount int       `json:"player_count"`

	Players            []*PlayerState   `json:"players"`
	TurnOrder          []TurnOrderEntry `json:"turn_order"`
	CurrentPlayerIndex int              `json:"current_player_index"`

	Board *BoardState `json:"board"`
	Deck  *Deck       `json:"deck"`

	// PlacedTiles maps tile id to the built tile.
	PlacedTiles map[string]*PlacedTile `json:"placed_tiles"`

	IsFirstRound bool `json:"is_first_round"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	rng   *rand.Rand
	newID func() string
}

// NewGame creates a fresh game for the given players. It fails if the id list
// does not match the configured player count.
func NewGame(cfg Config, playerIDs []string) (*GameState, error) {
	if cfg.PlayerCount < 2 || cfg.PlayerCount > 4 {
		return nil, fmt.Errorf("player count must be 2-4, got %d", cfg.PlayerCount)
	}
	if len(playerIDs) != cfg.PlayerCount {
		return nil, fmt.Errorf("expected %d players, got %d", cfg.PlayerCount, len(playerIDs))
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	maxRounds := cfg.MaxRounds
	if maxRounds == 0 {
		maxRounds = maxRoundsFor(cfg.PlayerCount)
	}

	players := make([]*PlayerState, len(playerIDs))
	for i, id := range playerIDs {
		players[i] = &PlayerState{
			PlayerID:           id,
			Money:              startingMoney,
			Income:             startingIncome,
			LinkTilesRemaining: startingLinkTiles,
			Mat:                newPlayerMat(id, newID),
			ActionsRemaining:   1, // first round has a single action
		}
	}

	deck := newDeck(cfg.PlayerCount, rng, newID)
	for _, p := range players {
		for i := 0; i < handSize; i++ {
			if card, ok := deck.Draw(); ok {
				p.Hand = append(p.Hand, card)
			}
		}
		// One card face down to the discard pile.
		if card, ok := deck.Draw(); ok {
			p.DiscardPile = append(p.DiscardPile, card)
		}
	}

	// Initial turn order is random.
	order := rng.Perm(len(players))
	turnOrder := make([]TurnOrderEntry, len(players))
	for i, idx := range order {
		turnOrder[i] = TurnOrderEntry{PlayerID: players[idx].PlayerID, Order: i}
	}

	now := time.Now()
	return &GameState{
		GameID:       newID(),
		Phase:        PhasePlaying,
		Era:          EraCanal,
		Round:        1,
		MaxRounds:    maxRounds,
		PlayerCount:  cfg.PlayerCount,
		Players:      players,
		TurnOrder:    turnOrder,
		Board:        newBoardState(cfg.PlayerCount),
		Deck:         deck,
		PlacedTiles:  make(map[string]*PlacedTile),
		IsFirstRound: true,
		CreatedAt:    now,
		UpdatedAt:    now,
		rng:          rng,
		newID:        newID,
	}, nil
}

// Player returns the player with the given id, or nil.
func (g *GameState) Player(id string) *PlayerState {
	for _, p := range g.Players {
		if p.PlayerID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil.
func (g *GameState) CurrentPlayer() *PlayerState {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.TurnOrder) {
		return nil
	}
	return g.Player(g.TurnOrder[g.CurrentPlayerIndex].PlayerID)
}

// PlacedTile returns the built tile with the given id, or nil.
func (g *GameState) PlacedTile(id string) *PlacedTile {
	return g.PlacedTiles[id]
}

// Finished reports whether the game is over.
func (g *GameState) Finished() bool {
	return g.Phase == PhaseFinished
}

// touch bumps the updated-at timestamp after a mutation.
func (g *GameState) touch() {
	g.UpdatedAt = time.Now()
}

// PlayerSummary is the per-player slice of a game summary.
type PlayerSummary struct {
	PlayerID           string `json:"player_id"`
	Money              int    `json:"money"`
	Income             int    `json:"income"`
	VictoryPoints      int    `json:"victory_points"`
	HandSize           int    `json:"hand_size"`
	LinkTilesRemaining int    `json:"link_tiles_remaining"`
	ActionsRemaining   int    `json:"actions_remaining"`
	HasPassed          bool   `json:"has_passed"`
}

// Summary is the compact game view served to clients.
type Summary struct {
	GameID          string          `json:"game_id"`
	Phase           string          `json:"phase"`
	Era             Era             `json:"era"`
	Round           int             `json:"round"`
	MaxRounds       int             `json:"max_rounds"`
	PlayerCount     int             `json:"player_count"`
	CurrentPlayerID string          `json:"current_player_id,omitempty"`
	Players         []PlayerSummary `json:"players"`
}

// Summary builds the compact view of the game.
func (g *GameState) Summary() Summary {
	s := Summary{
		GameID:      g.GameID,
		Phase:       g.Phase.String(),
		Era:         g.Era,
		Round:       g.Round,
		MaxRounds:   g.MaxRounds,
		PlayerCount: g.PlayerCount,
	}
	if p := g.CurrentPlayer(); p != nil {
		s.CurrentPlayerID = p.PlayerID
	}
	for _, p := range g.Players {
		s.Players = append(s.Players, PlayerSummary{
			PlayerID:           p.PlayerID,
			Money:              p.Money,
			Income:             p.Income,
			VictoryPoints:      p.VictoryPoints,
			HandSize:           len(p.Hand),
			LinkTilesRemaining: p.LinkTilesRemaining,
			ActionsRemaining:   p.ActionsRemaining,
			HasPassed:          p.HasPassed,
		})
	}
	return s
}
