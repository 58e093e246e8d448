package protocol

// Message types: Server → Client
const (
	MsgLobbyUpdate  = "lobby_update"
	MsgGameState    = "game_state"
	MsgStateChanges = "state_changes"
	MsgActionResult = "action_result"
	MsgGameOver     = "game_over"
	MsgError        = "error"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	MsgAction    = "action"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID      string        `json:"game_id"`
	PlayerCount int           `json:"player_count"`
	Players     []LobbyPlayer `json:"players"`
	Started     bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// JoinMsg is sent by a player to join the lobby.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// GameOver announces the winner once the rail era scoring is done.
type GameOver struct {
	WinnerID string `json:"winner_id"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
