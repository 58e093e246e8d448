package server

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vivekkr1809/brass-birmingham/internal/engine"
	"github.com/vivekkr1809/brass-birmingham/internal/lobby"
	"github.com/vivekkr1809/brass-birmingham/internal/protocol"
)

// Hub manages the WebSocket connections for one game room. Before the game
// starts it drives the lobby; afterwards it relays actions into the engine
// and fans state changes out to every connected client. A hub created for a
// REST game has no lobby and is broadcast-plus-actions only.
type Hub struct {
	mu         sync.Mutex
	srv        *Server
	gameID     string
	lobby      *lobby.Lobby
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
	stopOnce   sync.Once
	logger     zerolog.Logger
}

func NewHub(srv *Server, gameID string, lob *lobby.Lobby) *Hub {
	return &Hub{
		srv:        srv,
		gameID:     gameID,
		lobby:      lob,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
		logger:     srv.logger.With().Str("game_id", gameID).Logger(),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLobbyUpdate()
			h.sendStateToClient(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

// Stop shuts the hub down. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(msg)
	case protocol.MsgAction:
		h.handleAction(msg)
	default:
		h.sendError(msg.Client, "unknown message type")
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	if h.lobby == nil {
		h.sendError(msg.Client, "game already started")
		return
	}
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.sendLobbyUpdate()
}

func (h *Hub) handleReady(msg IncomingMessage) {
	if h.lobby == nil {
		h.sendError(msg.Client, "game already started")
		return
	}
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		h.sendError(msg.Client, "invalid ready message")
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

func (h *Hub) handleStartGame(msg IncomingMessage) {
	if h.lobby == nil {
		h.sendError(msg.Client, "game already started")
		return
	}
	if !h.lobby.CanStart() {
		h.sendError(msg.Client, "not all players ready")
		return
	}
	if err := h.lobby.Start(); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	g, err := engine.NewGame(engine.Config{
		PlayerCount: h.lobby.PlayerCount,
	}, h.lobby.PlayerIDs())
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	// The room id doubles as the game id so existing QR codes keep working.
	g.GameID = h.gameID
	if err := h.srv.store.Set(h.gameID, g); err != nil {
		h.sendError(msg.Client, "failed to store game")
		return
	}
	// The store owns the game now; the manager no longer needs the lobby.
	h.srv.lobbies.Remove(h.gameID)

	h.logger.Info().Int("player_count", g.PlayerCount).Msg("game started")
	h.sendLobbyUpdate()
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgGameState, g.Summary()))
}

func (h *Hub) handleAction(msg IncomingMessage) {
	var action engine.Action
	if err := msg.Envelope.Decode(&action); err != nil {
		h.sendError(msg.Client, "invalid action payload")
		return
	}
	// The connection decides identity; the payload cannot act for others.
	if msg.Client.PlayerID != "" {
		action.PlayerID = msg.Client.PlayerID
	}

	out, err := h.srv.applyAction(h.gameID, action)
	if err != nil {
		h.sendError(msg.Client, "game not started")
		return
	}

	msg.Client.SendEnvelope(protocol.MustEnvelope(protocol.MsgActionResult, out.Result))
	if !out.Result.Success {
		h.logger.Debug().
			Str("player_id", action.PlayerID).
			Str("action", string(action.Type)).
			Str("reason", strings.Join(out.Result.Errors, "; ")).
			Msg("action rejected")
		return
	}

	h.logger.Info().
		Str("player_id", action.PlayerID).
		Str("action", string(action.Type)).
		Int("changes", len(out.Result.StateChanges)).
		Msg("action applied")
	h.BroadcastOutcome(out)
}

// BroadcastOutcome fans a successful action's effects out to every client.
func (h *Hub) BroadcastOutcome(out actionOutcome) {
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgStateChanges, out.Result.StateChanges))
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgGameState, out.Summary))
	if out.Finished {
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgGameOver, protocol.GameOver{WinnerID: out.WinnerID}))
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	sum, ok := h.srv.gameSummary(h.gameID)
	if !ok {
		return
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, sum))
}

func (h *Hub) sendLobbyUpdate() {
	if h.lobby == nil {
		return
	}
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready}
	}
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:      h.gameID,
		PlayerCount: h.lobby.PlayerCount,
		Players:     lps,
		Started:     h.lobby.Started,
	}))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error().Err(err).Msg("broadcast marshal failed")
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn().Str("player_id", client.PlayerID).Msg("client buffer full")
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}
