package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/vivekkr1809/brass-birmingham/internal/engine"
	qr "github.com/vivekkr1809/brass-birmingham/internal/qrcode"
	"github.com/vivekkr1809/brass-birmingham/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createGameRequest struct {
	PlayerCount int      `json:"player_count"`
	MaxRounds   int      `json:"max_rounds,omitempty"`
	PlayerIDs   []string `json:"player_ids,omitempty"`
}

// handleCreateGame creates a game. With player_ids the game starts at once;
// without them a lobby is opened and players join over the WebSocket.
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.PlayerIDs) == 0 {
		lob, err := s.lobbies.Create(req.PlayerCount)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.ensureHub(lob.ID, lob)
		s.logger.Info().Str("game_id", lob.ID).Int("player_count", req.PlayerCount).Msg("lobby created")
		respondJSON(w, http.StatusCreated, map[string]any{
			"game_id":      lob.ID,
			"status":       "waiting",
			"player_count": req.PlayerCount,
		})
		return
	}

	g, err := engine.NewGame(engine.Config{
		PlayerCount: req.PlayerCount,
		MaxRounds:   req.MaxRounds,
	}, req.PlayerIDs)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Set(g.GameID, g); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store game")
		return
	}
	s.logger.Info().Str("game_id", g.GameID).Int("player_count", g.PlayerCount).Msg("game created")
	respondJSON(w, http.StatusCreated, g.Summary())
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := s.store.List()
	summaries := make([]engine.Summary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, g.Summary())
	}
	respondJSON(w, http.StatusOK, map[string]any{"games": summaries})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(id)
	if err != nil {
		if lob := s.lobbies.Get(id); lob != nil {
			respondJSON(w, http.StatusOK, map[string]any{
				"game_id":      lob.ID,
				"status":       "waiting",
				"player_count": lob.PlayerCount,
				"players":      len(lob.GetPlayers()),
			})
			return
		}
		respondError(w, http.StatusNotFound, "game not found")
		return
	}
	if r.URL.Query().Get("view") == "full" {
		respondJSON(w, http.StatusOK, g)
		return
	}
	respondJSON(w, http.StatusOK, g.Summary())
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.Delete(id) && s.lobbies.Get(id) == nil {
		respondError(w, http.StatusNotFound, "game not found")
		return
	}
	s.lobbies.Remove(id)
	s.removeHub(id)
	s.logger.Info().Str("game_id", id).Msg("game deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleValidateAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var action engine.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		respondError(w, http.StatusBadRequest, "invalid action body")
		return
	}

	v, err := s.validateAction(id, action)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "game not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) handleSubmitAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var action engine.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		respondError(w, http.StatusBadRequest, "invalid action body")
		return
	}

	out, err := s.applyAction(id, action)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "game not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if out.Result.Success {
		s.logger.Info().
			Str("game_id", id).
			Str("player_id", action.PlayerID).
			Str("action", string(action.Type)).
			Int("changes", len(out.Result.StateChanges)).
			Msg("action applied")
		s.broadcastOutcome(id, out)
		respondJSON(w, http.StatusOK, out.Result)
		return
	}
	respondJSON(w, http.StatusUnprocessableEntity, out.Result)
}

func (s *Server) handleAvailableActions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "game not found")
		return
	}
	resp := map[string]any{"actions": g.AvailableActions()}
	if p := g.CurrentPlayer(); p != nil {
		resp["player_id"] = p.PlayerID
	}
	respondJSON(w, http.StatusOK, resp)
}

// handlePlayerID hands out a fresh player id for clients joining a lobby.
func (s *Server) handlePlayerID(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"player_id": GeneratePlayerID()})
}

// handleQR generates a QR code PNG linking to a game's join page.
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		respondError(w, http.StatusBadRequest, "missing game parameter")
		return
	}
	url := fmt.Sprintf("http://%s/join?game=%s", r.Host, gameID)
	png, err := qr.Generate(url)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "QR generation failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// handleWS upgrades a connection and attaches it to the game's hub.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	if gameID == "" {
		respondError(w, http.StatusBadRequest, "missing game parameter")
		return
	}

	hub := s.hubFor(gameID)
	if hub == nil {
		// Games created over REST get a broadcast-only hub on first connect.
		if _, err := s.store.Get(gameID); err != nil {
			respondError(w, http.StatusNotFound, "game not found")
			return
		}
		hub = s.ensureHub(gameID, nil)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	client := NewClient(hub, conn, playerID)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// broadcastOutcome pushes a successful action's effects to the game's hub.
func (s *Server) broadcastOutcome(gameID string, out actionOutcome) {
	hub := s.hubFor(gameID)
	if hub == nil {
		return
	}
	hub.BroadcastOutcome(out)
}
