package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/vivekkr1809/brass-birmingham/internal/engine"
	"github.com/vivekkr1809/brass-birmingham/internal/lobby"
	"github.com/vivekkr1809/brass-birmingham/internal/store"
)

// Server ties together the REST API, the per-game WebSocket hubs, and game
// storage. The engine itself is single-threaded per game; the server owns a
// mutex per game id and serializes every validate and execute call through it.
type Server struct {
	router  *chi.Mux
	store   store.Store
	lobbies *lobby.Manager
	logger  zerolog.Logger

	hubMu sync.Mutex
	hubs  map[string]*Hub

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func New(st store.Store, logger zerolog.Logger) *Server {
	s := &Server{
		store:   st,
		lobbies: lobby.NewManager(),
		logger:  logger,
		hubs:    make(map[string]*Hub),
		locks:   make(map[string]*sync.Mutex),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	r.Get("/health", s.handleHealth)

	// The timeout stays off /ws; hub connections are long-lived.
	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(60 * time.Second))
		r.Post("/games", s.handleCreateGame)
		r.Get("/games", s.handleListGames)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Delete("/", s.handleDeleteGame)
			r.Post("/validate", s.handleValidateAction)
			r.Post("/actions", s.handleSubmitAction)
			r.Get("/actions", s.handleAvailableActions)
		})
		r.Get("/player-id", s.handlePlayerID)
		r.Get("/qr", s.handleQR)
	})

	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start blocks serving HTTP on the given address.
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("server listening")
	return http.ListenAndServe(addr, s.router)
}

// lockFor returns the mutex serializing mutations of one game.
func (s *Server) lockFor(gameID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	mu, ok := s.locks[gameID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[gameID] = mu
	}
	return mu
}

func (s *Server) hubFor(gameID string) *Hub {
	s.hubMu.Lock()
	defer s.hubMu.Unlock()
	return s.hubs[gameID]
}

// ensureHub returns the hub for a game, starting one if needed.
func (s *Server) ensureHub(gameID string, lob *lobby.Lobby) *Hub {
	s.hubMu.Lock()
	defer s.hubMu.Unlock()
	if hub, ok := s.hubs[gameID]; ok {
		return hub
	}
	hub := NewHub(s, gameID, lob)
	s.hubs[gameID] = hub
	go hub.Run()
	return hub
}

func (s *Server) removeHub(gameID string) {
	s.hubMu.Lock()
	hub, ok := s.hubs[gameID]
	delete(s.hubs, gameID)
	s.hubMu.Unlock()
	if ok {
		hub.Stop()
	}
}

// actionOutcome captures everything a transport needs to report after an
// action has been applied under the game lock.
type actionOutcome struct {
	Result   engine.Result
	Summary  engine.Summary
	Finished bool
	WinnerID string
}

// applyAction runs one action through the engine under the per-game lock and
// persists the resulting state.
func (s *Server) applyAction(gameID string, action engine.Action) (actionOutcome, error) {
	mu := s.lockFor(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return actionOutcome{}, err
	}

	out := actionOutcome{Result: g.ExecuteAction(action)}
	if out.Result.Success {
		if err := s.store.Set(gameID, g); err != nil {
			return actionOutcome{}, err
		}
	}
	out.Summary = g.Summary()
	if g.Finished() {
		out.Finished = true
		if w := g.Winner(); w != nil {
			out.WinnerID = w.PlayerID
		}
	}
	return out, nil
}

// validateAction checks an action without applying it.
func (s *Server) validateAction(gameID string, action engine.Action) (engine.Validation, error) {
	mu := s.lockFor(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return engine.Validation{}, err
	}
	return g.ValidateAction(action), nil
}

// gameSummary reads a game's compact view under its lock.
func (s *Server) gameSummary(gameID string) (engine.Summary, bool) {
	mu := s.lockFor(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return engine.Summary{}, false
	}
	return g.Summary(), true
}
