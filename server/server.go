// Package server exposes one match over HTTP plus a websocket feed. It is
// a thin surface over the engine: every mutation goes through the same
// Logic methods a local front end would call, and each successful
// mutation is broadcast to the websocket clients.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"stones/engine"
	"stones/game"
	"stones/save"
	"stones/searcher"
)

// aiPollInterval is how often a pending AI decision is checked while the
// request handler waits for it.
const aiPollInterval = 10 * time.Millisecond

// Server holds one live match and the pieces needed to run it: the game
// registry, the AI factory, and the undo stack of snapshots taken before
// every accepted action.
type Server struct {
	mu       sync.Mutex
	registry *game.Registry
	factory  *searcher.Factory
	logic    *engine.Logic
	history  []game.Memento
	hub      *Hub
}

func New(registry *game.Registry, factory *searcher.Factory) *Server {
	spec, err := registry.Spec(registry.Types()[0])
	if err != nil {
		panic(err)
	}
	return &Server{
		registry: registry,
		factory:  factory,
		logic:    engine.NewLogicFor(spec, 0),
		hub:      NewHub(),
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Get("/api/games", s.handleGames)
	r.Get("/api/status", s.handleStatus)
	r.Post("/api/new", s.handleNew)
	r.Post("/api/move", s.handleMove)
	r.Post("/api/pass", s.handlePass)
	r.Post("/api/undo", s.handleUndo)
	r.Post("/api/ai-move", s.handleAIMove)
	r.Get("/api/save", s.handleSave)
	r.Post("/api/load", s.handleLoad)
	r.Get("/ws", s.handleWS)

	return r
}

// StatusResponse is the wire shape of the current match, also used as the
// websocket broadcast payload.
type StatusResponse struct {
	GameType        string   `json:"game_type"`
	BoardSize       int      `json:"board_size"`
	Board           []string `json:"board"`
	CurrentPlayer   string   `json:"current_player"`
	Over            bool     `json:"over"`
	Winner          string   `json:"winner"`
	PassCount       int      `json:"pass_count"`
	CapturedByBlack int      `json:"captured_by_black"`
	CapturedByWhite int      `json:"captured_by_white"`
	CanUndo         bool     `json:"can_undo"`
	Message         string   `json:"message,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	type gameDTO struct {
		Type         string                `json:"type"`
		DisplayName  string                `json:"display_name"`
		DefaultSize  int                   `json:"default_board_size"`
		Difficulties []searcher.Difficulty `json:"difficulties"`
	}
	var out []gameDTO
	for _, gt := range s.registry.Types() {
		spec, _ := s.registry.Spec(gt)
		out = append(out, gameDTO{
			Type:         spec.Type,
			DisplayName:  spec.DisplayName,
			DefaultSize:  spec.DefaultBoardSize,
			Difficulties: s.factory.Difficulties(gt),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.status(""))
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		GameType  string `json:"game_type"`
		BoardSize int    `json:"board_size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}
	spec, err := s.registry.Spec(payload.GameType)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	s.logic = engine.NewLogicFor(spec, payload.BoardSize)
	s.history = nil
	status := s.status("new game started")
	s.mu.Unlock()

	log.Info().Str("game", spec.Type).Int("size", status.BoardSize).Msg("new game")
	s.hub.Broadcast("reset", status)
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}

	s.mu.Lock()
	snapshot := s.logic.Snapshot()
	ok, msg := s.logic.MakeMove(payload.X, payload.Y)
	if ok {
		s.history = append(s.history, snapshot)
	}
	status := s.status(msg)
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: msg})
		return
	}
	s.hub.Broadcast("status", status)
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snapshot := s.logic.Snapshot()
	ok, msg := s.logic.PassMove()
	if ok {
		s.history = append(s.history, snapshot)
	}
	status := s.status(msg)
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: msg})
		return
	}
	s.hub.Broadcast("status", status)
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if len(s.history) == 0 {
		s.mu.Unlock()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "nothing to undo"})
		return
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.logic.Restore(last)
	status := s.status("move undone")
	s.mu.Unlock()

	s.hub.Broadcast("status", status)
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleAIMove(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Difficulty searcher.Difficulty `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}
	if payload.Difficulty == "" {
		payload.Difficulty = searcher.Normal
	}

	s.mu.Lock()
	if s.logic.State().Over {
		s.mu.Unlock()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "game is already over"})
		return
	}
	gameType := s.logic.State().GameType
	mover := s.logic.State().CurrentPlayer
	strategy, err := s.factory.Strategy(gameType, payload.Difficulty)
	if err != nil {
		s.mu.Unlock()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	thinker := engine.Think(s.logic.Board(), s.logic.Rules(), mover, strategy)
	s.mu.Unlock()

	// The search runs off the lock so concurrent status reads stay live.
	var move game.Move
	var has, done bool
	for !done {
		if move, has, done = thinker.Poll(); !done {
			time.Sleep(aiPollInterval)
		}
	}

	s.mu.Lock()
	if s.logic.State().Over || s.logic.State().CurrentPlayer != mover {
		// The match moved on under the search; drop the stale decision.
		s.mu.Unlock()
		writeJSON(w, http.StatusConflict, errorResponse{Error: "game state changed while thinking"})
		return
	}
	snapshot := s.logic.Snapshot()
	var ok bool
	var msg string
	if has {
		ok, msg = s.logic.MakeMove(move.X, move.Y)
	} else {
		ok, msg = s.logic.PassMove()
	}
	if ok {
		s.history = append(s.history, snapshot)
	}
	status := s.status(msg)
	s.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: msg})
		return
	}
	log.Debug().Str("strategy", strategy.Name()).Int("x", move.X).Int("y", move.Y).Msg("ai move")
	s.hub.Broadcast("status", status)
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snapshot := s.logic.Snapshot()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := save.Encode(w, snapshot); err != nil {
		log.Error().Err(err).Msg("encoding save")
	}
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	m, err := save.Decode(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	spec, err := s.registry.Spec(m.GameType())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	s.logic = engine.NewLogicFor(spec, m.Board().Size())
	s.logic.Restore(m)
	s.history = nil
	status := s.status("game loaded")
	s.mu.Unlock()

	s.hub.Broadcast("reset", status)
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status := s.status("")
	s.mu.Unlock()

	payload, err := json.Marshal(status)
	if err != nil {
		http.Error(w, "status not serializable", http.StatusInternalServerError)
		return
	}
	hello, err := json.Marshal(wsMessage{Type: "status", Payload: payload})
	if err != nil {
		http.Error(w, "status not serializable", http.StatusInternalServerError)
		return
	}
	s.hub.serveWS(w, r, hello)
}

// status builds the DTO; the caller holds s.mu.
func (s *Server) status(message string) StatusResponse {
	state := s.logic.State()
	b := s.logic.Board()
	winner := ""
	if state.Over {
		winner = state.Winner.String()
	}
	return StatusResponse{
		GameType:        state.GameType,
		BoardSize:       b.Size(),
		Board:           boardRows(b),
		CurrentPlayer:   state.CurrentPlayer.String(),
		Over:            state.Over,
		Winner:          winner,
		PassCount:       state.PassCount,
		CapturedByBlack: state.CapturedByBlack,
		CapturedByWhite: state.CapturedByWhite,
		CanUndo:         len(s.history) > 0,
		Message:         message,
	}
}

func boardRows(b *game.Board) []string {
	return strings.Split(b.String(), "\n")
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("writing response")
	}
}
