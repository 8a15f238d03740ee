// Package server exposes the rules core over a JSON HTTP API. It is an
// application layer: the core itself never sees a request.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/johntlangton/chess/internal/chess"
	moderrors "github.com/johntlangton/chess/internal/errors"
	"github.com/johntlangton/chess/internal/game"
	"github.com/johntlangton/chess/internal/rules"
)

// Handler serves the /api/* routes over a session manager.
type Handler struct {
	games *game.Manager
}

// NewHandler creates a Handler with its own session manager.
func NewHandler() *Handler {
	return &Handler{games: game.NewManager()}
}

// ServeHTTP routes API requests. All endpoints are POST with JSON bodies.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/moves":
		h.handleMoves(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// An empty body means a standard game.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var s *game.Session
	if req.FEN == "" {
		s = h.games.New()
	} else {
		var err error
		s, err = h.games.NewFromFEN(req.FEN)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	moves := legalMoves(s.Board)
	writeJSON(w, NewGameResponse{
		GameID:     s.ID,
		FEN:        rules.BoardToFEN(s.Board),
		ToMove:     colourString(s.Board.SideToMove()),
		LegalMoves: moves,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	moves := legalMoves(s.Board)
	writeJSON(w, StateResponse{
		FEN:        rules.BoardToFEN(s.Board),
		ToMove:     colourString(s.Board.SideToMove()),
		LegalMoves: moves,
		Status:     gameStatus(moves),
	})
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	source, err := chess.ParseSquare(req.Square)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	targets := []string{}
	for _, target := range rules.GenerateMoves(s.Board, source) {
		targets = append(targets, target.String())
	}
	writeJSON(w, MovesResponse{Square: req.Square, Targets: targets})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	source, err := chess.ParseSquare(req.Move.From)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	target, err := chess.ParseSquare(req.Move.To)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	next, err := rules.Apply(s.Board, source, target)
	if err != nil {
		if errors.Is(err, moderrors.ErrIllegalMove) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := h.games.Update(s.ID, next); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	moves := legalMoves(next)
	writeJSON(w, PlayResponse{
		FEN:        rules.BoardToFEN(next),
		ToMove:     colourString(next.SideToMove()),
		LegalMoves: moves,
		Status:     gameStatus(moves),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
