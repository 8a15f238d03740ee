package server

import (
	"github.com/johntlangton/chess/internal/chess"
	"github.com/johntlangton/chess/internal/rules"
)

// MoveDTO is a move as the API exchanges it: algebraic squares.
type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewGameRequest optionally seeds the game from a FEN position.
type NewGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

// NewGameResponse describes a freshly created game.
type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	FEN        string    `json:"fen"`
	ToMove     string    `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

// StateRequest asks for the current state of a game.
type StateRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse mirrors NewGameResponse for an existing game.
type StateResponse struct {
	FEN        string    `json:"fen"`
	ToMove     string    `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
}

// MovesRequest asks for the destinations of the piece on one square.
type MovesRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

// MovesResponse lists the destinations reachable from the square.
type MovesResponse struct {
	Square  string   `json:"square"`
	Targets []string `json:"targets"`
}

// PlayRequest proposes a move.
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// PlayResponse describes the position after a played move.
type PlayResponse struct {
	FEN        string    `json:"fen"`
	ToMove     string    `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
}

func colourString(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// legalMoves lists every move the side to move can play. Generation
// and validation agree for the moving side, so the generator output is
// used directly.
func legalMoves(board *chess.Board) []MoveDTO {
	moves := []MoveDTO{}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			source := chess.Coord{Row: row, Col: col}
			piece := board.PieceAt(source)
			if piece == chess.Empty || piece.Colour() != board.SideToMove() {
				continue
			}
			for _, target := range rules.GenerateMoves(board, source) {
				moves = append(moves, MoveDTO{From: source.String(), To: target.String()})
			}
		}
	}
	return moves
}

// gameStatus reports "ongoing", or "no_moves" when the side to move
// has nothing to play. Check and mate detection are out of scope.
func gameStatus(moves []MoveDTO) string {
	if len(moves) == 0 {
		return "no_moves"
	}
	return "ongoing"
}
