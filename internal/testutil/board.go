package testutil

import (
	"testing"

	"github.com/johntlangton/chess/internal/chess"
)

// BoardWith builds a board containing exactly the given pieces with the
// given side to move. Use this in tests that need sparse positions.
func BoardWith(toMove chess.Colour, pieces map[chess.Coord]chess.Piece) *chess.Board {
	b := chess.NewBoard()
	b.SetSideToMove(toMove)
	for c, p := range pieces {
		b.Set(c, p)
	}
	return b
}

// MustSquare converts an algebraic square name into a Coord.
// It calls t.Fatal on malformed input.
func MustSquare(t *testing.T, s string) chess.Coord {
	t.Helper()
	c, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("bad test square %q: %v", s, err)
	}
	return c
}
