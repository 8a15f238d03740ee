package chess

import (
	"fmt"

	"github.com/johntlangton/chess/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Coord identifies a board square by (row, column). Row 0 is the far
// (black) edge and row 7 the near (white) edge; column 0 is the
// queenside ('a') file. Coord is a pure value type; coordinates outside
// [0,7] are representable but never occupiable.
type Coord struct {
	Row int
	Col int
}

// OnBoard reports whether the coordinate lies within the 8x8 board.
func (c Coord) OnBoard() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Offset returns the coordinate shifted by the given row and column deltas.
func (c Coord) Offset(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String returns the algebraic name of the square, such as "e2".
// Row 0 is rank 8 and column 0 is file a. Off-board coordinates
// render as "(row,col)".
func (c Coord) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{byte('a' + c.Col), byte('8' - c.Row)})
}

// ParseSquare converts an algebraic square name ("a1" through "h8")
// into a Coord. It returns ErrInvalidSquare for anything else.
func ParseSquare(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coord{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Coord{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
