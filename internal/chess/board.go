package chess

import "strings"

// Query is the read-only view of board state the rules core consumes.
// PieceAt must return Empty for any coordinate outside the board.
// Implementations are responsible for providing a consistent snapshot
// if the underlying state is mutated concurrently.
type Query interface {
	PieceAt(c Coord) Piece
	SideToMove() Colour
}

// Board holds the squares and whose turn it is. At most one piece
// occupies any coordinate. The rules core only ever reads a Board;
// mutation belongs to the owning application layer.
type Board struct {
	// squares[row][col]; row 0 is the black edge.
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	toMove Colour
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{toMove: White}
}

// SetupInitialPosition arranges the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.squares[row][col] = Empty
		}
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = B(backRank[col])
		b.squares[1][col] = B(Pawn)
		b.squares[6][col] = W(Pawn)
		b.squares[7][col] = W(backRank[col])
	}

	b.toMove = White
}

// PieceAt returns the piece at the given coordinate, or Empty if the
// square is unoccupied or off the board.
func (b *Board) PieceAt(c Coord) Piece {
	if !c.OnBoard() {
		return Empty
	}
	return b.squares[c.Row][c.Col]
}

// SideToMove returns the colour whose turn it is.
func (b *Board) SideToMove() Colour {
	return b.toMove
}

// Set places a piece at the given coordinate. Off-board coordinates
// are ignored.
func (b *Board) Set(c Coord, p Piece) {
	if c.OnBoard() {
		b.squares[c.Row][c.Col] = p
	}
}

// SetSideToMove sets whose turn it is.
func (b *Board) SetSideToMove(c Colour) {
	b.toMove = c
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	return nb
}

// String renders the board as eight ranks of piece letters, black edge
// first, with '.' for empty squares. White pieces are uppercase.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if p == Empty {
				sb.WriteByte('.')
				continue
			}
			letter := p.Type().Letter()
			if p.Colour() == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
