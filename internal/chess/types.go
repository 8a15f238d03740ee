// Package chess provides the core board, piece, and coordinate types.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece. The zero value is an empty square.
// A coloured piece combines a PieceType with a Colour; use MakePiece,
// W, or B to construct one and Type/Colour to take it apart.
type Piece int

// Empty is the piece value of an unoccupied square.
const Empty Piece = 0

// PieceType identifies one of the six piece kinds, independent of colour.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(pt) >= 0 && int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a piece type,
// following English SAN conventions (pawns are 'P').
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(pt) >= 0 && int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// pieceShift encodes coloured pieces as (type << pieceShift) | colour.
const pieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, pt PieceType) Piece {
	if pt == NoPiece {
		return Empty
	}
	return Piece((int(pt) << pieceShift) | int(colour))
}

// W creates a white piece of the given type.
func W(pt PieceType) Piece {
	return MakePiece(White, pt)
}

// B creates a black piece of the given type.
func B(pt PieceType) Piece {
	return MakePiece(Black, pt)
}

// Type extracts the piece type. Empty yields NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p >> pieceShift)
}

// Colour extracts the colour. Only meaningful for non-empty pieces.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// String returns the string representation of a piece, such as "White Rook".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// StartRank returns the pawn starting row for a colour. Row 0 is the
// black edge of the board, so black pawns start on row 1 and advance
// toward larger rows; white pawns start on row 6 and advance toward
// smaller rows.
func StartRank(c Colour) int {
	if c == Black {
		return 1
	}
	return 6
}

// PawnDir returns the row increment a pawn of the given colour advances by.
func PawnDir(c Colour) int {
	if c == Black {
		return 1
	}
	return -1
}
