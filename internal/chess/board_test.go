package chess

import (
	"strings"
	"testing"
)

// TestNewBoard tests that a new board is empty with White to move.
func TestNewBoard(t *testing.T) {
	b := NewBoard()

	if b.SideToMove() != White {
		t.Errorf("NewBoard().SideToMove() = %v, want White", b.SideToMove())
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Coord{Row: row, Col: col}
			if got := b.PieceAt(c); got != Empty {
				t.Errorf("NewBoard().PieceAt(%v) = %v, want Empty", c, got)
			}
		}
	}
}

// TestSetupInitialPosition tests the standard starting arrangement.
func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		square string
		want   Piece
	}{
		{"a8", B(Rook)},
		{"b8", B(Knight)},
		{"c8", B(Bishop)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"h8", B(Rook)},
		{"d7", B(Pawn)},
		{"e4", Empty},
		{"d2", W(Pawn)},
		{"a1", W(Rook)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"h1", W(Rook)},
	}
	for _, tt := range tests {
		c, err := ParseSquare(tt.square)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error = %v", tt.square, err)
		}
		if got := b.PieceAt(c); got != tt.want {
			t.Errorf("PieceAt(%s) = %v, want %v", tt.square, got, tt.want)
		}
	}

	if b.SideToMove() != White {
		t.Errorf("SideToMove() = %v, want White", b.SideToMove())
	}
}

// TestPieceAtOffBoard tests that off-board queries read as Empty.
func TestPieceAtOffBoard(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	offs := []Coord{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-2, 9}}
	for _, c := range offs {
		if got := b.PieceAt(c); got != Empty {
			t.Errorf("PieceAt(%v) = %v, want Empty", c, got)
		}
	}
}

// TestSetIgnoresOffBoard tests that off-board writes are dropped.
func TestSetIgnoresOffBoard(t *testing.T) {
	b := NewBoard()
	b.Set(Coord{Row: -1, Col: 4}, W(Queen))
	b.Set(Coord{Row: 4, Col: 9}, W(Queen))

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Coord{Row: row, Col: col}
			if got := b.PieceAt(c); got != Empty {
				t.Errorf("PieceAt(%v) = %v after off-board Set, want Empty", c, got)
			}
		}
	}
}

// TestBoardCopy tests that a copy does not alias the original.
func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	cp := b.Copy()
	cp.Set(Coord{Row: 4, Col: 4}, W(Queen))
	cp.SetSideToMove(Black)

	if got := b.PieceAt(Coord{Row: 4, Col: 4}); got != Empty {
		t.Errorf("original board changed by copy mutation: PieceAt(e4) = %v", got)
	}
	if b.SideToMove() != White {
		t.Errorf("original board side to move changed by copy mutation")
	}
}

// TestBoardString tests the text rendering of the starting position.
func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	want := strings.Join([]string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}, "\n") + "\n"

	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}
