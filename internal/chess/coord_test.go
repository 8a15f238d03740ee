package chess

import (
	"errors"
	"testing"

	moderrors "github.com/johntlangton/chess/internal/errors"
)

// TestParseSquare tests algebraic square parsing.
func TestParseSquare(t *testing.T) {
	tests := []struct {
		name    string
		square  string
		want    Coord
		wantErr bool
	}{
		{"a8 is top left", "a8", Coord{Row: 0, Col: 0}, false},
		{"h8 is top right", "h8", Coord{Row: 0, Col: 7}, false},
		{"a1 is bottom left", "a1", Coord{Row: 7, Col: 0}, false},
		{"h1 is bottom right", "h1", Coord{Row: 7, Col: 7}, false},
		{"e2", "e2", Coord{Row: 6, Col: 4}, false},
		{"file out of range", "i4", Coord{}, true},
		{"rank out of range", "a9", Coord{}, true},
		{"rank zero", "a0", Coord{}, true},
		{"too short", "a", Coord{}, true},
		{"too long", "a11", Coord{}, true},
		{"empty", "", Coord{}, true},
		{"uppercase file rejected", "A1", Coord{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.square)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSquare(%q) error = nil, want error", tt.square)
				}
				if !errors.Is(err, moderrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", tt.square, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", tt.square, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
}

// TestCoordString tests that every on-board coordinate round-trips
// through its algebraic name.
func TestCoordString(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Coord{Row: row, Col: col}
			back, err := ParseSquare(c.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", c.String(), err)
			}
			if back != c {
				t.Errorf("round trip of %v via %q = %v", c, c.String(), back)
			}
		}
	}

	if got := (Coord{Row: -1, Col: 3}).String(); got != "(-1,3)" {
		t.Errorf("off-board String() = %q, want %q", got, "(-1,3)")
	}
}

// TestCoordOnBoard tests boundary rejection.
func TestCoordOnBoard(t *testing.T) {
	tests := []struct {
		coord Coord
		want  bool
	}{
		{Coord{0, 0}, true},
		{Coord{7, 7}, true},
		{Coord{-1, 0}, false},
		{Coord{0, -1}, false},
		{Coord{8, 0}, false},
		{Coord{0, 8}, false},
		{Coord{-3, 12}, false},
	}
	for _, tt := range tests {
		if got := tt.coord.OnBoard(); got != tt.want {
			t.Errorf("%v.OnBoard() = %v, want %v", tt.coord, got, tt.want)
		}
	}
}

// TestCoordOffset tests coordinate arithmetic.
func TestCoordOffset(t *testing.T) {
	c := Coord{Row: 4, Col: 4}
	if got := c.Offset(-2, 1); got != (Coord{Row: 2, Col: 5}) {
		t.Errorf("Offset(-2, 1) = %v, want {2 5}", got)
	}
	// Offsets may leave the board; OnBoard is the caller's check.
	if got := c.Offset(5, 5); got.OnBoard() {
		t.Errorf("Offset(5, 5) = %v, expected off board", got)
	}
}
