package rules

import "github.com/johntlangton/chess/internal/chess"

// Direction and offset tables. The orders here are part of the
// contract: GenerateMoves must be deterministic, and tests rely on
// these enumerations.
var (
	// rookDirs scans left, down, right, up.
	rookDirs = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	// bishopDirs scans upper-left, upper-right, lower-left, lower-right.
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	// knightOffsets are the 8 fixed knight jumps.
	knightOffsets = [8][2]int{
		{-2, 1}, {-2, -1}, {2, 1}, {2, -1},
		{-1, -2}, {1, -2}, {-1, 2}, {1, 2},
	}

	// kingOffsets are the 8 adjacent squares.
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// GenerateMoves returns every square the piece at source could move to,
// considering board geometry and occupancy only. Whose turn it is does
// not matter; use CanMove to decide whether a move may be played now.
// An empty source yields no moves.
func GenerateMoves(b chess.Query, source chess.Coord) []chess.Coord {
	piece := b.PieceAt(source)
	if piece == chess.Empty {
		return nil
	}

	switch piece.Type() {
	case chess.Rook:
		return slideMoves(b, source, rookDirs[:])
	case chess.Knight:
		return stepMoves(b, source, knightOffsets[:])
	case chess.Bishop:
		return slideMoves(b, source, bishopDirs[:])
	case chess.Queen:
		// Rook and bishop rays from one square are disjoint, so the
		// union needs no deduplication.
		moves := slideMoves(b, source, rookDirs[:])
		return append(moves, slideMoves(b, source, bishopDirs[:])...)
	case chess.King:
		return stepMoves(b, source, kingOffsets[:])
	case chess.Pawn:
		return pawnMoves(b, source, piece.Colour())
	}
	return nil
}

// slideMoves scans outward one step at a time in each direction,
// stopping a ray at the first capture (inclusive) or blocked square
// (exclusive). Used for rooks, bishops, and queens.
func slideMoves(b chess.Query, source chess.Coord, dirs [][2]int) []chess.Coord {
	var moves []chess.Coord
	for _, d := range dirs {
		for target := source.Offset(d[0], d[1]); ; target = target.Offset(d[0], d[1]) {
			result := Classify(b, source, target)
			if result == EmptyOK {
				moves = append(moves, target)
				continue
			}
			if result == Capture {
				// Cannot slide past a captured piece.
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

// stepMoves tries each fixed offset once, keeping any target that can
// be occupied. Used for knights (which jump) and kings.
func stepMoves(b chess.Query, source chess.Coord, offsets [][2]int) []chess.Coord {
	var moves []chess.Coord
	for _, o := range offsets {
		target := source.Offset(o[0], o[1])
		if Classify(b, source, target) != Blocked {
			moves = append(moves, target)
		}
	}
	return moves
}

// pawnMoves generates forward pushes and diagonal captures for the pawn
// at source. Direction depends on colour: black advances toward larger
// rows, white toward smaller rows.
func pawnMoves(b chess.Query, source chess.Coord, colour chess.Colour) []chess.Coord {
	var moves []chess.Coord
	dir := chess.PawnDir(colour)

	// Single step forward, onto an empty square only.
	oneAhead := source.Offset(dir, 0)
	if Classify(b, source, oneAhead) == EmptyOK {
		moves = append(moves, oneAhead)

		// Double step from the starting rank. Both the intermediate
		// and the destination square must be empty; a blocker one
		// square ahead cannot be jumped.
		if source.Row == chess.StartRank(colour) {
			twoAhead := source.Offset(2*dir, 0)
			if Classify(b, source, twoAhead) == EmptyOK {
				moves = append(moves, twoAhead)
			}
		}
	}

	// Diagonal steps are captures only; a pawn never moves diagonally
	// onto an empty square.
	for _, dCol := range [2]int{1, -1} {
		target := source.Offset(dir, dCol)
		if Classify(b, source, target) == Capture {
			moves = append(moves, target)
		}
	}

	return moves
}
