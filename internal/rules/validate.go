package rules

import "github.com/johntlangton/chess/internal/chess"

// CanMove reports whether the proposed move from source to target is
// legal under movement rules, turn ownership, and path blocking. It
// never errors: off-board coordinates, an empty source, and playing
// out of turn are all ordinary illegal moves.
func CanMove(b chess.Query, source, target chess.Coord) bool {
	if !source.OnBoard() || !target.OnBoard() {
		return false
	}

	piece := b.PieceAt(source)
	if piece == chess.Empty {
		return false
	}
	if b.SideToMove() != piece.Colour() {
		return false
	}

	// Landing on one's own piece is illegal for every piece type.
	tgt := b.PieceAt(target)
	if tgt != chess.Empty && tgt.Colour() == piece.Colour() {
		return false
	}

	switch piece.Type() {
	case chess.Rook:
		return canRookMove(b, source, target)
	case chess.Knight:
		return canKnightMove(source, target)
	case chess.Bishop:
		return canBishopMove(b, source, target)
	case chess.Queen:
		return canQueenMove(b, source, target)
	case chess.King:
		return canKingMove(source, target)
	case chess.Pawn:
		return canPawnMove(b, source, target, piece.Colour())
	}
	return false
}

// canRookMove requires a purely horizontal or purely vertical move with
// a clear path. Standing still is not a move.
func canRookMove(b chess.Query, source, target chess.Coord) bool {
	dRow := target.Row - source.Row
	dCol := target.Col - source.Col
	if dRow != 0 && dCol != 0 {
		return false
	}
	if dRow == 0 && dCol == 0 {
		return false
	}
	return isPathClear(b, source, target)
}

// canBishopMove requires a true diagonal with a clear path.
func canBishopMove(b chess.Query, source, target chess.Coord) bool {
	dRow := target.Row - source.Row
	dCol := target.Col - source.Col
	if abs(dRow) != abs(dCol) || dRow == 0 {
		return false
	}
	return isPathClear(b, source, target)
}

// canQueenMove accepts any move a rook or a bishop could make.
func canQueenMove(b chess.Query, source, target chess.Coord) bool {
	return canRookMove(b, source, target) || canBishopMove(b, source, target)
}

// canKnightMove requires the move to match one of the 8 knight jumps.
// Knights jump, so no path check is needed.
func canKnightMove(source, target chess.Coord) bool {
	dRow := abs(target.Row - source.Row)
	dCol := abs(target.Col - source.Col)
	return (dRow == 2 && dCol == 1) || (dRow == 1 && dCol == 2)
}

// canKingMove requires a one-square step in any direction.
func canKingMove(source, target chess.Coord) bool {
	dRow := abs(target.Row - source.Row)
	dCol := abs(target.Col - source.Col)
	if dRow == 0 && dCol == 0 {
		return false
	}
	return dRow <= 1 && dCol <= 1
}

// canPawnMove accepts a single forward push onto an empty square, a
// double push from the starting rank with both squares empty, or a
// one-step diagonal capture of an opposing piece.
func canPawnMove(b chess.Query, source, target chess.Coord, colour chess.Colour) bool {
	dir := chess.PawnDir(colour)
	dRow := target.Row - source.Row
	dCol := target.Col - source.Col
	targetPiece := b.PieceAt(target)

	// Double push: starting rank only, straight ahead, nothing on the
	// intermediate square or the destination.
	if source.Row == chess.StartRank(colour) && dRow == 2*dir && dCol == 0 {
		return targetPiece == chess.Empty && b.PieceAt(source.Offset(dir, 0)) == chess.Empty
	}

	// Single push onto an empty square.
	if dRow == dir && dCol == 0 {
		return targetPiece == chess.Empty
	}

	// Diagonal step must capture. Same-colour targets were already
	// rejected by CanMove, so any occupied square here is an enemy.
	if dRow == dir && (dCol == 1 || dCol == -1) {
		return targetPiece != chess.Empty
	}

	return false
}

// isPathClear reports whether every square strictly between source and
// target is empty. The caller guarantees the two squares share a rank,
// file, or diagonal.
func isPathClear(b chess.Query, source, target chess.Coord) bool {
	dRow := sign(target.Row - source.Row)
	dCol := sign(target.Col - source.Col)

	for c := source.Offset(dRow, dCol); c != target; c = c.Offset(dRow, dCol) {
		if b.PieceAt(c) != chess.Empty {
			return false
		}
	}
	return true
}
