package rules

import (
	"github.com/johntlangton/chess/internal/chess"
	"github.com/johntlangton/chess/internal/errors"
)

// Apply validates the move from source to target and, if it is legal,
// returns the successor board: the piece moved (capturing whatever
// stood on the target) and the turn passed to the other colour. The
// input board is never mutated. An illegal move yields a MoveError
// wrapping ErrIllegalMove.
func Apply(b *chess.Board, source, target chess.Coord) (*chess.Board, error) {
	if !CanMove(b, source, target) {
		return nil, &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			From: source.String(),
			To:   target.String(),
		}
	}

	next := b.Copy()
	next.Set(target, next.PieceAt(source))
	next.Set(source, chess.Empty)
	next.SetSideToMove(next.SideToMove().Opposite())
	return next, nil
}
