// Package rules implements chess move generation and move validation
// over a read-only board view. Both operations are pure functions of
// the board snapshot they are handed; the package holds no state.
package rules

import "github.com/johntlangton/chess/internal/chess"

// Occupancy classifies whether the piece on a source square could land
// on a target square, considering only the target's occupancy. It is
// the single decision primitive every piece-specific rule builds on.
type Occupancy int

const (
	// Blocked means the target cannot be landed on: either square is
	// off the board, the source is empty, or the target holds a piece
	// of the same colour.
	Blocked Occupancy = iota

	// EmptyOK means the target square is empty and can be moved to.
	EmptyOK

	// Capture means the target holds an opposing piece that would be taken.
	Capture
)

// String returns the string representation of an occupancy result.
func (o Occupancy) String() string {
	switch o {
	case EmptyOK:
		return "EmptyOK"
	case Capture:
		return "Capture"
	default:
		return "Blocked"
	}
}

// Classify reports whether the piece at source could occupy target.
// It does not consider how the piece moves, only whether the target
// square admits it.
func Classify(b chess.Query, source, target chess.Coord) Occupancy {
	if !source.OnBoard() || !target.OnBoard() {
		return Blocked
	}

	src := b.PieceAt(source)
	// Callers should not ask about an empty source, but answer anyway.
	if src == chess.Empty {
		return Blocked
	}

	tgt := b.PieceAt(target)
	if tgt == chess.Empty {
		return EmptyOK
	}
	if src.Colour() != tgt.Colour() {
		return Capture
	}
	return Blocked
}
