package worker

import (
	"github.com/johntlangton/chess/internal/chess"
	"github.com/johntlangton/chess/internal/rules"
)

// Analyze parses the item's FEN and counts the moves available to the
// side to move. It is the standard ProcessFunc for analysis pools.
func Analyze(item Item) Result {
	res := Result{Index: item.Index, FEN: item.FEN}

	board, err := rules.NewBoardFromFEN(item.FEN)
	if err != nil {
		res.Err = err
		return res
	}

	res.ToMove = board.SideToMove().String()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			source := chess.Coord{Row: row, Col: col}
			piece := board.PieceAt(source)
			if piece == chess.Empty || piece.Colour() != board.SideToMove() {
				continue
			}
			res.MoveCount += len(rules.GenerateMoves(board, source))
		}
	}
	return res
}
