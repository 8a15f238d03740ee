package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johntlangton/chess/internal/chess"
	"github.com/johntlangton/chess/internal/rules"
)

var movesFEN string

var movesCmd = &cobra.Command{
	Use:   "moves <square>",
	Short: "List the moves available to the piece on a square",
	Long: `Moves prints the target squares the piece on the given square can
move to, one per line, ignoring whose turn it is. The position defaults
to the initial position and can be set with --fen.`,
	Args: cobra.ExactArgs(1),
	RunE: runMoves,
}

func init() {
	movesCmd.Flags().StringVar(&movesFEN, "fen", rules.InitialFEN, "position in FEN notation")
}

func runMoves(cmd *cobra.Command, args []string) error {
	board, err := rules.NewBoardFromFEN(movesFEN)
	if err != nil {
		return err
	}

	source, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}

	piece := board.PieceAt(source)
	if piece == chess.Empty {
		return fmt.Errorf("no piece on %s", args[0])
	}

	for _, target := range rules.GenerateMoves(board, source) {
		fmt.Println(target)
	}
	return nil
}
