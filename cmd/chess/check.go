package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johntlangton/chess/internal/chess"
	"github.com/johntlangton/chess/internal/errors"
	"github.com/johntlangton/chess/internal/rules"
)

var checkFEN string

var checkCmd = &cobra.Command{
	Use:   "check <from> <to>",
	Short: "Check whether a move is legal",
	Long: `Check validates a single move in the given position. It prints
"legal" and exits 0 when the side to move may play it, otherwise it
prints "illegal" and exits 1. The position defaults to the initial
position and can be set with --fen.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFEN, "fen", rules.InitialFEN, "position in FEN notation")
}

func runCheck(cmd *cobra.Command, args []string) error {
	board, err := rules.NewBoardFromFEN(checkFEN)
	if err != nil {
		return err
	}

	source, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	target, err := chess.ParseSquare(args[1])
	if err != nil {
		return err
	}

	if rules.CanMove(board, source, target) {
		fmt.Println("legal")
		return nil
	}

	fmt.Println("illegal")
	return &errors.MoveError{Err: errors.ErrIllegalMove, From: args[0], To: args[1]}
}
