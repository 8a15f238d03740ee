package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/johntlangton/chess/internal/chess"
	"github.com/johntlangton/chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPieceChars maps piece types to their uppercase FEN letters.
var fenPieceChars = map[chess.PieceType]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// fenCharToPieceType converts a FEN letter to a piece type.
// Unknown letters yield NoPiece.
func fenCharToPieceType(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement and side-to-move fields are used; castling, en passant,
// and clock fields are accepted and ignored since those rules are
// outside this engine.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	return board, nil
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists ranks from the black edge down, which matches row order.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			pt := fenCharToPieceType(c)
			if pt == chess.NoPiece {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if row >= chess.BoardSize || col >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			board.Set(chess.Coord{Row: row, Col: col}, chess.MakePiece(colour, pt))
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("placement has wrong shape: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side-to-move field. A missing field
// defaults to White.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		board.SetSideToMove(chess.White)
		return nil
	}
	switch parts[1] {
	case "w":
		board.SetSideToMove(chess.White)
	case "b":
		board.SetSideToMove(chess.Black)
	default:
		return fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// BoardToFEN serializes a board to a FEN string. Castling and en
// passant fields are emitted as "-" and the clocks as "0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empties := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := board.PieceAt(chess.Coord{Row: row, Col: col})
			if p == chess.Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteByte(byte('0' + empties))
				empties = 0
			}
			letter := fenPieceChars[p.Type()]
			if p.Colour() == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empties > 0 {
			sb.WriteByte(byte('0' + empties))
		}
	}

	sb.WriteByte(' ')
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}
