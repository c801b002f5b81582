package movegen

import "chesseng/internal/board"

// ParseMove resolves a long-algebraic move string ("e2e4", "e7e8q") against
// the current position into the correctly-typed Move (Normal/Castle/
// Promotion/EnPassant), by generating legal moves and matching on
// from/to/promotion. Returns board.MoveNone for any unrecognized or illegal
// token (spec.md §7: malformed input is ignored, never fatal).
func ParseMove(p *board.Position, s string) board.Move {
	if len(s) < 4 {
		return board.MoveNone
	}
	from := board.SquareFromString(s[0:2])
	to := board.SquareFromString(s[2:4])
	if from == board.SqNone || to == board.SqNone {
		return board.MoveNone
	}
	var promo board.PieceType = board.PtNone
	if len(s) >= 5 {
		switch s[4] {
		case 'n':
			promo = board.Knight
		case 'b':
			promo = board.Bishop
		case 'r':
			promo = board.Rook
		case 'q':
			promo = board.Queen
		default:
			return board.MoveNone
		}
	}

	var list MoveList
	GenerateLegal(p, GenAll, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Type() == board.Promotion && m.PromotionType() != promo {
			continue
		}
		return m
	}
	return board.MoveNone
}
