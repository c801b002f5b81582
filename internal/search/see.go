package search

import "chesseng/internal/board"

// SEE computes the static exchange evaluation of the capture (or
// non-capturing promotion) move m: the net material swing assuming both
// sides alternately recapture on the target square with their least
// valuable attacker (spec.md §4.8). Because board.Position.AttackersTo takes
// an explicit occupancy, removing a capturing piece from a scratch copy of
// the occupancy automatically reveals any x-ray attacker behind it on the
// next iteration — no separate x-ray step is needed.
func SEE(p *board.Position, m board.Move) board.Value {
	from, to := m.From(), m.To()
	mover := p.PieceAt(from)

	var gain [32]board.Value
	depth := 0

	if m.Type() == board.EnPassant {
		gain[0] = board.PieceValue[board.Pawn]
	} else if cap := p.PieceAt(to); cap != board.PieceNone {
		gain[0] = board.PieceValue[cap.TypeOf()]
	}
	if m.Type() == board.Promotion {
		gain[0] += board.PieceValue[m.PromotionType()] - board.PieceValue[board.Pawn]
	}

	occ := p.Occupied()
	occ.PopSquare(from)
	if m.Type() == board.EnPassant {
		occ.PopSquare(board.Square(int(to) ^ 8))
	}

	sideToCapture := mover.ColorOf().Flip()
	curValue := board.PieceValue[mover.TypeOf()]
	if m.Type() == board.Promotion {
		curValue = board.PieceValue[m.PromotionType()]
	}

	for {
		depth++
		gain[depth] = curValue - gain[depth-1]
		if maxValue(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attackers := p.AttackersTo(to, sideToCapture, occ) & occ
		sq, pt, ok := leastValuableAttacker(p, attackers, sideToCapture)
		if !ok {
			break
		}
		occ.PopSquare(sq)
		curValue = board.PieceValue[pt]
		sideToCapture = sideToCapture.Flip()
	}

	for depth--; depth > 0; depth-- {
		gain[depth-1] = -maxValue(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

func leastValuableAttacker(p *board.Position, attackers board.Bitboard, c board.Color) (board.Square, board.PieceType, bool) {
	for _, pt := range board.PieceTypeValues {
		bb := p.PieceBb(c, pt) & attackers
		if bb != 0 {
			return bb.Lsb(), pt, true
		}
	}
	return board.SqNone, board.PtNone, false
}

func maxValue(a, b board.Value) board.Value {
	if a > b {
		return a
	}
	return b
}
