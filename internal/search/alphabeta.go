package search

import (
	"chesseng/internal/board"
	"chesseng/internal/eval"
	"chesseng/internal/movegen"
	"chesseng/internal/tt"
)

const maxPly = board.ValueMaxPly

// pvTable is a triangular principal-variation table: pvTable[ply] holds the
// best line found from ply onward, pvLen[ply] its length.
type pvTable struct {
	line [maxPly][maxPly]board.Move
	len  [maxPly]int
}

func (t *pvTable) save(ply int, m board.Move) {
	t.line[ply][ply] = m
	for i := ply + 1; i < t.len[ply+1]+ply+1; i++ {
		t.line[ply][i] = t.line[ply+1][i]
	}
	t.len[ply] = t.len[ply+1] + 1
}

func (t *pvTable) pv() []board.Move {
	return append([]board.Move(nil), t.line[0][:t.len[0]]...)
}

func isQuietMove(p *board.Position, m board.Move) bool {
	return p.PieceAt(m.To()) == board.PieceNone && m.Type() != board.EnPassant
}

func kingPawnOnly(p *board.Position, c board.Color) bool {
	return p.PieceBb(c, board.Knight)|p.PieceBb(c, board.Bishop)|
		p.PieceBb(c, board.Rook)|p.PieceBb(c, board.Queen) == 0
}

// negamax is the PVS alpha-beta search of spec.md §4.11: iterative-deepening
// drives repeated calls at increasing depth; this function is the per-node
// recursive core, and returns a score from the side-to-move's perspective.
func (s *Search) negamax(p *board.Position, depth, ply int, alpha, beta board.Value, isPV bool) board.Value {
	s.stats.Nodes++
	s.pv.len[ply] = 0
	if ShouldPoll(s.stats.Nodes) && s.tc.Poll() {
		return 0
	}

	if ply >= maxPly-1 {
		return eval.Evaluate(p)
	}

	if ply > 0 {
		if p.HalfmoveClock() >= 100 || p.InsufficientMaterial() {
			return board.ValueDraw
		}
		if s.gameHistory.CountRepetitions(p.Key(), p.HalfmoveClock()) >= 2 {
			return board.ValueDraw
		}
		// Mate distance pruning: a shorter mate than what alpha/beta can
		// already express cannot change the outcome.
		matedScore := -board.ValueMate + board.Value(ply)
		mateScore := board.ValueMate - board.Value(ply) - 1
		if matedScore > alpha {
			alpha = matedScore
		}
		if mateScore < beta {
			beta = mateScore
		}
		if alpha >= beta {
			return alpha
		}
	}

	inCheck := p.IsInCheck()
	if inCheck {
		depth++
	}
	if depth <= 0 {
		return s.quiescence(p, ply, alpha, beta)
	}

	us := p.SideToMove()
	key := p.Key()
	var ttMove board.Move
	if e, ok := s.tt.Probe(key); ok {
		s.stats.TTHits++
		ttMove = e.Move
		if e.Depth() >= depth {
			score := tt.ValueFromTT(e.Score, ply)
			switch e.BoundKind() {
			case tt.BoundExact:
				return score
			case tt.BoundLower:
				if score >= beta {
					return score
				}
			case tt.BoundUpper:
				if score <= alpha {
					return score
				}
			}
		}
	}

	if ttMove == board.MoveNone && depth >= 4 {
		s.negamax(p, depth-2, ply, alpha, beta, isPV)
		if e, ok := s.tt.Probe(key); ok {
			ttMove = e.Move
		}
	}

	staticEval := eval.Evaluate(p)

	if !inCheck && !isPV && depth >= 3 && staticEval >= beta && !kingPawnOnly(p, us) {
		r := 3
		if depth > 8 {
			r++
		}
		p.DoNullMove()
		s.gameHistory.Push(p.Key())
		score := -s.negamax(p, depth-1-r, ply+1, -beta, -beta+1, false)
		s.gameHistory.Pop()
		p.UndoNullMove()
		if s.tc.Stopped() {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	if !inCheck && !isPV && depth <= 3 {
		if staticEval-ReverseFutilityMargin(depth) >= beta {
			return staticEval
		}
	}

	futilityEligible := !inCheck && !isPV && depth == 1 && staticEval+FutilityMargin(depth) < alpha

	killer0, killer1 := s.killers.Get(ply)
	picker := NewPicker(p, ttMove, killer0, killer1, s.history)

	movesSearched := 0
	bestScore := -board.ValueInfinite
	bestMove := board.MoveNone
	originalAlpha := alpha

	for {
		m := picker.Next()
		if m == board.MoveNone {
			break
		}
		quiet := isQuietMove(p, m)

		if movesSearched > 0 && !isPV && !inCheck && depth < 5 && quiet && movesSearched >= LmpMovesSearched(depth) {
			continue
		}
		if futilityEligible && quiet && movesSearched > 0 {
			continue
		}

		p.DoMove(m)
		if m.Type() != board.Castle {
			if (m&0xFFFF == ttMove&0xFFFF || m&0xFFFF == killer0&0xFFFF || m&0xFFFF == killer1&0xFFFF) &&
				p.IsAttacked(p.KingSquare(us), us.Flip()) {
				p.UndoMove(m)
				continue
			}
		}
		s.gameHistory.Push(p.Key())
		movesSearched++

		var score board.Value
		if movesSearched == 1 {
			score = -s.negamax(p, depth-1, ply+1, -beta, -alpha, isPV)
		} else {
			reduction := 0
			if !isPV && !inCheck && quiet && movesSearched >= 4 && depth >= 3 {
				reduction = LmrReduction(depth, movesSearched)
			}
			score = -s.negamax(p, depth-1-reduction, ply+1, -alpha-1, -alpha, false)
			if reduction > 0 && score > alpha {
				score = -s.negamax(p, depth-1, ply+1, -alpha-1, -alpha, false)
			}
			if score > alpha && score < beta {
				score = -s.negamax(p, depth-1, ply+1, -beta, -alpha, true)
			}
		}
		s.gameHistory.Pop()
		p.UndoMove(m)

		if s.tc.Stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				s.pv.save(ply, m)
			}
		}
		if alpha >= beta {
			if quiet {
				s.killers.Update(ply, m)
				s.history.Add(us, moverTypeOf(p, m), m.To(), depth)
			}
			s.tt.Store(key, bestMove, tt.ValueToTT(bestScore, ply), depth, tt.BoundLower)
			return bestScore
		}
	}

	if movesSearched == 0 {
		if inCheck {
			return -board.ValueMate + board.Value(ply)
		}
		return board.ValueDraw
	}

	bound := tt.BoundUpper
	if bestScore > originalAlpha {
		bound = tt.BoundExact
	}
	s.tt.Store(key, bestMove, tt.ValueToTT(bestScore, ply), depth, bound)
	return bestScore
}

// moverTypeOf resolves the piece type that made move m, valid only to call
// immediately after m has been unmade (the board is back in its pre-move
// state, so PieceAt(m.From()) is the mover again) — except for promotions,
// where the pre-move piece was always a pawn.
func moverTypeOf(p *board.Position, m board.Move) board.PieceType {
	if m.Type() == board.Promotion {
		return board.Pawn
	}
	return p.PieceAt(m.From()).TypeOf()
}

// quiescence extends search at leaves with captures only, to avoid the
// horizon effect (spec.md §4.11).
func (s *Search) quiescence(p *board.Position, ply int, alpha, beta board.Value) board.Value {
	s.stats.Nodes++
	s.stats.QNodes++
	s.pv.len[ply] = 0
	if ShouldPoll(s.stats.Nodes) && s.tc.Poll() {
		return 0
	}
	if ply >= maxPly-1 {
		return eval.Evaluate(p)
	}

	standPat := eval.Evaluate(p)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	us := p.SideToMove()
	picker := NewQuiescencePicker(p)
	for {
		m := picker.Next()
		if m == board.MoveNone {
			break
		}
		if !movegen.IsPseudoLegal(p, m) {
			continue
		}
		see := SEE(p, m)
		if see < 0 {
			continue
		}
		p.DoMove(m)
		if p.IsAttacked(p.KingSquare(us), us.Flip()) {
			p.UndoMove(m)
			continue
		}
		score := -s.quiescence(p, ply+1, -beta, -alpha)
		p.UndoMove(m)
		if s.tc.Stopped() {
			return 0
		}
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
