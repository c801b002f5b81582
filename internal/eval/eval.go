// Package eval turns a Position's incremental PSQT accumulator into a single
// signed Value for the side to move (spec.md §4.7), plus draw detection.
package eval

import "chesseng/internal/board"

// Evaluate returns the tapered static evaluation of p from the side to
// move's perspective: positive means the side to move stands better.
func Evaluate(p *board.Position) board.Value {
	if p.InsufficientMaterial() {
		return board.ValueDraw
	}
	score := p.StaticMaterialScore()
	v := board.ValueFromScore(score, p.Phase())
	if p.SideToMove() == board.Black {
		v = -v
	}
	return v
}

// RecomputeFromScratch rebuilds the tapered score by summing every piece's
// PosValue directly, bypassing the incremental accumulator — used only by
// tests to verify spec.md §8 invariant 3 (accumulator == full recomputation).
func RecomputeFromScratch(p *board.Position) board.Score {
	var total board.Score
	for c := board.White; c <= board.Black; c++ {
		var side board.Score
		for pt := board.Pawn; pt <= board.King; pt++ {
			bb := p.PieceBb(c, pt)
			for bb != 0 {
				sq := bb.PopLsb()
				side = side.Add(board.PosValue(c, pt, sq))
			}
		}
		if c == board.White {
			total = total.Add(side)
		} else {
			total = total.Sub(side)
		}
	}
	return total
}
