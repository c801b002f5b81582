package board

// Score is a tapered (middlegame, endgame) evaluation pair, combined into a
// single Value once the game phase is known (spec.md §4.7).
type Score struct {
	Mid Value
	End Value
}

func (s Score) Add(o Score) Score { return Score{s.Mid + o.Mid, s.End + o.End} }
func (s Score) Sub(o Score) Score { return Score{s.Mid - o.Mid, s.End - o.End} }
func (s Score) Neg() Score        { return Score{-s.Mid, -s.End} }

// PhaseWeight is the per-piece-type contribution to the tapering phase,
// summing to TotalPhase across one side's full initial material (spec.md
// §4.7's representative scheme: pawns 0, knights/bishops 1, rooks 2, queens 4).
var PhaseWeight = [6]int{0, 1, 1, 2, 4, 0}

// TotalPhase is the phase value of one side's full non-pawn material
// (2 knights + 2 bishops + 2 rooks + 1 queen); a phase at or above it is
// evaluated as pure middlegame.
const TotalPhase = 2*1 + 2*1 + 2*2 + 1*4

// psqt holds per (pieceType, square) middlegame/endgame values, indexed as if
// the piece were white; black values are read via Square.Mirror().
var psqt [6][64]Score

// init fills psqt with small representative positional bonuses (centre
// control, pawn advancement, king safety) layered on top of flat material value; not a
// hand-tuned evaluation, just enough structure to drive move ordering and
// search pruning margins sensibly.
func init() {
	center := func(sq Square) int {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		df := f - 3
		if df < 0 {
			df = -df - 1
		}
		dr := r - 3
		if dr < 0 {
			dr = -dr - 1
		}
		d := df + dr
		return 3 - d
	}
	for pt := Pawn; pt <= King; pt++ {
		mat := PieceValue[pt]
		for sq := Square(0); sq < SqNone; sq++ {
			bonus := Value(center(sq) * 2)
			switch pt {
			case Pawn:
				bonus += Value(int(sq.RankOf())) * 4
			case King:
				// king wants safety (corners/back rank) in the middlegame,
				// activity (center) in the endgame.
				psqt[pt][sq] = Score{Mid: mat - bonus, End: mat + bonus}
				continue
			}
			psqt[pt][sq] = Score{Mid: mat + bonus, End: mat + bonus}
		}
	}
}

// PosValue returns the tapered piece-square value for color c's piece of kind
// pt standing on sq (white reads the table directly, black mirrors it).
func PosValue(c Color, pt PieceType, sq Square) Score {
	if c == Black {
		sq = sq.Mirror()
	}
	return psqt[pt][sq]
}

// ValueFromScore combines a tapered score into one Value given a game-phase
// fraction in [0,TotalPhase] (spec.md §4.7's formula).
func ValueFromScore(s Score, phase int) Value {
	if phase > TotalPhase {
		phase = TotalPhase
	}
	mg := int(s.Mid) * phase
	eg := int(s.End) * (TotalPhase - phase)
	return Value((mg + eg) / TotalPhase)
}
