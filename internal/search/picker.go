package search

import (
	"math"

	"chesseng/internal/board"
	"chesseng/internal/movegen"
)

// pickerStage is the staged move picker's explicit state enum (spec.md §4.9,
// §9: "represent it as an explicit state enum plus a scratch movelist; do
// not use recursion for the stage transitions").
type pickerStage int

const (
	stageHash pickerStage = iota
	stageGenCaptures
	stageWinningCaptures
	stageKillers
	stageLosingCaptures
	stageGenQuiets
	stageQuiets
	stageDone
)

// Picker is the staged, lazy move-ordering iterator consumed by the search
// loop: HashMove -> GenerateCaptures -> WinningCaptures (stashing SEE-negative
// captures) -> Killers -> LosingCaptures -> GenerateQuiets -> Quiets
// (spec.md §4.9). Grounded on the shape of the teacher's GetNextMove/
// fillOnDemandMoveList on-demand iterator, redesigned to the finer-grained
// stage split original_source/src/search/moveorder.rs uses.
type Picker struct {
	pos         *board.Position
	history     *History
	ttMove      board.Move
	killer0     board.Move
	killer1     board.Move
	capturesOnly bool

	stage    pickerStage
	captures movegen.MoveList
	losing   movegen.MoveList
	quiets   movegen.MoveList
	idx      int
	killerN  int
}

// NewPicker builds a picker for a normal search node.
func NewPicker(pos *board.Position, ttMove board.Move, killer0, killer1 board.Move, history *History) *Picker {
	return &Picker{pos: pos, ttMove: ttMove, killer0: killer0, killer1: killer1, history: history}
}

// NewQuiescencePicker builds a picker that only ever yields captures, sorted
// by MVV-LVA (spec.md §4.9 "Quiescence generator yields only captures").
func NewQuiescencePicker(pos *board.Position) *Picker {
	return &Picker{pos: pos, capturesOnly: true, stage: stageGenCaptures}
}

// Next returns the next move in stage order, or board.MoveNone once
// exhausted.
func (pk *Picker) Next() board.Move {
	for {
		switch pk.stage {
		case stageHash:
			pk.stage = stageGenCaptures
			if pk.ttMove != board.MoveNone && movegen.IsPseudoLegal(pk.pos, pk.ttMove) {
				return pk.ttMove
			}

		case stageGenCaptures:
			movegen.GenerateLegal(pk.pos, movegen.GenCaptures, &pk.captures)
			pk.scoreCaptures()
			pk.idx = 0
			pk.stage = stageWinningCaptures

		case stageWinningCaptures:
			if pk.idx >= pk.captures.Len() {
				pk.idx = 0
				if pk.capturesOnly {
					pk.stage = stageDone
					continue
				}
				pk.stage = stageKillers
				continue
			}
			m := pk.captures.SelectBest(pk.idx)
			pk.idx++
			if pk.bareEq(m, pk.ttMove) {
				continue
			}
			if pk.capturesOnly && m.Type() == board.Promotion && pk.pos.PieceAt(m.To()) == board.PieceNone {
				continue
			}
			if m.Value() < 0 {
				pk.losing.Push(m)
				continue
			}
			return m

		case stageKillers:
			if pk.killerN == 0 {
				pk.killerN = 1
				if pk.offerKiller(pk.killer0) {
					return pk.killer0
				}
			}
			if pk.killerN == 1 {
				pk.killerN = 2
				if pk.offerKiller(pk.killer1) {
					return pk.killer1
				}
			}
			pk.idx = 0
			pk.stage = stageLosingCaptures

		case stageLosingCaptures:
			if pk.idx >= pk.losing.Len() {
				pk.idx = 0
				pk.stage = stageGenQuiets
				continue
			}
			m := pk.losing.SelectBest(pk.idx)
			pk.idx++
			return m

		case stageGenQuiets:
			movegen.GenerateLegal(pk.pos, movegen.GenQuiets, &pk.quiets)
			pk.scoreQuiets()
			pk.idx = 0
			pk.stage = stageQuiets

		case stageQuiets:
			if pk.idx >= pk.quiets.Len() {
				pk.stage = stageDone
				continue
			}
			m := pk.quiets.SelectBest(pk.idx)
			pk.idx++
			if (pk.bareEq(m, pk.ttMove) && movegen.IsPseudoLegal(pk.pos, pk.ttMove)) ||
				(pk.bareEq(m, pk.killer0) && pk.offerKiller(pk.killer0)) ||
				(pk.bareEq(m, pk.killer1) && pk.offerKiller(pk.killer1)) {
				continue
			}
			return m

		case stageDone:
			return board.MoveNone
		}
	}
}

func (pk *Picker) bareEq(a, b board.Move) bool {
	return b != board.MoveNone && a&0xFFFF == b&0xFFFF
}

// offerKiller reports whether m is eligible: not the hash move, not a
// capture, pseudo-legal here (spec.md §4.9).
func (pk *Picker) offerKiller(m board.Move) bool {
	if m == board.MoveNone || pk.bareEq(m, pk.ttMove) {
		return false
	}
	if pk.pos.PieceAt(m.To()) != board.PieceNone || m.Type() == board.EnPassant {
		return false
	}
	return movegen.IsPseudoLegal(pk.pos, m)
}

// attackerValue returns the material value a capture's attacker effectively
// carries for MVV-LVA purposes (a promoting pawn is scored as the promoted piece).
func attackerValue(pos *board.Position, m board.Move) board.Value {
	if m.Type() == board.Promotion {
		return board.PieceValue[m.PromotionType()]
	}
	return board.PieceValue[pos.PieceAt(m.From()).TypeOf()]
}

func victimValue(pos *board.Position, m board.Move) board.Value {
	if m.Type() == board.EnPassant {
		return board.PieceValue[board.Pawn]
	}
	if cap := pos.PieceAt(m.To()); cap != board.PieceNone {
		return board.PieceValue[cap.TypeOf()]
	}
	return 0
}

// scoreCaptures assigns an MVV-LVA score to every generated capture, or runs
// SEE to detect and negatively-flag losing trades when the attacker is worth
// more than the victim (spec.md §4.9 step 3).
func (pk *Picker) scoreCaptures() {
	for i := 0; i < pk.captures.Len(); i++ {
		m := pk.captures.At(i)
		victim := victimValue(pk.pos, m)
		attacker := attackerValue(pk.pos, m)
		// offset by the king's value so only SEE-flagged captures score below zero
		score := int32(victim)*16 - int32(attacker) + int32(board.PieceValue[board.King])
		if attacker > victim {
			if see := SEE(pk.pos, m); see < 0 {
				score = int32(see)
			}
		}
		pk.captures.Set(i, m.WithValue(clampInt16(score)))
	}
}

// scoreQuiets assigns history-table scores to quiet moves, explicitly
// demoting the hash move and killers to the minimum score so they sort last
// and are filtered out as duplicates when reached (spec.md §4.9 step 6).
func (pk *Picker) scoreQuiets() {
	for i := 0; i < pk.quiets.Len(); i++ {
		m := pk.quiets.At(i)
		if pk.bareEq(m, pk.ttMove) || pk.bareEq(m, pk.killer0) || pk.bareEq(m, pk.killer1) {
			pk.quiets.Set(i, m.WithValue(math.MinInt16))
			continue
		}
		mover := pk.pos.PieceAt(m.From())
		score := pk.history.Score(mover.ColorOf(), mover.TypeOf(), m.To())
		pk.quiets.Set(i, m.WithValue(clampInt16(score)))
	}
}

func clampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
