package search

import "chesseng/internal/board"

// maxHistory is the saturation clamp for history scores (spec.md §4.9's
// "implementation constant ~16,000").
const maxHistory = 16000

// History is the quiet-move ordering heuristic table: history[color][kind]
// [to-square], int32 entries saturating at maxHistory, aged by halving
// between root iterations.
// Grounded on the shape of the teacher's HistoryCount table but redesigned
// per spec.md §4.9 to clamp and age rather than accumulate unbounded int64s.
type History struct {
	table [2][6][64]int32
}

// NewHistory returns a zeroed history table.
func NewHistory() *History { return &History{} }

// Add records a beta cutoff by a quiet move at depth d (spec.md §4.9: "add
// d^2"), saturating at maxHistory.
func (h *History) Add(c board.Color, pt board.PieceType, to board.Square, depth int) {
	v := h.table[c][pt][to] + int32(depth*depth)
	if v > maxHistory {
		v = maxHistory
	}
	h.table[c][pt][to] = v
}

// Score returns the current history value for ordering.
func (h *History) Score(c board.Color, pt board.PieceType, to board.Square) int32 {
	return h.table[c][pt][to]
}

// Age halves every entry between root iterations (spec.md §4.9).
func (h *History) Age() {
	for c := range h.table {
		for pt := range h.table[c] {
			for sq := range h.table[c][pt] {
				h.table[c][pt][sq] /= 2
			}
		}
	}
}

// Clear zeroes the table (called on a new game).
func (h *History) Clear() { *h = History{} }

// Killers holds two non-capture killer-move slots per ply, shifted in on a
// beta cutoff (spec.md §4.9's killers-migrate-between-siblings table).
type Killers struct {
	slots [board.ValueMaxPly][2]board.Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers { return &Killers{} }

// Get returns the two killer moves at ply (possibly board.MoveNone).
func (k *Killers) Get(ply int) (board.Move, board.Move) {
	return k.slots[ply][0], k.slots[ply][1]
}

// Update records a new killer at ply: no-op if it already is killer[0],
// otherwise killer[0] shifts to killer[1] and m takes killer[0]'s slot.
func (k *Killers) Update(ply int, m board.Move) {
	if k.slots[ply][0] == m {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// Clear resets every ply's killers (called on a new game).
func (k *Killers) Clear() { *k = Killers{} }
