// Package movegen implements fully-legal move generation from pin and check
// masks, and the staged move picker that orders moves for the search.
package movegen

import "chesseng/internal/board"

// maxMoves bounds the fixed-capacity, stack-allocated move list (spec.md §3:
// "a fixed-capacity (>= 256) stack-allocated sequence with length counter").
const maxMoves = 256

// MoveList is a fixed-capacity sequence of moves with no heap allocation on
// the hot path.
type MoveList struct {
	moves [maxMoves]board.Move
	size  int
}

// Len returns the number of moves currently held.
func (l *MoveList) Len() int { return l.size }

// At returns the move at index i.
func (l *MoveList) At(i int) board.Move { return l.moves[i] }

// Set overwrites the move at index i (used by in-place partial selection sort).
func (l *MoveList) Set(i int, m board.Move) { l.moves[i] = m }

// Push appends a move; silently drops moves beyond capacity (should never
// happen for a legal chess position, whose branching factor is well under
// maxMoves, but guards against any generator bug escalating to a panic).
func (l *MoveList) Push(m board.Move) {
	if l.size >= maxMoves {
		return
	}
	l.moves[l.size] = m
	l.size++
}

// Clear resets the list to empty without reallocating.
func (l *MoveList) Clear() { l.size = 0 }

// Contains reports whether m (compared by from/to/type/promotion, ignoring
// the carried ordering value) is present.
func (l *MoveList) Contains(m board.Move) bool {
	bare := m & 0xFFFF
	for i := 0; i < l.size; i++ {
		if l.moves[i]&0xFFFF == bare {
			return true
		}
	}
	return false
}

// SelectBest performs one step of a partial selection sort starting at from:
// finds the highest-Value move in [from,size) and swaps it to index from.
// Used by the move picker so sorting cost is paid lazily, one move at a time.
func (l *MoveList) SelectBest(from int) board.Move {
	best := from
	for i := from + 1; i < l.size; i++ {
		if l.moves[i].Value() > l.moves[best].Value() {
			best = i
		}
	}
	l.moves[from], l.moves[best] = l.moves[best], l.moves[from]
	return l.moves[from]
}
