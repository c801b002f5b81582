package search

import "chesseng/internal/board"

// gameHistoryCap bounds the append-only played-and-searched key list; a
// game plus one search tree's worth of plies never approaches this.
const gameHistoryCap = 4096

// GameHistory is the append-only list of Zobrist keys reached by played
// moves, extended for the duration of each search subtree by the moves the
// search itself makes (spec.md §4.13). Grounded on
// original_source/src/search/gamehistory.rs's push/pop/count_repetitions
// shape, since the teacher keeps no equivalent dedicated type.
type GameHistory struct {
	keys [gameHistoryCap]board.Key
	size int
}

// NewGameHistory returns an empty history; no key is pushed for the
// starting position.
func NewGameHistory() *GameHistory { return &GameHistory{} }

// Push appends a key reached by a move just played (by the front end) or
// searched (by the search thread).
func (g *GameHistory) Push(k board.Key) {
	if g.size >= gameHistoryCap {
		return
	}
	g.keys[g.size] = k
	g.size++
}

// Pop removes the most recently pushed key, mirroring an unmake.
func (g *GameHistory) Pop() {
	if g.size > 0 {
		g.size--
	}
}

// Reset clears the history (called on ucinewgame).
func (g *GameHistory) Reset() { g.size = 0 }

// CountRepetitions scans back at most halfmoveClock+1 entries in steps of 2
// (same side to move) and counts how many equal the current key (spec.md
// §4.13 / §4.11's draw test). current is assumed to already be the most
// recently pushed entry (the caller pushes before recursing into the node
// it describes), so the scan starts two plies further back to skip that
// trivial self-match.
func (g *GameHistory) CountRepetitions(current board.Key, halfmoveClock int) int {
	count := 0
	limit := halfmoveClock + 1
	for i := g.size - 3; i >= 0 && g.size-i <= limit; i -= 2 {
		if g.keys[i] == current {
			count++
		}
	}
	return count
}
