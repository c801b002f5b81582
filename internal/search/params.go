package search

import (
	"math"

	"chesseng/internal/board"
)

// This file holds precomputed tuning tables for pruning and reduction
// decisions, too fiddly to belong in the config struct (grounded on the
// teacher's internal/search/params.go).

var lmrTable [32][64]int

func init() {
	for d := 0; d < 32; d++ {
		for n := 0; n < 64; n++ {
			switch {
			case d <= 2, n <= 2:
				lmrTable[d][n] = 1
			default:
				lmrTable[d][n] = 1 + (d*2+n)/16
			}
		}
	}
}

// LmrReduction returns the depth reduction for late-move reduction at the
// given remaining depth and move-searched count (spec.md §4.11).
func LmrReduction(depth, movesSearched int) int {
	if depth >= 32 {
		depth = 31
	}
	if movesSearched >= 64 {
		movesSearched = 63
	}
	return lmrTable[depth][movesSearched]
}

var lmpTable [16]int

func init() {
	// Crafty-derived formula, matching the teacher's params.go table.
	for d := 1; d < 16; d++ {
		lmpTable[d] = 6 + int(math.Pow(float64(d)+0.5, 1.3))
	}
}

// LmpMovesSearched returns the depth-scaled quiet-move-count threshold for
// late move pruning (spec.md §4.11).
func LmpMovesSearched(depth int) int {
	if depth >= 16 {
		depth = 15
	}
	if depth < 1 {
		depth = 1
	}
	return lmpTable[depth]
}

// futilityMargin and reverseFutilityMargin are indexed by remaining depth.
var futilityMargin = [7]board.Value{0, 100, 200, 300, 500, 900, 1200}
var reverseFutilityMargin = [4]board.Value{0, 200, 400, 800}

func FutilityMargin(depth int) board.Value {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(futilityMargin) {
		depth = len(futilityMargin) - 1
	}
	return futilityMargin[depth]
}

func ReverseFutilityMargin(depth int) board.Value {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(reverseFutilityMargin) {
		depth = len(reverseFutilityMargin) - 1
	}
	return reverseFutilityMargin[depth]
}
