package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
	"chesseng/internal/tt"
)

func newTestSearch() *Search {
	return &Search{
		tt:          tt.NewTable(1),
		history:     NewHistory(),
		killers:     NewKillers(),
		gameHistory: NewGameHistory(),
		tc:          NewTimeControl(),
		reporter:    nopReporter{},
	}
}

func TestFindsMateInOne(t *testing.T) {
	// White to move: Qh5-f7 would be mate if undefended; use a clearer
	// back-rank mate instead: Ra8 delivers immediate mate.
	p := board.NewPosition("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	s := newTestSearch()
	s.tc.Start()
	best, _ := s.iterativeDeepening(p, Limits{Depth: 3})
	assert.Equal(t, sq(board.FileA, board.Rank8), best.To())
}

func TestQuiescenceFindsWinningCapture(t *testing.T) {
	p := board.NewPosition("7k/8/8/8/3p4/4Q3/8/4K3 w - - 0 1")
	s := newTestSearch()
	s.tc.Start()
	score := s.quiescence(p, 0, -board.ValueInfinite, board.ValueInfinite)
	assert.Greater(t, int(score), 0)
}

func TestIterativeDeepeningStopsAtNodeCap(t *testing.T) {
	p := board.NewPosition(board.StartFEN)
	s := newTestSearch()
	s.tc = NewTimeControl().WithMaxNodes(50)
	s.tc.Start()
	best, _ := s.iterativeDeepening(p, Limits{Depth: 30})
	assert.True(t, best.IsValid())
}
