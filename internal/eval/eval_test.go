package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
)

func TestStartPosIsBalanced(t *testing.T) {
	p := board.NewPosition(board.StartFEN)
	assert.Equal(t, board.ValueDraw, Evaluate(p))
}

func TestAccumulatorMatchesRecomputedScore(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p := board.NewPosition(fen)
		want := RecomputeFromScratch(p)
		got := p.StaticMaterialScore()
		assert.Equal(t, want, got, "fen=%s", fen)
	}
}

func TestKvKIsDraw(t *testing.T) {
	p := board.NewPosition("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	assert.Equal(t, board.ValueDraw, Evaluate(p))
}
