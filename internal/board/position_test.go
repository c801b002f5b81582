package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p := NewPosition(fen)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestMalformedFENFallsBackToStartPos(t *testing.T) {
	p := NewPosition("not a fen at all")
	assert.Equal(t, StartFEN, p.FEN())
}

func TestDoUndoMoveRestoresKeyAndPsq(t *testing.T) {
	p := NewPosition(StartFEN)
	beforeKey := p.Key()
	beforePsqW := p.PsqScore(White)
	beforePsqB := p.PsqScore(Black)

	m := NewMove(NewSquare(FileE, Rank2), NewSquare(FileE, Rank4))
	p.DoMove(m)
	assert.NotEqual(t, beforeKey, p.Key())

	p.UndoMove(m)
	assert.Equal(t, beforeKey, p.Key())
	assert.Equal(t, beforePsqW, p.PsqScore(White))
	assert.Equal(t, beforePsqB, p.PsqScore(Black))
	assert.Equal(t, StartFEN, p.FEN())
}

func TestZobristIncrementalMatchesRecomputedKey(t *testing.T) {
	p := NewPosition(StartFEN)
	p.DoMove(NewMove(NewSquare(FileG, Rank1), NewSquare(FileF, Rank3)))
	recomputed := NewPosition(p.FEN())
	assert.Equal(t, recomputed.Key(), p.Key())
}

func TestInsufficientMaterial(t *testing.T) {
	p := NewPosition("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	assert.True(t, p.InsufficientMaterial())

	p2 := NewPosition(StartFEN)
	assert.False(t, p2.InsufficientMaterial())
}

func TestIsInCheck(t *testing.T) {
	p := NewPosition("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.False(t, p.IsInCheck())

	p2 := NewPosition("4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	assert.True(t, p2.IsInCheck())
}
