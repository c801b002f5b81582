package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
)

func TestPerftStartPos(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281}
	p := board.NewPosition(board.StartFEN)
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := []uint64{1, 48, 2039, 97862}
	p := board.NewPosition(fen)
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "depth %d", depth)
	}
}

func TestPerftStalemateAdjacent(t *testing.T) {
	p := board.NewPosition("8/8/8/8/8/3k4/3p4/3K4 w - - 0 1")
	var list MoveList
	GenerateLegal(p, GenAll, &list)
	seen := map[board.Square]bool{}
	for i := 0; i < list.Len(); i++ {
		seen[list.At(i).To()] = true
	}
	assert.True(t, seen[board.SqE1])
	assert.True(t, seen[board.SqE2])
	assert.Len(t, seen, 2)
}
