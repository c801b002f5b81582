package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
	"chesseng/internal/movegen"
)

func TestSEELosingCapture(t *testing.T) {
	// White rook on d1 takes the pawn on d5, which the black queen on d8
	// defends: rook takes pawn (+100), queen takes rook (-500), so SEE is
	// exactly 100-500 = -400.
	p := board.NewPosition("3q3k/8/8/3p4/8/8/8/3R3K w - - 0 1")
	m := movegen.ParseMove(p, "d1d5")
	assert.NotEqual(t, board.MoveNone, m)
	v := SEE(p, m)
	assert.Equal(t, board.Value(100)-board.Value(500), v)
}

func TestSEEUndefendedCapture(t *testing.T) {
	p := board.NewPosition("7k/8/8/3p4/8/8/8/3R3K w - - 0 1")
	m := movegen.ParseMove(p, "d1d5")
	v := SEE(p, m)
	assert.Equal(t, board.PieceValue[board.Pawn], v)
}
