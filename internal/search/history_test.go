package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
)

func sq(f board.File, r board.Rank) board.Square { return board.NewSquare(f, r) }

func TestHistoryAddSaturates(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 50; i++ {
		h.Add(board.White, board.Knight, sq(board.FileF, board.Rank3), 32)
	}
	assert.LessOrEqual(t, h.Score(board.White, board.Knight, sq(board.FileF, board.Rank3)), int32(maxHistory))
}

func TestHistoryAge(t *testing.T) {
	h := NewHistory()
	h.Add(board.White, board.Pawn, sq(board.FileE, board.Rank4), 10)
	before := h.Score(board.White, board.Pawn, sq(board.FileE, board.Rank4))
	h.Age()
	assert.Equal(t, before/2, h.Score(board.White, board.Pawn, sq(board.FileE, board.Rank4)))
}

func TestKillersShiftIn(t *testing.T) {
	k := NewKillers()
	m1 := board.NewMove(sq(board.FileE, board.Rank2), sq(board.FileE, board.Rank4))
	m2 := board.NewMove(sq(board.FileD, board.Rank2), sq(board.FileD, board.Rank4))
	k.Update(3, m1)
	k.Update(3, m2)
	k0, k1 := k.Get(3)
	assert.Equal(t, m2, k0)
	assert.Equal(t, m1, k1)
}

func TestKillersNoDuplicateOnRepeat(t *testing.T) {
	k := NewKillers()
	m1 := board.NewMove(sq(board.FileE, board.Rank2), sq(board.FileE, board.Rank4))
	k.Update(1, m1)
	k.Update(1, m1)
	k0, k1 := k.Get(1)
	assert.Equal(t, m1, k0)
	assert.Equal(t, board.MoveNone, k1)
}
