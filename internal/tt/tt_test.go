package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
)

func TestStoreThenProbe(t *testing.T) {
	table := NewTable(1)
	m := board.NewMove(board.SqE2, board.SqE4)
	table.Store(0xABCD1234, m, 55, 7, BoundExact)
	e, ok := table.Probe(0xABCD1234)
	assert.True(t, ok)
	assert.Equal(t, m, e.Move)
	assert.Equal(t, int16(55), e.Score)
	assert.Equal(t, 7, e.Depth())
	assert.Equal(t, BoundExact, e.BoundKind())
}

func TestMateDistanceNormalization(t *testing.T) {
	mateScore := board.ValueMate - 3
	stored := ValueToTT(mateScore, 5)
	back := ValueFromTT(stored, 5)
	assert.Equal(t, mateScore, back)
}

func TestResizeIsPowerOfTwo(t *testing.T) {
	table := NewTable(1)
	n := len(table.entries)
	assert.Equal(t, n&(n-1), 0)
}
