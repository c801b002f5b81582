package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
)

func TestCountRepetitionsFindsMatch(t *testing.T) {
	g := NewGameHistory()
	g.Push(board.Key(1))
	g.Push(board.Key(2))
	g.Push(board.Key(1)) // same side to move two plies back
	assert.Equal(t, 1, g.CountRepetitions(board.Key(1), 10))
}

func TestCountRepetitionsRespectsHalfmoveClock(t *testing.T) {
	g := NewGameHistory()
	g.Push(board.Key(1))
	g.Push(board.Key(2))
	g.Push(board.Key(1))
	assert.Equal(t, 0, g.CountRepetitions(board.Key(1), 1))
}

func TestPushPopSymmetry(t *testing.T) {
	g := NewGameHistory()
	g.Push(board.Key(5))
	g.Pop()
	assert.Equal(t, 0, g.CountRepetitions(board.Key(5), 10))
}
