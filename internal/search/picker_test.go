package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesseng/internal/board"
)

func TestPickerYieldsHashMoveFirst(t *testing.T) {
	p := board.NewPosition(board.StartFEN)
	hash := board.NewMove(sq(board.FileE, board.Rank2), sq(board.FileE, board.Rank4))
	pk := NewPicker(p, hash, board.MoveNone, board.MoveNone, NewHistory())
	first := pk.Next()
	assert.Equal(t, hash.From(), first.From())
	assert.Equal(t, hash.To(), first.To())
}

func TestPickerExhaustsAllLegalMovesExactlyOnce(t *testing.T) {
	p := board.NewPosition(board.StartFEN)
	pk := NewPicker(p, board.MoveNone, board.MoveNone, board.MoveNone, NewHistory())
	seen := map[board.Move]bool{}
	count := 0
	for {
		m := pk.Next()
		if m == board.MoveNone {
			break
		}
		bare := board.NewMove(m.From(), m.To())
		if m.Type() == board.Promotion {
			bare = board.NewMoveType(m.From(), m.To(), board.Promotion, m.PromotionType())
		}
		assert.False(t, seen[bare], "move %s yielded twice", m.String())
		seen[bare] = true
		count++
	}
	assert.Equal(t, 20, count)
}

func TestQuiescencePickerOnlyYieldsCaptures(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p := board.NewPosition(fen)
	pk := NewQuiescencePicker(p)
	for {
		m := pk.Next()
		if m == board.MoveNone {
			break
		}
		if m.Type() != board.EnPassant {
			assert.NotEqual(t, board.PieceNone, p.PieceAt(m.To()))
		}
	}
}
