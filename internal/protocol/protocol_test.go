package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestHandler() (*Handler, *bytes.Buffer) {
	out := &bytes.Buffer{}
	h := NewHandler(strings.NewReader(""), out)
	return h, out
}

func TestUCIHandshake(t *testing.T) {
	h, out := newTestHandler()
	quit := h.Dispatch("uci")
	assert.False(t, quit)
	assert.Contains(t, out.String(), "id name")
	assert.Contains(t, out.String(), "uciok")

	out.Reset()
	quit = h.Dispatch("isready")
	assert.False(t, quit)
	assert.Equal(t, "readyok\n", out.String())
}

func TestQuitReturnsTrue(t *testing.T) {
	h, _ := newTestHandler()
	assert.True(t, h.Dispatch("quit"))
}

func TestPositionStartposWithMoves(t *testing.T) {
	h, out := newTestHandler()
	h.Dispatch("position startpos moves e2e4 e7e5")
	assert.Empty(t, out.String())
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", h.pos.FEN())
}

func TestPositionFEN(t *testing.T) {
	h, out := newTestHandler()
	h.Dispatch("position fen 4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.Empty(t, out.String())
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1", h.pos.FEN())
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	h, out := newTestHandler()
	h.Dispatch("position startpos moves e2e5")
	assert.Contains(t, out.String(), "info string")
	assert.Contains(t, out.String(), "invalid move")
}

func TestSetOptionHash(t *testing.T) {
	h, out := newTestHandler()
	h.Dispatch("setoption name Hash value 16")
	assert.Empty(t, out.String())
}

func TestPerftCommand(t *testing.T) {
	h, out := newTestHandler()
	h.Dispatch("position startpos")
	out.Reset()
	h.Dispatch("perft 2")
	assert.Contains(t, out.String(), "Nodes searched: 400")
	assert.Contains(t, out.String(), "e2e4: 20")
}

func TestGoPerftDivide(t *testing.T) {
	h, out := newTestHandler()
	h.Dispatch("position startpos")
	out.Reset()
	h.Dispatch("go perft 2")
	assert.Contains(t, out.String(), "Nodes searched: 400")
	assert.NotContains(t, out.String(), "bestmove")
}

func TestGoDepthReportsBestMove(t *testing.T) {
	h, out := newTestHandler()
	h.Dispatch("position startpos")
	out.Reset()
	h.Dispatch("go depth 1")
	h.sch.WaitWhileSearching()
	assert.Contains(t, out.String(), "bestmove")
}

func TestStopWhileIdleIsSafe(t *testing.T) {
	h, _ := newTestHandler()
	h.Dispatch("position startpos")
	assert.NotPanics(t, func() { h.Dispatch("stop") })
}
