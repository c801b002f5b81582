// Package protocol implements the line-based UCI front end (spec.md §6):
// reading commands from an input stream, driving internal/board,
// internal/movegen and internal/search, and writing "info"/"bestmove"
// responses to an output stream. Grounded on the teacher's
// internal/uci/uci.go, restructured around chesseng's own Position/Search
// types and cross-checked against original_source/src/uci.rs for exact
// command-token handling.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"chesseng/internal/board"
	"chesseng/internal/config"
	"chesseng/internal/engine/log"
	"chesseng/internal/movegen"
	"chesseng/internal/search"
)

var whitespace = regexp.MustCompile(`\s+`)

// Handler owns the engine's single position and search instance and drives
// the UCI command loop.
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer

	pos *board.Position
	sch *search.Search

	logger *log.Logger
}

// NewHandler builds a Handler reading from r and writing to w.
func NewHandler(r io.Reader, w io.Writer) *Handler {
	return &Handler{
		in:     bufio.NewScanner(r),
		out:    bufio.NewWriter(w),
		pos:    board.NewPosition(""),
		sch:    search.NewSearch(config.Settings.Search.HashSizeMB),
		logger: log.Get("protocol"),
	}
}

// Loop reads and dispatches commands until "quit" or EOF.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.Dispatch(h.in.Text()) {
			return
		}
	}
}

// Dispatch handles a single command line; returns true if the engine should
// exit (the "quit" command).
func (h *Handler) Dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.logger.Debugf("<< %s", line)
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		h.sch.StopSearch()
		return true
	case "uci":
		h.uci()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = board.NewPosition("")
		h.sch.NewGame()
	case "setoption":
		h.setOption(tokens)
	case "position":
		h.position(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.sch.StopSearch()
	case "ponderhit":
		// Pondering is not implemented as a distinct search mode; a
		// ponderhit during a normal timed search is a no-op.
	case "perft":
		h.perft(tokens)
	case "debug", "register":
		h.sendInfoString(fmt.Sprintf("command %q not implemented", tokens[0]))
	default:
		h.logger.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) uci() {
	h.send("id name chesseng")
	h.send("id author the chesseng contributors")
	h.send(fmt.Sprintf("option name Hash type spin default %d min 1 max 4096", config.Settings.Search.HashSizeMB))
	h.send("option name Ponder type check default true")
	h.send("uciok")
}

func (h *Handler) setOption(tokens []string) {
	name, value := parseOption(tokens)
	switch name {
	case "Hash":
		if mb, err := strconv.Atoi(value); err == nil {
			h.sch.ResizeCache(mb)
		}
	case "Ponder":
		// accepted and ignored: the value is not stored, and there is no
		// distinct ponder search mode to toggle
	default:
		h.sendInfoString(fmt.Sprintf("unknown option %q", name))
	}
}

// parseOption extracts the "name <...> value <...>" fields from a setoption
// command's tokens (spec.md §6), tolerating a missing value for check-box
// options with none supplied.
func parseOption(tokens []string) (name, value string) {
	i := 1
	if i < len(tokens) && tokens[i] == "name" {
		i++
	}
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = tokens[i+1]
	}
	return name, value
}

func (h *Handler) position(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("malformed position command")
		return
	}
	i := 1
	fen := board.StartFEN
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			fen = s
		}
	default:
		h.sendInfoString(fmt.Sprintf("malformed position command: %v", tokens))
		return
	}
	h.pos = board.NewPosition(fen)
	keys := []board.Key{h.pos.Key()}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := movegen.ParseMove(h.pos, tokens[i])
			if m == board.MoveNone {
				h.sendInfoString(fmt.Sprintf("invalid move %q", tokens[i]))
				return
			}
			h.pos.DoMove(m)
			keys = append(keys, h.pos.Key())
		}
	}
	h.sch.SetGamePositions(keys)
}

func (h *Handler) goCommand(tokens []string) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		intArg := func() int {
			i++
			if i >= len(tokens) {
				return 0
			}
			n, _ := strconv.Atoi(tokens[i])
			return n
		}
		switch tok {
		case "infinite":
			limits.Infinite = true
		case "depth":
			limits.Depth = intArg()
		case "nodes":
			limits.Nodes = uint64(intArg())
		case "movetime":
			limits.MoveTime = time.Duration(intArg()) * time.Millisecond
		case "wtime":
			limits.WhiteTime = time.Duration(intArg()) * time.Millisecond
		case "btime":
			limits.BlackTime = time.Duration(intArg()) * time.Millisecond
		case "winc":
			limits.WhiteInc = time.Duration(intArg()) * time.Millisecond
		case "binc":
			limits.BlackInc = time.Duration(intArg()) * time.Millisecond
		case "movestogo":
			limits.MovesToGo = intArg()
		case "perft":
			limits.Perft = intArg()
		case "ponder":
			// ponder mode not distinguished from a normal timed search
		}
		i++
	}
	if limits.Perft > 0 {
		h.runPerftDivide(limits.Perft)
		return
	}
	h.sch.StartSearch(h.pos, limits, h)
}

// runPerftDivide prints each root move's subtree node count followed by the
// grand total, the "go ... perft N" output shape (spec.md §6).
func (h *Handler) runPerftDivide(depth int) {
	results, total := movegen.PerftDivide(h.pos, depth)
	for _, r := range results {
		h.send(fmt.Sprintf("%s: %d", r.Move.String(), r.Nodes))
	}
	h.send(fmt.Sprintf("Nodes searched: %d", total))
}

func (h *Handler) perft(tokens []string) {
	depth := 5
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	h.runPerftDivide(depth)
}

// Info implements search.Reporter, emitting a UCI "info" line.
func (h *Handler) Info(depth, seldepth int, score board.Value, nodes uint64, nps uint64, elapsed time.Duration, hashfull int, pv []board.Move) {
	h.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d hashfull %d pv %s",
		depth, seldepth, score.String(), nodes, nps, elapsed.Milliseconds(), hashfull, pvString(pv)))
}

// BestMove implements search.Reporter, emitting the UCI "bestmove" line.
func (h *Handler) BestMove(m board.Move, ponder board.Move) {
	if ponder != board.MoveNone {
		h.send(fmt.Sprintf("bestmove %s ponder %s", m.String(), ponder.String()))
		return
	}
	h.send(fmt.Sprintf("bestmove %s", m.String()))
}

func pvString(pv []board.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func (h *Handler) sendInfoString(s string) {
	h.send("info string " + s)
	h.logger.Warning(s)
}

func (h *Handler) send(s string) {
	h.logger.Debugf(">> %s", s)
	_, _ = h.out.WriteString(s)
	_, _ = h.out.WriteString("\n")
	_ = h.out.Flush()
}
