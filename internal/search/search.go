package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"chesseng/internal/board"
	"chesseng/internal/engine/log"
	"chesseng/internal/tt"
)

// Reporter receives progress during a search (spec.md §6), typically
// implemented by the protocol package to emit UCI "info"/"bestmove" lines.
type Reporter interface {
	Info(depth, seldepth int, score board.Value, nodes uint64, nps uint64, elapsed time.Duration, hashfull int, pv []board.Move)
	BestMove(m board.Move, ponder board.Move)
}

// nopReporter discards all output; used when StartSearch is called with a
// nil Reporter (perft-only or test contexts).
type nopReporter struct{}

func (nopReporter) Info(int, int, board.Value, uint64, uint64, time.Duration, int, []board.Move) {}
func (nopReporter) BestMove(board.Move, board.Move)                                              {}

// Search drives iterative deepening over the negamax core in alphabeta.go.
// The two-thread model of spec.md §5 is realized with a pair of weighted
// semaphores exactly as the teacher's search.go does: initSema gates
// StartSearch until the worker goroutine has finished setting up, runSema
// is held for the duration of a search so IsSearching/WaitWhileSearching can
// observe it without a separate condition variable.
type Search struct {
	tt          *tt.Table
	history     *History
	killers     *Killers
	gameHistory *GameHistory
	tc          *TimeControl
	stats       Statistics
	pv          pvTable

	initSema *semaphore.Weighted
	runSema  *semaphore.Weighted

	reporter  Reporter
	logger    *log.Logger
	stopFlag  bool
	startTime time.Time
}

// NewSearch builds a Search instance with its own transposition table sized
// sizeMB megabytes.
func NewSearch(sizeMB int) *Search {
	return &Search{
		tt:          tt.NewTable(sizeMB),
		history:     NewHistory(),
		killers:     NewKillers(),
		gameHistory: NewGameHistory(),
		tc:          NewTimeControl(),
		initSema:    semaphore.NewWeighted(1),
		runSema:     semaphore.NewWeighted(1),
		logger:      log.Get("search"),
	}
}

// NewGame resets all game-dependent state: stops any running search, clears
// the hash table and history heuristics (spec.md §6 "ucinewgame").
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
	s.history.Clear()
	s.killers.Clear()
	s.gameHistory.Reset()
}

// ClearHash clears the transposition table; refused while a search is
// running, matching the teacher's guard.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.logger.Warning("cannot clear hash while searching")
		return
	}
	s.tt.Clear()
}

// ResizeCache resizes the transposition table; refused while searching.
func (s *Search) ResizeCache(sizeMB int) {
	if s.IsSearching() {
		s.logger.Warning("cannot resize hash while searching")
		return
	}
	s.tt.Resize(sizeMB)
}

// SetGamePositions replaces the played-game key history with keys, the
// Zobrist key reached after each move of a "position ... moves ..." command
// (spec.md §4.13), so draw-by-repetition can see repetitions spanning the
// whole game, not just the current search subtree.
func (s *Search) SetGamePositions(keys []board.Key) {
	s.gameHistory.Reset()
	for _, k := range keys {
		s.gameHistory.Push(k)
	}
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.runSema.TryAcquire(1) {
		return true
	}
	s.runSema.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.runSema.Acquire(context.Background(), 1)
	s.runSema.Release(1)
}

// StopSearch requests the running search to stop and blocks until it has.
func (s *Search) StopSearch() {
	s.tc.Stop()
	s.WaitWhileSearching()
}

// StartSearch launches iterative deepening on a copy of p under the given
// limits, reporting progress via reporter. It returns once the search
// goroutine has finished its setup (mirroring the teacher's init-semaphore
// handshake), not once the search has completed.
func (s *Search) StartSearch(p *board.Position, limits Limits, reporter Reporter) {
	_ = s.initSema.Acquire(context.Background(), 1)
	if reporter == nil {
		reporter = nopReporter{}
	}
	s.reporter = reporter
	go s.run(p.Clone(), limits)
	_ = s.initSema.Acquire(context.Background(), 1)
	s.initSema.Release(1)
}

func (s *Search) run(p *board.Position, limits Limits) {
	if !s.runSema.TryAcquire(1) {
		s.logger.Error("search already running")
		s.initSema.Release(1)
		return
	}
	defer s.runSema.Release(1)

	s.startTime = time.Now()
	s.stats.Reset()
	s.killers.Clear()
	s.tt.NewGeneration()

	s.tc = NewTimeControlFromLimits(limits, p.SideToMove())
	s.tc.Start()

	s.initSema.Release(1)

	best, ponder := s.iterativeDeepening(p, limits)
	s.reporter.BestMove(best, ponder)
}

// iterativeDeepening repeatedly calls negamax at increasing depth, keeping
// the previous iteration's result whenever a deeper search is cancelled
// mid-flight (spec.md §4.11).
func (s *Search) iterativeDeepening(p *board.Position, limits Limits) (board.Move, board.Move) {
	maxDepth := maxPly - 1
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	var bestMove, ponderMove board.Move
	alpha, beta := -board.ValueInfinite, board.ValueInfinite

	for depth := 1; depth <= maxDepth; depth++ {
		s.pv = pvTable{}
		s.history.Age()
		score := s.negamax(p, depth, 0, alpha, beta, true)

		if s.tc.Stopped() && depth > 1 {
			break
		}

		line := s.pv.pv()
		if len(line) > 0 {
			bestMove = line[0]
			if len(line) > 1 {
				ponderMove = line[1]
			} else {
				ponderMove = board.MoveNone
			}
		}

		elapsed := s.tc.Elapsed()
		s.reporter.Info(depth, depth, score, s.stats.Nodes, s.stats.Nps(elapsed), elapsed, s.tt.Hashfull(), line)

		if s.tc.NodeCapReached(s.stats.Nodes) {
			break
		}
		if limits.IsTimed() && s.tc.TimeFractionSpent(0.9) {
			break
		}
		if score.IsCheckmateValue() {
			break
		}
		if s.tc.Stopped() {
			break
		}
	}
	return bestMove, ponderMove
}
