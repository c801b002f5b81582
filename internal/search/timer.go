package search

import (
	"sync/atomic"
	"time"

	"chesseng/internal/board"
)

// nodePollInterval is how often the search checks the clock and drains the
// cancel channel, bounding worst-case cancellation latency (spec.md §4.12,
// §5: "observed within at most 4,096 nodes").
const nodePollInterval = 4096

// TimeControl holds the search's time/node/depth budget and the single-shot
// cooperative stop flag, field-named after
// original_source/src/search/timer.rs's Timer struct (spec.md §4.12).
type TimeControl struct {
	timeBudget time.Duration
	maxNodes   uint64
	maxDepth   int
	isTimed    bool
	stopped    int32 // atomic single-shot flag; all hot-path reads are local
	start      time.Time

	cancel chan struct{} // single-producer, single-consumer: Stop closes it
}

// NewTimeControl builds a TimeControl with no budget set; callers set fields
// via the With* methods before Start.
func NewTimeControl() *TimeControl {
	return &TimeControl{cancel: make(chan struct{})}
}

// NewTimeControlFromLimits derives a TimeControl from a "go" command's Limits
// (spec.md §6), picking the clock/increment belonging to the side to move
// when a wall-clock game time was given rather than a fixed move time.
func NewTimeControlFromLimits(l Limits, stm board.Color) *TimeControl {
	tc := NewTimeControl().WithMaxDepth(l.Depth).WithMaxNodes(l.Nodes)
	switch {
	case l.Infinite:
		// no time/depth/node bound at all
	case l.MoveTime > 0:
		tc = tc.WithTimeBudget(l.MoveTime)
	case l.WhiteTime > 0 || l.BlackTime > 0:
		timeLeft, inc := l.WhiteTime, l.WhiteInc
		if stm == board.Black {
			timeLeft, inc = l.BlackTime, l.BlackInc
		}
		tc = tc.WithTimeBudget(AllocateTime(timeLeft, inc, l.MovesToGo))
	}
	return tc
}

func (tc *TimeControl) WithTimeBudget(d time.Duration) *TimeControl { tc.timeBudget = d; tc.isTimed = true; return tc }
func (tc *TimeControl) WithMaxNodes(n uint64) *TimeControl         { tc.maxNodes = n; return tc }
func (tc *TimeControl) WithMaxDepth(d int) *TimeControl            { tc.maxDepth = d; return tc }

// Start records the search's start instant; call once, right before the
// iterative-deepening loop begins.
func (tc *TimeControl) Start() { tc.start = time.Now() }

// Elapsed returns time since Start.
func (tc *TimeControl) Elapsed() time.Duration { return time.Since(tc.start) }

// CheckTime reports whether the elapsed time has reached the budget.
func (tc *TimeControl) CheckTime() bool {
	return tc.isTimed && tc.Elapsed() >= tc.timeBudget
}

// TimeFractionSpent reports whether more than frac of the budget has been
// used, the iterative-deepening driver's "next iteration unlikely to finish"
// stop condition (spec.md §4.11).
func (tc *TimeControl) TimeFractionSpent(frac float64) bool {
	if !tc.isTimed {
		return false
	}
	return float64(tc.Elapsed()) >= frac*float64(tc.timeBudget)
}

// MaxDepth returns the configured depth cap (0 means "no cap").
func (tc *TimeControl) MaxDepth() int { return tc.maxDepth }

// NodeCapReached reports whether nodes has reached the configured max.
func (tc *TimeControl) NodeCapReached(nodes uint64) bool {
	return tc.maxNodes != 0 && nodes >= tc.maxNodes
}

// ShouldPoll reports whether nodes is a multiple of the poll interval.
func ShouldPoll(nodes uint64) bool { return nodes%nodePollInterval == 0 }

// Stop fires the single-producer cancel signal. The channel is closed only
// if it is still open, so repeated calls, or a call while no search is
// running, are harmless.
func (tc *TimeControl) Stop() {
	atomic.StoreInt32(&tc.stopped, 1)
	select {
	case <-tc.cancel:
		// already closed
	default:
		close(tc.cancel)
	}
}

// Poll drains the cancel channel (non-blocking) and folds it into the local
// stopped flag, then checks the time budget. Call every nodePollInterval
// nodes; the search's hot path only ever reads the resulting bool, never the
// channel, so polling stays O(1) (spec.md §9).
func (tc *TimeControl) Poll() bool {
	select {
	case <-tc.cancel:
		atomic.StoreInt32(&tc.stopped, 1)
	default:
	}
	if tc.CheckTime() {
		atomic.StoreInt32(&tc.stopped, 1)
	}
	return tc.Stopped()
}

// Stopped reports the local single-shot flag (O(1), no channel read).
func (tc *TimeControl) Stopped() bool { return atomic.LoadInt32(&tc.stopped) == 1 }

// Reset prepares tc for a fresh search (new cancel channel, flag cleared).
func (tc *TimeControl) Reset() {
	tc.stopped = 0
	tc.cancel = make(chan struct{})
}

// AllocateTime derives a per-move time budget from the remaining clock time
// and increment via a representative heuristic (spec.md §4.12): never more
// than timeLeft/8, except that this cap is never below one millisecond.
func AllocateTime(timeLeft, increment time.Duration, movesToGo int) time.Duration {
	budget := timeLeft/30 + increment/2
	if movesToGo > 0 {
		perMove := timeLeft / time.Duration(movesToGo)
		if perMove > budget {
			budget = perMove
		}
	}
	cap8 := timeLeft / 8
	if cap8 < time.Millisecond {
		cap8 = time.Millisecond
	}
	if budget > cap8 {
		budget = cap8
	}
	return budget
}
