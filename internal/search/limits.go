package search

import "time"

// Limits carries everything the "go" protocol command can specify
// (spec.md §6), parsed by the protocol package and handed to Search.StartSearch.
type Limits struct {
	Infinite   bool
	Depth      int
	Nodes      uint64
	MoveTime   time.Duration
	WhiteTime  time.Duration
	BlackTime  time.Duration
	WhiteInc   time.Duration
	BlackInc   time.Duration
	MovesToGo  int
	Perft      int
}

// NewLimits returns a zero-value Limits (no bound set — caller must still
// supply at least one of Infinite/Depth/Nodes/MoveTime/WhiteTime+BlackTime).
func NewLimits() Limits { return Limits{} }

// IsTimed reports whether wall-clock time should bound the search.
func (l Limits) IsTimed() bool {
	return !l.Infinite && (l.MoveTime > 0 || l.WhiteTime > 0 || l.BlackTime > 0)
}
