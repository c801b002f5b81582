package search

import "time"

// Statistics accumulates per-search counters reported in "info" lines
// (spec.md §6).
type Statistics struct {
	Nodes       uint64
	QNodes      uint64
	TTHits      uint64
	NullCutoffs uint64
}

// Nps computes nodes per second given elapsed wall-clock time.
func (s *Statistics) Nps(elapsed time.Duration) uint64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return uint64(float64(s.Nodes) / secs)
}

// Reset zeroes all counters, called at the start of each search.
func (s *Statistics) Reset() { *s = Statistics{} }
