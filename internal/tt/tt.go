package tt

import "chesseng/internal/board"

const entrySize = 16 // bytes, matches Entry's packed layout

// Table is the fixed-size transposition table, probed on search entry and
// stored on exit (spec.md §4.10). Store policy is always-replace, tempered
// by a depth/age preference so a shallow same-key overwrite doesn't discard
// a deeper one gratuitously.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8
}

// NewTable builds a table sized for sizeMB megabytes, rounded down to a
// power of two number of entries (minimum 1), per spec.md §4.10.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table for a new size budget, discarding all entries.
func (t *Table) Resize(sizeMB int) {
	if sizeMB < 1 {
		sizeMB = 1
	}
	want := (sizeMB * 1024 * 1024) / entrySize
	n := 1
	for n*2 <= want {
		n *= 2
	}
	if n < 1 {
		n = 1
	}
	t.entries = make([]Entry, n)
	t.mask = uint64(n - 1)
}

func (t *Table) index(k board.Key) uint64 { return uint64(k) & t.mask }

// Probe returns the entry for key k and whether it was found.
func (t *Table) Probe(k board.Key) (Entry, bool) {
	e := t.entries[t.index(k)]
	if e.Key == k && !e.IsEmpty() {
		return e, true
	}
	return Entry{}, false
}

// Store writes (or replaces) the entry for key k. A same-key update always
// applies; a colliding different key is replaced when the new entry is
// deeper or the existing one is from a stale search generation.
func (t *Table) Store(k board.Key, m board.Move, score int16, depth int, b Bound) {
	idx := t.index(k)
	existing := t.entries[idx]
	if existing.Key == k {
		if m == board.MoveNone {
			m = existing.Move // preserve a move hint a bound-only update lacks
		}
		t.entries[idx] = Entry{Key: k, Move: m, Score: score, meta: packMeta(depth, b, t.age)}
		return
	}
	if existing.IsEmpty() || depth >= existing.Depth() || existing.age() != t.age {
		t.entries[idx] = Entry{Key: k, Move: m, Score: score, meta: packMeta(depth, b, t.age)}
	}
}

// Clear overwrites every entry (spec.md §4.10 "Clear overwrites all entries").
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// NewGeneration bumps the age used to prefer fresh entries over stale ones
// from a previous search, without a full Clear.
func (t *Table) NewGeneration() { t.age ^= 1 }

// Hashfull estimates per-mille table occupancy by sampling the first 1000
// slots, the standard cheap approximation used for the "info hashfull" line.
func (t *Table) Hashfull() int {
	n := len(t.entries)
	sample := n
	if sample > 1000 {
		sample = 1000
	}
	used := 0
	for i := 0; i < sample; i++ {
		if !t.entries[i].IsEmpty() {
			used++
		}
	}
	return used * 1000 / sample
}

// ValueToTT adjusts a mate score to be relative-to-root before storing, and
// ValueFromTT reverses it on probe, by the node's ply (spec.md §4.11's mate
// distance normalization).
func ValueToTT(v board.Value, ply int) int16 {
	switch {
	case v >= board.ValueMateThreshold:
		return int16(v) + int16(ply)
	case v <= -board.ValueMateThreshold:
		return int16(v) - int16(ply)
	default:
		return int16(v)
	}
}

func ValueFromTT(v int16, ply int) board.Value {
	switch {
	case v >= int16(board.ValueMateThreshold):
		return board.Value(v) - board.Value(ply)
	case v <= -int16(board.ValueMateThreshold):
		return board.Value(v) + board.Value(ply)
	default:
		return board.Value(v)
	}
}
