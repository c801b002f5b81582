package movegen

import "chesseng/internal/board"

// Perft walks the fully-legal move tree to depth and returns the total leaf
// count, the standard move-generator correctness benchmark (spec.md §8's
// perft equivalence property and the concrete starting-position table).
func Perft(p *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	GenerateLegal(p, GenAll, &list)
	if depth == 1 {
		return uint64(list.Len())
	}
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		p.DoMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove(m)
	}
	return nodes
}

// DivideResult is one root move's subtree leaf count from PerftDivide.
type DivideResult struct {
	Move  board.Move
	Nodes uint64
}

// PerftDivide runs Perft one ply at a time per root move, returning each
// root move's subtree count (in move-generation order, so callers get
// stable output) alongside the grand total — the "go ... perft N"
// line-protocol command's output shape (spec.md §6).
func PerftDivide(p *board.Position, depth int) ([]DivideResult, uint64) {
	var list MoveList
	GenerateLegal(p, GenAll, &list)
	results := make([]DivideResult, 0, list.Len())
	var total uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		p.DoMove(m)
		n := Perft(p, depth-1)
		p.UndoMove(m)
		results = append(results, DivideResult{Move: m, Nodes: n})
		total += n
	}
	return results, total
}
