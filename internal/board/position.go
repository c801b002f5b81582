package board

import "chesseng/internal/assertion"

// maxHistory bounds the undo stack; a search tree this deep never occurs in
// practice (spec.md §4.12's ValueMaxPly bounds recursion well below this).
const maxHistory = 1024

// undoInfo is the recoverable per-ply snapshot pushed by PushInfo and restored
// by PopInfo: everything that cannot be cheaply derived by inverting the move
// itself (spec.md §3's "info stack").
type undoInfo struct {
	captured PieceType
	halfmove int
	epSquare Square
	castling CastlingRights
	key      Key
}

// Position is the full board state: bitboards, piece-on-square array, side to
// move, castling/ep/halfmove state, Zobrist key, and an incremental tapered
// evaluation accumulator (spec.md §3 "Board state").
type Position struct {
	board    [64]Piece
	pieceBb  [2][6]Bitboard
	colorBb  [2]Bitboard
	stm      Color
	castling CastlingRights
	epSquare Square
	halfmove int
	fullmove int
	key      Key

	phase int
	psq   [2]Score

	hist    [maxHistory]undoInfo
	histPly int
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition builds a position from a FEN string, or the start position if
// fen is empty or malformed (malformed input never panics, per spec.md §7).
func NewPosition(fen string) *Position {
	p := &Position{}
	if fen == "" {
		fen = StartFEN
	}
	if err := p.setFEN(fen); err != nil {
		p = &Position{}
		_ = p.setFEN(StartFEN)
	}
	return p
}

// Clone returns an independent copy of p; Position holds no pointers or
// slices, so a struct copy is already a deep copy.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color { return p.stm }

// Key returns the current Zobrist key.
func (p *Position) Key() Key { return p.key }

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EpSquare returns the current en-passant target square, or SqNone.
func (p *Position) EpSquare() Square { return p.epSquare }

// HalfmoveClock returns the plies since the last pawn move or capture.
func (p *Position) HalfmoveClock() int { return p.halfmove }

// FullmoveNumber returns the current full-move counter.
func (p *Position) FullmoveNumber() int { return p.fullmove }

// Phase returns the current tapering phase value: the sum of PhaseWeight over
// the pieces on board. It can exceed TotalPhase; ValueFromScore caps it.
func (p *Position) Phase() int { return p.phase }

// PieceAt returns the piece on sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// PieceBb returns the bitboard of color c's pieces of kind pt.
func (p *Position) PieceBb(c Color, pt PieceType) Bitboard { return p.pieceBb[c][pt] }

// ColorBb returns every square occupied by color c.
func (p *Position) ColorBb(c Color) Bitboard { return p.colorBb[c] }

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitboard { return p.colorBb[White] | p.colorBb[Black] }

// DiagonalSliders returns color c's bishops and queens.
func (p *Position) DiagonalSliders(c Color) Bitboard {
	return p.pieceBb[c][Bishop] | p.pieceBb[c][Queen]
}

// OrthogonalSliders returns color c's rooks and queens.
func (p *Position) OrthogonalSliders(c Color) Bitboard {
	return p.pieceBb[c][Rook] | p.pieceBb[c][Queen]
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.pieceBb[c][King].Lsb() }

// PsqScore returns the incremental tapered PSQT accumulator for color c.
func (p *Position) PsqScore(c Color) Score { return p.psq[c] }

// StaticMaterialScore returns (white - black) tapered PSQT score, the raw
// side-independent material+position balance before the side-to-move sign
// flip the evaluator applies.
func (p *Position) StaticMaterialScore() Score { return p.psq[White].Sub(p.psq[Black]) }

// ///////////////////////////////////////////////////////////////////////
// Primitive mutators (spec.md §4.4) — every one keeps bitboards, the
// piece-on-square array, the Zobrist key, and the PSQT accumulator in sync.
// ///////////////////////////////////////////////////////////////////////

// AddPiece places piece (c,pt) on sq, which must currently be empty.
func (p *Position) AddPiece(sq Square, pt PieceType, c Color) {
	pc := NewPiece(c, pt)
	p.board[sq] = pc
	p.pieceBb[c][pt].PushSquare(sq)
	p.colorBb[c].PushSquare(sq)
	p.key ^= zobristPiece(pc, sq)
	p.phase += PhaseWeight[pt]
	v := PosValue(c, pt, sq)
	p.psq[c] = p.psq[c].Add(v)
}

// RemovePiece removes piece (c,pt) from sq, which must currently hold it.
func (p *Position) RemovePiece(sq Square, pt PieceType, c Color) {
	pc := NewPiece(c, pt)
	p.board[sq] = PieceNone
	p.pieceBb[c][pt].PopSquare(sq)
	p.colorBb[c].PopSquare(sq)
	p.key ^= zobristPiece(pc, sq)
	p.phase -= PhaseWeight[pt]
	if p.phase < 0 {
		p.phase = 0
	}
	v := PosValue(c, pt, sq)
	p.psq[c] = p.psq[c].Sub(v)
}

// MovePiece relocates piece (c,pt) from "from" to "to" (both bitboard/array
// slots and the accumulator); equivalent to Remove+Add but keeps phase exact.
func (p *Position) MovePiece(from, to Square, pt PieceType, c Color) {
	p.RemovePiece(from, pt, c)
	p.AddPiece(to, pt, c)
}

// SwapSides flips the side to move and its Zobrist tag.
func (p *Position) SwapSides() {
	p.stm = p.stm.Flip()
	p.key ^= zobrist.stm
}

// SetEp sets the en-passant target square, XORing in its file tag.
func (p *Position) SetEp(sq Square) {
	p.epSquare = sq
	p.key ^= zobristEpFile(sq.FileOf())
}

// ResetEp clears any en-passant target, XORing out its file tag if one was set.
func (p *Position) ResetEp() {
	if p.epSquare != SqNone {
		p.key ^= zobristEpFile(p.epSquare.FileOf())
		p.epSquare = SqNone
	}
}

var castleBitIndex = map[CastlingRights]int{WhiteOO: 0, WhiteOOO: 1, BlackOO: 2, BlackOOO: 3}

// SetCastleRight sets or clears a single castling-right bit, keeping the
// Zobrist key in sync.
func (p *Position) SetCastleRight(which CastlingRights, on bool) {
	has := p.castling.Has(which)
	if has == on {
		return
	}
	p.key ^= zobristCastleBit(castleBitIndex[which])
	if on {
		p.castling |= which
	} else {
		p.castling &^= which
	}
}

// ResetHalfmove zeroes the 50-move-rule clock (a pawn move or capture).
func (p *Position) ResetHalfmove() { p.halfmove = 0 }

// IncrementHalfmove advances the 50-move-rule clock.
func (p *Position) IncrementHalfmove() { p.halfmove++ }

// PushInfo snapshots the recoverable (non-bitboard) state before a move is
// applied; the matching PopInfo restores it on unmake.
func (p *Position) PushInfo() {
	if assertion.Debug {
		assertion.Assert(p.histPly < maxHistory, "history stack overflow at ply %d", p.histPly)
	}
	p.hist[p.histPly] = undoInfo{
		halfmove: p.halfmove,
		epSquare: p.epSquare,
		castling: p.castling,
		key:      p.key,
		captured: PtNone,
	}
	p.histPly++
}

// PopInfo restores the most recently pushed snapshot's recoverable fields
// (halfmove/ep/castling/key); the caller is responsible for reversing board
// mutations via inverse Add/Remove/Move calls first.
func (p *Position) PopInfo() {
	if assertion.Debug {
		assertion.Assert(p.histPly > 0, "PopInfo called with empty history stack")
	}
	p.histPly--
	u := p.hist[p.histPly]
	p.halfmove = u.halfmove
	p.epSquare = u.epSquare
	p.castling = u.castling
	p.key = u.key
}

// setCaptured stashes the captured piece kind into the just-pushed snapshot,
// so UndoMove can restore it.
func (p *Position) setCaptured(pt PieceType) { p.hist[p.histPly-1].captured = pt }

// capturedAt returns the piece kind captured by the move currently being
// unwound (the snapshot on top of the stack before it is popped).
func (p *Position) capturedAt() PieceType { return p.hist[p.histPly-1].captured }

// ///////////////////////////////////////////////////////////////////////
// Attack queries (spec.md §4.4 "Queries")
// ///////////////////////////////////////////////////////////////////////

// IsAttacked reports whether sq is attacked by any piece of color by, given
// the current board occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.Occupied()
	if KnightAttacks(sq)&p.pieceBb[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&p.pieceBb[by][King] != 0 {
		return true
	}
	if PawnAttacks(by.Flip(), sq)&p.pieceBb[by][Pawn] != 0 {
		return true
	}
	if BishopAttacks(sq, occ)&p.DiagonalSliders(by) != 0 {
		return true
	}
	if RookAttacks(sq, occ)&p.OrthogonalSliders(by) != 0 {
		return true
	}
	return false
}

// AttackersTo returns every piece of color by attacking sq given occupancy
// occ (which may differ from the live board, e.g. with a capturing piece
// already removed — used by SEE's x-ray walk).
func (p *Position) AttackersTo(sq Square, by Color, occ Bitboard) Bitboard {
	var a Bitboard
	a |= KnightAttacks(sq) & p.pieceBb[by][Knight]
	a |= KingAttacks(sq) & p.pieceBb[by][King]
	a |= PawnAttacks(by.Flip(), sq) & p.pieceBb[by][Pawn]
	a |= BishopAttacks(sq, occ) & (p.pieceBb[by][Bishop] | p.pieceBb[by][Queen])
	a |= RookAttacks(sq, occ) & (p.pieceBb[by][Rook] | p.pieceBb[by][Queen])
	return a
}

// IsInCheck reports whether the side to move's king is attacked.
func (p *Position) IsInCheck() bool {
	return p.IsAttacked(p.KingSquare(p.stm), p.stm.Flip())
}

// InsufficientMaterial reports the spec.md §4.7 draw shortcut: no
// pawns/rooks/queens on board and neither side has a bishop pair or a
// bishop+knight.
func (p *Position) InsufficientMaterial() bool {
	if p.pieceBb[White][Pawn]|p.pieceBb[Black][Pawn] != 0 {
		return false
	}
	if p.pieceBb[White][Rook]|p.pieceBb[Black][Rook] != 0 {
		return false
	}
	if p.pieceBb[White][Queen]|p.pieceBb[Black][Queen] != 0 {
		return false
	}
	for c := White; c <= Black; c++ {
		bishops := p.pieceBb[c][Bishop].PopCount()
		knights := p.pieceBb[c][Knight].PopCount()
		if bishops >= 2 || (bishops >= 1 && knights >= 1) {
			return false
		}
	}
	return true
}
