package board

// castleRookMove maps a king destination square to the rook's from/to squares
// for that castle (spec.md §4.5's fixed per-destination mapping).
type castleRookMove struct{ from, to Square }

var castleRook = map[Square]castleRookMove{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// castleRightsLost maps a square touched by a move (king or rook source/dest,
// or a captured rook's square) to the right it forfeits.
var castleRightsLost = map[Square]CastlingRights{
	SqE1: WhiteOO | WhiteOOO,
	SqA1: WhiteOOO,
	SqH1: WhiteOO,
	SqE8: BlackOO | BlackOOO,
	SqA8: BlackOOO,
	SqH8: BlackOO,
}

// DoMove applies a pseudo-legal move to the position (spec.md §4.5). Legality
// (king not left in check) is the caller's responsibility.
func (p *Position) DoMove(m Move) {
	p.PushInfo()
	us := p.stm
	them := us.Flip()
	from, to := m.From(), m.To()
	mover := p.PieceAt(from)
	moverType := mover.TypeOf()

	p.IncrementHalfmove()
	p.ResetEp()

	switch m.Type() {
	case Normal:
		if cap := p.PieceAt(to); cap != PieceNone {
			p.setCaptured(cap.TypeOf())
			p.RemovePiece(to, cap.TypeOf(), them)
			p.ResetHalfmove()
		}
		p.MovePiece(from, to, moverType, us)
		if moverType == Pawn {
			p.ResetHalfmove()
			if diff := int(to) - int(from); diff == 16 || diff == -16 {
				p.SetEp(Square(int(from) + int(PawnPush(us))))
			}
		}
		p.refreshCastleRights(from, to)

	case Castle:
		p.MovePiece(from, to, King, us)
		rm := castleRook[to]
		p.MovePiece(rm.from, rm.to, Rook, us)
		p.refreshCastleRights(from, to)

	case Promotion:
		if cap := p.PieceAt(to); cap != PieceNone {
			p.setCaptured(cap.TypeOf())
			p.RemovePiece(to, cap.TypeOf(), them)
		}
		p.RemovePiece(from, Pawn, us)
		p.AddPiece(to, m.PromotionType(), us)
		p.ResetHalfmove()
		p.refreshCastleRights(from, to)

	case EnPassant:
		capSq := Square(int(to) ^ 8)
		p.setCaptured(Pawn)
		p.RemovePiece(capSq, Pawn, them)
		p.MovePiece(from, to, Pawn, us)
		p.ResetHalfmove()
	}

	p.SwapSides()
	if p.stm == White {
		p.fullmove++
	}
}

// refreshCastleRights clears rights for any of the four "home" squares
// touched by this move's from/to (king move, rook move, or rook capture);
// spec.md §4.5: rights are monotonic, recomputed as old-rights AND
// still-present.
func (p *Position) refreshCastleRights(from, to Square) {
	if lost, ok := castleRightsLost[from]; ok {
		p.SetCastleRight(lost, false)
	}
	if lost, ok := castleRightsLost[to]; ok {
		p.SetCastleRight(lost, false)
	}
}

// UndoMove reverses the most recently applied move exactly, restoring
// bit-identical state including the Zobrist key (spec.md §4.5 invariant).
func (p *Position) UndoMove(m Move) {
	p.SwapSides()
	if p.stm == Black {
		p.fullmove--
	}
	us := p.stm
	them := us.Flip()
	from, to := m.From(), m.To()

	switch m.Type() {
	case Normal:
		moverType := p.PieceAt(to).TypeOf()
		p.MovePiece(to, from, moverType, us)
		if capPt := p.capturedAt(); capPt != PtNone {
			p.AddPiece(to, capPt, them)
		}

	case Castle:
		rm := castleRook[to]
		p.MovePiece(rm.to, rm.from, Rook, us)
		p.MovePiece(to, from, King, us)

	case Promotion:
		p.RemovePiece(to, m.PromotionType(), us)
		p.AddPiece(from, Pawn, us)
		if capPt := p.capturedAt(); capPt != PtNone {
			p.AddPiece(to, capPt, them)
		}

	case EnPassant:
		capSq := Square(int(to) ^ 8)
		p.MovePiece(to, from, Pawn, us)
		p.AddPiece(capSq, Pawn, them)
	}

	p.PopInfo()
}

// DoNullMove flips the side to move and clears the en-passant square without
// moving any piece, used by null-move pruning.
func (p *Position) DoNullMove() {
	p.PushInfo()
	p.ResetEp()
	p.SwapSides()
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.SwapSides()
	p.PopInfo()
}
