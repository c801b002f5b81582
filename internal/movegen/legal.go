package movegen

import "chesseng/internal/board"

// GenFlag selects which subset of moves a generation call produces.
type GenFlag int

const (
	GenCaptures GenFlag = 1 << iota
	GenQuiets
	GenAll = GenCaptures | GenQuiets
)

// promoTypes lists the four promotion kinds in the order they should be
// tried (queen first: almost always the best, so move ordering that scores
// before sorting still sees it early).
var promoTypes = [4]board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight}

// pins holds, per board square, the set of destinations a piece on that
// square is constrained to if it is pinned to its own king; BbAll means
// "not pinned".
type pins struct {
	mask [64]board.Bitboard
}

func computePins(p *board.Position, us board.Color) pins {
	var ps pins
	for i := range ps.mask {
		ps.mask[i] = board.BbAll
	}
	king := p.KingSquare(us)
	occ := p.Occupied()
	them := us.Flip()

	scan := func(sliders board.Bitboard, pt board.PieceType) {
		for sliders != 0 {
			sq := sliders.PopLsb()
			// only a slider that moves along the king's line can pin
			if !board.SliderAttacks(pt, sq, 0).Has(king) {
				continue
			}
			between := board.Between[king][sq]
			blockers := between & occ
			if blockers.PopCount() != 1 {
				continue
			}
			pinnedSq := blockers.Lsb()
			if !p.ColorBb(us).Has(pinnedSq) {
				continue
			}
			ps.mask[pinnedSq] = between | board.SquareBb(sq)
		}
	}
	scan(p.DiagonalSliders(them), board.Bishop)
	scan(p.OrthogonalSliders(them), board.Rook)
	return ps
}

// checkInfo summarizes the checking situation of the side to move's king.
type checkInfo struct {
	count        int
	resolveMask  board.Bitboard // squares a non-king move must land on; BbAll if not in check
	kingEscapes  board.Bitboard // king attack squares filtered against x-rayed occupancy
}

func computeCheckInfo(p *board.Position, us board.Color) checkInfo {
	them := us.Flip()
	king := p.KingSquare(us)
	occ := p.Occupied()
	checkers := p.AttackersTo(king, them, occ)

	ci := checkInfo{count: checkers.PopCount(), resolveMask: board.BbAll}
	switch ci.count {
	case 0:
		// no restriction
	case 1:
		checkerSq := checkers.Lsb()
		checkerPt := p.PieceAt(checkerSq).TypeOf()
		if checkerPt == board.Bishop || checkerPt == board.Rook || checkerPt == board.Queen {
			ci.resolveMask = board.Between[king][checkerSq] | board.SquareBb(checkerSq)
		} else {
			ci.resolveMask = board.SquareBb(checkerSq)
		}
	default:
		ci.resolveMask = board.BbZero
	}

	// King escape squares: recompute attacks with our king removed from
	// occupancy, so sliding checkers "see through" the vacated square
	// (spec.md §4.6 step 2).
	occNoKing := occ &^ board.SquareBb(king)
	var escapes board.Bitboard
	for bb := board.KingAttacks(king) &^ p.ColorBb(us); bb != 0; {
		sq := bb.PopLsb()
		if p.AttackersTo(sq, them, occNoKing) == 0 {
			escapes.PushSquare(sq)
		}
	}
	ci.kingEscapes = escapes
	return ci
}

// destFilter returns the set of squares eligible under the requested subset.
func destFilter(p *board.Position, them board.Color, flags GenFlag) board.Bitboard {
	var f board.Bitboard
	if flags&GenCaptures != 0 {
		f |= p.ColorBb(them)
	}
	if flags&GenQuiets != 0 {
		f |= ^p.Occupied()
	}
	return f
}

// GenerateLegal fills out with every fully-legal move in the requested
// subset (spec.md §4.6). The en-passant special case is generated
// pseudo-legally here and verified by the make/IsAttacked/unmake round-trip,
// per spec.md §4.6's explicit exception.
func GenerateLegal(p *board.Position, flags GenFlag, out *MoveList) {
	us := p.SideToMove()
	them := us.Flip()
	king := p.KingSquare(us)
	ci := computeCheckInfo(p, us)

	// King moves, always legal regardless of pins.
	kingDest := ci.kingEscapes & destFilter(p, them, flags)
	for kingDest != 0 {
		to := kingDest.PopLsb()
		out.Push(board.NewMove(king, to))
	}

	if ci.count >= 2 {
		return // double check: only king moves
	}

	if ci.count == 0 && flags&GenQuiets != 0 {
		generateCastles(p, us, out)
	}

	ps := computePins(p, us)
	df := destFilter(p, them, flags)

	generateKnights(p, us, ci, ps, df, out)
	generateSliders(p, us, board.Bishop, ci, ps, df, out)
	generateSliders(p, us, board.Rook, ci, ps, df, out)
	generateSliders(p, us, board.Queen, ci, ps, df, out)
	generatePawns(p, us, ci, ps, flags, out)
}

func generateKnights(p *board.Position, us board.Color, ci checkInfo, ps pins, df board.Bitboard, out *MoveList) {
	for bb := p.PieceBb(us, board.Knight); bb != 0; {
		from := bb.PopLsb()
		if ps.mask[from] != board.BbAll {
			continue // pinned knights never have a legal move
		}
		dest := board.KnightAttacks(from) & ci.resolveMask & df
		for dest != 0 {
			to := dest.PopLsb()
			out.Push(board.NewMove(from, to))
		}
	}
}

func generateSliders(p *board.Position, us board.Color, pt board.PieceType, ci checkInfo, ps pins, df board.Bitboard, out *MoveList) {
	occ := p.Occupied()
	for bb := p.PieceBb(us, pt); bb != 0; {
		from := bb.PopLsb()
		dest := board.SliderAttacks(pt, from, occ) & ci.resolveMask & df & ps.mask[from]
		for dest != 0 {
			to := dest.PopLsb()
			out.Push(board.NewMove(from, to))
		}
	}
}

func generateCastles(p *board.Position, us board.Color, out *MoveList) {
	occ := p.Occupied()
	rights := p.CastlingRights()
	them := us.Flip()
	type spec struct {
		right        board.CastlingRights
		kingFrom, kingTo board.Square
		mustEmpty    board.Bitboard
		mustNotAttacked []board.Square
	}
	var specs []spec
	if us == board.White {
		specs = []spec{
			{board.WhiteOO, board.SqE1, board.SqG1, board.SquareBb(board.SqF1) | board.SquareBb(board.SqG1), []board.Square{board.SqE1, board.SqF1, board.SqG1}},
			{board.WhiteOOO, board.SqE1, board.SqC1, board.SquareBb(board.SqB1) | board.SquareBb(board.SqC1) | board.SquareBb(board.SqD1), []board.Square{board.SqC1, board.SqD1, board.SqE1}},
		}
	} else {
		specs = []spec{
			{board.BlackOO, board.SqE8, board.SqG8, board.SquareBb(board.SqF8) | board.SquareBb(board.SqG8), []board.Square{board.SqE8, board.SqF8, board.SqG8}},
			{board.BlackOOO, board.SqE8, board.SqC8, board.SquareBb(board.SqB8) | board.SquareBb(board.SqC8) | board.SquareBb(board.SqD8), []board.Square{board.SqC8, board.SqD8, board.SqE8}},
		}
	}
	for _, s := range specs {
		if !rights.Has(s.right) {
			continue
		}
		if occ&s.mustEmpty != 0 {
			continue
		}
		attacked := false
		for _, sq := range s.mustNotAttacked {
			if p.IsAttacked(sq, them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		out.Push(board.NewMoveType(s.kingFrom, s.kingTo, board.Castle, board.PtNone))
	}
}

// IsPseudoLegal validates a move arriving from an out-of-band source (the
// transposition-table move or a killer slot) against the current position,
// cheaply, without a full regeneration (spec.md §4.6's "Pseudo-legality
// check"). En passant falls back to WasLegal, which is still much cheaper
// than regenerating the whole move list; castling moves are always rejected
// here; other moves, promotions included, are checked for shape and
// occupancy only, not for leaving the own king in check.
func IsPseudoLegal(p *board.Position, m board.Move) bool {
	if !m.IsValid() {
		return false
	}
	from, to := m.From(), m.To()
	mover := p.PieceAt(from)
	if mover == board.PieceNone || mover.ColorOf() != p.SideToMove() {
		return false
	}
	if p.ColorBb(p.SideToMove()).Has(to) {
		return false
	}
	pt := mover.TypeOf()
	occ := p.Occupied()

	switch m.Type() {
	case board.Castle:
		return false // re-derive castling legality only through full generation
	case board.EnPassant:
		return pt == board.Pawn && to == p.EpSquare() && board.PawnAttacks(p.SideToMove(), from).Has(to) && WasLegal(p, m)
	case board.Promotion:
		if pt != board.Pawn {
			return false
		}
	}

	switch pt {
	case board.Pawn:
		push := board.PawnPush(p.SideToMove())
		one := board.Square(int(from) + int(push))
		if to == one {
			return !occ.Has(to)
		}
		startRank := board.Rank2
		if p.SideToMove() == board.Black {
			startRank = board.Rank7
		}
		two := board.Square(int(from) + 2*int(push))
		if to == two && from.RankOf() == startRank {
			return !occ.Has(one) && !occ.Has(two)
		}
		return board.PawnAttacks(p.SideToMove(), from).Has(to) && p.ColorBb(p.SideToMove().Flip()).Has(to)
	case board.Knight:
		return board.KnightAttacks(from).Has(to)
	case board.King:
		return board.KingAttacks(from).Has(to)
	default:
		return board.SliderAttacks(pt, from, occ).Has(to)
	}
}

// WasLegal plays m and reports whether it leaves the mover's own king safe,
// then unmakes it. Used for the en-passant corner case (spec.md §4.6) and to
// verify pseudo-legal candidates arriving from the transposition table or
// killer slots before they are played for real (spec.md §4.9).
func WasLegal(p *board.Position, m board.Move) bool {
	us := p.SideToMove()
	p.DoMove(m)
	legal := !p.IsAttacked(p.KingSquare(us), us.Flip())
	p.UndoMove(m)
	return legal
}

func generatePawns(p *board.Position, us board.Color, ci checkInfo, ps pins, flags GenFlag, out *MoveList) {
	occ := p.Occupied()
	them := us.Flip()
	push := board.PawnPush(us)
	startRank := board.Rank2
	promoRank := board.Rank8
	if us == board.Black {
		startRank = board.Rank7
		promoRank = board.Rank1
	}

	emitPush := func(from, to board.Square) {
		if to.RankOf() == promoRank {
			if flags&GenCaptures != 0 { // promotions are scored as tactical
				for _, pt := range promoTypes {
					out.Push(board.NewMoveType(from, to, board.Promotion, pt))
				}
			}
			return
		}
		if flags&GenQuiets != 0 {
			out.Push(board.NewMove(from, to))
		}
	}
	emitCapture := func(from, to board.Square) {
		if to.RankOf() == promoRank {
			for _, pt := range promoTypes {
				out.Push(board.NewMoveType(from, to, board.Promotion, pt))
			}
			return
		}
		out.Push(board.NewMove(from, to))
	}

	for bb := p.PieceBb(us, board.Pawn); bb != 0; {
		from := bb.PopLsb()
		mask := ps.mask[from]

		// single and double push (promotion pushes are tactical and only
		// emitted when captures are requested; plain pushes only when
		// quiets are requested).
		one := board.Square(int(from) + int(push))
		if one.IsValid() && !occ.Has(one) {
			isPromo := one.RankOf() == promoRank
			if ci.resolveMask.Has(one) && mask.Has(one) {
				if (isPromo && flags&GenCaptures != 0) || (!isPromo && flags&GenQuiets != 0) {
					emitPush(from, one)
				}
			}
			if flags&GenQuiets != 0 && from.RankOf() == startRank {
				two := board.Square(int(from) + 2*int(push))
				if !occ.Has(two) && ci.resolveMask.Has(two) && mask.Has(two) && mask.Has(one) {
					out.Push(board.NewMove(from, two))
				}
			}
		}

		if flags&GenCaptures != 0 {
			capDest := board.PawnAttacks(us, from) & p.ColorBb(them) & ci.resolveMask & mask
			for capDest != 0 {
				to := capDest.PopLsb()
				emitCapture(from, to)
			}
			if ep := p.EpSquare(); ep != board.SqNone && board.PawnAttacks(us, from).Has(ep) {
				// En-passant legality (including the horizontal-pin corner
				// case of spec.md §8) is resolved by the make/IsAttacked/
				// unmake round-trip rather than the pin masks above.
				m := board.NewMoveType(from, ep, board.EnPassant, board.PtNone)
				if WasLegal(p, m) {
					out.Push(m)
				}
			}
		}
	}
}
