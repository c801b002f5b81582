package board

// MoveType distinguishes the four move shapes make/unmake must dispatch on.
type MoveType uint32

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castle
)

// Move is a bit-packed move record: bits 0-5 from, 6-11 to, 12-13 move type,
// 14-15 promotion piece type (Knight..Queen, encoded 0-3), bits 16-31 carry an
// out-of-band ordering score so the move picker can sort in place without a
// parallel array (spec.md §3 "scores are carried out-of-band in the movelist",
// realized here as high bits of the same word rather than a second slice).
type Move uint32

const MoveNone Move = 0

const (
	fromMask  = 0x3F
	toShift   = 6
	toMask    = 0x3F << toShift
	typeShift = 12
	typeMask  = 0x3 << typeShift
	promShift = 14
	promMask  = 0x3 << promShift
	valShift  = 16
)

// NewMove builds a Normal move.
func NewMove(from, to Square) Move {
	return Move(uint32(from)&fromMask | (uint32(to)&0x3F)<<toShift)
}

// NewMoveType builds a move of the given type and (for Promotion) piece kind.
// promo is one of Knight, Bishop, Rook, Queen; ignored for other types.
func NewMoveType(from, to Square, mt MoveType, promo PieceType) Move {
	m := NewMove(from, to)
	m |= Move(uint32(mt) << typeShift)
	if mt == Promotion {
		m |= Move(uint32(promo-Knight) << promShift)
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & fromMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m & toMask) >> toShift) }

// Type returns the move type.
func (m Move) Type() MoveType { return MoveType((m & typeMask) >> typeShift) }

// PromotionType returns the promoted-to piece kind; only meaningful when
// Type() == Promotion.
func (m Move) PromotionType() PieceType { return PieceType((m&promMask)>>promShift) + Knight }

// Value returns the carried ordering score.
func (m Move) Value() int16 { return int16(m >> valShift) }

// WithValue returns m with its ordering score replaced (from/to/type/promo
// bits untouched).
func (m Move) WithValue(v int16) Move {
	return Move(uint32(m)&0xFFFF | uint32(uint16(v))<<valShift)
}

// IsValid reports whether m has distinct, valid from/to squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String renders m in long algebraic notation (e2e4, e7e8q, ...).
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += m.PromotionType().String()
	}
	return s
}
