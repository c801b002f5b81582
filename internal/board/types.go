//
// chesseng - a bitboard chess engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package board holds the bitboard position representation: squares, pieces,
// bitboard primitives, attack tables, Zobrist hashing, and the Position type
// with its make/unmake machinery.
package board

import "fmt"

// Square is one of the 64 squares of a chess board, a1=0 .. h8=63.
type Square int8

// File is a file a..h, 0..7.
type File int8

// Rank is a rank 1..8, 0..7.
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

const SqNone Square = 64

// NewSquare builds a square from file and rank, or SqNone if either is invalid.
func NewSquare(f File, r Rank) Square {
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return SqNone
	}
	return Square(int8(r)*8 + int8(f))
}

// well-known squares needed by castling and pawn-promotion logic.
const (
	SqA1 = Square(0)
	SqB1 = Square(1)
	SqC1 = Square(2)
	SqD1 = Square(3)
	SqE1 = Square(4)
	SqF1 = Square(5)
	SqG1 = Square(6)
	SqH1 = Square(7)
	SqA8 = Square(56)
	SqB8 = Square(57)
	SqC8 = Square(58)
	SqD8 = Square(59)
	SqE8 = Square(60)
	SqF8 = Square(61)
	SqG8 = Square(62)
	SqH8 = Square(63)
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool { return sq >= 0 && sq < SqNone }

// FileOf returns the file of sq.
func (sq Square) FileOf() File { return File(sq & 7) }

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank { return Rank(sq >> 3) }

// Mirror returns the vertical mirror of sq (rank flipped), used to evaluate
// black piece-square values from white's tables.
func (sq Square) Mirror() Square { return sq ^ 56 }

func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string(rune('a' + int(f)))
}

func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "-"
	}
	return string(rune('1' + int(r)))
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// SquareFromString parses algebraic square notation ("e4"); returns SqNone on
// any malformed input rather than panicking (front-end glue is infallible).
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return NewSquare(f, r)
}

// Color is one of the two sides.
type Color int8

const (
	White Color = iota
	Black
	ColorNone
)

// Flip returns the opposing color.
func (c Color) Flip() Color { return c ^ 1 }

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// PieceType is one of the six piece kinds, plus an absent marker.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
)

// PieceTypeValues lists the six real piece kinds in ascending material value,
// used by move ordering and SEE's "least valuable attacker" search.
var PieceTypeValues = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Piece packs a color and a piece type into one byte-sized value: white
// pieces are PieceType*2, black pieces PieceType*2+1, PieceNone is 12.
type Piece int8

const PieceNone Piece = 12

// NewPiece builds a piece value from color and kind.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == PtNone || c == ColorNone {
		return PieceNone
	}
	return Piece(int8(pt)*2 + int8(c))
}

// TypeOf returns the piece kind.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(p / 2)
}

// ColorOf returns the piece's color.
func (p Piece) ColorOf() Color {
	if p == PieceNone {
		return ColorNone
	}
	return Color(p % 2)
}

var pieceGlyph = [13]string{"P", "p", "N", "n", "B", "b", "R", "r", "Q", "q", "K", "k", "."}

func (p Piece) String() string {
	if p < 0 || int(p) > len(pieceGlyph)-1 {
		return "."
	}
	return pieceGlyph[p]
}

// Direction is a ray direction used by non-wrapping shifts and precomputed
// step tables.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 9
	Southeast Direction = -7
	Southwest Direction = -9
	Northwest Direction = 7
)

// Directions enumerates the 8 ray directions in the fixed order used to index
// precomputed step tables.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// PawnPush returns the side-relative forward direction for color c (spec.md
// §4.1's "side-relative forward shift").
func PawnPush(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// CastlingRights is a 4-bit set: white king-side, white queen-side, black
// king-side, black queen-side.
type CastlingRights uint8

const (
	WhiteOO CastlingRights = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO
	CastleNone CastlingRights = 0
	CastleAll  CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// Has reports whether all bits of sub are set in cr.
func (cr CastlingRights) Has(sub CastlingRights) bool { return cr&sub == sub }

func (cr CastlingRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteOO) {
		s += "K"
	}
	if cr.Has(WhiteOOO) {
		s += "Q"
	}
	if cr.Has(BlackOO) {
		s += "k"
	}
	if cr.Has(BlackOOO) {
		s += "q"
	}
	return s
}

// Value is a centipawn evaluation score, also used to carry mate distances.
type Value int16

const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInfinite           Value = 15000
	ValueNA                 Value = -ValueInfinite - 1
	ValueMate               Value = 10000
	ValueMateThreshold      Value = ValueMate - 256
	ValueMaxPly                   = 128
)

// PieceValue gives the material value used by SEE and the static material
// balance (spec.md §4.8's representative scale).
var PieceValue = [6]Value{100, 300, 300, 500, 900, 10000}

// IsCheckmateValue reports whether v encodes a mate-in-N score (either side).
func (v Value) IsCheckmateValue() bool {
	return v <= -ValueMateThreshold || v >= ValueMateThreshold
}

func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v >= ValueMateThreshold:
		return fmt.Sprintf("mate %d", (int(ValueMate)-int(v)+1)/2)
	case v <= -ValueMateThreshold:
		return fmt.Sprintf("mate %d", -((int(ValueMate)+int(v))/2))
	default:
		return fmt.Sprintf("cp %d", int(v))
	}
}
