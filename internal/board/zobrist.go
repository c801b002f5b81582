package board

import "math/rand"

// Key is a 64-bit Zobrist hash of a position.
type Key uint64

// zobrist holds the fixed random tags XORed to build and incrementally
// maintain a position's key (spec.md §4.3): one per (color,kind,square), one
// toggle per castling right, one per en-passant file, and one side-to-move tag.
var zobrist struct {
	psq    [2][6][64]Key
	castle [4]Key
	epFile [8]Key
	stm    Key
}

// zobristSeed is fixed so that keys are reproducible across runs, matching
// spec.md §4.3's "deterministically seed a pseudo-random generator".
const zobristSeed = 0x9D2C5680A1B3E457

func init() {
	seed := uint64(zobristSeed)
	r := rand.New(rand.NewSource(int64(seed)))
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := Square(0); sq < SqNone; sq++ {
				zobrist.psq[c][pt][sq] = Key(r.Uint64())
			}
		}
	}
	for i := range zobrist.castle {
		zobrist.castle[i] = Key(r.Uint64())
	}
	for i := range zobrist.epFile {
		zobrist.epFile[i] = Key(r.Uint64())
	}
	zobrist.stm = Key(r.Uint64())
}

func zobristPiece(p Piece, sq Square) Key {
	return zobrist.psq[p.ColorOf()][p.TypeOf()][sq]
}

// zobristCastleBit returns the toggle key for one of the four CastlingRights
// bits (WhiteOO=bit0 .. BlackOOO=bit3).
func zobristCastleBit(bit int) Key { return zobrist.castle[bit] }

func zobristEpFile(f File) Key { return zobrist.epFile[f] }
