package board

import (
	"fmt"
	"strconv"
	"strings"
)

var pieceLetters = map[byte]struct {
	c  Color
	pt PieceType
}{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

// setFEN parses classic six-field FEN (spec.md §6) into p, replacing its
// entire state. The sixth field (fullmove number) is optional and defaults
// to 1; when present it is stored and written back out by FEN(). A
// malformed string yields an error, never a panic.
func (p *Position) setFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("fen: need at least 4 fields, got %d", len(fields))
	}
	*p = Position{epSquare: SqNone, fullmove: 1}
	for i := range p.board {
		p.board[i] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: need 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc, ok := pieceLetters[ch]
			if !ok {
				return fmt.Errorf("fen: bad piece char %q", ch)
			}
			if f > FileH {
				return fmt.Errorf("fen: rank %d overflows", i)
			}
			p.AddPiece(NewSquare(f, r), pc.pt, pc.c)
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.stm = White
	case "b":
		p.stm = Black
		p.key ^= zobrist.stm
	default:
		return fmt.Errorf("fen: bad side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				p.SetCastleRight(WhiteOO, true)
			case 'Q':
				p.SetCastleRight(WhiteOOO, true)
			case 'k':
				p.SetCastleRight(BlackOO, true)
			case 'q':
				p.SetCastleRight(BlackOOO, true)
			}
		}
	}

	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		if sq != SqNone {
			p.SetEp(sq)
		}
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmove = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmove = n
		}
	}
	return nil
}

// FEN renders the current position as a six-field FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceAt(NewSquare(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if p.stm == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmove))
	return sb.String()
}
