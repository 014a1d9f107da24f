package game

import (
	"fmt"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
)

// Move packs a move into 16 bits:
// bits 0-5 origin, 6-11 destination, 12-13 promotion piece
// (0=Knight..3=Queen), 14-15 kind.
type Move uint16

const (
	kindNormal    uint16 = 0 << 14
	kindPromotion uint16 = 1 << 14
	kindEnPassant uint16 = 2 << 14
	kindCastling  uint16 = 3 << 14
)

// NoMove is the zero, invalid move.
const NoMove Move = 0

// NewMove creates a plain move.
func NewMove(from, to board.Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion to the given piece type.
func NewPromotion(from, to board.Square, promo board.PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo-board.Knight)<<12 | Move(kindPromotion)
}

// NewEnPassant creates an en passant capture.
func NewEnPassant(from, to board.Square) Move {
	return Move(from) | Move(to)<<6 | Move(kindEnPassant)
}

// NewCastling creates a castling move, encoded as the king's hop.
func NewCastling(from, to board.Square) Move {
	return Move(from) | Move(to)<<6 | Move(kindCastling)
}

// From returns the origin square.
func (m Move) From() board.Square {
	return board.Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() board.Square {
	return board.Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type; only meaningful when
// IsPromotion reports true.
func (m Move) Promotion() board.PieceType {
	return board.PieceType((m>>12)&3) + board.Knight
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return uint16(m)&0xC000 == kindPromotion }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return uint16(m)&0xC000 == kindEnPassant }

// IsCastling reports whether the move is castling.
func (m Move) IsCastling() bool { return uint16(m)&0xC000 == kindCastling }

// String returns the UCI form ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()-board.Knight])
	}
	return s
}

// ParseMove parses a UCI move string against a position, recovering the
// castling and en passant encodings from context.
func ParseMove(s string, p *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string %q", s)
	}
	from, err := board.ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := board.ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo board.PieceType
		switch s[4] {
		case 'n':
			promo = board.Knight
		case 'b':
			promo = board.Bishop
		case 'r':
			promo = board.Rook
		case 'q':
			promo = board.Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece %q", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	rec, ok := p.Register.PieceAt(from)
	if !ok {
		return NoMove, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if rec.Type == board.King && abs(int(to)-int(from)) == 2 {
		return NewCastling(from, to), nil
	}
	if rec.Type == board.Pawn && to == p.EnPassant {
		return NewEnPassant(from, to), nil
	}
	return NewMove(from, to), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
