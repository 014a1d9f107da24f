// Package game holds the position layer around the board core: FEN,
// move encoding, move application and legality filtering.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
)

var (
	// ErrNoPiece is returned when a move names an empty origin square.
	ErrNoPiece = errors.New("no piece on origin square")

	// ErrWrongTurn is returned when a move picks up the opponent's piece.
	ErrWrongTurn = errors.New("piece belongs to the side not moving")
)

// CastlingRights is a bitmask of the four castling options.
type CastlingRights uint8

const (
	LightKingSide CastlingRights = 1 << iota
	LightQueenSide
	DarkKingSide
	DarkQueenSide

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = LightKingSide | LightQueenSide | DarkKingSide | DarkQueenSide
)

// String returns the FEN castling field ("KQkq" or "-").
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if cr&LightKingSide != 0 {
		sb.WriteByte('K')
	}
	if cr&LightQueenSide != 0 {
		sb.WriteByte('Q')
	}
	if cr&DarkKingSide != 0 {
		sb.WriteByte('k')
	}
	if cr&DarkQueenSide != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// Position is a full game state: whose turn it is, the piece register, and
// the bookkeeping the register alone cannot carry. The register is owned
// exclusively by its position; Apply clones it rather than mutating.
type Position struct {
	Turn     board.Team
	Register *board.Register

	Castling      CastlingRights
	EnPassant     board.Square // capture target square, NoSquare if none
	HalfMoveClock int
	FullMove      int
}

// Copy returns an independent deep copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	c.Register = p.Register.Clone()
	return &c
}

// InCheck reports whether the side to move is in check. Register
// corruption propagates as an error.
func (p *Position) InCheck() (bool, error) {
	return board.InCheck(p.Turn, p.Register)
}

// Checkmate reports whether the side to move is checkmated.
func (p *Position) Checkmate() (bool, error) {
	inCheck, err := p.InCheck()
	if err != nil || !inCheck {
		return false, err
	}
	moves, err := p.LegalMoves()
	if err != nil {
		return false, err
	}
	return len(moves) == 0, nil
}

// Stalemate reports whether the side to move has no legal moves while not
// in check.
func (p *Position) Stalemate() (bool, error) {
	inCheck, err := p.InCheck()
	if err != nil || inCheck {
		return false, err
	}
	moves, err := p.LegalMoves()
	if err != nil {
		return false, err
	}
	return len(moves) == 0, nil
}

// String renders the board with FEN letters, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			if rec, ok := p.Register.PieceAt(board.NewSquare(file, rank)); ok {
				sb.WriteByte(pieceChar(rec))
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move\n", p.Turn)
	return sb.String()
}
