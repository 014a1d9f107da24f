package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
)

// StartingPositionFEN is the canonical initial board.
const StartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition returns the starting position.
func NewPosition() *Position {
	p, err := ParseFEN(StartingPositionFEN)
	if err != nil {
		panic("starting position FEN failed to parse: " + err.Error())
	}
	return p
}

// ParseFEN builds a position from a FEN string. The resulting register is
// validated to hold exactly one king per team.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	p := &Position{
		Register:  board.NewRegister(),
		EnPassant: board.NoSquare,
		FullMove:  1,
	}

	if err := parsePlacement(p.Register, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		p.Turn = board.Light
	case "b":
		p.Turn = board.Dark
	default:
		return nil, fmt.Errorf("invalid side to move %q", parts[1])
	}

	if err := parseCastling(p, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square %q", parts[3])
		}
		p.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock %q", parts[4])
		}
		p.HalfMoveClock = hmc
	}
	if len(parts) > 5 {
		fm, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number %q", parts[5])
		}
		p.FullMove = fm
	}

	// A register without exactly one king per side is corrupt for every
	// downstream check and score query; reject it at the door.
	for _, t := range []board.Team{board.Light, board.Dark} {
		if _, err := p.Register.KingMask(t); err != nil {
			return nil, fmt.Errorf("invalid FEN: %w", err)
		}
	}

	return p, nil
}

func parsePlacement(r *board.Register, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, team, ok := pieceFromChar(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character %q", c)
			}
			rec := board.PieceRecord{Type: pt, Team: team, Square: board.NewSquare(file, rank)}
			if err := r.Add(rec); err != nil {
				return err
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d covers %d squares", rank+1, file)
		}
	}
	return nil
}

func parseCastling(p *Position, field string) error {
	if field == "-" {
		p.Castling = NoCastling
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			p.Castling |= LightKingSide
		case 'Q':
			p.Castling |= LightQueenSide
		case 'k':
			p.Castling |= DarkKingSide
		case 'q':
			p.Castling |= DarkQueenSide
		default:
			return fmt.Errorf("invalid castling character %q", c)
		}
	}
	return nil
}

// FEN serializes the position back to FEN.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			rec, ok := p.Register.PieceAt(board.NewSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceChar(rec))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Turn == board.Light {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMove))
	return sb.String()
}

func pieceFromChar(c byte) (board.PieceType, board.Team, bool) {
	team := board.Light
	if c >= 'a' && c <= 'z' {
		team = board.Dark
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return board.Pawn, team, true
	case 'N':
		return board.Knight, team, true
	case 'B':
		return board.Bishop, team, true
	case 'R':
		return board.Rook, team, true
	case 'Q':
		return board.Queen, team, true
	case 'K':
		return board.King, team, true
	}
	return 0, 0, false
}

func pieceChar(rec board.PieceRecord) byte {
	chars := "PNBRQK"
	c := chars[rec.Type]
	if rec.Team == board.Dark {
		c += 'a' - 'A'
	}
	return c
}
