package game

import (
	"fmt"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
)

// castlingRightsMask maps a square to the rights that survive a move
// touching it. Moving the king or a rook off its home square, or capturing
// a rook on one, clears the matching rights.
var castlingRightsMask = func() [64]CastlingRights {
	var m [64]CastlingRights
	for i := range m {
		m[i] = AllCastling
	}
	m[board.E1] &^= LightKingSide | LightQueenSide
	m[board.H1] &^= LightKingSide
	m[board.A1] &^= LightQueenSide
	m[board.E8] &^= DarkKingSide | DarkQueenSide
	m[board.H8] &^= DarkKingSide
	m[board.A8] &^= DarkQueenSide
	return m
}()

// PseudoLegalMoves lists every move consistent with piece movement rules,
// before king-safety filtering. Built from the per-piece capture level
// plus the state-dependent specials (promotion expansion, en passant,
// castling) that the board layer cannot see.
func (p *Position) PseudoLegalMoves() ([]Move, error) {
	masks := board.NewCollisionMasks(p.Register)
	var moves []Move

	for _, rec := range p.Register.Pieces(p.Turn) {
		ms, err := board.GenerateMoves(rec, masks)
		if err != nil {
			return nil, err
		}
		for _, to := range ms.Captures {
			moves = p.appendMoves(moves, rec, to)
		}
		for _, to := range ms.Quiets {
			moves = p.appendMoves(moves, rec, to)
		}
	}

	moves, err := p.appendEnPassant(moves)
	if err != nil {
		return nil, err
	}
	return p.appendCastling(moves)
}

// appendMoves adds one destination, expanding pawn moves onto the last
// rank into the four promotions.
func (p *Position) appendMoves(moves []Move, rec board.PieceRecord, to board.Square) []Move {
	if rec.Type == board.Pawn && (to.Rank() == 7 || to.Rank() == 0) {
		for _, promo := range []board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight} {
			moves = append(moves, NewPromotion(rec.Square, to, promo))
		}
		return moves
	}
	return append(moves, NewMove(rec.Square, to))
}

func (p *Position) appendEnPassant(moves []Move) ([]Move, error) {
	if !p.EnPassant.IsValid() {
		return moves, nil
	}
	for _, rec := range p.Register.Pieces(p.Turn) {
		if rec.Type != board.Pawn {
			continue
		}
		if board.PawnAttacks(rec.Square, rec.Team).IsSet(p.EnPassant) {
			moves = append(moves, NewEnPassant(rec.Square, p.EnPassant))
		}
	}
	return moves, nil
}

func (p *Position) appendCastling(moves []Move) ([]Move, error) {
	type option struct {
		right       CastlingRights
		kingFrom    board.Square
		kingTo      board.Square
		mustBeEmpty board.Bitboard
		mustBeSafe  [3]board.Square
	}

	var options []option
	if p.Turn == board.Light {
		options = []option{
			{LightKingSide, board.E1, board.G1,
				board.SquareBB(board.F1) | board.SquareBB(board.G1),
				[3]board.Square{board.E1, board.F1, board.G1}},
			{LightQueenSide, board.E1, board.C1,
				board.SquareBB(board.B1) | board.SquareBB(board.C1) | board.SquareBB(board.D1),
				[3]board.Square{board.E1, board.D1, board.C1}},
		}
	} else {
		options = []option{
			{DarkKingSide, board.E8, board.G8,
				board.SquareBB(board.F8) | board.SquareBB(board.G8),
				[3]board.Square{board.E8, board.F8, board.G8}},
			{DarkQueenSide, board.E8, board.C8,
				board.SquareBB(board.B8) | board.SquareBB(board.C8) | board.SquareBB(board.D8),
				[3]board.Square{board.E8, board.D8, board.C8}},
		}
	}

	masks := board.NewCollisionMasks(p.Register)
	them := p.Turn.Other()
	for _, opt := range options {
		if p.Castling&opt.right == 0 {
			continue
		}
		if masks.All()&opt.mustBeEmpty != 0 {
			continue
		}
		blocked := false
		for _, sq := range opt.mustBeSafe {
			attacked, err := board.AttackedBy(p.Register, sq, them)
			if err != nil {
				return nil, err
			}
			if attacked {
				blocked = true
				break
			}
		}
		if !blocked {
			moves = append(moves, NewCastling(opt.kingFrom, opt.kingTo))
		}
	}
	return moves, nil
}

// Apply plays a move and returns the resulting position. The receiver is
// never mutated: the register is cloned, so independent workers can fan
// out over candidate moves safely.
func (p *Position) Apply(m Move) (*Position, error) {
	from, to := m.From(), m.To()

	moving, ok := p.Register.PieceAt(from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if moving.Team != p.Turn {
		return nil, fmt.Errorf("%w: %s", ErrWrongTurn, moving)
	}

	child := &Position{
		Turn:          p.Turn.Other(),
		Register:      p.Register.Clone(),
		Castling:      p.Castling & castlingRightsMask[from] & castlingRightsMask[to],
		EnPassant:     board.NoSquare,
		HalfMoveClock: p.HalfMoveClock + 1,
		FullMove:      p.FullMove,
	}
	if p.Turn == board.Dark {
		child.FullMove++
	}
	reg := child.Register

	// Capture bookkeeping. En passant takes the bypassed pawn, not the
	// destination square.
	capSq := to
	if m.IsEnPassant() {
		if p.Turn == board.Light {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
	}
	if victim, occupied := reg.PieceAt(capSq); occupied {
		if victim.Team == moving.Team {
			return nil, fmt.Errorf("%w: %s", board.ErrSquareOccupied, to)
		}
		// Remove rejects kings, so a king "capture" surfaces as an error
		// instead of silently corrupting the register.
		if _, err := reg.Remove(capSq); err != nil {
			return nil, err
		}
		child.HalfMoveClock = 0
	}

	if err := reg.Relocate(from, to); err != nil {
		return nil, err
	}

	switch {
	case moving.Type == board.Pawn:
		child.HalfMoveClock = 0
		if m.IsPromotion() {
			// Promotion replaces the record rather than mutating its type.
			if _, err := reg.Remove(to); err != nil {
				return nil, err
			}
			promoted := board.PieceRecord{Type: m.Promotion(), Team: moving.Team, Square: to}
			if err := reg.Add(promoted); err != nil {
				return nil, err
			}
		} else if abs(int(to)-int(from)) == 16 {
			child.EnPassant = board.Square((int(to) + int(from)) / 2)
		}
	case m.IsCastling():
		rookFrom, rookTo := rookHop(to)
		if err := reg.Relocate(rookFrom, rookTo); err != nil {
			return nil, err
		}
	}

	return child, nil
}

// rookHop maps the king's castling destination to the rook's movement.
func rookHop(kingTo board.Square) (from, to board.Square) {
	switch kingTo {
	case board.G1:
		return board.H1, board.F1
	case board.C1:
		return board.A1, board.D1
	case board.G8:
		return board.H8, board.F8
	default:
		return board.A8, board.D8
	}
}

// LegalMoves filters the pseudo-legal set down to moves that do not leave
// the mover's own king in check.
func (p *Position) LegalMoves() ([]Move, error) {
	pseudo, err := p.PseudoLegalMoves()
	if err != nil {
		return nil, err
	}
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		child, err := p.Apply(m)
		if err != nil {
			return nil, err
		}
		exposed, err := board.InCheck(p.Turn, child.Register)
		if err != nil {
			return nil, err
		}
		if !exposed {
			legal = append(legal, m)
		}
	}
	return legal, nil
}
