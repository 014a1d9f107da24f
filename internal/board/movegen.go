package board

import "fmt"

// MoveSet is the capture-refined result for one piece: the reachable
// destinations partitioned into captures and quiet moves, each in
// ascending square order. Friendly-occupied squares are excluded
// entirely; they block movement and are never capture targets.
type MoveSet struct {
	Captures []Square
	Quiets   []Square
}

// Empty reports whether the piece has no destinations at all.
func (ms MoveSet) Empty() bool {
	return len(ms.Captures) == 0 && len(ms.Quiets) == 0
}

// attackBoard returns the raw squares a piece threatens given full-board
// occupancy: table lookups for king, knight and pawn, ray resolution for
// the sliders. Pawn pushes are not attacks and are excluded here.
func attackBoard(rec PieceRecord, occupied Bitboard) Bitboard {
	switch rec.Type {
	case Pawn:
		return PawnAttacks(rec.Square, rec.Team)
	case Knight:
		return KnightAttacks(rec.Square)
	case Bishop:
		return BishopAttacks(rec.Square, occupied)
	case Rook:
		return RookAttacks(rec.Square, occupied)
	case Queen:
		return QueenAttacks(rec.Square, occupied)
	case King:
		return KingAttacks(rec.Square)
	default:
		return 0
	}
}

// pawnPushBoard returns the pawn's quiet push destinations: one step
// forward when empty, two from the home rank when both squares are empty.
func pawnPushBoard(rec PieceRecord, occupied Bitboard) Bitboard {
	bb := SquareBB(rec.Square)
	empty := ^occupied
	if rec.Team == Light {
		single := bb.North() & empty
		double := (single & RankMask3).North() & empty
		return single | double
	}
	single := bb.South() & empty
	double := (single & RankMask6).South() & empty
	return single | double
}

// GenerateMoves computes the capture-refined move set for a single piece
// against a collision snapshot. It fails only on a malformed record; an
// empty result is a valid answer.
//
// Castling and en passant depend on game state beyond the register and are
// produced by the position layer, not here.
func GenerateMoves(rec PieceRecord, masks CollisionMasks) (MoveSet, error) {
	if !rec.Square.IsValid() {
		return MoveSet{}, fmt.Errorf("%w: generate for %s", ErrInvalidSquare, rec.Type)
	}
	if !rec.Type.IsValid() {
		return MoveSet{}, fmt.Errorf("%w: generate on %s", ErrUnknownPiece, rec.Square)
	}

	friendly := masks.ByTeam(rec.Team)
	enemy := masks.ByTeam(rec.Team.Other())

	attacks := attackBoard(rec, masks.All())
	captures := attacks & enemy
	quiets := attacks &^ (friendly | enemy)

	if rec.Type == Pawn {
		// A pawn's empty attack squares are not moves; its quiet moves
		// come from the push pattern instead.
		quiets = pawnPushBoard(rec, masks.All())
	}

	return MoveSet{
		Captures: captures.Squares(),
		Quiets:   quiets.Squares(),
	}, nil
}

// AttackedBy reports whether any piece of the given team attacks the
// square under the register's current occupancy. The target square does
// not need to be occupied.
func AttackedBy(r *Register, sq Square, by Team) (bool, error) {
	if !sq.IsValid() {
		return false, fmt.Errorf("%w: attack probe", ErrInvalidSquare)
	}
	masks := NewCollisionMasks(r)
	target := SquareBB(sq)
	for _, rec := range r.Pieces(by) {
		if attackBoard(rec, masks.All())&target != 0 {
			return true, nil
		}
	}
	return false, nil
}
