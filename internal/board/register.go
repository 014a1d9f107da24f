package board

import "fmt"

// Register is the authoritative per-team collection of piece records.
// Slice order is insertion order and carries no meaning beyond iteration.
// At most one record may occupy a square.
type Register struct {
	pieces [2][]PieceRecord
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{}
}

// Clone returns an independent deep copy. Workers that mutate positions
// concurrently must each operate on their own clone.
func (r *Register) Clone() *Register {
	c := &Register{}
	for t := range r.pieces {
		c.pieces[t] = append([]PieceRecord(nil), r.pieces[t]...)
	}
	return c
}

// Pieces returns the records of one team. The slice is owned by the
// register; callers must not modify it.
func (r *Register) Pieces(t Team) []PieceRecord {
	return r.pieces[t]
}

// PieceAt returns the record on a square, if any.
func (r *Register) PieceAt(sq Square) (PieceRecord, bool) {
	for t := range r.pieces {
		for _, rec := range r.pieces[t] {
			if rec.Square == sq {
				return rec, true
			}
		}
	}
	return PieceRecord{}, false
}

// Add places a new record. It rejects invalid squares, unknown piece types
// and squares that already hold a piece, leaving the register untouched.
func (r *Register) Add(rec PieceRecord) error {
	if !rec.Square.IsValid() {
		return fmt.Errorf("%w: add %s", ErrInvalidSquare, rec.Type)
	}
	if !rec.Type.IsValid() {
		return fmt.Errorf("%w: add on %s", ErrUnknownPiece, rec.Square)
	}
	if _, ok := r.PieceAt(rec.Square); ok {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, rec.Square)
	}
	r.pieces[rec.Team] = append(r.pieces[rec.Team], rec)
	return nil
}

// Remove takes the record off a square and returns it. Removing from an
// empty square is an error, and kings may never be removed: a king is
// checkmated, not captured.
func (r *Register) Remove(sq Square) (PieceRecord, error) {
	if !sq.IsValid() {
		return PieceRecord{}, fmt.Errorf("%w: remove", ErrInvalidSquare)
	}
	for t := range r.pieces {
		for i, rec := range r.pieces[t] {
			if rec.Square != sq {
				continue
			}
			if rec.Type == King {
				return PieceRecord{}, fmt.Errorf("%w: %s", ErrKingRemoval, sq)
			}
			r.pieces[t] = append(r.pieces[t][:i], r.pieces[t][i+1:]...)
			return rec, nil
		}
	}
	return PieceRecord{}, fmt.Errorf("%w: %s", ErrSquareEmpty, sq)
}

// Relocate moves the record on from to the empty square to. Captures are
// expressed as Remove of the target followed by Relocate, so a taken
// destination is rejected here.
func (r *Register) Relocate(from, to Square) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: relocate", ErrInvalidSquare)
	}
	if _, ok := r.PieceAt(to); ok {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, to)
	}
	for t := range r.pieces {
		for i, rec := range r.pieces[t] {
			if rec.Square == from {
				r.pieces[t][i].Square = to
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrSquareEmpty, from)
}

// Occupancy returns the OR of all of a team's occupied squares.
func (r *Register) Occupancy(t Team) Bitboard {
	var bb Bitboard
	for _, rec := range r.pieces[t] {
		bb = bb.Set(rec.Square)
	}
	return bb
}

// KingMask returns the single-bit mask of a team's king. A missing or
// duplicated king is structural corruption and is surfaced, never
// defaulted, since check detection would otherwise silently lie.
func (r *Register) KingMask(t Team) (Bitboard, error) {
	var bb Bitboard
	for _, rec := range r.pieces[t] {
		if rec.Type != King {
			continue
		}
		if bb != 0 {
			return 0, fmt.Errorf("%w: team %s", ErrKingDuplicate, t)
		}
		bb = SquareBB(rec.Square)
	}
	if bb == 0 {
		return 0, fmt.Errorf("%w: team %s", ErrKingMissing, t)
	}
	return bb, nil
}

// KingRecord returns a team's king record, with the same corruption
// handling as KingMask.
func (r *Register) KingRecord(t Team) (PieceRecord, error) {
	var found *PieceRecord
	for i, rec := range r.pieces[t] {
		if rec.Type != King {
			continue
		}
		if found != nil {
			return PieceRecord{}, fmt.Errorf("%w: team %s", ErrKingDuplicate, t)
		}
		found = &r.pieces[t][i]
	}
	if found == nil {
		return PieceRecord{}, fmt.Errorf("%w: team %s", ErrKingMissing, t)
	}
	return *found, nil
}
