package board

import (
	"errors"
	"testing"
)

func TestRegisterAddRejectsOccupied(t *testing.T) {
	r := NewRegister()
	if err := r.Add(PieceRecord{Type: Rook, Team: Light, Square: A1}); err != nil {
		t.Fatal(err)
	}

	err := r.Add(PieceRecord{Type: Knight, Team: Dark, Square: A1})
	if !errors.Is(err, ErrSquareOccupied) {
		t.Fatalf("add to occupied square: got %v, want ErrSquareOccupied", err)
	}

	// The failed add must not have disturbed existing state.
	rec, ok := r.PieceAt(A1)
	if !ok || rec.Type != Rook || rec.Team != Light {
		t.Errorf("register mutated by rejected add: %v", rec)
	}
	if len(r.Pieces(Dark)) != 0 {
		t.Error("rejected record appeared in dark pieces")
	}
}

func TestRegisterAddRejectsInvalidSquare(t *testing.T) {
	r := NewRegister()
	err := r.Add(PieceRecord{Type: Pawn, Team: Light, Square: NoSquare})
	if !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("got %v, want ErrInvalidSquare", err)
	}
}

func TestRegisterRemove(t *testing.T) {
	r := NewRegister()
	if err := r.Add(PieceRecord{Type: Queen, Team: Dark, Square: D8}); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Remove(E4); !errors.Is(err, ErrSquareEmpty) {
		t.Errorf("remove from empty square: got %v, want ErrSquareEmpty", err)
	}

	rec, err := r.Remove(D8)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Type != Queen {
		t.Errorf("removed %v, want the queen", rec)
	}
	if _, ok := r.PieceAt(D8); ok {
		t.Error("queen still present after removal")
	}
}

func TestRegisterRemoveRejectsKing(t *testing.T) {
	r := NewRegister()
	if err := r.Add(PieceRecord{Type: King, Team: Light, Square: E1}); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Remove(E1); !errors.Is(err, ErrKingRemoval) {
		t.Fatalf("king removal: got %v, want ErrKingRemoval", err)
	}
	if _, ok := r.PieceAt(E1); !ok {
		t.Error("king vanished from rejected removal")
	}
}

func TestKingMask(t *testing.T) {
	r := NewRegister()
	if _, err := r.KingMask(Light); !errors.Is(err, ErrKingMissing) {
		t.Errorf("empty register: got %v, want ErrKingMissing", err)
	}

	if err := r.Add(PieceRecord{Type: King, Team: Light, Square: G1}); err != nil {
		t.Fatal(err)
	}
	mask, err := r.KingMask(Light)
	if err != nil {
		t.Fatal(err)
	}
	if mask != SquareBB(G1) {
		t.Errorf("KingMask = %v, want g1 only", mask)
	}

	if err := r.Add(PieceRecord{Type: King, Team: Light, Square: G2}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.KingMask(Light); !errors.Is(err, ErrKingDuplicate) {
		t.Errorf("two kings: got %v, want ErrKingDuplicate", err)
	}
}

func TestOccupancyAndCollisionMasks(t *testing.T) {
	r := NewRegister()
	for _, rec := range []PieceRecord{
		{Type: King, Team: Light, Square: E1},
		{Type: Pawn, Team: Light, Square: E2},
		{Type: King, Team: Dark, Square: E8},
		{Type: Rook, Team: Dark, Square: A8},
	} {
		if err := r.Add(rec); err != nil {
			t.Fatal(err)
		}
	}

	wantLight := SquareBB(E1) | SquareBB(E2)
	wantDark := SquareBB(E8) | SquareBB(A8)
	if got := r.Occupancy(Light); got != wantLight {
		t.Errorf("light occupancy =\n%v", got)
	}
	if got := r.Occupancy(Dark); got != wantDark {
		t.Errorf("dark occupancy =\n%v", got)
	}

	masks := NewCollisionMasks(r)
	if masks.Light != wantLight || masks.Dark != wantDark {
		t.Error("collision snapshot disagrees with register occupancy")
	}
	if masks.All() != wantLight|wantDark {
		t.Error("All() is not the union of both teams")
	}
	if masks.ByTeam(Dark) != wantDark {
		t.Error("ByTeam(Dark) mismatch")
	}
}

func TestRegisterRelocate(t *testing.T) {
	r := NewRegister()
	if err := r.Add(PieceRecord{Type: King, Team: Light, Square: E1}); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(PieceRecord{Type: Rook, Team: Light, Square: H1}); err != nil {
		t.Fatal(err)
	}

	if err := r.Relocate(H1, E1); !errors.Is(err, ErrSquareOccupied) {
		t.Errorf("relocate onto taken square: got %v, want ErrSquareOccupied", err)
	}
	if err := r.Relocate(B5, B6); !errors.Is(err, ErrSquareEmpty) {
		t.Errorf("relocate from empty square: got %v, want ErrSquareEmpty", err)
	}

	// Kings relocate fine; only removal is forbidden.
	if err := r.Relocate(E1, F2); err != nil {
		t.Fatal(err)
	}
	rec, ok := r.PieceAt(F2)
	if !ok || rec.Type != King {
		t.Error("king did not arrive on f2")
	}
}

func TestRegisterClone(t *testing.T) {
	r := NewRegister()
	if err := r.Add(PieceRecord{Type: King, Team: Light, Square: E1}); err != nil {
		t.Fatal(err)
	}

	c := r.Clone()
	if err := c.Relocate(E1, E2); err != nil {
		t.Fatal(err)
	}

	if rec, _ := r.PieceAt(E1); rec.Type != King {
		t.Error("mutating a clone leaked into the original register")
	}
}
