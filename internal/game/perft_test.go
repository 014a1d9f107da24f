package game

import "testing"

// perft counts leaf nodes of the legal move tree; the standard way to
// verify generation and application together.
func perft(t *testing.T, p *Position, depth int) int64 {
	t.Helper()
	if depth == 0 {
		return 1
	}
	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatal(err)
	}
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		child, err := p.Apply(m)
		if err != nil {
			t.Fatalf("apply %v: %v", m, err)
		}
		nodes += perft(t, child, depth-1)
	}
	return nodes
}

func runPerft(t *testing.T, fen string, expected []int64) {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	for depth, want := range expected {
		if got := perft(t, p, depth+1); got != want {
			t.Errorf("perft(%d) = %d, want %d", depth+1, got, want)
		}
	}
}

func TestPerftStartingPosition(t *testing.T) {
	runPerft(t, StartingPositionFEN, []int64{20, 400, 8902})
}

// Kiwipete exercises castling, promotions, pins and en passant at once.
func TestPerftKiwipete(t *testing.T) {
	runPerft(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		[]int64{48, 2039})
}

// A sparse endgame heavy on en passant and pin edge cases.
func TestPerftEndgame(t *testing.T) {
	runPerft(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		[]int64{14, 191})
}

// The en passant capture d3 would expose the a4 king to the h4 rook along
// the rank, so it must be filtered out.
func TestEnPassantHorizontalPin(t *testing.T) {
	p, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range moves {
		if m.IsEnPassant() {
			t.Errorf("en passant %v should be illegal under the horizontal pin", m)
		}
	}
	if got := len(moves); got != 6 {
		t.Errorf("legal moves = %d, want 6", got)
	}
}

func TestCastlingGeneration(t *testing.T) {
	// Both castlings open for light.
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves, err := p.LegalMoves()
	if err != nil {
		t.Fatal(err)
	}

	var kingSide, queenSide bool
	for _, m := range moves {
		if !m.IsCastling() {
			continue
		}
		switch m.To() {
		case 6: // g1
			kingSide = true
		case 2: // c1
			queenSide = true
		}
	}
	if !kingSide || !queenSide {
		t.Errorf("castling moves missing: king side %v, queen side %v", kingSide, queenSide)
	}

	// An enemy rook watching f1 forbids king-side castling only.
	p2, err := ParseFEN("r3k2r/8/8/8/8/8/5r2/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves2, err := p2.LegalMoves()
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range moves2 {
		if m.IsCastling() {
			t.Errorf("castling %v generated through an attacked square", m)
		}
	}
}
