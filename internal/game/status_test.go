package game

import (
	"testing"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
)

func parse(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCheckmateBackRank(t *testing.T) {
	// Rook on a8, dark king boxed in by its own pawns.
	p := parse(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	mate, err := p.Checkmate()
	if err != nil {
		t.Fatal(err)
	}
	if !mate {
		t.Error("back-rank position must be checkmate")
	}
}

func TestNotCheckmateWhenCheckerCanBeTaken(t *testing.T) {
	// Same rook delivered next to the king: Kxg8 refutes.
	p := parse(t, "6Rk/8/8/8/8/8/8/K7 b - - 0 1")

	mate, err := p.Checkmate()
	if err != nil {
		t.Fatal(err)
	}
	if mate {
		t.Error("the king can capture the undefended rook")
	}
}

func TestStalemate(t *testing.T) {
	// Classic corner stalemate: dark king on a8, light queen on c7.
	p := parse(t, "k7/2Q5/8/8/8/8/8/4K3 b - - 0 1")

	stale, err := p.Stalemate()
	if err != nil {
		t.Fatal(err)
	}
	if !stale {
		t.Error("position should be stalemate")
	}

	mate, err := p.Checkmate()
	if err != nil {
		t.Fatal(err)
	}
	if mate {
		t.Error("stalemate must not read as checkmate")
	}
}

func TestDescribeMatingMove(t *testing.T) {
	// Ra1-a8 is back-rank mate.
	p := parse(t, "7k/6pp/8/8/8/8/8/R3K3 w - - 0 1")
	m, err := ParseMove("a1a8", p)
	if err != nil {
		t.Fatal(err)
	}

	cm, err := p.Describe(m)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Check == nil || cm.Check.Kind != board.Checkmate {
		t.Fatalf("describe = %+v, want checkmate", cm)
	}
	if got := cm.String(); got != "a1a8#" {
		t.Errorf("String() = %q, want a1a8#", got)
	}
}

func TestDescribePlainCheck(t *testing.T) {
	// The rook checks but the king escapes to g7 or f7.
	p := parse(t, "7k/8/8/8/8/8/8/R3K3 w - - 0 1")
	m, err := ParseMove("a1a8", p)
	if err != nil {
		t.Fatal(err)
	}

	cm, err := p.Describe(m)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Check == nil || cm.Check.Kind != board.SingleCheck {
		t.Fatalf("describe = %+v, want single check", cm)
	}
	if got := cm.String(); got != "a1a8+" {
		t.Errorf("String() = %q, want a1a8+", got)
	}
}

func TestDescribeQuietMove(t *testing.T) {
	p := parse(t, StartingPositionFEN)
	m, err := ParseMove("e2e4", p)
	if err != nil {
		t.Fatal(err)
	}

	cm, err := p.Describe(m)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Check != nil {
		t.Errorf("e2e4 gives no check, got %+v", cm.Check)
	}
	if got := cm.String(); got != "e2e4" {
		t.Errorf("String() = %q, want e2e4", got)
	}
}

func TestDescribeDiscoveredCheck(t *testing.T) {
	// The bishop on e4 masks the e1 rook from the dark king. Stepping it
	// off the file uncovers the rook: the checker is not the moved piece.
	p := parse(t, "4k3/8/8/8/4B3/8/8/K3R3 w - - 0 1")
	m, err := ParseMove("e4c2", p)
	if err != nil {
		t.Fatal(err)
	}

	cm, err := p.Describe(m)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Check == nil || cm.Check.Kind != board.DiscoveryCheck {
		t.Fatalf("describe = %+v, want discovered check", cm)
	}
}
