package storage

import (
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)

	want := &Report{
		FEN:       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		BestMove:  "e2e4",
		Score:     0.3,
		Depth:     5,
		InCheck:   false,
		Elapsed:   42 * time.Millisecond,
	}
	if err := s.SaveReport(want); err != nil {
		t.Fatal(err)
	}

	got, found, err := s.LoadReport(want.FEN)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("saved report not found")
	}
	if *got != *want {
		t.Errorf("loaded report differs:\n got  %+v\n want %+v", got, want)
	}
}

func TestLoadMissingReport(t *testing.T) {
	s := openStore(t)

	report, found, err := s.LoadReport("8/8/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if found || report != nil {
		t.Errorf("missing key returned %+v, found=%v", report, found)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openStore(t)

	fen := "k7/8/8/8/8/8/8/K7 w - - 0 1"
	if err := s.SaveReport(&Report{FEN: fen, Depth: 2, BestMove: "a1a2"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveReport(&Report{FEN: fen, Depth: 6, BestMove: "a1b1"}); err != nil {
		t.Fatal(err)
	}

	got, found, err := s.LoadReport(fen)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("report not found")
	}
	if got.Depth != 6 || got.BestMove != "a1b1" {
		t.Errorf("stale report returned: %+v", got)
	}
}
