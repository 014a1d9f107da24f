// Package eval converts piece material into scores a search can compare.
package eval

import "github.com/jwkunz/plum-chess-sub001/internal/board"

// Score is a position value. Positive favors Light; Compare handles the
// turn-relative sign flip.
type Score float64

// Search guard bounds, impossible for any reachable position to beat.
const (
	MinScore Score = -1e9
	MaxScore Score = 1e9
)

// Mate-adjacent sentinels. Kept well outside the material range so a deep
// material advantage can never be confused with a forced mate.
const mateScore Score = 1000

// Conventional material values. The king's 64 is a deliberate heuristic
// weight, not a capturable value; do not "correct" it away.
var materialValues = [6]Score{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   64,
}

// Material returns the conventional value of a piece type.
func Material(pt board.PieceType) Score {
	return materialValues[pt]
}

// Evaluate sums material over both teams, Light-relative.
func Evaluate(r *board.Register) Score {
	var total Score
	for _, rec := range r.Pieces(board.Light) {
		total += Material(rec.Type)
	}
	for _, rec := range r.Pieces(board.Dark) {
		total -= Material(rec.Type)
	}
	return total
}

// WinningScore is the mate-adjacent score for the given side to move.
func WinningScore(turn board.Team) Score {
	return relative(mateScore, turn)
}

// LosingScore is the mirror of WinningScore.
func LosingScore(turn board.Team) Score {
	return relative(-mateScore, turn)
}

// relative applies the turn-sign convention: Dark scores are negated so
// every comparison happens in a common Light-relative polarity.
func relative(s Score, turn board.Team) Score {
	if turn == board.Dark {
		return -s
	}
	return s
}

// Ordering is the outcome of comparing two scores.
type Ordering int8

const (
	Worse  Ordering = -1
	Even   Ordering = 0
	Better Ordering = 1
)

// String returns the ordering name.
func (o Ordering) String() string {
	switch o {
	case Worse:
		return "worse"
	case Better:
		return "better"
	default:
		return "even"
	}
}

// Compare ranks score a against score b, each taken from the perspective
// of its own side to move.
func Compare(a Score, aTurn board.Team, b Score, bTurn board.Team) Ordering {
	left := relative(a, aTurn)
	right := relative(b, bTurn)
	switch {
	case left > right:
		return Better
	case left < right:
		return Worse
	default:
		return Even
	}
}
