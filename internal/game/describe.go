package game

import (
	"github.com/jwkunz/plum-chess-sub001/internal/board"
)

// CheckedMove pairs a move with the check classification of the position
// it produces. Check is nil when the opposing king is left safe.
type CheckedMove struct {
	Move  Move
	Check *board.Check
}

// String renders the move with a check suffix when present.
func (cm CheckedMove) String() string {
	if cm.Check == nil {
		return cm.Move.String()
	}
	switch cm.Check.Kind {
	case board.Checkmate:
		return cm.Move.String() + "#"
	default:
		return cm.Move.String() + "+"
	}
}

// Describe applies the move and classifies its effect on the opposing
// king. The board layer tells single, discovered and double checks apart;
// the upgrade to checkmate needs legal-move knowledge and happens here.
func (p *Position) Describe(m Move) (CheckedMove, error) {
	child, err := p.Apply(m)
	if err != nil {
		return CheckedMove{}, err
	}

	chk, err := board.ClassifyCheck(child.Turn, child.Register, m.To())
	if err != nil {
		return CheckedMove{}, err
	}
	if chk != nil {
		replies, err := child.LegalMoves()
		if err != nil {
			return CheckedMove{}, err
		}
		if len(replies) == 0 {
			chk.Kind = board.Checkmate
		}
	}
	return CheckedMove{Move: m, Check: chk}, nil
}
