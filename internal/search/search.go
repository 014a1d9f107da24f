// Package search is a deterministic, single-threaded negamax driver over
// the material evaluation. It exists to exercise the core the way a real
// engine would; it has no time management and no parallelism.
package search

import (
	"errors"
	"sort"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
	"github.com/jwkunz/plum-chess-sub001/internal/eval"
	"github.com/jwkunz/plum-chess-sub001/internal/game"
)

// ErrNoMoves is returned when the root position has no legal moves.
var ErrNoMoves = errors.New("no legal moves in root position")

// Result is the outcome of a root search.
type Result struct {
	Best  game.Move
	Score eval.Score // side-to-move relative
	Nodes int64
}

// BestMove searches the position to the given depth and returns the best
// move with its side-relative score.
func BestMove(p *game.Position, depth int) (Result, error) {
	if depth < 1 {
		depth = 1
	}
	moves, err := p.LegalMoves()
	if err != nil {
		return Result{}, err
	}
	if len(moves) == 0 {
		return Result{}, ErrNoMoves
	}
	orderMoves(p, moves)

	res := Result{Best: moves[0], Score: eval.MinScore}
	alpha, beta := eval.MinScore, eval.MaxScore
	for _, m := range moves {
		child, err := p.Apply(m)
		if err != nil {
			return Result{}, err
		}
		score, err := negamax(child, depth-1, -beta, -alpha, 1, &res.Nodes)
		if err != nil {
			return Result{}, err
		}
		score = -score
		if score > res.Score {
			res.Score = score
			res.Best = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return res, nil
}

// negamax returns the side-to-move relative score at the given depth.
// Mate scores shrink with ply so nearer mates rank higher.
func negamax(p *game.Position, depth int, alpha, beta eval.Score, ply int, nodes *int64) (eval.Score, error) {
	*nodes++

	if depth == 0 {
		return relativeEval(p), nil
	}

	moves, err := p.LegalMoves()
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		inCheck, err := p.InCheck()
		if err != nil {
			return 0, err
		}
		if inCheck {
			// Mated: losing sentinel, adjusted toward zero per ply.
			return eval.LosingScore(board.Light) + eval.Score(ply), nil
		}
		return 0, nil // stalemate
	}
	orderMoves(p, moves)

	best := eval.MinScore
	for _, m := range moves {
		child, err := p.Apply(m)
		if err != nil {
			return 0, err
		}
		score, err := negamax(child, depth-1, -beta, -alpha, ply+1, nodes)
		if err != nil {
			return 0, err
		}
		score = -score
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best, nil
}

// relativeEval converts the Light-relative material sum to the side to
// move's perspective.
func relativeEval(p *game.Position) eval.Score {
	score := eval.Evaluate(p.Register)
	if p.Turn == board.Dark {
		return -score
	}
	return score
}

// orderMoves sorts captures of valuable victims first so alpha-beta
// cuts earlier. Quiet moves keep generation order.
func orderMoves(p *game.Position, moves []game.Move) {
	weight := func(m game.Move) eval.Score {
		victim, ok := p.Register.PieceAt(m.To())
		if !ok {
			if m.IsEnPassant() {
				return eval.Material(board.Pawn)
			}
			return 0
		}
		attacker, _ := p.Register.PieceAt(m.From())
		return 10*eval.Material(victim.Type) - eval.Material(attacker.Type)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return weight(moves[i]) > weight(moves[j])
	})
}
