package engine

import (
	"go.uber.org/zap"

	"github.com/corvane/fairyengine/internal/board"
	"github.com/corvane/fairyengine/internal/eval"
)

const (
	Infinity  = 50_000
	MateValue = 49_000

	// mateThreshold separates mate scores from ordinary evaluations. TT
	// entries beyond it encode path-dependent distances to mate that are
	// not valid when reached along a different path, so Probe hits with
	// such scores are discarded.
	mateThreshold = MateValue - 100

	// deltaPruneMargin is quiescence's delta-pruning margin, roughly a
	// queen's worth: if standing pat trails alpha by more than this, no
	// single capture can recover.
	deltaPruneMargin = 975
)

// Searcher runs negamax + quiescence against a shared transposition table.
// Each Searcher is owned by exactly one goroutine (a single Lazy-SMP
// worker); the Position it searches is a private, by-value copy.
type Searcher struct {
	tt        *Table
	evaluator eval.Evaluator
	log       *zap.Logger
	nodes     uint64
}

// NewSearcher returns a Searcher over the given shared table and
// evaluator. A nil logger is replaced with a no-op logger.
func NewSearcher(tt *Table, evaluator eval.Evaluator, log *zap.Logger) *Searcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Searcher{tt: tt, evaluator: evaluator, log: log}
}

// Nodes returns the number of nodes visited since the Searcher was created.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Negamax searches pos to the given depth inside the (alpha, beta) window.
// pos is taken by value: every recursive call operates on its own copy.
// colorMult is +1 when White is to move at this node, -1 for Black, and
// the returned score is from the mover's perspective.
func (s *Searcher) Negamax(pos board.Position, depth, alpha, beta, colorMult int) int {
	s.nodes++
	alphaOrig := alpha

	side := board.White
	if colorMult < 0 {
		side = board.Black
	}

	key := board.SearchHash(pos.Hash, side)

	if hit, score, _ := s.tt.Probe(key, depth, alpha, beta); hit {
		if abs(score) <= mateThreshold {
			return score
		}
	}

	if depth == 0 {
		return s.quiescence(pos, alpha, beta, colorMult)
	}

	moves := pos.GenerateLegalMoves(side)

	if len(moves) == 0 {
		if pos.IsInCheck(side) {
			// Deeper mates score closer to zero, so the search prefers
			// the quickest mate it can find.
			return -(MateValue + depth)
		}
		return 0
	}

	_, _, ttMove := s.tt.Probe(key, depth, alpha, beta)
	ordered := orderMoves(moves, ttMove)

	bestScore := -Infinity
	bestMove := board.NullMove

	for _, m := range ordered {
		child := pos.Copy()
		if !child.ApplyMove(m) {
			continue
		}
		score := -s.Negamax(child, depth-1, -beta, -alpha, -colorMult)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	s.tt.Store(key, bestScore, depth, alphaOrig, beta, bestMove)

	return bestScore
}

// quiescence extends the search at leaves with captures only, using the
// static evaluation as a stand-pat lower bound. It never touches the TT,
// and it skips captures that leave the mover's own king attacked since
// GenerateCaptures emits unfiltered pseudo-legal captures.
func (s *Searcher) quiescence(pos board.Position, alpha, beta, colorMult int) int {
	s.nodes++

	side := board.White
	if colorMult < 0 {
		side = board.Black
	}

	standPat := colorMult * s.evaluator.Evaluate(&pos)
	if standPat >= beta {
		return beta
	}
	if standPat < alpha-deltaPruneMargin {
		return alpha
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := orderCaptures(pos.GenerateCaptures(side))

	for _, m := range captures {
		child := pos.Copy()
		if !child.ApplyMove(m) {
			continue
		}
		if child.IsInCheck(side) {
			continue
		}
		score := -s.quiescence(child, -beta, -alpha, -colorMult)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
