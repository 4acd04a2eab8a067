package engine

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/corvane/fairyengine/internal/board"
	"github.com/corvane/fairyengine/internal/eval"
)

// ErrEmptyPosition is returned by BestMove when the side to move has no
// legal moves; the accompanying move is the null move and the game is
// terminal.
var ErrEmptyPosition = errors.New("engine: no legal moves")

// Depth bounds accepted by BestMove.
const (
	MinSearchDepth = 1
	MaxSearchDepth = 10
)

// Engine owns the shared transposition table and the evaluator, and runs
// the Lazy-SMP root search: N workers each iteratively deepen over a
// private copy of the position, sharing only the table, and the best move
// is read back from the root entry once all workers have joined.
type Engine struct {
	tt        *Table
	evaluator eval.Evaluator
	log       *zap.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger installs a structured logger. The default is a no-op logger
// so library consumers get no output unless they opt in.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithEvaluator installs a custom position evaluator.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(e *Engine) {
		if ev != nil {
			e.evaluator = ev
		}
	}
}

// WithTableSize sets the number of transposition-table slots.
func WithTableSize(size int) Option {
	return func(e *Engine) { e.tt = NewTable(size) }
}

// New returns an Engine with the default material+PST evaluator, a
// default-sized table, and no logging.
func New(opts ...Option) *Engine {
	e := &Engine{
		tt:        NewTable(DefaultTableSize),
		evaluator: eval.MaterialPST{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetEvaluator swaps the evaluation strategy. Not safe to call while a
// search is running.
func (e *Engine) SetEvaluator(ev eval.Evaluator) {
	if ev != nil {
		e.evaluator = ev
	}
}

// Table exposes the shared transposition table, mainly for tests and
// diagnostics.
func (e *Engine) Table() *Table { return e.tt }

// BestMove searches pos for sideToMove and returns the best move found at
// searchDepth. workerCount <= 0 means one worker per available CPU. The
// call is synchronous: it returns only after every worker has finished its
// iterative-deepening loop. With workerCount = 1 the result is fully
// deterministic.
//
// If sideToMove has no legal moves, BestMove returns the null move and
// ErrEmptyPosition.
func (e *Engine) BestMove(pos *board.Position, sideToMove board.Color, searchDepth, workerCount int) (board.Move, error) {
	if searchDepth < MinSearchDepth {
		searchDepth = MinSearchDepth
	}
	if searchDepth > MaxSearchDepth {
		searchDepth = MaxSearchDepth
	}

	legal := pos.GenerateLegalMoves(sideToMove)
	if len(legal) == 0 {
		return board.NullMove, ErrEmptyPosition
	}

	colorMult := 1
	if sideToMove == board.Black {
		colorMult = -1
	}
	rootKey := board.SearchHash(pos.Hash, sideToMove)

	n := workerCount
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < 1 {
		n = 1
	}

	e.log.Debug("root search starting",
		zap.Stringer("side", sideToMove),
		zap.Int("depth", searchDepth),
		zap.Int("workers", n))

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		id := i
		root := pos.Copy()
		g.Go(func() error {
			s := NewSearcher(e.tt, e.evaluator, e.log)
			for d := 1; d <= searchDepth; d++ {
				score := s.Negamax(root, d, -Infinity, Infinity, colorMult)
				e.log.Debug("iteration finished",
					zap.Int("worker", id),
					zap.Int("depth", d),
					zap.Int("score", score),
					zap.Uint64("nodes", s.Nodes()))
			}
			return nil
		})
	}
	// Workers never fail; Wait is a pure join.
	_ = g.Wait()

	if entry, ok := e.tt.Lookup(rootKey); ok && entry.validMove {
		for _, m := range legal {
			if m == entry.BestMove {
				return m, nil
			}
		}
		e.log.Warn("root entry held a move outside the legal set",
			zap.Stringer("move", entry.BestMove))
	}

	// The root entry can be missing if another position overwrote its slot
	// after the last root store. Any legal move is a sound answer; the
	// first one keeps the fallback deterministic.
	e.log.Warn("no usable root entry after search, falling back to first legal move")
	return legal[0], nil
}
