// Package engine implements the alpha-beta negamax search with quiescence,
// the shared transposition table, and the Lazy-SMP root search.
package engine

import (
	"sync"

	"github.com/corvane/fairyengine/internal/board"
)

// Bound classifies a stored score: Exact, or a fail-low/fail-high bound.
type Bound uint8

const (
	Exact Bound = iota
	Alpha
	Beta
)

// Entry is one transposition-table record. validMove tracks whether
// BestMove holds a real move rather than overloading the move encoding
// with an invalid-square sentinel.
type Entry struct {
	Key       uint64
	Score     int
	Depth     int
	BestMove  board.Move
	Flag      Bound
	validMove bool
}

// Table is a fixed-size transposition table indexed by key mod size,
// shared across search workers and guarded by a single mutex. Whole-entry
// replacement under the lock means no reader ever observes a torn entry.
type Table struct {
	mu      sync.Mutex
	entries []Entry
	size    uint64
}

// DefaultTableSize is the slot count used when a caller passes a
// non-positive size.
const DefaultTableSize = 2_000_000

// NewTable allocates a transposition table with the given number of slots.
func NewTable(size int) *Table {
	if size <= 0 {
		size = DefaultTableSize
	}
	return &Table{entries: make([]Entry, size), size: uint64(size)}
}

// Probe looks up key. On a key match with sufficient depth it returns a
// usable score per the entry's bound; on a key match without a usable
// score it still surfaces the stored move as an ordering hint. hit reports
// whether score is directly usable; ttMove is board.NullMove if no hint is
// available.
func (t *Table) Probe(key uint64, depth, alpha, beta int) (hit bool, score int, ttMove board.Move) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entries[key%t.size]
	if e.Key != key {
		return false, 0, board.NullMove
	}
	if e.validMove {
		ttMove = e.BestMove
	}
	if e.Depth >= depth {
		switch e.Flag {
		case Exact:
			return true, e.Score, ttMove
		case Alpha:
			if e.Score <= alpha {
				return true, alpha, ttMove
			}
		case Beta:
			if e.Score >= beta {
				return true, beta, ttMove
			}
		}
	}
	return false, 0, ttMove
}

// Store computes the bound from where score landed relative to the
// original window and unconditionally overwrites the slot (always-replace
// policy).
func (t *Table) Store(key uint64, score, depth, alphaOrig, beta int, best board.Move) {
	flag := Exact
	switch {
	case score <= alphaOrig:
		flag = Alpha
	case score >= beta:
		flag = Beta
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key%t.size] = Entry{
		Key:       key,
		Score:     score,
		Depth:     depth,
		BestMove:  best,
		Flag:      flag,
		validMove: !best.IsNull(),
	}
}

// Lookup returns the raw entry at key's slot and whether its key matches.
// Root search uses it to read back the final best move after the workers
// join.
func (t *Table) Lookup(key uint64) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entries[key%t.size]
	return e, e.Key == key
}

// Size returns the number of slots in the table.
func (t *Table) Size() int { return int(t.size) }
