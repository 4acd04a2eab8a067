package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvane/fairyengine/internal/board"
)

func TestTableProbeMiss(t *testing.T) {
	tt := NewTable(1024)
	hit, _, ttMove := tt.Probe(42, 1, -Infinity, Infinity)
	assert.False(t, hit)
	assert.True(t, ttMove.IsNull())
}

func TestTableStoreAndProbeExact(t *testing.T) {
	tt := NewTable(1024)
	m := board.NewMove(board.E1, board.E8)

	// Score strictly inside the original window stores as Exact.
	tt.Store(42, 100, 5, -200, 200, m)

	hit, score, ttMove := tt.Probe(42, 5, -Infinity, Infinity)
	require.True(t, hit)
	assert.Equal(t, 100, score)
	assert.Equal(t, m, ttMove)
}

func TestTableProbeDepthTooShallowStillReturnsHint(t *testing.T) {
	tt := NewTable(1024)
	m := board.NewMove(board.E1, board.G1)
	tt.Store(42, 100, 3, -200, 200, m)

	hit, _, ttMove := tt.Probe(42, 5, -Infinity, Infinity)
	assert.False(t, hit, "shallower entry must not produce a score hit")
	assert.Equal(t, m, ttMove, "the stored move is still a valid ordering hint")
}

func TestTableBoundSemantics(t *testing.T) {
	tt := NewTable(1024)
	m := board.NewMove(board.E1, board.E8)

	// score <= alphaOrig stores an upper bound: usable only when it still
	// fails low against the probing window.
	tt.Store(1, -300, 4, -200, 200, m)
	hit, score, _ := tt.Probe(1, 4, -250, 250)
	require.True(t, hit)
	assert.Equal(t, -250, score, "fail-low probe returns the probing alpha")

	hit, _, _ = tt.Probe(1, 4, -400, 400)
	assert.False(t, hit, "upper bound above probing alpha is not usable")

	// score >= beta stores a lower bound.
	tt.Store(2, 300, 4, -200, 200, m)
	hit, score, _ = tt.Probe(2, 4, -250, 250)
	require.True(t, hit)
	assert.Equal(t, 250, score, "fail-high probe returns the probing beta")

	hit, _, _ = tt.Probe(2, 4, -400, 400)
	assert.False(t, hit, "lower bound below probing beta is not usable")
}

func TestTableAlwaysReplace(t *testing.T) {
	tt := NewTable(16)
	m1 := board.NewMove(board.E1, board.E8)
	m2 := board.NewMove(board.A1, board.A8)

	// Same slot (keys congruent mod 16): the newer entry wins even though
	// it is shallower.
	tt.Store(5, 100, 8, -Infinity, Infinity, m1)
	tt.Store(21, 50, 1, -Infinity, Infinity, m2)

	hit, _, _ := tt.Probe(5, 1, -Infinity, Infinity)
	assert.False(t, hit, "evicted key must miss")

	hit, score, ttMove := tt.Probe(21, 1, -Infinity, Infinity)
	require.True(t, hit)
	assert.Equal(t, 50, score)
	assert.Equal(t, m2, ttMove)
}

func TestTableLookup(t *testing.T) {
	tt := NewTable(1024)
	m := board.NewMove(board.E1, board.G1)
	tt.Store(7, 25, 6, -Infinity, Infinity, m)

	entry, ok := tt.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, m, entry.BestMove)
	assert.Equal(t, 6, entry.Depth)

	_, ok = tt.Lookup(8)
	assert.False(t, ok)
}

func TestTableConcurrentAccess(t *testing.T) {
	tt := NewTable(128)
	m := board.NewMove(board.E1, board.E8)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for i := uint64(0); i < 2000; i++ {
				key := seed*2000 + i
				tt.Store(key, int(i), 3, -Infinity, Infinity, m)
				tt.Probe(key, 3, -Infinity, Infinity)
			}
		}(uint64(w))
	}
	wg.Wait()
}
