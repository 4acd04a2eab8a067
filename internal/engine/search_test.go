package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvane/fairyengine/internal/board"
	"github.com/corvane/fairyengine/internal/eval"
)

func applyLine(t *testing.T, pos *board.Position, line ...string) {
	t.Helper()
	for _, uci := range line {
		m, err := board.ParseMove(uci, pos)
		require.NoError(t, err)
		require.True(t, pos.ApplyMove(m), "apply %s", uci)
	}
}

func TestNegamaxFindsMateInOne(t *testing.T) {
	// Fool's mate one ply out: Black mates with Qd8-h4.
	pos := board.NewPosition(board.Classic)
	applyLine(t, pos, "f2f3", "e7e5", "g2g4")

	s := NewSearcher(NewTable(1<<16), eval.MaterialPST{}, nil)
	score := s.Negamax(*pos, 2, -Infinity, Infinity, -1)
	assert.Greater(t, score, mateThreshold, "Black to move must see the mate, got %d", score)
}

func TestNegamaxRecognizesCheckmate(t *testing.T) {
	// Back-rank mate, Black to move with no escape.
	pos, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	require.NoError(t, err)

	s := NewSearcher(NewTable(1<<16), eval.MaterialPST{}, nil)
	score := s.Negamax(*pos, 3, -Infinity, Infinity, -1)
	assert.Equal(t, -(MateValue + 3), score)
}

func TestNegamaxRecognizesStalemate(t *testing.T) {
	pos, err := board.ParseFEN("8/8/8/8/8/1q6/2k5/K7 w - - 0 1")
	require.NoError(t, err)

	s := NewSearcher(NewTable(1<<16), eval.MaterialPST{}, nil)
	score := s.Negamax(*pos, 3, -Infinity, Infinity, 1)
	assert.Zero(t, score)
}

func TestNegamaxPrefersFasterMate(t *testing.T) {
	// A mate score carries the depth left at the mated node, which is what
	// ranks a shorter mate above a longer one within a single search: the
	// same mate in one, found with more depth left (depth 4 vs 2), scores
	// higher.
	pos := board.NewPosition(board.Classic)
	applyLine(t, pos, "f2f3", "e7e5", "g2g4")

	near := NewSearcher(NewTable(1<<16), eval.MaterialPST{}, nil)
	nearScore := near.Negamax(*pos, 2, -Infinity, Infinity, -1)

	far := NewSearcher(NewTable(1<<16), eval.MaterialPST{}, nil)
	farScore := far.Negamax(*pos, 4, -Infinity, Infinity, -1)

	assert.Greater(t, farScore, mateThreshold)
	assert.Greater(t, farScore, nearScore, "deeper search of the same mate keeps the larger depth bonus")
}

func TestQuiescenceResolvesHangingCapture(t *testing.T) {
	// White queen en prise to the d8 rook: the static eval has White ahead
	// (queen against rook), quiescence must see the capture.
	pos, err := board.ParseFEN("3r3k/8/8/3Q4/8/8/8/K7 b - - 0 1")
	require.NoError(t, err)

	s := NewSearcher(NewTable(1<<16), eval.MaterialPST{}, nil)
	score := s.quiescence(*pos, -Infinity, Infinity, -1)
	assert.Greater(t, score, 0, "Black wins the queen in the capture sequence")
}

func TestSearchGrowsNodeCount(t *testing.T) {
	pos := board.NewPosition(board.Classic)
	s := NewSearcher(NewTable(1<<16), eval.MaterialPST{}, nil)

	s.Negamax(*pos, 2, -Infinity, Infinity, 1)
	shallow := s.Nodes()
	require.NotZero(t, shallow)

	s.Negamax(*pos, 3, -Infinity, Infinity, 1)
	assert.Greater(t, s.Nodes(), shallow)
}
