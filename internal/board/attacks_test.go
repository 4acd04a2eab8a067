package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(t *testing.T, s string) Square {
	t.Helper()
	out, err := ParseSquare(s)
	require.NoError(t, err)
	return out
}

func TestIsSquareAttackedClassic(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3r4/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	tests := []struct {
		square   string
		attacker Color
		want     bool
	}{
		{"d1", Black, true},  // rook down the d-file
		{"d8", Black, true},  // rook up the d-file
		{"a5", Black, true},  // rook along the rank
		{"e4", Black, false}, // not on a rook line
		{"d3", White, true},  // pawn on e2 covers d3
		{"f3", White, true},  // and f3
		{"e3", White, false}, // pawns do not attack straight ahead
		{"d2", White, true},  // king coverage
	}
	for _, tc := range tests {
		got := pos.IsSquareAttacked(sq(t, tc.square), tc.attacker)
		assert.Equal(t, tc.want, got, "IsSquareAttacked(%s, %s)", tc.square, tc.attacker)
	}
}

func TestSliderAttackBlocked(t *testing.T) {
	// A pawn on d3 shields d1 from the d5 rook.
	pos, err := ParseFEN("4k3/8/8/3r4/8/3P4/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, pos.IsSquareAttacked(sq(t, "d3"), Black))
	assert.False(t, pos.IsSquareAttacked(sq(t, "d2"), Black))
	assert.False(t, pos.IsSquareAttacked(sq(t, "d1"), Black))
}

func TestPrincessAndEmpressAttackLikeKnights(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/3s4/8/4K3 w - - 0 1")
	require.NoError(t, err)

	// d3 princess: knight jump covers e1, bishop ray covers f1.
	assert.True(t, pos.IsSquareAttacked(E1, Black))
	assert.True(t, pos.IsSquareAttacked(F1, Black))
	assert.False(t, pos.IsSquareAttacked(D1, Black), "princess has no rook line")

	pos, err = ParseFEN("4k3/8/8/8/8/3e4/8/4K3 w - - 0 1")
	require.NoError(t, err)

	// d3 empress: knight jump covers e1, rook ray covers d1.
	assert.True(t, pos.IsSquareAttacked(E1, Black))
	assert.True(t, pos.IsSquareAttacked(D1, Black))
	assert.False(t, pos.IsSquareAttacked(F1, Black), "empress has no bishop line")
}

func TestNightriderAttackStopsAtBlocker(t *testing.T) {
	// Black nightrider b8 rides b8-c6-d4-e2; a pawn on d4 cuts the ride.
	open, err := ParseFEN("1h2k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, open.IsSquareAttacked(sq(t, "c6"), Black))
	assert.True(t, open.IsSquareAttacked(sq(t, "d4"), Black))
	assert.True(t, open.IsSquareAttacked(sq(t, "e2"), Black))

	blocked, err := ParseFEN("1h2k3/8/8/8/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, blocked.IsSquareAttacked(sq(t, "d4"), Black), "the blocker square itself is attacked")
	assert.False(t, blocked.IsSquareAttacked(sq(t, "e2"), Black), "the ride must stop at the blocker")
}

func TestGrasshopperAttackLandsBeyondHurdle(t *testing.T) {
	// Black grasshopper d5 behind the d4 pawn: it hops over the hurdle
	// onto d3. The probe looks from the target square for the first
	// occupied square and a grasshopper directly beyond it, so d2, whose
	// first occupied square up the file is also d4, counts as attacked too.
	pos, err := ParseFEN("4k3/8/8/3g4/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, pos.IsSquareAttacked(sq(t, "d3"), Black))
	assert.True(t, pos.IsSquareAttacked(sq(t, "d2"), Black), "the probe finds the grasshopper directly beyond the d4 hurdle")
	assert.False(t, pos.IsSquareAttacked(sq(t, "d4"), Black), "the hurdle itself is not attacked")
	assert.False(t, pos.IsSquareAttacked(sq(t, "d6"), Black), "no hurdle northward, no attack")
}

func TestIsInCheckMatchesKingSquareAttack(t *testing.T) {
	fens := []string{
		StartFEN,
		"4r2k/8/8/8/8/8/8/4K3 w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err)
		for _, c := range []Color{White, Black} {
			want := pos.IsSquareAttacked(pos.KingSquare(c), c.Opposite())
			assert.Equal(t, want, pos.IsInCheck(c), "fen %q color %s", fen, c)
		}
	}
}
