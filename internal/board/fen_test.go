package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStartPosition(t *testing.T) {
	parsed, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	fresh := NewPosition(Classic)
	assert.Empty(t, cmp.Diff(*fresh, *parsed))
	assert.Equal(t, fresh.Hash, parsed.Hash)
}

func TestParseFENFields(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)

	assert.Equal(t, Black, pos.SideToMove)
	e3, _ := ParseSquare("e3")
	assert.Equal(t, e3, pos.EnPassantTarget)
	e4, _ := ParseSquare("e4")
	assert.True(t, pos.PieceBB[White][Pawn].IsSet(e4))
}

func TestParseFENFairyPiecesSelectVariant(t *testing.T) {
	pos, err := ParseFEN("r1s1k3/8/8/8/8/8/8/R2QK2H w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, FairyChess, pos.Variant)
	assert.True(t, pos.PieceBB[Black][Princess].IsSet(C8))
	assert.True(t, pos.PieceBB[White][Nightrider].IsSet(H1))
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",            // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",   // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",  // bad ep square
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",   // bad digit
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",  // rank overflow
	}
	for _, fen := range bad {
		_, err := ParseFEN(fen)
		assert.Error(t, err, "FEN %q should not parse", fen)
	}
}
