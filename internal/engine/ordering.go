package engine

import (
	"sort"

	"github.com/corvane/fairyengine/internal/board"
)

// orderMoves sorts moves for the main search: the TT-hint move first, then
// captures, then promotions, then the rest, stable within each bucket. It
// returns a freshly ordered slice; moves is left untouched.
func orderMoves(moves []board.Move, ttMove board.Move) []board.Move {
	ordered := make([]board.Move, len(moves))
	copy(ordered, moves)

	bucket := func(m board.Move) int {
		switch {
		case !ttMove.IsNull() && m.From() == ttMove.From() && m.To() == ttMove.To():
			return 0
		case m.IsCapture():
			return 1
		case m.IsPromotion():
			return 2
		default:
			return 3
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return bucket(ordered[i]) < bucket(ordered[j])
	})
	return ordered
}

// orderCaptures sorts quiescence's capture list: capture-promotions first,
// stable otherwise.
func orderCaptures(moves []board.Move) []board.Move {
	ordered := make([]board.Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].IsPromotion() && !ordered[j].IsPromotion()
	})
	return ordered
}
