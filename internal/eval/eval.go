// Package eval implements the engine's pluggable static evaluation:
// a material-plus-piece-square-table default, and a material-only
// evaluator for callers that want a coordinate-free score.
package eval

import "github.com/corvane/fairyengine/internal/board"

// Evaluator is a static scalar scoring function, from White's perspective
// (positive favors White). An interface rather than a bare func so a
// process-lifetime evaluator can carry precomputed tables without per-call
// heap allocation.
type Evaluator interface {
	Evaluate(p *board.Position) int
}

// pieceValue is the material value in centipawns of each of the ten piece
// types. The fairy values follow from what each piece composes: Princess
// (bishop+knight) and Empress (rook+knight) sit between a minor and a
// queen; the Nightrider's extended reach edges out a rook on an open
// board; the Grasshopper's hurdle-dependent mobility keeps it near a
// minor piece.
var pieceValue = [board.NPieceTypes]int{
	board.Pawn:        100,
	board.Knight:      320,
	board.Bishop:      330,
	board.Rook:        500,
	board.Queen:       900,
	board.King:        0,
	board.Princess:    650,
	board.Empress:     700,
	board.Nightrider:  550,
	board.Grasshopper: 300,
}

// PieceValue returns the material value of pt in centipawns.
func PieceValue(pt board.PieceType) int { return pieceValue[pt] }

// Material scores material only, no positional terms.
type Material struct{}

// Evaluate implements Evaluator.
func (Material) Evaluate(p *board.Position) int {
	return materialScore(p)
}

func materialScore(p *board.Position) int {
	score := 0
	for pt := board.PieceType(0); pt < board.NPieceTypes; pt++ {
		n := p.PieceBB[board.White][pt].PopCount() - p.PieceBB[board.Black][pt].PopCount()
		score += n * pieceValue[pt]
	}
	return score
}

// MaterialPST is the default evaluator: material plus piece-square tables,
// read mirrored (via Square.Mirror) for Black so a single White-oriented
// table serves both colors.
type MaterialPST struct{}

// Evaluate implements Evaluator.
func (MaterialPST) Evaluate(p *board.Position) int {
	score := materialScore(p)
	for pt := board.PieceType(0); pt < board.NPieceTypes; pt++ {
		table := pstFor(pt)
		bb := p.PieceBB[board.White][pt]
		for bb != 0 {
			sq := bb.PopLSB()
			score += table[sq]
		}
		bb = p.PieceBB[board.Black][pt]
		for bb != 0 {
			sq := bb.PopLSB()
			score -= table[sq.Mirror()]
		}
	}
	return score
}
