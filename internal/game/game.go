// Package game wraps a Position in a turn-tracking controller: it
// validates and plays moves, reports the game state after each one, and
// recognizes the drawn endings the raw move generator does not.
package game

import (
	"errors"

	"go.uber.org/zap"

	"github.com/corvane/fairyengine/internal/board"
)

// ErrIllegalMove is returned by PlayMove when the requested move is not in
// the legal set; the position is left unchanged.
var ErrIllegalMove = errors.New("game: illegal move")

// ErrGameOver is returned by PlayMove once the game has reached a terminal
// state.
var ErrGameOver = errors.New("game: game is over")

// State is the controller's view of a position after a move.
type State int

const (
	Playing State = iota
	Check
	Checkmate
	Stalemate
	Draw
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Terminal reports whether s ends the game.
func (s State) Terminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// Game tracks one game in progress.
type Game struct {
	pos   *board.Position
	state State
	log   *zap.Logger
}

// New starts a game from the initial placement of the given variant. A nil
// logger is replaced with a no-op logger.
func New(variant board.Variant, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{pos: board.NewPosition(variant), state: Playing, log: log}
}

// Resume wraps an existing position (for example one built from FEN) in a
// controller, computing its current state.
func Resume(pos *board.Position, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{pos: pos, state: StateOf(pos, pos.SideToMove), log: log}
}

// Position returns the live position. Callers must not mutate it directly;
// use PlayMove.
func (g *Game) Position() *board.Position { return g.pos }

// State returns the state after the most recent move.
func (g *Game) State() State { return g.state }

// SideToMove returns whose turn it is.
func (g *Game) SideToMove() board.Color { return g.pos.SideToMove }

// PlayMove validates m against the legal set for the side to move, applies
// it, and advances the state machine. An illegal move leaves the position
// unchanged and returns ErrIllegalMove.
func (g *Game) PlayMove(m board.Move) error {
	if g.state.Terminal() {
		return ErrGameOver
	}
	side := g.pos.SideToMove
	found := false
	for _, lm := range g.pos.GenerateLegalMoves(side) {
		if lm == m {
			found = true
			break
		}
	}
	if !found {
		g.log.Warn("illegal move rejected",
			zap.Stringer("move", m),
			zap.Stringer("side", side))
		return ErrIllegalMove
	}
	g.pos.ApplyMove(m)
	g.state = StateOf(g.pos, g.pos.SideToMove)
	g.log.Debug("move played",
		zap.Stringer("move", m),
		zap.Stringer("state", g.state))
	return nil
}

// StateOf classifies pos from the perspective of sideToMove, the player
// about to move: checkmated, stalemated, drawn, in check, or simply
// playing.
func StateOf(pos *board.Position, sideToMove board.Color) State {
	moves := pos.GenerateLegalMoves(sideToMove)
	inCheck := pos.IsInCheck(sideToMove)
	switch {
	case len(moves) == 0 && inCheck:
		return Checkmate
	case len(moves) == 0:
		return Stalemate
	case IsDraw(pos):
		return Draw
	case inCheck:
		return Check
	default:
		return Playing
	}
}

// IsDraw reports a fifty-move-rule or insufficient-material draw. The
// fifty-move rule counts 100 plies since the last pawn move or capture.
func IsDraw(pos *board.Position) bool {
	return pos.HalfMoveClock >= 100 || IsInsufficientMaterial(pos)
}

// IsInsufficientMaterial reports whether neither side can possibly deliver
// mate: king versus king, or king and one minor piece versus king. Any
// pawn, major piece, or fairy piece on the board means mate remains
// possible.
func IsInsufficientMaterial(pos *board.Position) bool {
	minors := 0
	for c := 0; c < 2; c++ {
		color := board.Color(c)
		for pt := board.PieceType(0); pt < board.NPieceTypes; pt++ {
			n := pos.PieceBB[color][pt].PopCount()
			if n == 0 {
				continue
			}
			switch pt {
			case board.King:
			case board.Knight, board.Bishop:
				minors += n
			default:
				return false
			}
		}
	}
	return minors <= 1
}

// PromotionChoices returns the four piece types a pawn moving from->to may
// promote to, or nil if that pawn move is not a legal promotion for the
// side to move. It reads the legal moves of pos as it stands, so a driver
// asks it before playing the pawn move, to offer the player the pieces.
func PromotionChoices(pos *board.Position, from, to board.Square) []board.PieceType {
	side := pos.SideToMove
	var choices []board.PieceType
	for _, m := range pos.GenerateLegalMoves(side) {
		if m.From() == from && m.To() == to && m.IsPromotion() {
			choices = append(choices, m.Promotion())
		}
	}
	return choices
}
