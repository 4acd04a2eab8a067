package board

import "fmt"

// Position is the full mutable board state. It is deliberately small
// (twenty piece Bitboards, three occupancy Bitboards and a handful of
// scalars) so the search can copy it
// by value at every node instead of maintaining an undo stack, which also
// keeps concurrent workers from ever aliasing each other's state.
type Position struct {
	// PieceBB[color][pieceType] — one bitboard per (color, piece type).
	// Dimensioned for all ten piece types regardless of Variant; classic
	// games simply leave Princess/Empress/Nightrider/Grasshopper empty.
	PieceBB [2][NPieceTypes]Bitboard

	// Occupancy[White], Occupancy[Black], Occupancy[2] (all pieces). Cached
	// unions, recomputed from PieceBB after every mutation.
	Occupancy [3]Bitboard

	// CastleRights indexes [WhiteKingSide, WhiteQueenSide, BlackKingSide,
	// BlackQueenSide].
	CastleRights [4]bool

	// EnPassantTarget is the square a pawn capture en-passant would land
	// on, or NoSquare. Valid for exactly one ply after a pawn double push.
	EnPassantTarget Square

	// SideToMove is whose turn it is.
	SideToMove Color

	// Variant selects which fairy pieces the generator/evaluator consider.
	Variant Variant

	// HalfMoveClock counts plies since the last pawn move or capture, used
	// for the fifty-move draw rule.
	HalfMoveClock int

	// Hash is the Zobrist fingerprint of the position (piece placement +
	// castling rights + en-passant square; side-to-move is folded in
	// separately by SearchHash at the point of use, see zobrist.go).
	Hash uint64
}

const (
	idxWhiteKingSide = iota
	idxWhiteQueenSide
	idxBlackKingSide
	idxBlackQueenSide
)

// NewPosition returns the initial placement for the given variant, all
// castling rights true, no en-passant target, and a freshly computed hash.
func NewPosition(variant Variant) *Position {
	p := &Position{
		EnPassantTarget: NoSquare,
		Variant:         variant,
		CastleRights:    [4]bool{true, true, true, true},
	}
	placeBackRank(p, White, variant)
	placeBackRank(p, Black, variant)
	for file := 0; file < 8; file++ {
		p.PieceBB[White][Pawn] = p.PieceBB[White][Pawn].Set(NewSquare(file, 1))
		p.PieceBB[Black][Pawn] = p.PieceBB[Black][Pawn].Set(NewSquare(file, 6))
	}
	p.recomputeOccupancy()
	p.Hash = computeHash(p)
	return p
}

// placeBackRank fills rank 1 (White) or rank 8 (Black). The classic back
// rank is R N B Q K B N R; FairyChess replaces the knights at the b- and
// g-files with Nightriders and the bishops at c- and f-files with Princess
// (c-file) and Empress (f-file). Queen and King are unchanged. Grasshoppers
// have a move rule but no square in the default setup; they enter only
// through custom positions.
func placeBackRank(p *Position, c Color, variant Variant) {
	rank := 0
	if c == Black {
		rank = 7
	}
	layout := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	if variant == FairyChess {
		layout = [8]PieceType{Rook, Nightrider, Princess, Queen, King, Empress, Nightrider, Rook}
	}
	for file, pt := range layout {
		sq := NewSquare(file, rank)
		p.PieceBB[c][pt] = p.PieceBB[c][pt].Set(sq)
	}
}

// Copy returns an independent value copy of the position. Position contains
// no pointers or slices, so a plain struct copy suffices; this method
// exists to make the "search copies, never aliases, a Position" invariant
// readable at call sites.
func (p *Position) Copy() Position { return *p }

// colorAt returns the color occupying sq, or NoColor if empty.
func (p *Position) colorAt(sq Square) Color {
	bb := SquareBB(sq)
	switch {
	case p.Occupancy[White]&bb != 0:
		return White
	case p.Occupancy[Black]&bb != 0:
		return Black
	default:
		return NoColor
	}
}

// pieceAt returns the (color, pieceType) occupying sq, or (NoColor,
// NoPieceType) if empty.
func (p *Position) pieceAt(sq Square) (Color, PieceType) {
	c := p.colorAt(sq)
	if c == NoColor {
		return NoColor, NoPieceType
	}
	bb := SquareBB(sq)
	for pt := PieceType(0); pt < NPieceTypes; pt++ {
		if p.PieceBB[c][pt]&bb != 0 {
			return c, pt
		}
	}
	return NoColor, NoPieceType
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.PieceBB[c][King].LSB()
}

func (p *Position) recomputeOccupancy() {
	p.Occupancy[White] = Empty
	p.Occupancy[Black] = Empty
	for pt := PieceType(0); pt < NPieceTypes; pt++ {
		p.Occupancy[White] |= p.PieceBB[White][pt]
		p.Occupancy[Black] |= p.PieceBB[Black][pt]
	}
	p.Occupancy[2] = p.Occupancy[White] | p.Occupancy[Black]
}

// ApplyMove mutates p to reflect playing m. If no piece sits on m.From(),
// this is a no-op. A friendly capture leaves p unmodified and returns
// false; callers that only pass moves from GenerateLegalMoves never hit
// that path.
func (p *Position) ApplyMove(m Move) bool {
	from, to := m.From(), m.To()
	mover, pt := p.pieceAt(from)
	if mover == NoColor {
		return true // empty origin square, nothing to do
	}
	enemy := mover.Opposite()

	working := *p // mutate a scratch copy; commit only on success

	// En-passant detection and victim removal.
	isEnPassant := pt == Pawn && to == working.EnPassantTarget
	if isEnPassant {
		victimSq := to - 8
		if mover == Black {
			victimSq = to + 8
		}
		working.PieceBB[enemy][Pawn] = working.PieceBB[enemy][Pawn].Clear(victimSq)
	}

	// Castling-rights updates on king/rook movement.
	if pt == King {
		if mover == White {
			working.CastleRights[idxWhiteKingSide] = false
			working.CastleRights[idxWhiteQueenSide] = false
		} else {
			working.CastleRights[idxBlackKingSide] = false
			working.CastleRights[idxBlackQueenSide] = false
		}
	}
	if pt == Rook {
		clearRookRight(&working, from)
	}

	// Capture; a friendly capture aborts the whole move.
	if !isEnPassant && working.Occupancy[2].IsSet(to) {
		if working.Occupancy[mover].IsSet(to) {
			return false // invariant violation: friendly capture attempted
		}
		_, capturedPT := working.pieceAt(to)
		working.PieceBB[enemy][capturedPT] = working.PieceBB[enemy][capturedPT].Clear(to)
		if capturedPT == Rook {
			clearRookRight(&working, to)
		}
	}

	// Castling rook relocation, keyed off the two-square king move.
	if pt == King && abs(to.File()-from.File()) == 2 && to.Rank() == from.Rank() {
		moveRookForCastle(&working, mover, to)
	}

	// En-passant target refresh.
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		working.EnPassantTarget = Square((int(from) + int(to)) / 2)
	} else {
		working.EnPassantTarget = NoSquare
	}

	// Piece placement.
	working.PieceBB[mover][pt] = working.PieceBB[mover][pt].Clear(from)
	destType := pt
	if m.IsPromotion() {
		destType = m.Promotion()
	}
	working.PieceBB[mover][destType] = working.PieceBB[mover][destType].Set(to)

	// Fifty-move-rule clock: reset on pawn move or capture, else increment.
	if pt == Pawn || isEnPassant || working.Occupancy[2].IsSet(to) {
		working.HalfMoveClock = 0
	} else {
		working.HalfMoveClock = p.HalfMoveClock + 1
	}

	working.SideToMove = mover.Opposite()

	working.recomputeOccupancy()

	working.Hash = computeHash(&working)

	*p = working
	return true
}

// clearRookRight clears the castling right matching a rook on one of the
// four starting corners (a1/h1/a8/h8), no-op for any other square.
func clearRookRight(p *Position, sq Square) {
	switch sq {
	case A1:
		p.CastleRights[idxWhiteQueenSide] = false
	case H1:
		p.CastleRights[idxWhiteKingSide] = false
	case A8:
		p.CastleRights[idxBlackQueenSide] = false
	case H8:
		p.CastleRights[idxBlackKingSide] = false
	}
}

// moveRookForCastle relocates the corner rook paired with a two-square king
// move: White king-side 7->5, White queen-side 0->3, mirrored for Black.
func moveRookForCastle(p *Position, mover Color, kingTo Square) {
	var rookFrom, rookTo Square
	switch {
	case mover == White && kingTo == G1:
		rookFrom, rookTo = H1, F1
	case mover == White && kingTo == C1:
		rookFrom, rookTo = A1, D1
	case mover == Black && kingTo == G8:
		rookFrom, rookTo = H8, F8
	case mover == Black && kingTo == C8:
		rookFrom, rookTo = A8, D8
	default:
		return
	}
	p.PieceBB[mover][Rook] = p.PieceBB[mover][Rook].Clear(rookFrom).Set(rookTo)
}

// Named squares used by castling logic and tests.
const (
	A1 Square = 0
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// String renders a human-readable diagnostic of the position.
func (p *Position) String() string {
	s := "\n"
	chars := "PNBRQKSEHGpnbrqksehg"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			c, pt := p.pieceAt(sq)
			if c == NoColor {
				s += ". "
				continue
			}
			idx := int(pt)
			if c == Black {
				idx += NPieceTypes
			}
			s += string(chars[idx]) + " "
		}
		s += "\n"
	}
	s += fmt.Sprintf("\nside to move: %s  castle: %v  ep: %s  hash: %016x\n",
		p.SideToMove, p.CastleRights, p.EnPassantTarget, p.Hash)
	return s
}
