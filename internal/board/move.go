package board

import "fmt"

// Move is the triple (from, to, promotion) plus the is-capture flag the
// generator sets. The zero value is the null move (from = to = 0), used as
// the "no TT move" sentinel.
//
// Packed into a uint32, with an explicit capture bit rather than deriving
// capture status from the board at use time.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveCaptureBit = 1 << 16
	moveMask6      = 0x3F
	movePromoMask  = 0xF
)

// NullMove is the sentinel "no move" value: from = to = 0.
const NullMove Move = 0

// NewMove builds a quiet, non-promoting move.
func NewMove(from, to Square) Move {
	return Move(from)<<moveFromShift | Move(to)<<moveToShift | Move(NoPieceType)<<movePromoShift
}

// NewCapture builds a capturing, non-promoting move.
func NewCapture(from, to Square) Move {
	return NewMove(from, to) | moveCaptureBit
}

// NewPromotion builds a promoting move. promo must be one of
// {Knight, Bishop, Rook, Queen}.
func NewPromotion(from, to Square, promo PieceType, isCapture bool) Move {
	m := Move(from)<<moveFromShift | Move(to)<<moveToShift | Move(promo)<<movePromoShift
	if isCapture {
		m |= moveCaptureBit
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square { return Square(m >> moveFromShift & moveMask6) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> moveToShift & moveMask6) }

// Promotion returns the promotion piece type, or NoPieceType if this move
// does not promote.
func (m Move) Promotion() PieceType { return PieceType(m >> movePromoShift & movePromoMask) }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != NoPieceType }

// IsCapture reports whether the generator flagged this move as a capture
// (including en-passant).
func (m Move) IsCapture() bool { return m&moveCaptureBit != 0 }

// IsNull reports whether m is the null-move sentinel.
func (m Move) IsNull() bool { return m == NullMove }

// String renders UCI-style square notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

// ParseMove parses UCI-style square notation into a Move, using pos only to
// classify capture/promotion flags (it does not validate legality).
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NullMove, fmt.Errorf("board: invalid move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, err
	}
	capture := pos.colorAt(to) == pos.SideToMove.Opposite()
	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NullMove, fmt.Errorf("board: invalid promotion piece %q", s[4:])
		}
		return NewPromotion(from, to, promo, capture), nil
	}
	_, pt := pos.pieceAt(from)
	if pt == Pawn && to == pos.EnPassantTarget {
		return NewCapture(from, to), nil
	}
	if capture {
		return NewCapture(from, to), nil
	}
	return NewMove(from, to), nil
}

// MoveList is a fixed-capacity move buffer, avoiding per-call allocation in
// the hot move-generation path.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends m to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int { return ml.count }

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move { return ml.moves[i] }

// Set overwrites the move at index i, used by move-ordering passes.
func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

// Slice returns the populated moves as a slice backed by the list's array.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.count] }
