package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position in Forsyth-Edwards
// Notation. FairyChess positions have no standard FEN vocabulary for the
// four extra piece types beyond the letters this module assigns in
// piece.go, so ParseFEN is primarily a test and driver convenience for
// constructing arbitrary positions.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: invalid FEN %q: need at least 4 fields", fen)
	}

	p := &Position{EnPassantTarget: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: invalid FEN %q: need 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return nil, fmt.Errorf("board: invalid FEN %q: rank overflow", fen)
			}
			color := White
			lower := byte(ch)
			if ch >= 'a' && ch <= 'z' {
				color = Black
			} else {
				lower = byte(ch) + ('a' - 'A')
			}
			pt := PieceTypeFromChar(lower)
			if pt == NoPieceType {
				return nil, fmt.Errorf("board: invalid FEN %q: bad piece %q", fen, string(ch))
			}
			sq := NewSquare(file, rank)
			p.PieceBB[color][pt] = p.PieceBB[color][pt].Set(sq)
			if pt == Princess || pt == Empress || pt == Nightrider || pt == Grasshopper {
				p.Variant = FairyChess
			}
			file++
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: invalid FEN %q: bad side to move", fen)
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.CastleRights[idxWhiteKingSide] = true
			case 'Q':
				p.CastleRights[idxWhiteQueenSide] = true
			case 'k':
				p.CastleRights[idxBlackKingSide] = true
			case 'q':
				p.CastleRights[idxBlackQueenSide] = true
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: invalid FEN %q: bad en passant square", fen)
		}
		p.EnPassantTarget = sq
	}

	if len(fields) > 4 {
		if hmc, err := strconv.Atoi(fields[4]); err == nil {
			p.HalfMoveClock = hmc
		}
	}

	p.recomputeOccupancy()
	p.Hash = computeHash(p)
	return p, nil
}
