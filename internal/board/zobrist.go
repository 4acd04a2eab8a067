package board

import "sync"

// Zobrist key tables, process-wide and read-only after one-time
// initialization. pieceKeys covers all ten piece types so fairy pieces
// hash like any other piece; side-to-move is folded in by XORing sideKey.
var (
	pieceKeys     [2][NPieceTypes][64]uint64
	enPassantKeys [65]uint64 // index 64 = "no en passant"
	castleKeys    [16]uint64 // indexed by 4-bit castling mask
	sideKey       uint64

	zobristOnce sync.Once
)

// initZobrist seeds all key tables from a fixed-seed PRNG. Guarded by
// sync.Once so concurrent first use from any package is safe and repeated
// calls are no-ops.
func initZobrist() {
	zobristOnce.Do(func() {
		rng := newSplitMix64(0x9E3779B97F4A7C15)
		for c := 0; c < 2; c++ {
			for pt := 0; pt < NPieceTypes; pt++ {
				for sq := 0; sq < 64; sq++ {
					pieceKeys[c][pt][sq] = rng.next()
				}
			}
		}
		for i := range enPassantKeys {
			enPassantKeys[i] = rng.next()
		}
		for i := range castleKeys {
			castleKeys[i] = rng.next()
		}
		sideKey = rng.next()
	})
}

// splitMix64 is a small deterministic PRNG used only to fill the one-time
// key tables reproducibly. Not for anything security sensitive.
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *splitMix64 { return &splitMix64{state: seed} }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// castleMask packs the four castling-rights bools into the 4-bit index
// castleKeys is addressed by: bit0=WK, bit1=WQ, bit2=BK, bit3=BQ.
func castleMask(rights [4]bool) int {
	mask := 0
	for i, set := range rights {
		if set {
			mask |= 1 << i
		}
	}
	return mask
}

// computeHash recomputes the Zobrist hash of a position from scratch,
// XORing a key per piece on the board, a key for the en-passant target (or
// the "none" slot), and a key for the castling-rights mask. Identical
// (placement, castling rights, en-passant) triples always yield identical
// hashes.
func computeHash(p *Position) uint64 {
	initZobrist()
	var h uint64
	for c := 0; c < 2; c++ {
		for pt := 0; pt < NPieceTypes; pt++ {
			bb := p.PieceBB[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= pieceKeys[c][pt][sq]
			}
		}
	}
	if p.EnPassantTarget == NoSquare {
		h ^= enPassantKeys[64]
	} else {
		h ^= enPassantKeys[p.EnPassantTarget]
	}
	h ^= castleKeys[castleMask(p.CastleRights)]
	return h
}

// SearchHash returns the transposition-table key for a position hash and a
// side to move: the position hash itself for White, XORed with sideKey for
// Black.
func SearchHash(positionHash uint64, sideToMove Color) uint64 {
	initZobrist()
	if sideToMove == Black {
		return positionHash ^ sideKey
	}
	return positionHash
}
