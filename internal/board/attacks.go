package board

// Precomputed leaper attack tables, built once at package init.
var (
	knightOffsets = [8]int{17, 15, 10, 6, -17, -15, -10, -6}
	kingOffsets   = [8]int{9, 8, 7, 1, -9, -8, -7, -1}
	// Sliding directions: rooks walk rookDirs and bishops bishopDirs;
	// queens and Grasshoppers walk all eight queenDirs (the rook directions
	// first, then the bishop ones). Empresses add rookDirs and Princesses
	// bishopDirs to their knight jumps; Nightriders walk knightOffsets.
	rookDirs   = [4]int{8, -8, 1, -1}
	bishopDirs = [4]int{9, 7, -9, -7}
	queenDirs  = [8]int{8, -8, 1, -1, 9, 7, -9, -7}

	knightAttackBB [64]Bitboard
	kingAttackBB   [64]Bitboard
	pawnAttackBB   [2][64]Bitboard
)

func init() {
	for sq := Square(0); sq < 64; sq++ {
		knightAttackBB[sq] = leaperAttacks(sq, knightOffsets[:], 2)
		kingAttackBB[sq] = leaperAttacks(sq, kingOffsets[:], 1)
		pawnAttackBB[White][sq] = pawnDiagAttacks(sq, White)
		pawnAttackBB[Black][sq] = pawnDiagAttacks(sq, Black)
	}
}

func leaperAttacks(sq Square, offsets []int, maxFileDelta int) Bitboard {
	var bb Bitboard
	for _, off := range offsets {
		to := int(sq) + off
		if !onBoard(to) {
			continue
		}
		if fileDelta(sq, Square(to)) > maxFileDelta {
			continue
		}
		bb = bb.Set(Square(to))
	}
	return bb
}

func pawnDiagAttacks(sq Square, c Color) Bitboard {
	up := 8
	if c == Black {
		up = -8
	}
	var bb Bitboard
	for _, d := range [2]int{up - 1, up + 1} {
		to := int(sq) + d
		if !onBoard(to) || fileDelta(sq, Square(to)) != 1 {
			continue
		}
		bb = bb.Set(Square(to))
	}
	return bb
}

// rayWalk walks one step at a time from sq in direction dir (a queen
// direction offset), stopping at the board edge (file-wrap guarded) or at
// the first occupied square. It returns the empty squares passed through
// and that first occupied square, NoSquare if the ray ran off the board.
func rayWalk(sq Square, dir int, occupied Bitboard) (empties Bitboard, firstOccupied Square) {
	cur := sq
	firstOccupied = NoSquare
	for {
		next := int(cur) + dir
		if !onBoard(next) || fileDelta(cur, Square(next)) > 1 {
			return
		}
		cur = Square(next)
		if occupied.IsSet(cur) {
			firstOccupied = cur
			return
		}
		empties = empties.Set(cur)
	}
}

// slidingAttacks returns every square a slider on sq attacks (stopping at
// and including the first occupied square in each direction) for the given
// set of directions.
func slidingAttacks(sq Square, dirs []int, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, dir := range dirs {
		empties, hit := rayWalk(sq, dir, occupied)
		bb |= empties
		if hit != NoSquare {
			bb = bb.Set(hit)
		}
	}
	return bb
}

// nightriderAttacks returns every square a Nightrider on sq attacks: in
// each of the 8 knight directions, repeat the knight jump while the landing
// square is empty, stopping at (and including) the first occupied square.
func nightriderAttacks(sq Square, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, off := range knightOffsets {
		cur := sq
		for {
			next := int(cur) + off
			if !onBoard(next) || fileDelta(cur, Square(next)) > 2 {
				break
			}
			cur = Square(next)
			bb = bb.Set(cur)
			if occupied.IsSet(cur) {
				break
			}
		}
	}
	return bb
}

// grasshopperAttacks returns, for each of the 8 queen directions, the
// square immediately beyond the first occupied square (the "hurdle") in
// that direction, if that landing square is on the board.
//
// IsSquareAttacked calls it from the target square, so a Grasshopper
// directly beyond the first occupied square from sq counts as attacking sq,
// also when empty squares separate sq from that hurdle.
func grasshopperAttacks(sq Square, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, dir := range queenDirs {
		_, hurdle := rayWalk(sq, dir, occupied)
		if hurdle == NoSquare {
			continue
		}
		landing := int(hurdle) + dir
		if !onBoard(landing) || fileDelta(hurdle, Square(landing)) > 1 {
			continue
		}
		bb = bb.Set(Square(landing))
	}
	return bb
}

// IsSquareAttacked reports whether any piece of color attacker could
// capture on sq given the current occupancy. Inverse-ray probe: from sq,
// check each attack pattern for a matching enemy piece.
func (p *Position) IsSquareAttacked(sq Square, attacker Color) bool {
	occ := p.Occupancy[2]

	if pawnAttackBB[attacker.Opposite()][sq]&p.PieceBB[attacker][Pawn] != 0 {
		return true
	}
	if knightAttackBB[sq]&(p.PieceBB[attacker][Knight]|p.PieceBB[attacker][Princess]|p.PieceBB[attacker][Empress]) != 0 {
		return true
	}
	if kingAttackBB[sq]&p.PieceBB[attacker][King] != 0 {
		return true
	}
	if slidingAttacks(sq, rookDirs[:], occ)&(p.PieceBB[attacker][Rook]|p.PieceBB[attacker][Queen]|p.PieceBB[attacker][Empress]) != 0 {
		return true
	}
	if slidingAttacks(sq, bishopDirs[:], occ)&(p.PieceBB[attacker][Bishop]|p.PieceBB[attacker][Queen]|p.PieceBB[attacker][Princess]) != 0 {
		return true
	}
	if p.PieceBB[attacker][Nightrider] != 0 && nightriderAttacksHit(sq, occ, p.PieceBB[attacker][Nightrider]) {
		return true
	}
	if p.PieceBB[attacker][Grasshopper] != 0 && grasshopperAttacks(sq, occ)&p.PieceBB[attacker][Grasshopper] != 0 {
		return true
	}
	return false
}

// nightriderAttacksHit reports whether, in any knight direction from sq,
// the first occupied square is an enemy Nightrider (as opposed to any
// other piece, which blocks the ray without extending an attack).
func nightriderAttacksHit(sq Square, occupied, enemyNightriders Bitboard) bool {
	for _, off := range knightOffsets {
		cur := sq
		for {
			next := int(cur) + off
			if !onBoard(next) || fileDelta(cur, Square(next)) > 2 {
				break
			}
			cur = Square(next)
			if occupied.IsSet(cur) {
				if enemyNightriders.IsSet(cur) {
					return true
				}
				break
			}
		}
	}
	return false
}

// IsInCheck reports whether c's king is attacked by the opposite color.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsSquareAttacked(p.KingSquare(c), c.Opposite())
}
