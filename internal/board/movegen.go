package board

// promotionPieces are the four pieces a pawn may promote to.
var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateLegalMoves returns every legal move for side in p: pseudo-legal
// generation per piece type, filtered by applying each candidate to a copy
// and rejecting any that leaves the mover's own king in check.
func (p *Position) GenerateLegalMoves(side Color) []Move {
	var pseudo MoveList
	p.generatePseudoLegal(side, &pseudo, false)
	return p.filterLegal(side, &pseudo)
}

// GenerateCaptures returns capturing pseudo-legal moves only (including
// en-passant and capture-promotions), excluding castling and quiet moves,
// for use by quiescence search. Unlike GenerateLegalMoves it does not
// apply the legality filter; quiescence rejects king-exposing captures
// itself after applying them.
func (p *Position) GenerateCaptures(side Color) []Move {
	var pseudo MoveList
	p.generatePseudoLegal(side, &pseudo, true)
	return pseudo.Slice()
}

func (p *Position) filterLegal(side Color, pseudo *MoveList) []Move {
	legal := make([]Move, 0, pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		child := p.Copy()
		if !child.ApplyMove(m) {
			continue
		}
		if !child.IsInCheck(side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// generatePseudoLegal dispatches per piece type. When capturesOnly is true
// it restricts pawns to diagonal captures/en-passant/capture-promotions and
// sliders/leapers to moves landing on an enemy-occupied square, and skips
// castling entirely (castling is never a capture).
func (p *Position) generatePseudoLegal(side Color, out *MoveList, capturesOnly bool) {
	enemy := side.Opposite()
	occ := p.Occupancy[2]

	p.generatePawnMoves(side, out, capturesOnly)

	genLeaper := func(pt PieceType, attacks func(Square) Bitboard) {
		bb := p.PieceBB[side][pt]
		for bb != 0 {
			from := bb.PopLSB()
			targets := attacks(from) &^ p.Occupancy[side]
			if capturesOnly {
				targets &= p.Occupancy[enemy]
			}
			emit(out, from, targets, p.Occupancy[enemy])
		}
	}
	genLeaper(Knight, func(sq Square) Bitboard { return knightAttackBB[sq] })
	genLeaper(King, func(sq Square) Bitboard { return kingAttackBB[sq] })

	genSlider := func(pt PieceType, dirs []int) {
		bb := p.PieceBB[side][pt]
		for bb != 0 {
			from := bb.PopLSB()
			targets := slidingAttacks(from, dirs, occ) &^ p.Occupancy[side]
			if capturesOnly {
				targets &= p.Occupancy[enemy]
			}
			emit(out, from, targets, p.Occupancy[enemy])
		}
	}
	genSlider(Rook, rookDirs[:])
	genSlider(Bishop, bishopDirs[:])
	genSlider(Queen, queenDirs[:])

	if p.Variant == FairyChess {
		genSlider(Princess, bishopDirs[:])
		genLeaper(Princess, func(sq Square) Bitboard { return knightAttackBB[sq] })
		genSlider(Empress, rookDirs[:])
		genLeaper(Empress, func(sq Square) Bitboard { return knightAttackBB[sq] })

		bb := p.PieceBB[side][Nightrider]
		for bb != 0 {
			from := bb.PopLSB()
			targets := nightriderAttacks(from, occ) &^ p.Occupancy[side]
			if capturesOnly {
				targets &= p.Occupancy[enemy]
			}
			emit(out, from, targets, p.Occupancy[enemy])
		}

		bb = p.PieceBB[side][Grasshopper]
		for bb != 0 {
			from := bb.PopLSB()
			targets := grasshopperAttacks(from, occ) &^ p.Occupancy[side]
			if capturesOnly {
				targets &= p.Occupancy[enemy]
			}
			emit(out, from, targets, p.Occupancy[enemy])
		}
	}

	if !capturesOnly {
		p.generateCastling(side, out)
	}
}

// emit appends a move from->to for each set bit of targets, flagging
// captures against enemyOcc.
func emit(out *MoveList, from Square, targets Bitboard, enemyOcc Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		if enemyOcc.IsSet(to) {
			out.Add(NewCapture(from, to))
		} else {
			out.Add(NewMove(from, to))
		}
	}
}

func (p *Position) generatePawnMoves(side Color, out *MoveList, capturesOnly bool) {
	enemy := side.Opposite()
	up := 8
	startRank, promoRank := 1, 7
	if side == Black {
		up = -8
		startRank, promoRank = 6, 0
	}

	bb := p.PieceBB[side][Pawn]
	for bb != 0 {
		from := bb.PopLSB()

		addPawnTarget := func(to Square, isCapture bool) {
			if to.Rank() == promoRank {
				for _, promo := range promotionPieces {
					out.Add(NewPromotion(from, to, promo, isCapture))
				}
				return
			}
			if isCapture {
				out.Add(NewCapture(from, to))
			} else {
				out.Add(NewMove(from, to))
			}
		}

		if !capturesOnly {
			oneStep := int(from) + up
			if onBoard(oneStep) && !p.Occupancy[2].IsSet(Square(oneStep)) {
				addPawnTarget(Square(oneStep), false)
				if from.Rank() == startRank {
					twoStep := int(from) + 2*up
					if !p.Occupancy[2].IsSet(Square(twoStep)) {
						out.Add(NewMove(from, Square(twoStep)))
					}
				}
			}
		}

		for _, d := range [2]int{up - 1, up + 1} {
			to := int(from) + d
			if !onBoard(to) || fileDelta(from, Square(to)) != 1 {
				continue
			}
			toSq := Square(to)
			if p.Occupancy[enemy].IsSet(toSq) {
				addPawnTarget(toSq, true)
			} else if toSq == p.EnPassantTarget && !p.Occupancy[2].IsSet(toSq) {
				out.Add(NewCapture(from, toSq))
			}
		}
	}
}

// generateCastling appends the king-side and queen-side castling moves (as
// two-square king moves; the rook relocation is applied by ApplyMove) when
// legal: the right is held, the traversed squares are empty, the king is
// not currently in check, and neither traversed square is attacked.
func (p *Position) generateCastling(side Color, out *MoveList) {
	enemy := side.Opposite()
	if p.IsInCheck(side) {
		return
	}
	rank := 0
	if side == Black {
		rank = 7
	}
	e := NewSquare(4, rank)
	kingRight, queenRight := idxWhiteKingSide, idxWhiteQueenSide
	if side == Black {
		kingRight, queenRight = idxBlackKingSide, idxBlackQueenSide
	}

	if p.CastleRights[kingRight] {
		f := NewSquare(5, rank)
		g := NewSquare(6, rank)
		if !p.Occupancy[2].IsSet(f) && !p.Occupancy[2].IsSet(g) &&
			!p.IsSquareAttacked(f, enemy) && !p.IsSquareAttacked(g, enemy) {
			out.Add(NewMove(e, g))
		}
	}
	if p.CastleRights[queenRight] {
		b := NewSquare(1, rank)
		c := NewSquare(2, rank)
		d := NewSquare(3, rank)
		if !p.Occupancy[2].IsSet(b) && !p.Occupancy[2].IsSet(c) && !p.Occupancy[2].IsSet(d) &&
			!p.IsSquareAttacked(c, enemy) && !p.IsSquareAttacked(d, enemy) {
			out.Add(NewMove(e, c))
		}
	}
}
