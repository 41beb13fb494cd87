package board

// pawnHomeRank is the rank index a pawn double-steps from, per color.
var pawnHomeRank = [2]int{1, 6}

// LegalMoves generates all legal moves for the side to move.
func (p *Position) LegalMoves() []Move {
	return p.legalMoves(NoSquare, NoPieceType)
}

// LegalMovesFrom generates the legal moves originating on one square.
func (p *Position) LegalMovesFrom(sq Square) []Move {
	if !sq.IsValid() {
		return nil
	}
	return p.legalMoves(sq, NoPieceType)
}

// LegalMovesOf generates the legal moves of one piece kind.
func (p *Position) LegalMovesOf(pt PieceType) []Move {
	if pt >= NoPieceType {
		return nil
	}
	return p.legalMoves(NoSquare, pt)
}

// legalMoves filters pseudo-legal moves through an exact make/undo round
// trip: apply, test king safety, revert. This is the only path by which
// check safety is established.
func (p *Position) legalMoves(from Square, pt PieceType) []Move {
	pseudo := p.pseudoLegalMoves(from, pt)
	legal := make([]Move, 0, len(pseudo))
	us := p.SideToMove

	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.IsSquareAttacked(p.Kings[us], us.Other()) {
			legal = append(legal, m)
		}
		p.UndoMove()
	}

	return legal
}

// HasLegalMoves returns true if the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	us := p.SideToMove
	for _, m := range p.pseudoLegalMoves(NoSquare, NoPieceType) {
		p.MakeMove(m)
		safe := !p.IsSquareAttacked(p.Kings[us], us.Other())
		p.UndoMove()
		if safe {
			return true
		}
	}
	return false
}

// pseudoLegalMoves produces geometrically valid moves for the side to move,
// without king safety checks. The filters restrict generation to a single
// origin square or piece kind; castling is only considered when the filters
// do not exclude the king.
func (p *Position) pseudoLegalMoves(fromFilter Square, pieceFilter PieceType) []Move {
	us := p.SideToMove
	moves := make([]Move, 0, 48)

	first, last := A1, H8
	if fromFilter != NoSquare {
		first, last = fromFilter, fromFilter
	}

	for from := first; from <= last; from++ {
		if !from.IsValid() {
			from += 7
			continue
		}
		pc := p.Board[from]
		if pc == NoPiece || pc.Color() != us {
			continue
		}
		pt := pc.Type()
		if pieceFilter != NoPieceType && pt != pieceFilter {
			continue
		}

		if pt == Pawn {
			moves = p.pawnMoves(moves, from, us)
			continue
		}

		sliding := pt == Bishop || pt == Rook || pt == Queen
		for _, off := range pieceOffsets[pt] {
			for to := from + off; to.IsValid(); to += off {
				target := p.Board[to]
				if target == NoPiece {
					moves = append(moves, p.buildMove(from, to, FlagQuiet, NoPieceType))
				} else {
					if target.Color() != us {
						moves = append(moves, p.buildMove(from, to, FlagCapture, NoPieceType))
					}
					break
				}
				if !sliding {
					break
				}
			}
		}
	}

	kingIncluded := (fromFilter == NoSquare || fromFilter == p.Kings[us]) &&
		(pieceFilter == NoPieceType || pieceFilter == King)
	if kingIncluded {
		moves = p.castlingMoves(moves, us)
	}

	return moves
}

// pawnMoves generates the pawn moves from one square: single push, double
// push from the home rank, diagonal captures and the en passant capture.
// Moves reaching the last rank expand into the four promotions.
func (p *Position) pawnMoves(moves []Move, from Square, us Color) []Move {
	fwd := pawnPush[us]

	to := from + fwd
	if to.IsValid() && p.Board[to] == NoPiece {
		moves = p.addPawnMove(moves, from, to, FlagQuiet)

		to2 := to + fwd
		if from.Rank() == pawnHomeRank[us] && to2.IsValid() && p.Board[to2] == NoPiece {
			moves = append(moves, p.buildMove(from, to2, FlagDoublePush, NoPieceType))
		}
	}

	for _, off := range [2]Square{fwd - 1, fwd + 1} {
		to := from + off
		if !to.IsValid() {
			continue
		}
		if target := p.Board[to]; target != NoPiece {
			if target.Color() != us {
				moves = p.addPawnMove(moves, from, to, FlagCapture)
			}
		} else if to == p.EnPassant {
			moves = append(moves, p.buildMove(from, to, FlagEnPassant, NoPieceType))
		}
	}

	return moves
}

// addPawnMove expands a pawn move to the last rank into the four promotions,
// queen first.
func (p *Position) addPawnMove(moves []Move, from, to Square, flags MoveFlags) []Move {
	if to.Rank() == 0 || to.Rank() == 7 {
		for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			moves = append(moves, p.buildMove(from, to, flags, promo))
		}
		return moves
	}
	return append(moves, p.buildMove(from, to, flags, NoPieceType))
}

// castlingMoves emits the castle moves whose rights are intact, whose
// intervening squares are empty, and whose king start, transit and
// destination squares are not attacked.
func (p *Position) castlingMoves(moves []Move, us Color) []Move {
	them := us.Other()
	ksq := p.Kings[us]
	if ksq == NoSquare {
		return moves
	}

	empty := func(sq Square) bool {
		return sq.IsValid() && p.Board[sq] == NoPiece
	}

	if p.Castling.CanCastle(us, true) {
		if empty(ksq+1) && empty(ksq+2) &&
			!p.IsSquareAttacked(ksq, them) &&
			!p.IsSquareAttacked(ksq+1, them) &&
			!p.IsSquareAttacked(ksq+2, them) {
			moves = append(moves, p.buildMove(ksq, ksq+2, FlagKingCastle, NoPieceType))
		}
	}

	if p.Castling.CanCastle(us, false) {
		if empty(ksq-1) && empty(ksq-2) && empty(ksq-3) &&
			!p.IsSquareAttacked(ksq, them) &&
			!p.IsSquareAttacked(ksq-1, them) &&
			!p.IsSquareAttacked(ksq-2, them) {
			moves = append(moves, p.buildMove(ksq, ksq-2, FlagQueenCastle, NoPieceType))
		}
	}

	return moves
}

// buildMove assembles a Move from the board contents. The captured kind is
// read off the destination square, except en passant where it is always a
// pawn; a promotion adds its flag on top of the base flags.
func (p *Position) buildMove(from, to Square, flags MoveFlags, promo PieceType) Move {
	m := Move{
		From:      from,
		To:        to,
		Piece:     p.Board[from].Type(),
		Captured:  NoPieceType,
		Promotion: promo,
		Flags:     flags,
	}
	if promo != NoPieceType {
		m.Flags |= FlagPromotion
	}
	if flags&FlagEnPassant != 0 {
		m.Captured = Pawn
	} else if flags&FlagCapture != 0 {
		m.Captured = p.Board[to].Type()
	}
	return m
}
