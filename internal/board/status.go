package board

// InCheck returns true if the side to move has its king attacked.
func (p *Position) InCheck() bool {
	ksq := p.Kings[p.SideToMove]
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, p.SideToMove.Other())
}

// IsCheckmate returns true if the side to move is in check with no legal
// moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is not in check but has no
// legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsGameOver returns true once the game has ended by checkmate, stalemate,
// insufficient material or threefold repetition.
func (p *Position) IsGameOver() bool {
	return p.IsCheckmate() || p.IsStalemate() ||
		p.IsInsufficientMaterial() || p.IsThreefoldRepetition()
}

// IsInsufficientMaterial returns true when neither side can possibly deliver
// checkmate: bare kings, a lone minor piece, or bishops (any number, either
// side) all restricted to squares of one shade.
func (p *Position) IsInsufficientMaterial() bool {
	pieces := 0
	knights := 0
	bishops := 0
	shadeSum := 0

	for sq := A1; sq <= H8; sq++ {
		if !sq.IsValid() {
			sq += 7
			continue
		}
		pc := p.Board[sq]
		if pc == NoPiece {
			continue
		}
		pieces++
		switch pc.Type() {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			knights++
		case Bishop:
			bishops++
			shadeSum += sq.Shade()
		}
	}

	switch {
	case pieces == 2:
		// King vs king.
		return true
	case pieces == 3 && (knights == 1 || bishops == 1):
		// King and one minor vs king.
		return true
	case pieces == bishops+2:
		// Kings and bishops only: drawn when every bishop stands on the
		// same shade.
		return shadeSum == 0 || shadeSum == bishops
	}

	return false
}

// IsThreefoldRepetition reports whether any position has occurred three or
// more times over the game so far, the current one included. Positions are
// compared on placement, side to move, castling rights and en passant target
// only. The whole history is unwound and replayed through make/undo, which is
// linear in its length; the position is restored exactly before returning.
func (p *Position) IsThreefoldRepetition() bool {
	var undone []Move
	for {
		m, ok := p.UndoMove()
		if !ok {
			break
		}
		undone = append(undone, m)
	}

	counts := make(map[string]int, len(undone)+1)
	repetition := false
	for {
		key := p.repetitionKey()
		counts[key]++
		if counts[key] >= 3 {
			repetition = true
		}
		if len(undone) == 0 {
			break
		}
		p.MakeMove(undone[len(undone)-1])
		undone = undone[:len(undone)-1]
	}

	return repetition
}
