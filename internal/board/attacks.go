package board

// Movement offsets in the 0x88 index space. North is +16.
var (
	pawnPush = [2]Square{16, -16} // [Color]

	knightOffsets = []Square{-33, -31, -18, -14, 14, 18, 31, 33}
	bishopOffsets = []Square{-17, -15, 15, 17}
	rookOffsets   = []Square{-16, -1, 1, 16}
	royalOffsets  = []Square{-17, -16, -15, -1, 1, 15, 16, 17} // queen and king

	pieceOffsets = [6][]Square{
		Pawn:   nil, // pawns are generated directionally
		Knight: knightOffsets,
		Bishop: bishopOffsets,
		Rook:   rookOffsets,
		Queen:  royalOffsets,
		King:   royalOffsets,
	}
)

// Attack geometry, built once at startup. For the square delta to-from
// (shifted by 0x77 into table range), attackTable records which piece types
// can geometrically reach the destination ignoring blockers, and rayTable the
// single-step direction a sliding piece must walk to get there. Pawn entries
// cover both colors; the attacker's direction is disambiguated by the sign of
// the delta.
var (
	attackTable [240]uint8
	rayTable    [240]Square
)

func attackIndex(from, to Square) int {
	return int(to-from) + 0x77
}

func init() {
	// Pawn captures: one diagonal step forward. White attacks upward
	// (positive deltas), black downward; both share the pawn bit.
	for _, d := range []Square{15, 17, -15, -17} {
		attackTable[int(d)+0x77] |= 1 << Pawn
	}

	for _, pt := range []PieceType{Knight, King} {
		for _, off := range pieceOffsets[pt] {
			attackTable[int(off)+0x77] |= 1 << pt
		}
	}

	for _, pt := range []PieceType{Bishop, Rook, Queen} {
		for _, off := range pieceOffsets[pt] {
			d := off
			for steps := 0; steps < 7; steps++ {
				attackTable[int(d)+0x77] |= 1 << pt
				rayTable[int(d)+0x77] = off
				d += off
			}
		}
	}
}

// IsSquareAttacked returns true if the square is attacked by the given color.
// Knights, kings and pawns are settled by table membership alone; sliding
// pieces additionally walk the stored ray and fail on the first blocker.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.IsValid() {
		return false
	}
	for from := A1; from <= H8; from++ {
		if !from.IsValid() {
			from += 7
			continue
		}
		pc := p.Board[from]
		if pc == NoPiece || pc.Color() != by {
			continue
		}

		pt := pc.Type()
		idx := attackIndex(from, sq)
		if attackTable[idx]&(1<<pt) == 0 {
			continue
		}

		if pt == Pawn {
			// The table admits both pawn directions; keep only the
			// attacker moving toward sq.
			if (sq > from) == (by == White) {
				return true
			}
			continue
		}

		if pt == Knight || pt == King {
			return true
		}

		step := rayTable[idx]
		blocked := false
		for s := from + step; s != sq; s += step {
			if p.Board[s] != NoPiece {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}
	return false
}
