package board

import "strings"

// MoveFlags is the set of properties a move can carry. Promotion combines
// with quiet or capture; the rest are mutually exclusive.
type MoveFlags uint8

const (
	FlagQuiet MoveFlags = 1 << iota
	FlagCapture
	FlagDoublePush
	FlagEnPassant
	FlagPromotion
	FlagKingCastle
	FlagQueenCastle
)

// Move describes a move in board coordinates. Together with the state
// snapshot taken before it was applied, a Move is fully reversible.
type Move struct {
	From      Square
	To        Square
	Piece     PieceType
	Captured  PieceType // NoPieceType if nothing was captured
	Promotion PieceType // NoPieceType if not a promotion
	Flags     MoveFlags
}

// IsCapture returns true if the move takes a piece, en passant included.
func (m Move) IsCapture() bool {
	return m.Flags&(FlagCapture|FlagEnPassant) != 0
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flags&FlagPromotion != 0
}

// IsCastle returns true for either castling move.
func (m Move) IsCastle() bool {
	return m.Flags&(FlagKingCastle|FlagQueenCastle) != 0
}

// String returns the UCI form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m.From == m.To {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}
	return s
}

// MoveFromUCI resolves a UCI-style move string ("e2e4", "e7e8q") against the
// current legal moves. The bool result is false when the string is malformed
// or names no legal move; the position is never modified on failure.
func (p *Position) MoveFromUCI(s string) (Move, bool) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, false
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, false
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, false
	}

	promo := NoPieceType
	if len(s) == 5 {
		promo = PieceTypeFromChar(s[4])
		switch promo {
		case Knight, Bishop, Rook, Queen:
		default:
			return Move{}, false
		}
	}

	for _, m := range p.LegalMoves() {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, true
		}
	}
	return Move{}, false
}

// MoveFromSAN resolves a SAN string against the current legal moves by
// rendering each candidate and comparing the stripped forms. Unmatched input
// yields no move rather than an error.
func (p *Position) MoveFromSAN(s string) (Move, bool) {
	want := stripSAN(s)
	if want == "" {
		return Move{}, false
	}
	for _, m := range p.LegalMoves() {
		if stripSAN(p.SAN(m)) == want {
			return m, true
		}
	}
	return Move{}, false
}

// stripSAN normalizes a SAN token for comparison: zero-style castling is
// rewritten to O-O form, and check, mate and annotation suffixes go away.
func stripSAN(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0-0-0") {
		s = "O-O-O" + s[5:]
	} else if strings.HasPrefix(s, "0-0") {
		s = "O-O" + s[3:]
	}
	return strings.TrimRight(s, "+#!?")
}
