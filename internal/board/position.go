package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// undoEntry captures the pre-move state that a move cannot reconstruct on its
// own. Together with the Move it makes apply exactly invertible without
// cloning the board.
type undoEntry struct {
	move           Move
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square
	halfMoveClock  int
	fullMoveNumber int
	kings          [2]Square
}

// Position represents a complete chess position. It is mutated exclusively
// through MakeMove and UndoMove (plus the Load/Reset/Put/Remove editing
// operations) and is not safe for concurrent use: make/undo leaves it in an
// intermediate state mid-recursion.
type Position struct {
	// 0x88 board. Half of the array is padding whose indices all have a
	// 0x88 bit set; the padding never holds a piece.
	Board [128]Piece

	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // target square, NoSquare if none
	HalfMoveClock  int    // plies since last pawn move or capture
	FullMoveNumber int    // starts at 1, increments after black's move

	// King locations, cached for O(1) check tests. Always agrees with
	// Board contents.
	Kings [2]Square

	history []undoEntry
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Clear resets the position to an empty board with no history.
func (p *Position) Clear() {
	*p = Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	p.Kings[White] = NoSquare
	p.Kings[Black] = NoSquare
}

// Reset discards all history and reloads the standard starting position.
func (p *Position) Reset() {
	p.LoadFEN(StartFEN)
}

// PieceAt returns the piece at the given square, or NoPiece if empty or the
// square is off the board.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.Board[sq]
}

// Put places a piece on a square. It returns false without touching the
// position if the piece or square is invalid, or if the placement would give
// a side a second king on another square.
func (p *Position) Put(piece Piece, sq Square) bool {
	if !sq.IsValid() || piece == NoPiece || piece.Type() == NoPieceType {
		return false
	}
	if piece.Type() == King {
		if k := p.Kings[piece.Color()]; k != NoSquare && k != sq {
			return false
		}
		p.Kings[piece.Color()] = sq
	}
	if old := p.Board[sq]; old != NoPiece && old.Type() == King && old != piece {
		p.Kings[old.Color()] = NoSquare
	}
	p.Board[sq] = piece
	return true
}

// Remove takes the piece off a square, returning it. The bool result is
// false if the square was empty or off the board.
func (p *Position) Remove(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	piece := p.Board[sq]
	if piece == NoPiece {
		return NoPiece, false
	}
	p.Board[sq] = NoPiece
	if piece.Type() == King {
		p.Kings[piece.Color()] = NoSquare
	}
	return piece, true
}

// Grid returns an 8x8 snapshot of the board, ranks 0-7 bottom to top, for
// external rendering. Empty squares hold NoPiece.
func (p *Position) Grid() [8][8]Piece {
	var g [8][8]Piece
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			g[rank][file] = p.Board[NewSquare(file, rank)]
		}
	}
	return g
}

// History returns the applied moves in order.
func (p *Position) History() []Move {
	moves := make([]Move, len(p.history))
	for i, e := range p.history {
		moves[i] = e.move
	}
	return moves
}

// MakeMove applies a legal or pseudo-legal move. No validation happens here;
// the caller establishes legality through LegalMoves or the make/undo check.
func (p *Position) MakeMove(m Move) {
	us := p.SideToMove
	them := us.Other()

	p.history = append(p.history, undoEntry{
		move:           m,
		sideToMove:     us,
		castling:       p.Castling,
		enPassant:      p.EnPassant,
		halfMoveClock:  p.HalfMoveClock,
		fullMoveNumber: p.FullMoveNumber,
		kings:          p.Kings,
	})

	p.Board[m.From] = NoPiece
	p.Board[m.To] = NewPiece(m.Piece, us)

	// The pawn taken en passant does not sit on the destination square.
	if m.Flags&FlagEnPassant != 0 {
		if us == White {
			p.Board[m.To-16] = NoPiece
		} else {
			p.Board[m.To+16] = NoPiece
		}
	}

	if m.Flags&FlagPromotion != 0 {
		p.Board[m.To] = NewPiece(m.Promotion, us)
	}

	if m.Piece == King {
		p.Kings[us] = m.To

		if m.Flags&FlagKingCastle != 0 {
			p.Board[m.To-1] = p.Board[m.To+1]
			p.Board[m.To+1] = NoPiece
		} else if m.Flags&FlagQueenCastle != 0 {
			p.Board[m.To+1] = p.Board[m.To-2]
			p.Board[m.To-2] = NoPiece
		}

		if us == White {
			p.Castling &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.Castling &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	// A rook moving or being captured clears its individual right.
	if m.From == A1 || m.To == A1 {
		p.Castling &^= WhiteQueenSideCastle
	}
	if m.From == H1 || m.To == H1 {
		p.Castling &^= WhiteKingSideCastle
	}
	if m.From == A8 || m.To == A8 {
		p.Castling &^= BlackQueenSideCastle
	}
	if m.From == H8 || m.To == H8 {
		p.Castling &^= BlackKingSideCastle
	}

	// En passant target lives for exactly one ply.
	if m.Flags&FlagDoublePush != 0 {
		p.EnPassant = (m.From + m.To) / 2
	} else {
		p.EnPassant = NoSquare
	}

	if m.Piece == Pawn || m.IsCapture() {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
}

// UndoMove reverts the most recent move exactly. The bool result is false if
// there is nothing to undo.
func (p *Position) UndoMove() (Move, bool) {
	if len(p.history) == 0 {
		return Move{}, false
	}

	e := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	m := e.move
	us := e.sideToMove
	them := us.Other()

	p.SideToMove = us
	p.Castling = e.castling
	p.EnPassant = e.enPassant
	p.HalfMoveClock = e.halfMoveClock
	p.FullMoveNumber = e.fullMoveNumber
	p.Kings = e.kings

	// Moving the piece back also demotes a promotion.
	p.Board[m.From] = NewPiece(m.Piece, us)
	p.Board[m.To] = NoPiece

	if m.Flags&FlagEnPassant != 0 {
		if us == White {
			p.Board[m.To-16] = NewPiece(Pawn, them)
		} else {
			p.Board[m.To+16] = NewPiece(Pawn, them)
		}
	} else if m.Flags&FlagCapture != 0 {
		p.Board[m.To] = NewPiece(m.Captured, them)
	}

	if m.Flags&FlagKingCastle != 0 {
		p.Board[m.To+1] = p.Board[m.To-1]
		p.Board[m.To-1] = NoPiece
	} else if m.Flags&FlagQueenCastle != 0 {
		p.Board[m.To-2] = p.Board[m.To+1]
		p.Board[m.To+1] = NoPiece
	}

	return m, true
}

// Material returns the material balance in centipawns, white counting
// positively and black negatively.
func (p *Position) Material() int {
	score := 0
	for sq := A1; sq <= H8; sq++ {
		if !sq.IsValid() {
			sq += 7
			continue
		}
		pc := p.Board[sq]
		if pc == NoPiece {
			continue
		}
		if pc.Color() == White {
			score += pc.Value()
		} else {
			score -= pc.Value()
		}
	}
	return score
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.Board[NewSquare(file, rank)]
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.Castling)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	return s
}
