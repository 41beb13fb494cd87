// Package game exposes the engine operations consumed by drivers and
// persistence: move application, status predicates, notation and the
// computer-move search. It owns a single Position and must be called from
// one goroutine at a time.
package game

import (
	"github.com/fianchetto/engine/internal/board"
	"github.com/fianchetto/engine/internal/engine"
)

// MoveInput names a move in board coordinates, the way a driver reports a
// drag from one square to another. Promotion is a piece letter ("q", "r",
// "b", "n") and may be empty for non-promoting moves.
type MoveInput struct {
	From      string
	To        string
	Promotion string
}

// AppliedMove is the verbose result of a successful move: the move itself,
// its SAN rendering against the position it was played in, and the side that
// played it.
type AppliedMove struct {
	board.Move
	SAN   string
	Color board.Color
}

// Game wraps a Position behind the external interface.
type Game struct {
	pos *board.Position
}

// New starts a game from the standard starting position.
func New() *Game {
	return &Game{pos: board.NewPosition()}
}

// NewFromFEN starts a game from an arbitrary position.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: pos}, nil
}

// Load replaces the game with the position described by fen, discarding
// history. A non-nil error means the position is invalid and must not be
// trusted until a successful Load or Reset.
func (g *Game) Load(fen string) error {
	return g.pos.LoadFEN(fen)
}

// Reset discards all history and reloads the starting position.
func (g *Game) Reset() {
	g.pos.Reset()
}

// Moves returns every legal move in verbose form.
func (g *Game) Moves() []board.Move {
	return g.pos.LegalMoves()
}

// MovesFrom returns the legal moves originating on one square, named in
// algebraic notation. An invalid square yields no moves.
func (g *Game) MovesFrom(square string) []board.Move {
	sq, err := board.ParseSquare(square)
	if err != nil {
		return nil
	}
	return g.pos.LegalMovesFrom(sq)
}

// MovesOf returns the legal moves of one piece kind.
func (g *Game) MovesOf(pt board.PieceType) []board.Move {
	return g.pos.LegalMovesOf(pt)
}

// ApplyMove plays a move given in board coordinates. The bool result is
// false, with the position unchanged, when the input does not name a legal
// move (including a missing promotion piece on a promoting move).
func (g *Game) ApplyMove(in MoveInput) (AppliedMove, bool) {
	from, err := board.ParseSquare(in.From)
	if err != nil {
		return AppliedMove{}, false
	}
	to, err := board.ParseSquare(in.To)
	if err != nil {
		return AppliedMove{}, false
	}

	promo := board.NoPieceType
	if in.Promotion != "" {
		promo = board.PieceTypeFromChar(in.Promotion[0])
		switch promo {
		case board.Knight, board.Bishop, board.Rook, board.Queen:
		default:
			return AppliedMove{}, false
		}
	}

	for _, m := range g.pos.LegalMoves() {
		if m.From == from && m.To == to && m.Promotion == promo {
			return g.apply(m), true
		}
	}
	return AppliedMove{}, false
}

// ApplySAN plays a move given in SAN ("Nf3", "exd5", "e8=Q+", "O-O"). The
// bool result is false, with the position unchanged, for unparseable or
// illegal input.
func (g *Game) ApplySAN(san string) (AppliedMove, bool) {
	m, ok := g.pos.MoveFromSAN(san)
	if !ok {
		return AppliedMove{}, false
	}
	return g.apply(m), true
}

// ApplyUCI plays a move given as a UCI string ("e2e4", "e7e8q").
func (g *Game) ApplyUCI(uci string) (AppliedMove, bool) {
	m, ok := g.pos.MoveFromUCI(uci)
	if !ok {
		return AppliedMove{}, false
	}
	return g.apply(m), true
}

func (g *Game) apply(m board.Move) AppliedMove {
	res := AppliedMove{Move: m, SAN: g.pos.SAN(m), Color: g.pos.SideToMove}
	g.pos.MakeMove(m)
	return res
}

// Undo reverts the most recent move. The bool result is false if the history
// is empty.
func (g *Game) Undo() (board.Move, bool) {
	return g.pos.UndoMove()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.pos.InCheck() }

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool { return g.pos.IsCheckmate() }

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool { return g.pos.IsStalemate() }

// IsInsufficientMaterial reports whether neither side can mate.
func (g *Game) IsInsufficientMaterial() bool { return g.pos.IsInsufficientMaterial() }

// IsThreefoldRepetition reports whether the current position has occurred
// three times.
func (g *Game) IsThreefoldRepetition() bool { return g.pos.IsThreefoldRepetition() }

// IsGameOver reports whether the game has ended by mate, stalemate,
// insufficient material or repetition.
func (g *Game) IsGameOver() bool { return g.pos.IsGameOver() }

// Turn returns the side to move.
func (g *Game) Turn() board.Color { return g.pos.SideToMove }

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string { return g.pos.FEN() }

// Board returns an 8x8 snapshot for rendering, ranks bottom to top.
func (g *Game) Board() [8][8]board.Piece { return g.pos.Grid() }

// Get returns the piece on a square. The bool result is false for an empty
// or invalid square.
func (g *Game) Get(square string) (board.Piece, bool) {
	sq, err := board.ParseSquare(square)
	if err != nil {
		return board.NoPiece, false
	}
	pc := g.pos.PieceAt(sq)
	return pc, pc != board.NoPiece
}

// Put places a piece on a square, returning false for invalid input or a
// second same-color king. No mutation occurs on failure.
func (g *Game) Put(piece board.Piece, square string) bool {
	sq, err := board.ParseSquare(square)
	if err != nil {
		return false
	}
	return g.pos.Put(piece, sq)
}

// Remove takes the piece off a square and returns it; false if the square
// was empty or invalid.
func (g *Game) Remove(square string) (board.Piece, bool) {
	sq, err := board.ParseSquare(square)
	if err != nil {
		return board.NoPiece, false
	}
	return g.pos.Remove(sq)
}

// History returns the moves played so far in verbose form.
func (g *Game) History() []board.Move {
	return g.pos.History()
}

// HistorySAN returns the moves played so far as SAN strings. The position is
// unwound to the start and replayed to render each move against the position
// it was played in, then restored exactly.
func (g *Game) HistorySAN() []string {
	moves := g.pos.History()
	for range moves {
		g.pos.UndoMove()
	}
	line := g.pos.SANLine(moves)
	for _, m := range moves {
		g.pos.MakeMove(m)
	}
	return line
}

// BestMove runs the fixed-depth search and returns the engine's choice. The
// bool result is false when the position is terminal. The game state is
// unchanged.
func (g *Game) BestMove(depth int) (board.Move, bool) {
	return engine.BestMove(g.pos, depth)
}
