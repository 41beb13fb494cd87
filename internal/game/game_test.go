package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fianchetto/engine/internal/board"
)

func TestFoolsMateFlow(t *testing.T) {
	g := New()

	line := []struct {
		san   string
		color board.Color
	}{
		{"f3", board.White},
		{"e5", board.Black},
		{"g4", board.White},
		{"Qh4#", board.Black},
	}

	for _, step := range line {
		applied, ok := g.ApplySAN(step.san)
		if !ok {
			t.Fatalf("ApplySAN(%q) failed in %s", step.san, g.FEN())
		}
		if applied.SAN != step.san {
			t.Errorf("applied SAN = %q, want %q", applied.SAN, step.san)
		}
		if applied.Color != step.color {
			t.Errorf("%s played by %v, want %v", step.san, applied.Color, step.color)
		}
	}

	if !g.IsCheckmate() || !g.IsGameOver() {
		t.Error("fool's mate should end the game by checkmate")
	}
	if g.Turn() != board.White {
		t.Errorf("side to move = %v, want white", g.Turn())
	}

	if diff := cmp.Diff([]string{"f3", "e5", "g4", "Qh4#"}, g.HistorySAN()); diff != "" {
		t.Errorf("HistorySAN mismatch (-want +got):\n%s", diff)
	}

	// Undo the mate and the game is live again.
	if _, ok := g.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if g.IsGameOver() {
		t.Error("game should be live after undoing the mate")
	}
}

func TestApplyMoveCoordinates(t *testing.T) {
	g := New()

	applied, ok := g.ApplyMove(MoveInput{From: "e2", To: "e4"})
	if !ok {
		t.Fatal("e2-e4 should apply")
	}
	if applied.SAN != "e4" {
		t.Errorf("SAN = %q, want e4", applied.SAN)
	}

	for _, in := range []MoveInput{
		{From: "e2", To: "e5"},  // not reachable
		{From: "e7", To: "e5"},  // wrong side
		{From: "x9", To: "e4"},  // bad square
		{From: "a2", To: "a4", Promotion: "k"}, // bad promotion piece
	} {
		if _, ok := g.ApplyMove(in); ok {
			t.Errorf("ApplyMove(%+v) should fail", in)
		}
	}
}

func TestApplyMovePromotion(t *testing.T) {
	g, err := NewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	// A promoting move without the promotion piece is rejected.
	if _, ok := g.ApplyMove(MoveInput{From: "a7", To: "a8"}); ok {
		t.Error("promotion without a piece choice should fail")
	}

	applied, ok := g.ApplyMove(MoveInput{From: "a7", To: "a8", Promotion: "q"})
	if !ok {
		t.Fatal("promotion should apply")
	}
	if applied.SAN != "a8=Q" {
		t.Errorf("SAN = %q, want a8=Q", applied.SAN)
	}

	pc, ok := g.Get("a8")
	if !ok || pc != board.WhiteQueen {
		t.Errorf("Get(a8) = %v, %v; want white queen", pc, ok)
	}
}

func TestApplyUCI(t *testing.T) {
	g := New()
	if _, ok := g.ApplyUCI("g1f3"); !ok {
		t.Error("g1f3 should apply")
	}
	if _, ok := g.ApplyUCI("g1f3"); ok {
		t.Error("white move on black's turn should fail")
	}
}

func TestLoadAndReset(t *testing.T) {
	g := New()
	g.ApplyUCI("e2e4")

	if err := g.Load("4k3/8/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(g.History()) != 0 {
		t.Error("Load should discard history")
	}
	if !g.IsInsufficientMaterial() {
		t.Error("bare kings cannot mate")
	}

	if err := g.Load("not a fen"); err == nil {
		t.Error("Load should reject garbage")
	}

	g.Reset()
	if g.FEN() != board.StartFEN {
		t.Errorf("Reset left %s", g.FEN())
	}
}

func TestBoardAndEditing(t *testing.T) {
	g := New()

	grid := g.Board()
	if grid[0][0] != board.WhiteRook {
		t.Errorf("grid[0][0] = %v, want white rook", grid[0][0])
	}

	if _, ok := g.Get("e4"); ok {
		t.Error("e4 is empty at the start")
	}
	if _, ok := g.Get("j9"); ok {
		t.Error("invalid square should report false")
	}

	if g.Put(board.WhiteKing, "d4") {
		t.Error("a second white king should be rejected")
	}
	if !g.Put(board.BlackQueen, "d4") {
		t.Fatal("placing a queen should work")
	}
	pc, ok := g.Remove("d4")
	if !ok || pc != board.BlackQueen {
		t.Errorf("Remove(d4) = %v, %v; want black queen", pc, ok)
	}
}

func TestMovesQueries(t *testing.T) {
	g := New()

	if got := len(g.Moves()); got != 20 {
		t.Errorf("start position has %d moves, want 20", got)
	}
	if got := len(g.MovesFrom("g1")); got != 2 {
		t.Errorf("g1 knight has %d moves, want 2", got)
	}
	if got := len(g.MovesFrom("zz")); got != 0 {
		t.Errorf("invalid square yielded %d moves", got)
	}
	if got := len(g.MovesOf(board.Knight)); got != 4 {
		t.Errorf("knights have %d moves, want 4", got)
	}
}

func TestBestMoveDelegation(t *testing.T) {
	g := New()
	before := g.FEN()

	m, ok := g.BestMove(2)
	if !ok {
		t.Fatal("search should produce a move")
	}
	if g.FEN() != before {
		t.Error("search must not change the game state")
	}
	if _, ok := g.ApplyUCI(m.String()); !ok {
		t.Errorf("engine move %s should be applicable", m)
	}
}
