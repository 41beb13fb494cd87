package board

import "testing"

func TestSANGeneration(t *testing.T) {
	cases := []struct {
		fen  string
		uci  string
		want string
	}{
		{StartFEN, "e2e4", "e4"},
		{StartFEN, "g1f3", "Nf3"},
		{"rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR w KQkq e6 0 2", "d4e5", "dxe5"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", "a8=Q"},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", "a8=N"},
		{"1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8q", "axb8=Q+"},
		// Two knights reach d2; files differ, so the file disambiguates.
		{"4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "f3d2", "Nfd2"},
		// Two rooks on the same file; the rank disambiguates.
		{"4k3/8/7R/8/8/8/7R/4K3 w - - 0 1", "h2h4", "R2h4"},
		// Check and mate suffixes.
		{"4k3/8/4K3/8/8/8/8/7R w - - 0 1", "h1h8", "Rh8#"},
		{"4k3/8/8/4K3/8/8/8/7R w - - 0 1", "h1h8", "Rh8+"},
		{"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", "exd6"},
	}

	for _, tc := range cases {
		pos, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}
		m, ok := pos.MoveFromUCI(tc.uci)
		if !ok {
			t.Fatalf("%s: move %s not legal", tc.fen, tc.uci)
		}
		if got := pos.SAN(m); got != tc.want {
			t.Errorf("SAN(%s in %s) = %q, want %q", tc.uci, tc.fen, got, tc.want)
		}
	}
}

func TestSANDoesNotMutate(t *testing.T) {
	pos := NewPosition()
	m, _ := pos.MoveFromUCI("e2e4")
	before := pos.FEN()
	_ = pos.SAN(m)
	if got := pos.FEN(); got != before {
		t.Errorf("SAN rendering changed the position:\nbefore: %s\n after: %s", before, got)
	}
}

func TestMoveFromSAN(t *testing.T) {
	pos := NewPosition()

	m, ok := pos.MoveFromSAN("Nf3")
	if !ok {
		t.Fatal("Nf3 should resolve in the start position")
	}
	if m.From != G1 || m.To != F3 {
		t.Errorf("Nf3 resolved to %s", m)
	}

	// Decorations and alternate castle spellings are tolerated.
	if _, ok := pos.MoveFromSAN("e4!?"); !ok {
		t.Error("annotated SAN should still resolve")
	}

	castlePos, _ := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	for _, s := range []string{"O-O", "0-0", "0-0!", "0-0!?", "O-O-O", "0-0-0", "0-0-0!?"} {
		if _, ok := castlePos.MoveFromSAN(s); !ok {
			t.Errorf("castle spelling %q should resolve", s)
		}
	}

	for _, s := range []string{"Nf6", "Ke2", "e5", "Qh5", "xyzzy", ""} {
		if _, ok := pos.MoveFromSAN(s); ok {
			t.Errorf("%q should not resolve to a legal white move", s)
		}
	}
}

func TestMoveFromUCI(t *testing.T) {
	pos := NewPosition()

	if _, ok := pos.MoveFromUCI("e2e4"); !ok {
		t.Error("e2e4 should resolve")
	}
	for _, s := range []string{"e2e5", "e7e5", "e2", "zz99", "e2e4q", ""} {
		if _, ok := pos.MoveFromUCI(s); ok {
			t.Errorf("%q should not resolve", s)
		}
	}

	promo, _ := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	m, ok := promo.MoveFromUCI("a7a8r")
	if !ok || m.Promotion != Rook {
		t.Errorf("a7a8r resolved to %v, %v; want rook promotion", m, ok)
	}
	if _, ok := promo.MoveFromUCI("a7a8"); ok {
		t.Error("promotion without a piece suffix should not resolve")
	}
}

func TestSANLine(t *testing.T) {
	pos := NewPosition()
	playUCI(t, pos, "f2f3", "e7e5", "g2g4", "d8h4")

	moves := pos.History()
	// Rewind to the start so the line renders from the opening position.
	for range moves {
		pos.UndoMove()
	}

	got := pos.SANLine(moves)
	want := []string{"f3", "e5", "g4", "Qh4#"}
	if len(got) != len(want) {
		t.Fatalf("SANLine returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SANLine[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if pos.FEN() != StartFEN {
		t.Errorf("SANLine disturbed the position: %s", pos.FEN())
	}
}
