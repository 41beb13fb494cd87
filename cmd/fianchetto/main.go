// Command fianchetto is a terminal driver for the chess engine: a human
// plays against the fixed-depth search, with finished games recorded to the
// local store.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fianchetto/engine/internal/board"
	"github.com/fianchetto/engine/internal/engine"
	"github.com/fianchetto/engine/internal/game"
	"github.com/fianchetto/engine/internal/storage"
)

var (
	startFEN  = flag.String("fen", "", "start from this FEN instead of the initial position")
	depth     = flag.Int("depth", engine.DefaultDepth, "engine search depth")
	playBlack = flag.Bool("black", false, "play the black pieces")
	dbDir     = flag.String("db", "", "database directory (default: platform data dir)")
	noSave    = flag.Bool("nosave", false, "do not record the finished game")
)

func main() {
	flag.Parse()

	g := game.New()
	if *startFEN != "" {
		if err := g.Load(*startFEN); err != nil {
			log.Fatalf("invalid FEN: %v", err)
		}
	}

	var store *storage.Store
	if !*noSave {
		dir := *dbDir
		if dir == "" {
			var err error
			dir, err = storage.DatabaseDir()
			if err != nil {
				log.Fatalf("database directory: %v", err)
			}
		}
		var err error
		store, err = storage.Open(dir)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer store.Close()
	}

	humanColor := board.White
	if *playBlack {
		humanColor = board.Black
	}

	initialFEN := g.FEN()
	scanner := bufio.NewScanner(os.Stdin)

	for !g.IsGameOver() {
		if g.Turn() == humanColor {
			if !humanTurn(g, scanner) {
				return
			}
			continue
		}

		m, ok := g.BestMove(*depth)
		if !ok {
			break
		}
		applied, _ := g.ApplyUCI(m.String())
		log.Printf("engine plays %s", applied.SAN)
		printBoard(g)
	}

	result, method := outcome(g)
	fmt.Printf("\nGame over: %s (%s)\n", result, method)

	if store != nil {
		rec := &storage.GameRecord{
			StartFEN: initialFEN,
			FinalFEN: g.FEN(),
			Moves:    g.HistorySAN(),
			Result:   result,
			Method:   method,
		}
		if err := store.SaveGame(rec); err != nil {
			log.Printf("record game: %v", err)
		} else if stats, err := store.LoadStats(); err == nil {
			fmt.Printf("Recorded. %d games played, white winning %.0f%%.\n",
				stats.GamesPlayed, stats.WinRate())
		}
	}
}

// humanTurn reads and executes one command. It returns false when the player
// quits.
func humanTurn(g *game.Game, scanner *bufio.Scanner) bool {
	printBoard(g)
	if g.InCheck() {
		fmt.Println("Check.")
	}
	fmt.Printf("%s> ", strings.ToLower(g.Turn().String()))

	if !scanner.Scan() {
		return false
	}
	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return true
	}

	switch line {
	case "quit", "exit":
		return false
	case "fen":
		fmt.Println(g.FEN())
	case "moves":
		var sans []string
		for _, m := range g.Moves() {
			sans = append(sans, m.String())
		}
		fmt.Println(strings.Join(sans, " "))
	case "undo":
		// Take back the engine's reply as well.
		g.Undo()
		g.Undo()
	case "history":
		fmt.Println(strings.Join(g.HistorySAN(), " "))
	default:
		if applied, ok := g.ApplySAN(line); ok {
			log.Printf("you play %s", applied.SAN)
		} else if applied, ok := g.ApplyUCI(line); ok {
			log.Printf("you play %s", applied.SAN)
		} else {
			fmt.Println("illegal move or unknown command (try: moves, fen, undo, history, quit)")
		}
	}
	return true
}

func printBoard(g *game.Game) {
	grid := g.Board()
	fmt.Println()
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			pc := grid[rank][file]
			if pc == board.NoPiece {
				fmt.Print(". ")
			} else {
				fmt.Print(pc.String() + " ")
			}
		}
		fmt.Println()
	}
	fmt.Println("\n   a b c d e f g h")
}

// outcome maps the terminal predicates to a score string and method name.
func outcome(g *game.Game) (storage.Result, string) {
	switch {
	case g.IsCheckmate():
		if g.Turn() == board.White {
			return storage.BlackWon, "checkmate"
		}
		return storage.WhiteWon, "checkmate"
	case g.IsStalemate():
		return storage.Drawn, "stalemate"
	case g.IsInsufficientMaterial():
		return storage.Drawn, "insufficient material"
	case g.IsThreefoldRepetition():
		return storage.Drawn, "threefold repetition"
	default:
		return storage.Drawn, "unfinished"
	}
}
