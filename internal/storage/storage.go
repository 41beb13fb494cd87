// Package storage persists completed games and aggregate statistics. It
// consumes only the engine's outputs (FEN strings, SAN history, game-over
// results) and never touches engine internals.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyStats   = "stats"
	gamePrefix = "game:"
)

// Result is the conventional score string for a finished game.
type Result string

const (
	WhiteWon Result = "1-0"
	BlackWon Result = "0-1"
	Drawn    Result = "1/2-1/2"
)

// GameRecord describes one completed game.
type GameRecord struct {
	StartFEN string    `json:"start_fen"`
	FinalFEN string    `json:"final_fen"`
	Moves    []string  `json:"moves"` // SAN, in order
	Result   Result    `json:"result"`
	Method   string    `json:"method"` // checkmate, stalemate, repetition, material
	Played   time.Time `json:"played"`
}

// Stats aggregates results across recorded games.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Draws       int `json:"draws"`
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a completed game and folds its result into the stats.
func (s *Store) SaveGame(rec *GameRecord) error {
	if rec.Played.IsZero() {
		rec.Played = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.GamesPlayed++
	switch rec.Result {
	case WhiteWon:
		stats.WhiteWins++
	case BlackWon:
		stats.BlackWins++
	case Drawn:
		stats.Draws++
	}

	statsData, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s%d", gamePrefix, rec.Played.UnixNano())
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
}

// Games returns all recorded games in key order (oldest first).
func (s *Store) Games() ([]*GameRecord, error) {
	var games []*GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				rec := &GameRecord{}
				if err := json.Unmarshal(val, rec); err != nil {
					return err
				}
				games = append(games, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return games, err
}

// LoadStats loads the aggregate statistics, returning zeroes if none have
// been recorded yet.
func (s *Store) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// WinRate returns white's win rate as a percentage (0-100).
func (s *Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.WhiteWins) / float64(s.GamesPlayed) * 100
}
