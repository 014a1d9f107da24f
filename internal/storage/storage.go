// Package storage persists analysis reports in a local BadgerDB so a
// position analyzed once is served from cache afterwards.
package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const reportPrefix = "report:"

// Report is a cached single-position analysis.
type Report struct {
	FEN       string        `json:"fen"`
	BestMove  string        `json:"best_move"`
	Score     float64       `json:"score"`
	Depth     int           `json:"depth"`
	InCheck   bool          `json:"in_check"`
	CheckKind string        `json:"check_kind,omitempty"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Store wraps a BadgerDB instance holding analysis reports.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logging is noise here

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

func reportKey(fen string) []byte {
	return []byte(reportPrefix + fen)
}

// SaveReport stores a report keyed by its FEN.
func (s *Store) SaveReport(r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reportKey(r.FEN), data)
	})
}

// LoadReport fetches the cached report for a FEN. A missing entry is not
// an error; it is reported through the boolean.
func (s *Store) LoadReport(fen string) (*Report, bool, error) {
	var report Report
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(reportKey(fen))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &report); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil || !found {
		return nil, false, err
	}
	return &report, true, nil
}
