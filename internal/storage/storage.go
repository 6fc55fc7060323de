package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefixPerft = "perft|"

// PerftRecord is a stored perft result.
type PerftRecord struct {
	FEN      string           `json:"fen"`
	Depth    int              `json:"depth"`
	Nodes    int64            `json:"nodes"`
	Divide   map[string]int64 `json:"divide,omitempty"`
	Elapsed  time.Duration    `json:"elapsed"`
	Recorded time.Time        `json:"recorded"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the store in the default database directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the store in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open perft store: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// positionKey keeps the FEN fields that determine the move tree; the clocks
// do not change perft results.
func positionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s%s|%02d", keyPrefixPerft, positionKey(fen), depth))
}

// SavePerft stores rec, replacing any earlier result for the same position
// and depth.
func (s *Storage) SavePerft(rec *PerftRecord) error {
	if rec.Recorded.IsZero() {
		rec.Recorded = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(rec.FEN, rec.Depth), data)
	})
}

// LoadPerft returns the stored result for fen at depth. The boolean is false
// when nothing has been stored.
func (s *Storage) LoadPerft(fen string, depth int) (*PerftRecord, bool, error) {
	var rec *PerftRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			rec = &PerftRecord{}
			return json.Unmarshal(val, rec)
		})
	})

	return rec, rec != nil, err
}

// ListPerft returns every stored result for fen ordered by depth.
func (s *Storage) ListPerft(fen string) ([]*PerftRecord, error) {
	var records []*PerftRecord
	prefix := []byte(keyPrefixPerft + positionKey(fen) + "|")

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				rec := &PerftRecord{}
				if err := json.Unmarshal(val, rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return records, err
}

// DeletePerft removes the stored result for fen at depth, if any.
func (s *Storage) DeletePerft(fen string, depth int) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(perftKey(fen, depth))
	})
}
