package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// ErrPersistence marks failures of the underlying sqlite store. They are
// surfaced to the caller unmodified and never retried: retrying a log action
// that may have landed would double-count intake.
var ErrPersistence = errors.New("persistence error")

// Store is the event-store adapter. It owns the sqlite handle and the logger
// injected at process start; the aggregation core never sees this type.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", ErrPersistence, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: ping sqlite database: %v", ErrPersistence, err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("%w: enable foreign keys: %v", ErrPersistence, err)
	}
	logger.Debug("opened sqlite store", "path", path)
	return &Store{db: db, log: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
