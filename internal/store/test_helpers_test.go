package store_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watertrack.db")
	s, err := store.Open(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.ApplyMigrations(); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
