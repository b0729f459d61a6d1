package watertrack

import (
	"log/slog"
	"os"
	"strings"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/app"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/feedback"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

const fallbackUser = "user123"

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	st, err := store.Open(path, newLogger())
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		return err
	}
	return run(st)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// resolveUser prefers the --user flag, then the configured default user,
// then the stock single-user ID.
func resolveUser(st *store.Store) string {
	if u := strings.TrimSpace(userID); u != "" {
		return u
	}
	if configured, ok, err := st.GetConfig(store.ConfigDefaultUser); err == nil && ok && configured != "" {
		return configured
	}
	return fallbackUser
}

// newGenerator wires the feedback generator once per invocation: the remote
// service when an endpoint is configured, the built-in rules otherwise.
func newGenerator(st *store.Store, goalMl int) feedback.Generator {
	if endpoint, ok, err := st.GetConfig(store.ConfigFeedbackEndpoint); err == nil && ok && endpoint != "" {
		return &feedback.Remote{Endpoint: endpoint}
	}
	return feedback.NewRuleBased(goalMl)
}
