package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
)

const (
	ConfigDefaultUser      = "default_user"
	ConfigFeedbackEndpoint = "feedback_endpoint"
)

func (s *Store) SetConfig(key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("%w: config key is required", hydration.ErrInvalidArgument)
	}
	_, err := s.db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: set config %q: %v", ErrPersistence, key, err)
	}
	return nil
}

func (s *Store) GetConfig(key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("%w: config key is required", hydration.ErrInvalidArgument)
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get config %q: %v", ErrPersistence, key, err)
	}
	return value, true, nil
}

func (s *Store) ListConfig() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list config: %v", ErrPersistence, err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scan config: %v", ErrPersistence, err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate config: %v", ErrPersistence, err)
	}
	return out, nil
}
