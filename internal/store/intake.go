package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
)

type LogIntakeInput struct {
	UserID   string
	AmountMl int
	LoggedAt time.Time // defaults to now
}

// LogIntake appends one intake event. The calendar day is fixed here, from
// the local clock at log time, and is the only day-bucketing key used by any
// later query. Zero millilitres is a valid entry: "logged 0 ml" and "did not
// log" are different facts.
func (s *Store) LogIntake(in LogIntakeInput) (model.IntakeEvent, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return model.IntakeEvent{}, fmt.Errorf("%w: user id is required", hydration.ErrInvalidArgument)
	}
	if in.AmountMl < 0 {
		return model.IntakeEvent{}, fmt.Errorf("%w: amount must be >= 0 ml, got %d", hydration.ErrInvalidArgument, in.AmountMl)
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}

	e := model.IntakeEvent{
		ID:       uuid.NewString(),
		UserID:   in.UserID,
		AmountMl: in.AmountMl,
		Date:     in.LoggedAt.Format(hydration.DateLayout),
		LoggedAt: in.LoggedAt,
	}
	_, err := s.db.Exec(`
INSERT INTO water_intake(id, user_id, amount_ml, intake_date, logged_at)
VALUES(?, ?, ?, ?, ?)
`, e.ID, e.UserID, e.AmountMl, e.Date, e.LoggedAt.Format(time.RFC3339))
	if err != nil {
		return model.IntakeEvent{}, fmt.Errorf("%w: insert intake: %v", ErrPersistence, err)
	}
	s.log.Debug("logged intake", "user", e.UserID, "event_id", e.ID, "amount_ml", e.AmountMl, "date", e.Date)
	return e, nil
}

// ListAll returns every event for a user in no guaranteed order; aggregation
// must not rely on ordering.
func (s *Store) ListAll(userID string) ([]model.IntakeEvent, error) {
	return s.listIntake(`SELECT id, user_id, amount_ml, intake_date, logged_at FROM water_intake WHERE user_id = ?`, userID)
}

// ListRange returns events whose stored calendar date falls within
// [fromDate, toDate], newest first.
func (s *Store) ListRange(userID, fromDate, toDate string) ([]model.IntakeEvent, error) {
	for _, d := range []string{fromDate, toDate} {
		if _, err := time.Parse(hydration.DateLayout, d); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", hydration.ErrInvalidArgument, d)
		}
	}
	if fromDate > toDate {
		return nil, fmt.Errorf("%w: from date must be <= to date", hydration.ErrInvalidArgument)
	}
	return s.listIntake(`
SELECT id, user_id, amount_ml, intake_date, logged_at
FROM water_intake
WHERE user_id = ? AND intake_date >= ? AND intake_date <= ?
ORDER BY logged_at DESC
`, userID, fromDate, toDate)
}

// Recent returns the latest n events, newest first.
func (s *Store) Recent(userID string, n int) ([]model.IntakeEvent, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: limit must be > 0, got %d", hydration.ErrInvalidArgument, n)
	}
	return s.listIntake(`
SELECT id, user_id, amount_ml, intake_date, logged_at
FROM water_intake
WHERE user_id = ?
ORDER BY logged_at DESC
LIMIT ?
`, userID, n)
}

func (s *Store) listIntake(query string, args ...any) ([]model.IntakeEvent, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query intake: %v", ErrPersistence, err)
	}
	defer rows.Close()

	events := make([]model.IntakeEvent, 0)
	for rows.Next() {
		var (
			e           model.IntakeEvent
			loggedAtRaw string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.AmountMl, &e.Date, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("%w: scan intake row: %v", ErrPersistence, err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: parse logged_at for event %s: %v", ErrPersistence, e.ID, err)
		}
		e.LoggedAt = loggedAt
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate intake rows: %v", ErrPersistence, err)
	}
	s.log.Debug("listed intake", "rows", len(events))
	return events, nil
}
