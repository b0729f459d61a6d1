package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
)

type SetGoalInput struct {
	UserID        string
	GoalMl        int
	EffectiveDate string // defaults to today
}

// SetGoal records a daily target effective from a date. Setting a goal twice
// for the same effective date overwrites it.
func (s *Store) SetGoal(in SetGoalInput) error {
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		return fmt.Errorf("%w: user id is required", hydration.ErrInvalidArgument)
	}
	if in.GoalMl <= 0 {
		return fmt.Errorf("%w: goal must be > 0 ml, got %d", hydration.ErrInvalidArgument, in.GoalMl)
	}
	in.EffectiveDate = strings.TrimSpace(in.EffectiveDate)
	if in.EffectiveDate == "" {
		in.EffectiveDate = time.Now().Format(hydration.DateLayout)
	}
	if _, err := time.Parse(hydration.DateLayout, in.EffectiveDate); err != nil {
		return fmt.Errorf("%w: invalid effective date %q, expected YYYY-MM-DD", hydration.ErrInvalidArgument, in.EffectiveDate)
	}

	_, err := s.db.Exec(`
INSERT INTO goals(user_id, goal_ml, effective_date)
VALUES(?, ?, ?)
ON CONFLICT(user_id, effective_date) DO UPDATE SET goal_ml=excluded.goal_ml
`, in.UserID, in.GoalMl, in.EffectiveDate)
	if err != nil {
		return fmt.Errorf("%w: set goal: %v", ErrPersistence, err)
	}
	s.log.Debug("set goal", "user", in.UserID, "goal_ml", in.GoalMl, "effective", in.EffectiveDate)
	return nil
}

// CurrentGoalMl resolves the goal in effect at date, falling back to the
// default when the user never set one.
func (s *Store) CurrentGoalMl(userID, date string) (int, error) {
	g, err := s.goalAt(userID, date)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return hydration.DefaultGoalMl, nil
	}
	return g.GoalMl, nil
}

func (s *Store) goalAt(userID, date string) (*model.Goal, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = time.Now().Format(hydration.DateLayout)
	}
	if _, err := time.Parse(hydration.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", hydration.ErrInvalidArgument, date)
	}

	var g model.Goal
	err := s.db.QueryRow(`
SELECT id, goal_ml, effective_date, created_at
FROM goals
WHERE user_id = ? AND effective_date <= ?
ORDER BY effective_date DESC
LIMIT 1
`, userID, date).Scan(&g.ID, &g.GoalMl, &g.EffectiveDate, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: goal for %s at %s: %v", ErrPersistence, userID, date, err)
	}
	return &g, nil
}

func (s *Store) GoalHistory(userID string) ([]model.Goal, error) {
	rows, err := s.db.Query(`
SELECT id, goal_ml, effective_date, created_at
FROM goals
WHERE user_id = ?
ORDER BY effective_date DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list goal history: %v", ErrPersistence, err)
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.ID, &g.GoalMl, &g.EffectiveDate, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan goal history: %v", ErrPersistence, err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate goal history: %v", ErrPersistence, err)
	}
	return goals, nil
}
