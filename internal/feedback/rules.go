package feedback

import (
	"context"
	"fmt"
)

// RuleBased is the built-in generator: fixed messages keyed off how far the
// total sits from the daily goal. It never fails.
type RuleBased struct {
	GoalMl int
}

func NewRuleBased(goalMl int) *RuleBased {
	return &RuleBased{GoalMl: goalMl}
}

func (r *RuleBased) Feedback(_ context.Context, todayTotalMl int) (string, error) {
	goal := r.GoalMl
	if goal <= 0 {
		goal = 2000
	}
	switch {
	case todayTotalMl <= 0:
		return "No water logged yet today. Start with a glass now.", nil
	case todayTotalMl < goal/2:
		return fmt.Sprintf("You're at %d ml, under halfway to %d ml. Keep a bottle nearby.", todayTotalMl, goal), nil
	case todayTotalMl < goal:
		return fmt.Sprintf("Good pace: %d ml down, %d ml to go.", todayTotalMl, goal-todayTotalMl), nil
	default:
		return fmt.Sprintf("Goal met at %d ml. Nice work, stay topped up.", todayTotalMl), nil
	}
}
