package hydration

import "fmt"

// DefaultGoalMl is the daily target used when the user never set one.
const DefaultGoalMl = 2000

type GoalProgress struct {
	GoalMl           int     `json:"goal_ml"`
	TodayTotalMl     int     `json:"today_total_ml"`
	RemainingMl      int     `json:"remaining_ml"`
	ProgressFraction float64 `json:"progress_fraction"`
}

// Progress computes remaining intake and goal completion for a day.
// Remaining floors at zero and the fraction caps at 1 once the goal is met.
func Progress(todayTotalMl, goalMl int) (GoalProgress, error) {
	if goalMl <= 0 {
		return GoalProgress{}, fmt.Errorf("%w: goal must be > 0 ml, got %d", ErrInvalidArgument, goalMl)
	}
	if todayTotalMl < 0 {
		return GoalProgress{}, fmt.Errorf("%w: today's total must be >= 0 ml, got %d", ErrInvalidArgument, todayTotalMl)
	}
	p := GoalProgress{
		GoalMl:       goalMl,
		TodayTotalMl: todayTotalMl,
		RemainingMl:  goalMl - todayTotalMl,
	}
	if p.RemainingMl < 0 {
		p.RemainingMl = 0
	}
	p.ProgressFraction = float64(todayTotalMl) / float64(goalMl)
	if p.ProgressFraction > 1 {
		p.ProgressFraction = 1
	}
	return p, nil
}
