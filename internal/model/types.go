package model

import "time"

// IntakeEvent is a single logged drink. Date is the local calendar day in
// effect when the event was logged and never changes afterwards, even if a
// later query runs in a different timezone or across midnight.
type IntakeEvent struct {
	ID       string
	UserID   string
	AmountMl int
	Date     string // YYYY-MM-DD, fixed at append time
	LoggedAt time.Time
}

type Goal struct {
	ID            int64
	GoalMl        int
	EffectiveDate string
	CreatedAt     time.Time
}
