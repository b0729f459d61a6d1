package hydration

import (
	"fmt"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
)

// TrailingSummary returns one DailyTotal per calendar day for the windowDays
// days ending at and including today, oldest first. Days without events are
// zero-filled so downstream charts keep a continuous axis. The input order
// does not matter and the function has no side effects, so repeated calls on
// the same inputs return identical results.
func TrailingSummary(events []model.IntakeEvent, today time.Time, windowDays int) ([]DailyTotal, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: window days must be > 0, got %d", ErrInvalidArgument, windowDays)
	}

	byDate := make(map[string]DailyTotal, windowDays)
	for _, e := range events {
		t := byDate[e.Date]
		t.TotalMl += e.AmountMl
		t.EntryCount++
		byDate[e.Date] = t
	}

	start := beginningOfDay(today).AddDate(0, 0, -(windowDays - 1))
	out := make([]DailyTotal, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		t := byDate[date]
		t.Date = date
		out = append(out, t)
	}
	return out, nil
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
