package hydration

import "github.com/bhavesharora02/Euron-Water-Supply/internal/model"

// DateLayout is the calendar-day format used everywhere a day is addressed.
const DateLayout = "2006-01-02"

type DailyTotal struct {
	Date       string `json:"date"`
	TotalMl    int    `json:"total_ml"`
	EntryCount int    `json:"entry_count"`
}

// DailyTotalFor sums the events whose stored calendar date equals date.
// The stored date is authoritative: rebucketing from LoggedAt at query time
// would drift whenever the local timezone changed between log and query.
// A user with no events gets a zero total, not an error.
func DailyTotalFor(events []model.IntakeEvent, date string) DailyTotal {
	out := DailyTotal{Date: date}
	for _, e := range events {
		if e.Date != date {
			continue
		}
		out.TotalMl += e.AmountMl
		out.EntryCount++
	}
	return out
}
