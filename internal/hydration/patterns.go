package hydration

import (
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
)

// Monday first, the way the week reads on a chart axis. time.Weekday counts
// from Sunday, hence the index shuffle in weekdayIndex.
var weekdayLabels = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// PatternBucket is one slot of a behavioral profile. MeanMl is nil when the
// bucket has no observations: a zero mean would claim "this user drinks 0 ml
// on Tuesdays", which is a different statement from "no data for Tuesdays",
// and conflating the two corrupts comparisons against populated buckets.
type PatternBucket struct {
	Label   string   `json:"label"`
	Entries int      `json:"entries"`
	MeanMl  *float64 `json:"mean_ml,omitempty"`
}

type PatternProfile struct {
	ByWeekday [7]PatternBucket  `json:"by_weekday"`
	ByHour    [24]PatternBucket `json:"by_hour"`
}

// Patterns reduces the entire event history (never a trailing window) into
// mean intake per weekday and per hour of day. The weekday comes from the
// event's stored calendar date; the hour from the stored timestamp's local
// clock reading at log time.
func Patterns(events []model.IntakeEvent) PatternProfile {
	var (
		p           PatternProfile
		weekdaySums [7]int
		hourSums    [24]int
	)
	for i := range p.ByWeekday {
		p.ByWeekday[i].Label = weekdayLabels[i]
	}
	for i := range p.ByHour {
		p.ByHour[i].Label = time.Date(0, 1, 1, i, 0, 0, 0, time.UTC).Format("15:00")
	}

	for _, e := range events {
		day, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			// Unbucketable event; the store validates dates on the way in.
			continue
		}
		w := weekdayIndex(day.Weekday())
		weekdaySums[w] += e.AmountMl
		p.ByWeekday[w].Entries++

		h := e.LoggedAt.Hour()
		hourSums[h] += e.AmountMl
		p.ByHour[h].Entries++
	}

	for i := range p.ByWeekday {
		if n := p.ByWeekday[i].Entries; n > 0 {
			mean := float64(weekdaySums[i]) / float64(n)
			p.ByWeekday[i].MeanMl = &mean
		}
	}
	for i := range p.ByHour {
		if n := p.ByHour[i].Entries; n > 0 {
			mean := float64(hourSums[i]) / float64(n)
			p.ByHour[i].MeanMl = &mean
		}
	}
	return p
}

func weekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
