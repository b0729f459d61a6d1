package hydration_test

import (
	"testing"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
)

func event(date string, hour, amountMl int) model.IntakeEvent {
	day, _ := time.ParseInLocation(hydration.DateLayout, date, time.Local)
	return model.IntakeEvent{
		ID:       date + "-" + time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15"),
		UserID:   "user123",
		AmountMl: amountMl,
		Date:     date,
		LoggedAt: day.Add(time.Duration(hour) * time.Hour),
	}
}

func TestDailyTotalSumsSameDayEvents(t *testing.T) {
	t.Parallel()
	events := []model.IntakeEvent{
		event("2026-02-10", 8, 500),
		event("2026-02-10", 20, 700),
		event("2026-02-11", 9, 300),
	}

	got := hydration.DailyTotalFor(events, "2026-02-10")
	if got.TotalMl != 1200 {
		t.Fatalf("expected total 1200, got %d", got.TotalMl)
	}
	if got.EntryCount != 2 {
		t.Fatalf("expected 2 entries, got %d", got.EntryCount)
	}
}

func TestDailyTotalZeroEventsIsNotAnError(t *testing.T) {
	t.Parallel()
	got := hydration.DailyTotalFor(nil, "2026-02-10")
	if got.TotalMl != 0 || got.EntryCount != 0 {
		t.Fatalf("expected zero total for empty history, got %+v", got)
	}
	if got.Date != "2026-02-10" {
		t.Fatalf("expected date carried through, got %q", got.Date)
	}
}

func TestDailyTotalUsesStoredDateNotTimestamp(t *testing.T) {
	t.Parallel()
	// Logged just before midnight in a timezone ahead of the query's: the
	// stored date says Feb 10 even though the raw instant parses as Feb 11
	// elsewhere. The stored date wins.
	e := model.IntakeEvent{
		ID:       "x",
		UserID:   "user123",
		AmountMl: 250,
		Date:     "2026-02-10",
		LoggedAt: time.Date(2026, 2, 11, 1, 30, 0, 0, time.FixedZone("ahead", 3*3600)),
	}

	got := hydration.DailyTotalFor([]model.IntakeEvent{e}, "2026-02-10")
	if got.TotalMl != 250 || got.EntryCount != 1 {
		t.Fatalf("expected event counted on its stored date, got %+v", got)
	}
	if miss := hydration.DailyTotalFor([]model.IntakeEvent{e}, "2026-02-11"); miss.EntryCount != 0 {
		t.Fatalf("event must not also count on the timestamp's day, got %+v", miss)
	}
}

func TestDailyTotalPreservesZeroAmountEntries(t *testing.T) {
	t.Parallel()
	events := []model.IntakeEvent{event("2026-02-10", 8, 0)}
	got := hydration.DailyTotalFor(events, "2026-02-10")
	if got.TotalMl != 0 || got.EntryCount != 1 {
		t.Fatalf("a 0 ml entry is still an entry, got %+v", got)
	}
}
