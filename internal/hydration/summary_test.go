package hydration_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
)

func TestTrailingSummaryZeroFillsMissingDays(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 2, 10, 15, 0, 0, 0, time.Local)
	events := []model.IntakeEvent{
		event("2026-02-05", 9, 400),
		event("2026-02-07", 12, 600),
		event("2026-02-07", 18, 200),
		event("2026-02-09", 8, 1000),
	}

	got, err := hydration.TrailingSummary(events, today, 7)
	if err != nil {
		t.Fatalf("trailing summary: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected exactly 7 slots, got %d", len(got))
	}
	if got[0].Date != "2026-02-04" || got[6].Date != "2026-02-10" {
		t.Fatalf("expected oldest-first window 2026-02-04..2026-02-10, got %s..%s", got[0].Date, got[6].Date)
	}
	// No events today: the slot exists and is zero, not omitted.
	if got[6].TotalMl != 0 || got[6].EntryCount != 0 {
		t.Fatalf("expected zero-filled today slot, got %+v", got[6])
	}
	if got[3].TotalMl != 800 || got[3].EntryCount != 2 {
		t.Fatalf("expected 2026-02-07 to sum to 800 over 2 entries, got %+v", got[3])
	}
	if got[1].TotalMl != 400 || got[5].TotalMl != 1000 {
		t.Fatalf("expected populated days carried through, got %+v", got)
	}
}

func TestTrailingSummaryEmptyHistory(t *testing.T) {
	t.Parallel()
	got, err := hydration.TrailingSummary(nil, time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local), 7)
	if err != nil {
		t.Fatalf("trailing summary: %v", err)
	}
	for i, d := range got {
		if d.TotalMl != 0 || d.EntryCount != 0 {
			t.Fatalf("slot %d should be zero for a user with no events, got %+v", i, d)
		}
	}
}

func TestTrailingSummaryRejectsNonPositiveWindow(t *testing.T) {
	t.Parallel()
	for _, days := range []int{0, -1, -7} {
		_, err := hydration.TrailingSummary(nil, time.Now(), days)
		if !errors.Is(err, hydration.ErrInvalidArgument) {
			t.Fatalf("windowDays=%d: expected ErrInvalidArgument, got %v", days, err)
		}
	}
}

func TestTrailingSummaryIsIdempotent(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 2, 10, 23, 59, 0, 0, time.Local)
	events := []model.IntakeEvent{
		event("2026-02-08", 7, 300),
		event("2026-02-10", 10, 500),
	}

	first, err := hydration.TrailingSummary(events, today, 7)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := hydration.TrailingSummary(events, today, 7)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results across calls:\n%+v\n%+v", first, second)
	}
}

func TestTrailingSummaryIgnoresEventOrder(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 2, 10, 12, 0, 0, 0, time.Local)
	forward := []model.IntakeEvent{
		event("2026-02-09", 8, 100),
		event("2026-02-10", 9, 200),
		event("2026-02-10", 21, 300),
	}
	reversed := []model.IntakeEvent{forward[2], forward[1], forward[0]}

	a, err := hydration.TrailingSummary(forward, today, 3)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	b, err := hydration.TrailingSummary(reversed, today, 3)
	if err != nil {
		t.Fatalf("reversed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("summary must not depend on input order:\n%+v\n%+v", a, b)
	}
}
