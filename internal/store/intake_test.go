package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

func TestLogIntakeFixesCalendarDateAtLogTime(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	loggedAt := time.Date(2026, 2, 10, 23, 45, 0, 0, time.Local)
	e, err := s.LogIntake(store.LogIntakeInput{UserID: "user123", AmountMl: 500, LoggedAt: loggedAt})
	if err != nil {
		t.Fatalf("log intake: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected a generated event id")
	}
	if e.Date != "2026-02-10" {
		t.Fatalf("expected date fixed from log-time clock, got %q", e.Date)
	}

	events, err := s.ListAll("user123")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.Date != "2026-02-10" || got.AmountMl != 500 || got.UserID != "user123" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if !got.LoggedAt.Equal(loggedAt) {
		t.Fatalf("expected logged_at %v, got %v", loggedAt, got.LoggedAt)
	}
}

func TestLogIntakeAllowsZeroAmount(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	if _, err := s.LogIntake(store.LogIntakeInput{UserID: "user123", AmountMl: 0}); err != nil {
		t.Fatalf("a 0 ml log is valid and must be preserved: %v", err)
	}
	events, err := s.ListAll("user123")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(events) != 1 || events[0].AmountMl != 0 {
		t.Fatalf("expected one 0 ml entry, got %+v", events)
	}
}

func TestLogIntakeValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	if _, err := s.LogIntake(store.LogIntakeInput{UserID: "", AmountMl: 100}); !errors.Is(err, hydration.ErrInvalidArgument) {
		t.Fatalf("empty user: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := s.LogIntake(store.LogIntakeInput{UserID: "user123", AmountMl: -1}); !errors.Is(err, hydration.ErrInvalidArgument) {
		t.Fatalf("negative amount: expected ErrInvalidArgument, got %v", err)
	}
}

func TestListAllScopesByUser(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	seed := []store.LogIntakeInput{
		{UserID: "alice", AmountMl: 300, LoggedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.Local)},
		{UserID: "alice", AmountMl: 200, LoggedAt: time.Date(2026, 2, 10, 12, 0, 0, 0, time.Local)},
		{UserID: "bob", AmountMl: 900, LoggedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local)},
	}
	for _, in := range seed {
		if _, err := s.LogIntake(in); err != nil {
			t.Fatalf("seed %s: %v", in.UserID, err)
		}
	}

	events, err := s.ListAll("alice")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events for alice, got %d", len(events))
	}
	for _, e := range events {
		if e.UserID != "alice" {
			t.Fatalf("leaked event from another user: %+v", e)
		}
	}

	none, err := s.ListAll("nobody")
	if err != nil {
		t.Fatalf("list all for unknown user must not error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no events for unknown user, got %d", len(none))
	}
}

func TestListRangeFiltersOnStoredDate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	for day := 5; day <= 12; day++ {
		in := store.LogIntakeInput{
			UserID:   "user123",
			AmountMl: 100 * day,
			LoggedAt: time.Date(2026, 2, day, 10, 0, 0, 0, time.Local),
		}
		if _, err := s.LogIntake(in); err != nil {
			t.Fatalf("seed day %d: %v", day, err)
		}
	}

	events, err := s.ListRange("user123", "2026-02-07", "2026-02-09")
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events in range, got %d", len(events))
	}
	if events[0].Date != "2026-02-09" || events[2].Date != "2026-02-07" {
		t.Fatalf("expected newest first, got %s..%s", events[0].Date, events[2].Date)
	}

	if _, err := s.ListRange("user123", "2026-02-09", "2026-02-07"); !errors.Is(err, hydration.ErrInvalidArgument) {
		t.Fatalf("inverted range: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := s.ListRange("user123", "02/07/2026", "2026-02-09"); !errors.Is(err, hydration.ErrInvalidArgument) {
		t.Fatalf("bad date format: expected ErrInvalidArgument, got %v", err)
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	for i := 0; i < 5; i++ {
		in := store.LogIntakeInput{
			UserID:   "user123",
			AmountMl: 100 + i,
			LoggedAt: time.Date(2026, 2, 10, 8+i, 0, 0, 0, time.Local),
		}
		if _, err := s.LogIntake(in); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	events, err := s.Recent("user123", 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].AmountMl != 104 || events[2].AmountMl != 102 {
		t.Fatalf("expected newest first, got %+v", events)
	}
	if _, err := s.Recent("user123", 0); !errors.Is(err, hydration.ErrInvalidArgument) {
		t.Fatalf("limit 0: expected ErrInvalidArgument, got %v", err)
	}
}
