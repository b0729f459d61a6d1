package store

import (
	"fmt"
	"time"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
)

type IntegrityReport struct {
	TotalEvents         int
	MalformedDates      int
	MalformedTimestamps int
	DateDrift           int
}

// CheckIntegrity scans every intake row for data that should be impossible
// to write: unparseable dates or timestamps, and rows whose stored calendar
// date disagrees with the day their own timestamp reads in its recorded
// offset. Events are append-only, so nothing is fixed here, only reported.
func (s *Store) CheckIntegrity() (IntegrityReport, error) {
	rows, err := s.db.Query(`SELECT id, intake_date, logged_at FROM water_intake`)
	if err != nil {
		return IntegrityReport{}, fmt.Errorf("%w: scan intake for integrity: %v", ErrPersistence, err)
	}
	defer rows.Close()

	var report IntegrityReport
	for rows.Next() {
		var id, date, loggedAtRaw string
		if err := rows.Scan(&id, &date, &loggedAtRaw); err != nil {
			return IntegrityReport{}, fmt.Errorf("%w: scan integrity row: %v", ErrPersistence, err)
		}
		report.TotalEvents++

		dateOK := true
		if _, err := time.Parse(hydration.DateLayout, date); err != nil {
			report.MalformedDates++
			dateOK = false
			s.log.Warn("malformed intake date", "event_id", id, "date", date)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			report.MalformedTimestamps++
			s.log.Warn("malformed intake timestamp", "event_id", id, "logged_at", loggedAtRaw)
			continue
		}
		if dateOK && loggedAt.Format(hydration.DateLayout) != date {
			report.DateDrift++
			s.log.Warn("intake date drifts from timestamp", "event_id", id, "date", date, "logged_at", loggedAtRaw)
		}
	}
	if err := rows.Err(); err != nil {
		return IntegrityReport{}, fmt.Errorf("%w: iterate integrity rows: %v", ErrPersistence, err)
	}
	return report, nil
}
