package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/hydration"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/model"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

type todayResponse struct {
	Total    hydration.DailyTotal   `json:"total"`
	Progress hydration.GoalProgress `json:"progress"`
	Feedback string                 `json:"feedback,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

type summaryResponse struct {
	WindowDays int                    `json:"window_days"`
	Days       []hydration.DailyTotal `json:"days"`
	Error      string                 `json:"error,omitempty"`
}

type patternsResponse struct {
	hydration.PatternProfile
	Error string `json:"error,omitempty"`
}

type historyEntry struct {
	ID       string    `json:"id"`
	AmountMl int       `json:"amount_ml"`
	Date     string    `json:"date"`
	LoggedAt time.Time `json:"logged_at"`
}

type historyResponse struct {
	FromDate       string         `json:"from_date"`
	ToDate         string         `json:"to_date"`
	TotalMl        int            `json:"total_ml"`
	MeanMlPerEntry float64        `json:"mean_ml_per_entry"`
	Entries        []historyEntry `json:"entries"`
	Error          string         `json:"error,omitempty"`
}

type logIntakeRequest struct {
	AmountMl int `json:"amount_ml"`
}

type logIntakeResponse struct {
	ID       string `json:"id"`
	AmountMl int    `json:"amount_ml"`
	Date     string `json:"date"`
	Feedback string `json:"feedback,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = time.Now().Format(hydration.DateLayout)
	} else if _, err := time.Parse(hydration.DateLayout, date); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	events, err := s.store.ListAll(user)
	if err != nil {
		// Totals degrade to a zero state with a visible error rather than
		// disappearing behind a bare 5xx.
		s.log.Error("list intake failed", "user", user, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, todayResponse{
			Total: hydration.DailyTotal{Date: date},
			Error: err.Error(),
		})
		return
	}

	total := hydration.DailyTotalFor(events, date)
	goalMl, err := s.store.CurrentGoalMl(user, date)
	if err != nil {
		goalMl = hydration.DefaultGoalMl
		s.log.Warn("goal lookup failed, using default", "user", user, "error", err)
	}
	progress, err := hydration.Progress(total.TotalMl, goalMl)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, todayResponse{Total: total, Error: err.Error()})
		return
	}

	resp := todayResponse{Total: total, Progress: progress}
	if s.generator != nil {
		msg, err := s.generator.Feedback(r.Context(), total.TotalMl)
		if err != nil {
			// Feedback is advisory; its failure never blocks totals.
			s.log.Warn("feedback generation failed", "user", user, "error", err)
		} else {
			resp.Feedback = msg
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	windowDays := 7
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid days, expected an integer"})
			return
		}
		windowDays = parsed
	}

	events, err := s.store.ListAll(user)
	if err != nil {
		s.log.Error("list intake failed", "user", user, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, summaryResponse{WindowDays: windowDays, Error: err.Error()})
		return
	}
	days, err := hydration.TrailingSummary(events, time.Now(), windowDays)
	if err != nil {
		writeJSON(w, statusFor(err), summaryResponse{WindowDays: windowDays, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{WindowDays: windowDays, Days: days})
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	events, err := s.store.ListAll(user)
	if err != nil {
		s.log.Error("list intake failed", "user", user, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, patternsResponse{
			PatternProfile: hydration.Patterns(nil),
			Error:          err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, patternsResponse{PatternProfile: hydration.Patterns(events)})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if to == "" {
		to = time.Now().Format(hydration.DateLayout)
	}
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	if from == "" {
		t, err := time.ParseInLocation(hydration.DateLayout, to, time.Local)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
			return
		}
		from = t.AddDate(0, 0, -7).Format(hydration.DateLayout)
	}

	events, err := s.store.ListRange(user, from, to)
	if err != nil {
		writeJSON(w, statusFor(err), historyResponse{FromDate: from, ToDate: to, Error: err.Error()})
		return
	}

	resp := historyResponse{FromDate: from, ToDate: to, Entries: make([]historyEntry, 0, len(events))}
	for _, e := range events {
		resp.TotalMl += e.AmountMl
		resp.Entries = append(resp.Entries, historyEntry{ID: e.ID, AmountMl: e.AmountMl, Date: e.Date, LoggedAt: e.LoggedAt})
	}
	if len(events) > 0 {
		resp.MeanMlPerEntry = float64(resp.TotalMl) / float64(len(events))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogIntake(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	var req logIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	event, err := s.store.LogIntake(store.LogIntakeInput{UserID: user, AmountMl: req.AmountMl})
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	s.metrics.intakeLogged.Inc()

	resp := logIntakeResponse{ID: event.ID, AmountMl: event.AmountMl, Date: event.Date}
	if msg, ok := s.feedbackForToday(r, user, event); ok {
		resp.Feedback = msg
	}
	writeJSON(w, http.StatusCreated, resp)
}

// feedbackForToday recomputes today's total after an append and asks the
// generator for a message. Everything in here is best effort.
func (s *Server) feedbackForToday(r *http.Request, user string, logged model.IntakeEvent) (string, bool) {
	if s.generator == nil {
		return "", false
	}
	events, err := s.store.ListAll(user)
	if err != nil {
		s.log.Warn("skipping feedback, list intake failed", "user", user, "error", err)
		return "", false
	}
	total := hydration.DailyTotalFor(events, logged.Date)
	msg, err := s.generator.Feedback(r.Context(), total.TotalMl)
	if err != nil {
		s.log.Warn("feedback generation failed", "user", user, "error", err)
		return "", false
	}
	return msg, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, hydration.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
