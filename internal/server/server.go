// Package server exposes the aggregates as a JSON API for dashboards. It
// ships data, not pixels: charts and styling belong to whoever consumes it.
package server

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/bhavesharora02/Euron-Water-Supply/internal/feedback"
	"github.com/bhavesharora02/Euron-Water-Supply/internal/store"
)

type Server struct {
	store     *store.Store
	generator feedback.Generator
	log       *slog.Logger
	metrics   *Metrics
	accessLog io.Writer
}

func New(st *store.Store, gen feedback.Generator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:     st,
		generator: gen,
		log:       logger,
		metrics:   NewMetrics(),
		accessLog: os.Stderr,
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.metrics.Instrument)

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	r.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	api := r.PathPrefix("/api/users/{user}").Subrouter()
	api.HandleFunc("/today", s.handleToday).Methods("GET")
	api.HandleFunc("/summary", s.handleSummary).Methods("GET")
	api.HandleFunc("/patterns", s.handlePatterns).Methods("GET")
	api.HandleFunc("/history", s.handleHistory).Methods("GET")
	api.HandleFunc("/intake", s.handleLogIntake).Methods("POST")

	return handlers.CombinedLoggingHandler(s.accessLog, handlers.RecoveryHandler()(r))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
