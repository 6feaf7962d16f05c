package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler exposes the machine's observability endpoints:
//
//	GET /metrics  Prometheus exposition of gatherer
//	GET /healthz  liveness
//	GET /journal  transaction journal as JSON (404 without a journal)
//
// The inventory is owned by the console loop and is not served here.
func NewHandler(gatherer prometheus.Gatherer, journal ports.Journal) http.Handler {
	r := chi.NewRouter()

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	r.Get("/journal", func(w http.ResponseWriter, r *http.Request) {
		if journal == nil {
			http.Error(w, "journal disabled", http.StatusNotFound)
			return
		}
		entries, err := journal.List(r.Context())
		if err != nil {
			http.Error(w, "journal unavailable", http.StatusServiceUnavailable)
			slog.Error("Journal listing failed", "error", err)
			return
		}
		if entries == nil {
			entries = []domain.Entry{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			slog.Warn("Journal encoding failed", "error", err)
		}
	})

	return r
}

// Server runs the handler on its own goroutine.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	done   chan error
}

// Start listens on addr and serves h in the background.
func Start(addr string, h http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		done:   make(chan error, 1),
	}
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
		s.done <- err
	}()
	logger.Info("metrics server listening", "addr", addr)
	return s
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-s.done
}
