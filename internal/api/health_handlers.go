package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vytor/letterflash/internal/logger"
)

// handleHealth is the liveness probe; it always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady returns 200 when the database answers and the event loop is
// draining events, 503 otherwise. The body reports the event backlog seen
// before the check.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	log := logger.FromContext(ctx)

	if s.DB != nil {
		if err := s.DB.PingContext(ctx); err != nil {
			log.Warn("readiness check failed - database: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Database unavailable"))
			return
		}
	}

	queued := s.Loop.QueueSize()
	if err := s.Loop.Do(ctx, func() {}); err != nil {
		log.Warn("readiness check failed - event loop: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Event loop unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Ready\nqueued_events=%d\n", queued)
}
