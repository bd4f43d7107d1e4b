package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	lb, err := s.LeaderboardService.All(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, lb)
}

func (s *Server) handleLeaderboardBoard(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	entries, err := s.LeaderboardService.Top(r.Context(), board)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"board":   board,
		"entries": entries,
	})
}
