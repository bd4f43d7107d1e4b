package api

import (
	"net/http"

	"github.com/vytor/letterflash/internal/logger"
)

type profileRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.ProfileService.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	profile, err := s.ProfileService.Rename(r.Context(), req.Username)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("profile renamed: username=%s", profile.Username)
	writeJSON(w, r, http.StatusOK, profile)
}
