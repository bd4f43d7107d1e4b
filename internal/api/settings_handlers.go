package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/services"
)

type alphabetSettingsRequest struct {
	Type string `json:"type"`
}

type mathSettingsRequest struct {
	Operation string `json:"operation"`
	Digits    int    `json:"digits"`
}

type musicRequest struct {
	Music *bool `json:"music"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.SettingsService.Preferences(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, prefs)
}

func (s *Server) handleGetModeSettings(w http.ResponseWriter, r *http.Request) {
	mode := chi.URLParam(r, "mode")
	prefs, err := s.SettingsService.Preferences(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	switch mode {
	case services.FamilyAlphabet:
		writeJSON(w, r, http.StatusOK, prefs.Alphabet)
	case services.FamilyMath:
		writeJSON(w, r, http.StatusOK, prefs.Math)
	default:
		handleError(w, r, errors.NewNotFoundError("settings", mode))
	}
}

func (s *Server) handleUpdateModeSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	mode := chi.URLParam(r, "mode")

	switch mode {
	case services.FamilyAlphabet:
		var req alphabetSettingsRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, err)
			return
		}
		settings, err := s.SettingsService.UpdateAlphabet(ctx, req.Type)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, settings)
	case services.FamilyMath:
		var req mathSettingsRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, err)
			return
		}
		settings, err := s.SettingsService.UpdateMath(ctx, req.Operation, req.Digits)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, settings)
	default:
		handleError(w, r, errors.NewNotFoundError("settings", mode))
	}
}

func (s *Server) handleGetMusic(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.SettingsService.Preferences(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"music": prefs.Music})
}

func (s *Server) handleUpdateMusic(w http.ResponseWriter, r *http.Request) {
	var req musicRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Music == nil {
		handleError(w, r, errors.NewValidationError("music", "is required"))
		return
	}
	if err := s.SettingsService.SetMusic(r.Context(), *req.Music); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"music": *req.Music})
}
