package api

import (
	"context"
	"net/http"

	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/game"
	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/quiz"
)

type stateResponse struct {
	Accepted *bool         `json:"accepted,omitempty"`
	Game     game.Snapshot `json:"game"`
	View     ViewState     `json:"view"`
}

type startRequest struct {
	Mode      string `json:"mode"`
	Operation string `json:"operation,omitempty"`
	Digits    int    `json:"digits,omitempty"`
}

type answerRequest struct {
	Option *int        `json:"option,omitempty"`
	Answer *quiz.Value `json:"answer,omitempty"`
}

// onLoop runs fn on the event loop and reports the resulting state.
func (s *Server) onLoop(ctx context.Context, fn func(ctx context.Context) bool) (stateResponse, error) {
	var resp stateResponse
	err := s.Loop.Do(ctx, func() {
		if fn != nil {
			accepted := fn(ctx)
			resp.Accepted = &accepted
		}
		resp.Game = s.Machine.Snapshot()
		resp.View = s.View.State()
	})
	if err != nil {
		return resp, errors.NewUnavailableError(err)
	}
	return resp, nil
}

func (s *Server) intent(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) bool) {
	resp, err := s.onLoop(r.Context(), fn)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.intent(w, r, nil)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	mode, settings, err := s.SettingsService.ResolveStart(ctx, req.Mode)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if req.Operation != "" {
		op, err := quiz.ParseOperation(req.Operation)
		if err != nil {
			handleError(w, r, errors.NewValidationError("operation", err.Error()))
			return
		}
		settings.Operation = op
	}
	if req.Digits != 0 {
		settings.Digits = req.Digits
	}
	if err := settings.Validate(); err != nil {
		handleError(w, r, errors.NewValidationError("settings", err.Error()))
		return
	}
	log.Info("starting game: mode=%s, operation=%s, digits=%d", mode, settings.Operation, settings.Digits)

	var startErr error
	resp, err := s.onLoop(ctx, func(ctx context.Context) bool {
		s.View.Reset()
		startErr = s.Machine.Start(ctx, mode, settings)
		return startErr == nil
	})
	if err == nil {
		err = startErr
	}
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	switch {
	case req.Option != nil:
		idx := *req.Option
		s.intent(w, r, func(ctx context.Context) bool {
			return s.Machine.SubmitOption(ctx, idx)
		})
	case req.Answer != nil:
		v := *req.Answer
		s.intent(w, r, func(ctx context.Context) bool {
			return s.Machine.SubmitAnswer(ctx, v)
		})
	default:
		handleError(w, r, errors.NewBadRequestError("option or answer is required"))
	}
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.intent(w, r, s.Machine.TogglePause)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.intent(w, r, func(ctx context.Context) bool {
		if s.Machine.State() == game.StateIdle {
			return false
		}
		s.View.Reset()
		return s.Machine.Restart(ctx)
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.intent(w, r, func(ctx context.Context) bool {
		if !s.Machine.GoHome(ctx) {
			return false
		}
		s.View.Reset()
		return true
	})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.intent(w, r, s.Machine.Advance)
}
