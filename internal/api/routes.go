package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	timeout := s.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(timeoutMiddleware(timeout))

		r.Get("/state", s.handleState)
		r.Route("/game", func(r chi.Router) {
			r.Post("/start", s.handleStart)
			r.Post("/answer", s.handleAnswer)
			r.Post("/pause", s.handlePause)
			r.Post("/restart", s.handleRestart)
			r.Post("/home", s.handleHome)
			r.Post("/next", s.handleNext)
		})

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleUpdateProfile)

		r.Get("/leaderboard", s.handleLeaderboard)
		r.Get("/leaderboard/{board}", s.handleLeaderboardBoard)

		r.Get("/settings", s.handleGetSettings)
		r.Get("/settings/{mode}", s.handleGetModeSettings)
		r.Put("/settings/{mode}", s.handleUpdateModeSettings)
		r.Get("/music", s.handleGetMusic)
		r.Put("/music", s.handleUpdateMusic)
	})
	return r
}
