package api

import (
	"time"

	"github.com/vytor/letterflash/internal/db"
	"github.com/vytor/letterflash/internal/eventloop"
	"github.com/vytor/letterflash/internal/game"
	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/services"
)

const defaultRequestTimeout = 10 * time.Second

// Server exposes the game and the profile store over HTTP. Every call into
// Machine goes through Loop.
type Server struct {
	Loop               *eventloop.Loop
	Machine            *game.Machine
	View               *View
	ProfileService     services.ProfileService
	SettingsService    services.SettingsService
	LeaderboardService services.LeaderboardService
	DB                 *db.DB
	Logger             *logger.Logger
	RequestTimeout     time.Duration
}

func (s *Server) logger() *logger.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logger.Default()
}
