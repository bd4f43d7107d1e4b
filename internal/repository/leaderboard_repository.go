package repository

import (
	"context"

	"github.com/vytor/letterflash/internal/models"
)

// LeaderboardRepository handles the ranked boards document.
type LeaderboardRepository interface {
	Load(ctx context.Context) (models.Leaderboard, error)
	Save(ctx context.Context, board models.Leaderboard) error
}
