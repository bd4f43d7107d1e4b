package game

import (
	"context"

	"github.com/vytor/letterflash/internal/models"
)

// Store persists the player's profile. services.ProfileService satisfies it.
type Store interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	RecordAnswer(ctx context.Context, rec models.AnswerRecord) error
	FinishGame(ctx context.Context, result models.GameResult) (*models.Profile, error)
}
