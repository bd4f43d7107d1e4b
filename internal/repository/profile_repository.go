package repository

import (
	"context"

	"github.com/vytor/letterflash/internal/models"
)

// ProfileRepository handles profile persistence. Load never fails on absent
// or malformed data; it falls back to defaults.
type ProfileRepository interface {
	Load(ctx context.Context) (models.Profile, error)
	Save(ctx context.Context, profile models.Profile) error
}
