package repository

import (
	"context"

	"github.com/vytor/letterflash/internal/models"
)

// SettingsRepository handles per-mode settings and the music preference.
type SettingsRepository interface {
	Alphabet(ctx context.Context) (models.AlphabetSettings, error)
	SaveAlphabet(ctx context.Context, s models.AlphabetSettings) error
	Math(ctx context.Context) (models.MathSettings, error)
	SaveMath(ctx context.Context, s models.MathSettings) error
	Music(ctx context.Context) (bool, error)
	SaveMusic(ctx context.Context, on bool) error
}
