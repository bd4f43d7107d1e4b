package kv

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/repository"
)

type profileRepository struct {
	store           repository.KeyValueStore
	defaultUsername string
}

// NewProfileRepository creates a ProfileRepository over store.
func NewProfileRepository(store repository.KeyValueStore, defaultUsername string) repository.ProfileRepository {
	return &profileRepository{store: store, defaultUsername: defaultUsername}
}

func (r *profileRepository) Load(ctx context.Context) (models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")

	def := models.DefaultProfile(r.defaultUsername)
	p := def
	found, err := loadDocument(ctx, r.store, KeyProfile, &p, def)
	if err != nil {
		log.Error("failed to load profile: %v", err)
		return def, err
	}
	if !found {
		log.Debug("no stored profile, using defaults")
	}

	legacy, err := r.legacyHighScore(ctx)
	if err != nil {
		log.Warn("ignoring legacy high score: %v", err)
	} else if legacy > p.HighScore {
		log.Info("adopting legacy high score %d", legacy)
		p.HighScore = legacy
	}

	return sanitize(p, def.Username), nil
}

func (r *profileRepository) Save(ctx context.Context, p models.Profile) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	if err := saveDocument(ctx, r.store, KeyProfile, p); err != nil {
		log.Error("failed to save profile: %v", err)
		return err
	}
	// Older builds only read the bare key.
	if err := r.store.Set(ctx, KeyLegacyHighScore, strconv.Itoa(p.HighScore)); err != nil {
		log.Error("failed to save legacy high score: %v", err)
		return err
	}
	log.Debug("profile saved: games=%d correct=%d high_score=%d", p.TotalGames, p.TotalCorrect, p.HighScore)
	return nil
}

func (r *profileRepository) legacyHighScore(ctx context.Context) (int, error) {
	raw, ok, err := r.store.Get(ctx, KeyLegacyHighScore)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return n, nil
}

func sanitize(p models.Profile, username string) models.Profile {
	if strings.TrimSpace(p.Username) == "" {
		p.Username = username
	}
	p.TotalGames = max(p.TotalGames, 0)
	p.TotalCorrect = max(p.TotalCorrect, 0)
	p.TotalIncorrect = max(p.TotalIncorrect, 0)
	p.TotalTimeMs = max(p.TotalTimeMs, 0)
	p.HighScore = max(p.HighScore, 0)
	return p
}
