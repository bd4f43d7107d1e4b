package services

import (
	"context"
	"strings"
	"sync"

	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/repository"
)

const maxUsernameLength = 24

// ProfileService handles the player's aggregate statistics. Every mutation is
// read-modify-write-then-persist with no batching.
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	Rename(ctx context.Context, username string) (*models.Profile, error)
	RecordAnswer(ctx context.Context, rec models.AnswerRecord) error
	FinishGame(ctx context.Context, result models.GameResult) (*models.Profile, error)
}

type profileService struct {
	mu             sync.Mutex
	profileRepo    repository.ProfileRepository
	leaderboardSvc LeaderboardService
}

// NewProfileService creates a new ProfileService. leaderboardSvc may be nil
// when no leaderboard is kept.
func NewProfileService(profileRepo repository.ProfileRepository, leaderboardSvc LeaderboardService) ProfileService {
	return &profileService{profileRepo: profileRepo, leaderboardSvc: leaderboardSvc}
}

func (s *profileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting profile")

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.profileRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &p, nil
}

func (s *profileService) Rename(ctx context.Context, username string) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	log.Debug("renaming profile: username=%s", username)

	if username == "" {
		return nil, errors.NewValidationError("username", "cannot be empty")
	}
	if len([]rune(username)) > maxUsernameLength {
		return nil, errors.NewValidationError("username", "must be at most 24 characters")
	}

	return s.update(ctx, func(p *models.Profile) {
		p.Username = username
	})
}

func (s *profileService) RecordAnswer(ctx context.Context, rec models.AnswerRecord) error {
	_, err := s.update(ctx, func(p *models.Profile) {
		if rec.Correct {
			p.TotalCorrect++
		} else {
			p.TotalIncorrect++
		}
		if rec.Answered && rec.ElapsedMs > 0 {
			p.TotalTimeMs += rec.ElapsedMs
		}
	})
	return err
}

func (s *profileService) FinishGame(ctx context.Context, result models.GameResult) (*models.Profile, error) {
	log := logger.FromContext(ctx)
	log.Debug("finishing game: mode=%s, score=%d, level=%d", result.Mode, result.Score, result.Level)

	profile, err := s.update(ctx, func(p *models.Profile) {
		p.TotalGames++
		if result.Score > p.HighScore {
			log.Info("new high score: %d (was %d)", result.Score, p.HighScore)
			p.HighScore = result.Score
		}
	})
	if err != nil {
		return nil, err
	}

	if s.leaderboardSvc != nil {
		entry := models.LeaderboardEntry{
			Username: profile.Username,
			Score:    result.Score,
			Level:    result.Level,
			Accuracy: result.Accuracy,
			Date:     result.FinishedAt,
		}
		if err := s.leaderboardSvc.Add(ctx, entry, result.Board); err != nil {
			log.Warn("failed to record leaderboard entry: %v", err)
			// The profile is already saved; the board is best effort.
		}
	}

	log.Info("game finished: total_games=%d, high_score=%d", profile.TotalGames, profile.HighScore)
	return profile, nil
}

func (s *profileService) update(ctx context.Context, mutate func(*models.Profile)) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.profileRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	mutate(&p)
	if err := s.profileRepo.Save(ctx, p); err != nil {
		log.Error("failed to save profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &p, nil
}
