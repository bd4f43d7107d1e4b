package services

import (
	"context"

	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/quiz"
	"github.com/vytor/letterflash/internal/repository"
)

// Mode families accepted by ResolveStart besides concrete mode names.
const (
	FamilyAlphabet = "alphabet"
	FamilyMath     = "math"
)

// SettingsService handles the remembered mode settings and music flag.
type SettingsService interface {
	Preferences(ctx context.Context) (*models.Preferences, error)
	UpdateAlphabet(ctx context.Context, modeType string) (*models.AlphabetSettings, error)
	UpdateMath(ctx context.Context, operation string, digits int) (*models.MathSettings, error)
	SetMusic(ctx context.Context, on bool) error
	ResolveStart(ctx context.Context, mode string) (quiz.Mode, quiz.Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Preferences(ctx context.Context) (*models.Preferences, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading preferences")

	alpha, err := s.repo.Alphabet(ctx)
	if err != nil {
		log.Error("failed to load alphabet settings: %v", err)
		return nil, errors.NewInternalError(err)
	}
	math, err := s.repo.Math(ctx)
	if err != nil {
		log.Error("failed to load math settings: %v", err)
		return nil, errors.NewInternalError(err)
	}
	music, err := s.repo.Music(ctx)
	if err != nil {
		log.Error("failed to load music preference: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &models.Preferences{Alphabet: alpha, Math: math, Music: music}, nil
}

func (s *settingsService) UpdateAlphabet(ctx context.Context, modeType string) (*models.AlphabetSettings, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating alphabet settings: type=%s", modeType)

	mode, err := quiz.ParseMode(modeType)
	if err != nil || !mode.Alphabet() {
		return nil, errors.NewValidationError("type", "must be position, opposite, letterMath or mixed")
	}
	settings := models.AlphabetSettings{Type: mode.String()}
	if err := s.repo.SaveAlphabet(ctx, settings); err != nil {
		log.Error("failed to save alphabet settings: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &settings, nil
}

func (s *settingsService) UpdateMath(ctx context.Context, operation string, digits int) (*models.MathSettings, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating math settings: operation=%s, digits=%d", operation, digits)

	op, err := quiz.ParseOperation(operation)
	if err != nil {
		return nil, errors.NewValidationError("operation", "must be add, sub, mul, div or mixed")
	}
	if err := (quiz.Settings{Operation: op, Digits: digits}).Validate(); err != nil {
		return nil, errors.NewValidationError("digits", err.Error())
	}
	settings := models.MathSettings{Operation: op.String(), Digits: digits}
	if err := s.repo.SaveMath(ctx, settings); err != nil {
		log.Error("failed to save math settings: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &settings, nil
}

func (s *settingsService) SetMusic(ctx context.Context, on bool) error {
	log := logger.FromContext(ctx)
	log.Debug("setting music: %t", on)

	if err := s.repo.SaveMusic(ctx, on); err != nil {
		log.Error("failed to save music preference: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// ResolveStart turns a requested mode into a concrete mode and settings.
// An empty name or "alphabet" uses the remembered alphabet mode; "math" is
// pure math. The remembered math settings always fill Settings.
func (s *settingsService) ResolveStart(ctx context.Context, mode string) (quiz.Mode, quiz.Settings, error) {
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return 0, quiz.Settings{}, err
	}

	settings := quiz.DefaultSettings()
	if op, err := quiz.ParseOperation(prefs.Math.Operation); err == nil {
		settings.Operation = op
	}
	if prefs.Math.Digits >= 1 && prefs.Math.Digits <= 3 {
		settings.Digits = prefs.Math.Digits
	}

	switch mode {
	case "", FamilyAlphabet:
		mode = prefs.Alphabet.Type
	case FamilyMath:
		return quiz.ModePureMath, settings, nil
	}
	m, err := quiz.ParseMode(mode)
	if err != nil {
		return 0, quiz.Settings{}, errors.NewValidationError("mode", err.Error())
	}
	return m, settings, nil
}
