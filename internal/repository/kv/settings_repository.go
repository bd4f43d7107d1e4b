package kv

import (
	"context"

	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/repository"
)

// Defaults for a fresh install.
var (
	DefaultAlphabetSettings = models.AlphabetSettings{Type: "position"}
	DefaultMathSettings     = models.MathSettings{Operation: "mixed", Digits: 1}
)

type settingsRepository struct {
	store repository.KeyValueStore
}

// NewSettingsRepository creates a SettingsRepository over store.
func NewSettingsRepository(store repository.KeyValueStore) repository.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Alphabet(ctx context.Context) (models.AlphabetSettings, error) {
	s := DefaultAlphabetSettings
	if _, err := loadDocument(ctx, r.store, KeyAlphabetSettings, &s, DefaultAlphabetSettings); err != nil {
		return DefaultAlphabetSettings, err
	}
	if s.Type == "" {
		s.Type = DefaultAlphabetSettings.Type
	}
	return s, nil
}

func (r *settingsRepository) SaveAlphabet(ctx context.Context, s models.AlphabetSettings) error {
	return saveDocument(ctx, r.store, KeyAlphabetSettings, s)
}

func (r *settingsRepository) Math(ctx context.Context) (models.MathSettings, error) {
	s := DefaultMathSettings
	if _, err := loadDocument(ctx, r.store, KeyMathSettings, &s, DefaultMathSettings); err != nil {
		return DefaultMathSettings, err
	}
	if s.Operation == "" {
		s.Operation = DefaultMathSettings.Operation
	}
	if s.Digits == 0 {
		s.Digits = DefaultMathSettings.Digits
	}
	return s, nil
}

func (r *settingsRepository) SaveMath(ctx context.Context, s models.MathSettings) error {
	return saveDocument(ctx, r.store, KeyMathSettings, s)
}

func (r *settingsRepository) Music(ctx context.Context) (bool, error) {
	on := false
	if _, err := loadDocument(ctx, r.store, KeyMusic, &on, false); err != nil {
		return false, err
	}
	return on, nil
}

func (r *settingsRepository) SaveMusic(ctx context.Context, on bool) error {
	return saveDocument(ctx, r.store, KeyMusic, on)
}
