package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/quiz"
	"github.com/vytor/letterflash/internal/repository/kv"
	"github.com/vytor/letterflash/internal/services"
)

func newSettingsService() services.SettingsService {
	return services.NewSettingsService(kv.NewSettingsRepository(kv.NewMemoryStore()))
}

func TestSettingsService_Defaults(t *testing.T) {
	prefs, err := newSettingsService().Preferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "position", prefs.Alphabet.Type)
	assert.Equal(t, "mixed", prefs.Math.Operation)
	assert.Equal(t, 1, prefs.Math.Digits)
	assert.False(t, prefs.Music)
}

func TestSettingsService_Updates(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService()

	_, err := svc.UpdateAlphabet(ctx, "opposite")
	require.NoError(t, err)
	_, err = svc.UpdateMath(ctx, "div", 2)
	require.NoError(t, err)
	require.NoError(t, svc.SetMusic(ctx, true))

	prefs, err := svc.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opposite", prefs.Alphabet.Type)
	assert.Equal(t, "div", prefs.Math.Operation)
	assert.Equal(t, 2, prefs.Math.Digits)
	assert.True(t, prefs.Music)
}

func TestSettingsService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService()

	tests := []struct {
		name string
		run  func() error
	}{
		{"pure math is not an alphabet mode", func() error { _, err := svc.UpdateAlphabet(ctx, "pureMath"); return err }},
		{"unknown alphabet mode", func() error { _, err := svc.UpdateAlphabet(ctx, "reverse"); return err }},
		{"unknown operation", func() error { _, err := svc.UpdateMath(ctx, "pow", 1); return err }},
		{"too many digits", func() error { _, err := svc.UpdateMath(ctx, "add", 4); return err }},
		{"zero digits", func() error { _, err := svc.UpdateMath(ctx, "add", 0); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeValidation, errors.AsAppError(err).Code)
		})
	}
}

func TestSettingsService_ResolveStart(t *testing.T) {
	ctx := context.Background()
	svc := newSettingsService()
	_, err := svc.UpdateAlphabet(ctx, "letterMath")
	require.NoError(t, err)
	_, err = svc.UpdateMath(ctx, "mul", 3)
	require.NoError(t, err)

	mode, settings, err := svc.ResolveStart(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, quiz.ModeLetterMath, mode)

	mode, settings, err = svc.ResolveStart(ctx, "math")
	require.NoError(t, err)
	assert.Equal(t, quiz.ModePureMath, mode)
	assert.Equal(t, quiz.Settings{Operation: quiz.OpMul, Digits: 3}, settings)

	mode, _, err = svc.ResolveStart(ctx, "opposite")
	require.NoError(t, err)
	assert.Equal(t, quiz.ModeOpposite, mode)

	_, _, err = svc.ResolveStart(ctx, "checkers")
	assert.Equal(t, errors.ErrCodeValidation, errors.AsAppError(err).Code)
}
