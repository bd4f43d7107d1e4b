package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/letterflash/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:             ":8080",
		DBPath:           "test.db",
		LogLevel:         "INFO",
		CorrectDelayMs:   800,
		IncorrectDelayMs: 1500,
		EventQueueSize:   64,
		DefaultUsername:  "Player",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"empty addr", func(c *config.Config) { c.Addr = "" }, "ADDR cannot be empty"},
		{"empty db path", func(c *config.Config) { c.DBPath = " " }, "DB_PATH cannot be empty"},
		{"bad log level", func(c *config.Config) { c.LogLevel = "TRACE" }, "LOG_LEVEL"},
		{"negative correct delay", func(c *config.Config) { c.CorrectDelayMs = -1 }, "CORRECT_DELAY_MS"},
		{"negative incorrect delay", func(c *config.Config) { c.IncorrectDelayMs = -5 }, "INCORRECT_DELAY_MS"},
		{"zero queue", func(c *config.Config) { c.EventQueueSize = 0 }, "EVENT_QUEUE_SIZE"},
		{"empty username", func(c *config.Config) { c.DefaultUsername = "" }, "DEFAULT_USERNAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""
	cfg.EventQueueSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR")
	assert.Contains(t, err.Error(), "EVENT_QUEUE_SIZE")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("QUIZ_SEED", "42")
	t.Setenv("CORRECT_DELAY_MS", "250")
	t.Setenv("INCORRECT_DELAY_MS", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, int64(42), cfg.QuizSeed)
	assert.Equal(t, 250*time.Millisecond, cfg.CorrectDelay())
	assert.Equal(t, 1500*time.Millisecond, cfg.IncorrectDelay())
	assert.Equal(t, 64, cfg.EventQueueSize)
}
