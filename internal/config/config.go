package config

import (
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/letterflash/internal/logger"
)

type Config struct {
	Addr             string
	DBPath           string
	LogLevel         string
	QuizSeed         int64
	CorrectDelayMs   int
	IncorrectDelayMs int
	EventQueueSize   int
	DefaultUsername  string
	ShutdownTimeout  time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "file:letterflash.db"),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		QuizSeed:         int64(envIntOr("QUIZ_SEED", 0)),
		CorrectDelayMs:   envIntOr("CORRECT_DELAY_MS", 800),
		IncorrectDelayMs: envIntOr("INCORRECT_DELAY_MS", 1500),
		EventQueueSize:   envIntOr("EVENT_QUEUE_SIZE", 64),
		DefaultUsername:  envOr("DEFAULT_USERNAME", "Player"),
		ShutdownTimeout:  time.Duration(envIntOr("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, stderrors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, stderrors.New("DB_PATH cannot be empty"))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel))
	}
	if c.CorrectDelayMs < 0 {
		errs = append(errs, fmt.Errorf("CORRECT_DELAY_MS must be >= 0, got %d", c.CorrectDelayMs))
	}
	if c.IncorrectDelayMs < 0 {
		errs = append(errs, fmt.Errorf("INCORRECT_DELAY_MS must be >= 0, got %d", c.IncorrectDelayMs))
	}
	if c.EventQueueSize < 1 {
		errs = append(errs, fmt.Errorf("EVENT_QUEUE_SIZE must be >= 1, got %d", c.EventQueueSize))
	}
	if strings.TrimSpace(c.DefaultUsername) == "" {
		errs = append(errs, stderrors.New("DEFAULT_USERNAME cannot be empty"))
	}

	return stderrors.Join(errs...)
}

// CorrectDelay is the feedback time after a correct answer.
func (c Config) CorrectDelay() time.Duration {
	return time.Duration(c.CorrectDelayMs) * time.Millisecond
}

// IncorrectDelay is the feedback time after a wrong answer or a timeout.
func (c Config) IncorrectDelay() time.Duration {
	return time.Duration(c.IncorrectDelayMs) * time.Millisecond
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
