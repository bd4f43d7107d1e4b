package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/repository"
)

// loadDocument decodes the JSON stored under key into dst, which the caller
// pre-fills with defaults. Fields missing from the stored document keep their
// defaults, and so do fields whose stored value has the wrong type. A
// document that is not valid JSON is logged and ignored: dst is reset to
// fallback and found is false.
func loadDocument[T any](ctx context.Context, store repository.KeyValueStore, key string, dst *T, fallback T) (found bool, err error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log := logger.FromContext(ctx).WithPrefix("kv")
		// json keeps decoding past a mistyped field and leaves it untouched.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			log.Warn("keeping defaults for mistyped field in %s: %v", key, err)
			return true, nil
		}
		log.Warn("discarding malformed %s: %v", key, err)
		*dst = fallback
		return false, nil
	}
	return true, nil
}

func saveDocument(ctx context.Context, store repository.KeyValueStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
