package repository

import "context"

// KeyValueStore is the durable string-keyed store every repository persists
// through. Values are opaque strings (JSON documents in practice).
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
