package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/letterflash/internal/db"
)

// NewTestDB opens a private in-memory sqlite database with all migrations
// applied and closes it when the test ends.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
