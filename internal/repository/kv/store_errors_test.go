package kv_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/repository/kv"
	"github.com/vytor/letterflash/internal/testutil/mocks"
)

func TestProfileRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := stderrors.New("disk gone")

	store := &mocks.MockKeyValueStore{}
	store.On("Get", ctx, kv.KeyProfile).Return("", false, boom)
	repo := kv.NewProfileRepository(store, "")

	p, err := repo.Load(ctx)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, models.DefaultProfile(""), p, "defaults are returned alongside the error")

	store.On("Set", ctx, kv.KeyProfile, mock.Anything).Return(boom)
	err = repo.Save(ctx, models.DefaultProfile(""))
	require.ErrorIs(t, err, boom)
	store.AssertNotCalled(t, "Set", ctx, kv.KeyLegacyHighScore, mock.Anything)
}
