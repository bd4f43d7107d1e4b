package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/letterflash/internal/models"
)

// MockGameStore is a mock implementation of game.Store
type MockGameStore struct {
	mock.Mock
}

func (m *MockGameStore) GetProfile(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockGameStore) RecordAnswer(ctx context.Context, rec models.AnswerRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockGameStore) FinishGame(ctx context.Context, result models.GameResult) (*models.Profile, error) {
	args := m.Called(ctx, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}
