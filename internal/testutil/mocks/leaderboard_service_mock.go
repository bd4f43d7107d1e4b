package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/letterflash/internal/models"
)

// MockLeaderboardService is a mock implementation of services.LeaderboardService
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Add(ctx context.Context, entry models.LeaderboardEntry, board string) error {
	args := m.Called(ctx, entry, board)
	return args.Error(0)
}

func (m *MockLeaderboardService) Top(ctx context.Context, board string) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, board)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardService) All(ctx context.Context) (*models.Leaderboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Leaderboard), args.Error(1)
}
