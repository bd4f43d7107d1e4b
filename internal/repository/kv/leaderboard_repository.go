package kv

import (
	"context"

	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/repository"
)

type leaderboardRepository struct {
	store repository.KeyValueStore
}

// NewLeaderboardRepository creates a LeaderboardRepository over store.
func NewLeaderboardRepository(store repository.KeyValueStore) repository.LeaderboardRepository {
	return &leaderboardRepository{store: store}
}

func (r *leaderboardRepository) Load(ctx context.Context) (models.Leaderboard, error) {
	var lb models.Leaderboard
	if _, err := loadDocument(ctx, r.store, KeyLeaderboard, &lb, models.Leaderboard{}); err != nil {
		return emptyBoards(models.Leaderboard{}), err
	}
	return emptyBoards(lb), nil
}

func (r *leaderboardRepository) Save(ctx context.Context, lb models.Leaderboard) error {
	return saveDocument(ctx, r.store, KeyLeaderboard, emptyBoards(lb))
}

// emptyBoards replaces nil boards so they encode as [] rather than null.
func emptyBoards(lb models.Leaderboard) models.Leaderboard {
	if lb.Alphabet == nil {
		lb.Alphabet = []models.LeaderboardEntry{}
	}
	if lb.Math == nil {
		lb.Math = []models.LeaderboardEntry{}
	}
	if lb.Overall == nil {
		lb.Overall = []models.LeaderboardEntry{}
	}
	return lb
}
