package services

import (
	"context"
	"sort"
	"sync"

	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/logger"
	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/quiz"
	"github.com/vytor/letterflash/internal/repository"
)

// LeaderboardService keeps the ranked boards.
type LeaderboardService interface {
	Add(ctx context.Context, entry models.LeaderboardEntry, board string) error
	Top(ctx context.Context, board string) ([]models.LeaderboardEntry, error)
	All(ctx context.Context) (*models.Leaderboard, error)
}

type leaderboardService struct {
	mu   sync.Mutex
	repo repository.LeaderboardRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(repo repository.LeaderboardRepository) LeaderboardService {
	return &leaderboardService{repo: repo}
}

// Add ranks entry on board and on the overall board, then persists both.
func (s *leaderboardService) Add(ctx context.Context, entry models.LeaderboardEntry, board string) error {
	log := logger.FromContext(ctx)
	log.Debug("adding leaderboard entry: board=%s, username=%s, score=%d", board, entry.Username, entry.Score)

	if board != quiz.BoardAlphabet && board != quiz.BoardMath {
		return errors.NewValidationError("board", "must be 'alphabet' or 'math'")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lb, err := s.repo.Load(ctx)
	if err != nil {
		log.Error("failed to load leaderboard: %v", err)
		return errors.NewInternalError(err)
	}

	modeBoard, _ := boardOf(&lb, board)
	*modeBoard = rank(*modeBoard, entry)
	lb.Overall = rank(lb.Overall, entry)

	if err := s.repo.Save(ctx, lb); err != nil {
		log.Error("failed to save leaderboard: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *leaderboardService) Top(ctx context.Context, board string) ([]models.LeaderboardEntry, error) {
	lb, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	entries, ok := boardOf(lb, board)
	if !ok {
		return nil, errors.NewNotFoundError("leaderboard", board)
	}
	return *entries, nil
}

func (s *leaderboardService) All(ctx context.Context) (*models.Leaderboard, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	lb, err := s.repo.Load(ctx)
	if err != nil {
		log.Error("failed to load leaderboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &lb, nil
}

func boardOf(lb *models.Leaderboard, name string) (*[]models.LeaderboardEntry, bool) {
	switch name {
	case quiz.BoardAlphabet:
		return &lb.Alphabet, true
	case quiz.BoardMath:
		return &lb.Math, true
	case quiz.BoardOverall:
		return &lb.Overall, true
	}
	return nil, false
}

// rank appends e, sorts by score descending (earlier entries win ties) and
// truncates to LeaderboardSize.
func rank(entries []models.LeaderboardEntry, e models.LeaderboardEntry) []models.LeaderboardEntry {
	out := make([]models.LeaderboardEntry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > models.LeaderboardSize {
		out = out[:models.LeaderboardSize]
	}
	return out
}
