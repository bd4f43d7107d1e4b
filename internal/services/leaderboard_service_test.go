package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/letterflash/internal/errors"
	"github.com/vytor/letterflash/internal/models"
	"github.com/vytor/letterflash/internal/repository/kv"
	"github.com/vytor/letterflash/internal/services"
)

type LeaderboardServiceSuite struct {
	suite.Suite
	ctx context.Context
	svc services.LeaderboardService
}

func (s *LeaderboardServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc = services.NewLeaderboardService(kv.NewLeaderboardRepository(kv.NewMemoryStore()))
}

func (s *LeaderboardServiceSuite) TestAdd_RanksAndMirrorsOverall() {
	s.Require().NoError(s.svc.Add(s.ctx, models.LeaderboardEntry{Username: "a", Score: 3}, "alphabet"))
	s.Require().NoError(s.svc.Add(s.ctx, models.LeaderboardEntry{Username: "b", Score: 9}, "math"))
	s.Require().NoError(s.svc.Add(s.ctx, models.LeaderboardEntry{Username: "c", Score: 5}, "alphabet"))

	alpha, err := s.svc.Top(s.ctx, "alphabet")
	s.Require().NoError(err)
	s.Require().Len(alpha, 2)
	s.Assert().Equal("c", alpha[0].Username)
	s.Assert().Equal("a", alpha[1].Username)

	overall, err := s.svc.Top(s.ctx, "overall")
	s.Require().NoError(err)
	s.Require().Len(overall, 3)
	s.Assert().Equal([]string{"b", "c", "a"}, usernames(overall))
}

func (s *LeaderboardServiceSuite) TestAdd_TruncatesAndKeepsEarlierOnTies() {
	for i := 0; i < models.LeaderboardSize+5; i++ {
		e := models.LeaderboardEntry{Username: fmt.Sprintf("p%d", i), Score: 10}
		s.Require().NoError(s.svc.Add(s.ctx, e, "math"))
	}
	board, err := s.svc.Top(s.ctx, "math")
	s.Require().NoError(err)
	s.Assert().Len(board, models.LeaderboardSize)
	s.Assert().Equal("p0", board[0].Username)
	s.Assert().Equal(fmt.Sprintf("p%d", models.LeaderboardSize-1), board[len(board)-1].Username)
}

func (s *LeaderboardServiceSuite) TestAdd_RejectsUnknownBoard() {
	err := s.svc.Add(s.ctx, models.LeaderboardEntry{Score: 1}, "overall")
	s.Assert().Equal(errors.ErrCodeValidation, errors.AsAppError(err).Code)
}

func (s *LeaderboardServiceSuite) TestTop_UnknownBoard() {
	_, err := s.svc.Top(s.ctx, "weekly")
	s.Assert().Equal(errors.ErrCodeNotFound, errors.AsAppError(err).Code)
}

func (s *LeaderboardServiceSuite) TestAll_EmptyBoardsAreNotNil() {
	lb, err := s.svc.All(s.ctx)
	s.Require().NoError(err)
	s.Assert().NotNil(lb.Alphabet)
	s.Assert().NotNil(lb.Math)
	s.Assert().NotNil(lb.Overall)
}

func TestLeaderboardServiceSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceSuite))
}

func usernames(entries []models.LeaderboardEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Username
	}
	return out
}
