package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sambafall/missmister-api/internal/domain"
)

type CandidateRepository interface {
	List(ctx context.Context) ([]domain.Candidate, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Candidate, error)
	ListByVotes(ctx context.Context, category *domain.Category) ([]domain.Candidate, error)
	Count(ctx context.Context) (int64, error)
	SumVotes(ctx context.Context) (int64, error)
}

type StatsService struct {
	candidates   CandidateRepository
	transactions TransactionRepository
	deadline     time.Time
	now          func() time.Time
}

func NewStatsService(candidates CandidateRepository, transactions TransactionRepository, deadline time.Time) *StatsService {
	return &StatsService{
		candidates:   candidates,
		transactions: transactions,
		deadline:     deadline.UTC(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *StatsService) Candidates(ctx context.Context, category *domain.Category) ([]domain.Candidate, error) {
	var (
		candidates []domain.Candidate
		err        error
	)
	if category == nil {
		candidates, err = s.candidates.List(ctx)
	} else {
		candidates, err = s.candidates.ListByCategory(ctx, *category)
	}
	if err != nil {
		return nil, fmt.Errorf("s.candidates.List -> %w", err)
	}

	return candidates, nil
}

// Ranking returns candidates ordered by tally descending with name as the
// tiebreaker, each carrying its 1-based row position. Tied tallies still get
// strictly increasing positions. With a category filter, positions are
// assigned within the filtered set.
func (s *StatsService) Ranking(ctx context.Context, category *domain.Category) ([]domain.RankedCandidate, error) {
	candidates, err := s.candidates.ListByVotes(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("s.candidates.ListByVotes -> %w", err)
	}

	ranking := make([]domain.RankedCandidate, len(candidates))
	for i, candidate := range candidates {
		ranking[i] = domain.RankedCandidate{
			Candidate:    candidate,
			RankPosition: i + 1,
		}
	}

	return ranking, nil
}

func (s *StatsService) Stats(ctx context.Context) (domain.Stats, error) {
	totalCandidates, err := s.candidates.Count(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("s.candidates.Count -> %w", err)
	}

	totalVotes, err := s.candidates.SumVotes(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("s.candidates.SumVotes -> %w", err)
	}

	byStatus, err := s.transactions.CountByStatus(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("s.transactions.CountByStatus -> %w", err)
	}

	return domain.Stats{
		TotalCandidates: totalCandidates,
		TotalVotes:      totalVotes,
		Transactions:    byStatus,
		Deadline:        s.deadline,
		VotingOpen:      s.deadline.IsZero() || s.now().Before(s.deadline),
	}, nil
}
