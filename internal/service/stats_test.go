package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambafall/missmister-api/internal/domain"
)

type fakeCandidateRepo struct {
	candidates []domain.Candidate
}

func (f *fakeCandidateRepo) List(_ context.Context) ([]domain.Candidate, error) {
	return f.candidates, nil
}

func (f *fakeCandidateRepo) ListByCategory(_ context.Context, category domain.Category) ([]domain.Candidate, error) {
	var filtered []domain.Candidate
	for _, c := range f.candidates {
		if c.Category == category {
			filtered = append(filtered, c)
		}
	}

	return filtered, nil
}

func (f *fakeCandidateRepo) ListByVotes(ctx context.Context, category *domain.Category) ([]domain.Candidate, error) {
	candidates := f.candidates
	if category != nil {
		candidates, _ = f.ListByCategory(ctx, *category)
	}

	sorted := make([]domain.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Votes != sorted[j].Votes {
			return sorted[i].Votes > sorted[j].Votes
		}

		return sorted[i].Name < sorted[j].Name
	})

	return sorted, nil
}

func (f *fakeCandidateRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.candidates)), nil
}

func (f *fakeCandidateRepo) SumVotes(_ context.Context) (int64, error) {
	var total int64
	for _, c := range f.candidates {
		total += int64(c.Votes)
	}

	return total, nil
}

func TestStatsService_Ranking(t *testing.T) {
	candidates := &fakeCandidateRepo{
		candidates: []domain.Candidate{
			{ID: "miss1", Name: "Fatou Diop", Category: domain.CategoryMiss, Votes: 10},
			{ID: "miss2", Name: "Aïcha Sow", Category: domain.CategoryMiss, Votes: 7},
			{ID: "mister1", Name: "Mamadou Fall", Category: domain.CategoryMister, Votes: 10},
		},
	}
	svc := NewStatsService(candidates, newFakeTransactionRepo(), time.Now().UTC().Add(time.Hour))

	t.Run("ties get distinct rank positions, names break ties", func(t *testing.T) {
		ranking, err := svc.Ranking(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, ranking, 3)

		// Both tallies of 10 rank ahead of 7; "Fatou Diop" sorts before
		// "Mamadou Fall" so the positions are 1, 2, 3 with no sharing.
		assert.Equal(t, "miss1", ranking[0].ID)
		assert.Equal(t, 1, ranking[0].RankPosition)
		assert.Equal(t, "mister1", ranking[1].ID)
		assert.Equal(t, 2, ranking[1].RankPosition)
		assert.Equal(t, "miss2", ranking[2].ID)
		assert.Equal(t, 3, ranking[2].RankPosition)
	})

	t.Run("category filter ranks within the category", func(t *testing.T) {
		category := domain.CategoryMiss
		ranking, err := svc.Ranking(context.Background(), &category)
		require.NoError(t, err)
		require.Len(t, ranking, 2)

		assert.Equal(t, "miss1", ranking[0].ID)
		assert.Equal(t, 1, ranking[0].RankPosition)
		assert.Equal(t, "miss2", ranking[1].ID)
		assert.Equal(t, 2, ranking[1].RankPosition)
	})
}

func TestStatsService_Stats(t *testing.T) {
	candidates := &fakeCandidateRepo{
		candidates: []domain.Candidate{
			{ID: "miss1", Name: "Fatou Diop", Category: domain.CategoryMiss, Votes: 3},
			{ID: "mister1", Name: "Mamadou Fall", Category: domain.CategoryMister, Votes: 2},
		},
	}

	transactions := newFakeTransactionRepo()
	_, err := transactions.Create(context.Background(), domain.Transaction{CandidateID: "miss1", Code: "OM1001", VoteCount: 3})
	require.NoError(t, err)

	deadline := time.Now().UTC().Add(time.Hour)
	svc := NewStatsService(candidates, transactions, deadline)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalCandidates)
	assert.Equal(t, int64(5), stats.TotalVotes)
	assert.Equal(t, int64(1), stats.Transactions[string(domain.StatusPending)])
	assert.Equal(t, deadline, stats.Deadline)
	assert.True(t, stats.VotingOpen)
}

func TestStatsService_Stats_ClosedAfterDeadline(t *testing.T) {
	svc := NewStatsService(&fakeCandidateRepo{}, newFakeTransactionRepo(), time.Now().UTC().Add(-time.Hour))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.False(t, stats.VotingOpen)
}
