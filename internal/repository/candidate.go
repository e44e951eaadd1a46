package repository

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/sambafall/missmister-api/internal/domain"
	"github.com/sambafall/missmister-api/internal/repository/dao"
)

var ErrCandidateNotFound = dao.ErrCandidateNotFound

type CandidateDAO interface {
	List(ctx context.Context) ([]dao.Candidate, error)
	ListByCategory(ctx context.Context, category string) ([]dao.Candidate, error)
	ListByVotes(ctx context.Context, category *string) ([]dao.Candidate, error)
	Count(ctx context.Context) (int64, error)
	SumVotes(ctx context.Context) (int64, error)
}

type CandidateRepository struct {
	dao CandidateDAO
}

func NewCandidateRepository(dao CandidateDAO) *CandidateRepository {
	return &CandidateRepository{
		dao: dao,
	}
}

func (r *CandidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(candidates), nil
}

func (r *CandidateRepository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Candidate, error) {
	candidates, err := r.dao.ListByCategory(ctx, string(category))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByCategory -> %w", err)
	}

	return r.daosToDomain(candidates), nil
}

func (r *CandidateRepository) ListByVotes(ctx context.Context, category *domain.Category) ([]domain.Candidate, error) {
	var filter *string
	if category != nil {
		c := string(*category)
		filter = &c
	}

	candidates, err := r.dao.ListByVotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByVotes -> %w", err)
	}

	return r.daosToDomain(candidates), nil
}

func (r *CandidateRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *CandidateRepository) SumVotes(ctx context.Context) (int64, error) {
	total, err := r.dao.SumVotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumVotes -> %w", err)
	}

	return total, nil
}

func (r *CandidateRepository) daoToDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:        c.ID,
		Name:      c.Name,
		Category:  domain.Category(c.Category),
		Image:     c.Image,
		Votes:     c.Votes,
		Number:    CandidateNumber(c.ID),
		CreatedAt: c.CreatedAt,
	}
}

func (r *CandidateRepository) daosToDomain(daoCandidates []dao.Candidate) []domain.Candidate {
	candidates := make([]domain.Candidate, len(daoCandidates))
	for i, c := range daoCandidates {
		candidates[i] = r.daoToDomain(c)
	}

	return candidates
}

// CandidateNumber extracts the numeric suffix of a candidate ID
// ("miss2" -> 2); IDs without digits map to 0.
func CandidateNumber(id string) int {
	var digits strings.Builder
	for _, r := range id {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	n := 0
	for _, r := range digits.String() {
		n = n*10 + int(r-'0')
	}

	return n
}
