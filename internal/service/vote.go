package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sambafall/missmister-api/internal/domain"
	"github.com/sambafall/missmister-api/internal/repository"
)

// unitPrice is the price of a single vote, in the smallest currency unit.
// The amount is derived once at submission time and never recomputed.
const unitPrice = 100

var (
	ErrCodeAlreadyUsed     = repository.ErrCodeAlreadyUsed
	ErrTransactionNotFound = repository.ErrTransactionNotFound
	ErrCandidateNotFound   = repository.ErrCandidateNotFound
	ErrVotingClosed        = errors.New("voting deadline has passed")
	ErrInvalidVoteCount    = errors.New("vote count must be a positive integer")
)

// DuplicateCodeError reports a submission whose normalized code collides with
// an existing transaction, carrying that transaction for the conflict body.
type DuplicateCodeError struct {
	Existing domain.Transaction
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("transaction code already used by transaction %v", e.Existing.ID)
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	FindByNormalizedCode(ctx context.Context, code string) (domain.Transaction, error)
	ListPending(ctx context.Context) ([]domain.Transaction, error)
	Validate(ctx context.Context, id uint) error
	Reject(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type VoteService struct {
	repo     TransactionRepository
	deadline time.Time
	now      func() time.Time
}

func NewVoteService(repo TransactionRepository, deadline time.Time) *VoteService {
	return &VoteService{
		repo:     repo,
		deadline: deadline.UTC(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SubmitVote records a vote purchase as a pending transaction. The existence
// check here is an optimization; the storage-level unique index on the
// normalized code is what actually guarantees one use per code, so a lost
// race between the check and the insert still surfaces as a duplicate.
func (s *VoteService) SubmitVote(ctx context.Context, candidateID, paymentMethod, code string, voteCount int) (domain.Transaction, error) {
	if voteCount <= 0 {
		return domain.Transaction{}, ErrInvalidVoteCount
	}
	if !s.deadline.IsZero() && s.now().After(s.deadline) {
		return domain.Transaction{}, ErrVotingClosed
	}

	existing, err := s.repo.FindByNormalizedCode(ctx, code)
	if err == nil {
		return domain.Transaction{}, &DuplicateCodeError{Existing: existing}
	}
	if !errors.Is(err, ErrTransactionNotFound) {
		return domain.Transaction{}, fmt.Errorf("s.repo.FindByNormalizedCode -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Transaction{
		CandidateID:   candidateID,
		PaymentMethod: paymentMethod,
		Code:          code,
		VoteCount:     voteCount,
		Amount:        voteCount * unitPrice,
	})
	if err != nil {
		if errors.Is(err, ErrCodeAlreadyUsed) {
			winner, findErr := s.repo.FindByNormalizedCode(ctx, code)
			if findErr != nil {
				return domain.Transaction{}, fmt.Errorf("s.repo.FindByNormalizedCode -> %w", findErr)
			}

			return domain.Transaction{}, &DuplicateCodeError{Existing: winner}
		}
		if errors.Is(err, ErrCandidateNotFound) {
			return domain.Transaction{}, ErrCandidateNotFound
		}

		return domain.Transaction{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// CheckCode is the read-only "did my code already get used" lookup.
func (s *VoteService) CheckCode(ctx context.Context, code string) (domain.Transaction, bool, error) {
	transaction, err := s.repo.FindByNormalizedCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return domain.Transaction{}, false, nil
		}

		return domain.Transaction{}, false, fmt.Errorf("s.repo.FindByNormalizedCode -> %w", err)
	}

	return transaction, true, nil
}

func (s *VoteService) PendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPending -> %w", err)
	}

	return transactions, nil
}

func (s *VoteService) ValidateTransaction(ctx context.Context, id uint) error {
	if err := s.repo.Validate(ctx, id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}

		return fmt.Errorf("s.repo.Validate -> %w", err)
	}

	return nil
}

func (s *VoteService) RejectTransaction(ctx context.Context, id uint) error {
	if err := s.repo.Reject(ctx, id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}

		return fmt.Errorf("s.repo.Reject -> %w", err)
	}

	return nil
}
