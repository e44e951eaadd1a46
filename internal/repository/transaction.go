package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/sambafall/missmister-api/internal/domain"
	"github.com/sambafall/missmister-api/internal/repository/dao"
)

var (
	ErrCodeAlreadyUsed     = dao.ErrCodeAlreadyUsed
	ErrTransactionNotFound = dao.ErrTransactionNotFound
)

type TransactionDAO interface {
	Insert(ctx context.Context, transaction dao.Transaction) (dao.Transaction, error)
	FindByNormalizedCode(ctx context.Context, code string) (dao.TransactionRow, error)
	ListPending(ctx context.Context) ([]dao.TransactionRow, error)
	Validate(ctx context.Context, id uint) error
	Reject(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type TransactionRepository struct {
	dao TransactionDAO
}

func NewTransactionRepository(dao TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	created, err := r.dao.Insert(ctx, dao.Transaction{
		CandidateID:   transaction.CandidateID,
		PaymentMethod: transaction.PaymentMethod,
		Code:          transaction.Code,
		VoteCount:     transaction.VoteCount,
		Amount:        transaction.Amount,
	})
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TransactionRepository) FindByNormalizedCode(ctx context.Context, code string) (domain.Transaction, error) {
	row, err := r.dao.FindByNormalizedCode(ctx, code)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.FindByNormalizedCode -> %w", err)
	}

	return r.rowToDomain(row), nil
}

func (r *TransactionRepository) ListPending(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.dao.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPending -> %w", err)
	}

	transactions := make([]domain.Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = r.rowToDomain(row)
	}

	return transactions, nil
}

func (r *TransactionRepository) Validate(ctx context.Context, id uint) error {
	if err := r.dao.Validate(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Validate -> %w", err)
	}

	return nil
}

func (r *TransactionRepository) Reject(ctx context.Context, id uint) error {
	if err := r.dao.Reject(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Reject -> %w", err)
	}

	return nil
}

func (r *TransactionRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := r.dao.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByStatus -> %w", err)
	}

	return counts, nil
}

func (r *TransactionRepository) daoToDomain(t dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:             t.ID,
		CandidateID:    t.CandidateID,
		PaymentMethod:  t.PaymentMethod,
		Code:           t.Code,
		NormalizedCode: t.NormalizedCode,
		VoteCount:      t.VoteCount,
		Amount:         t.Amount,
		Status:         domain.TransactionStatus(t.Status),
		CreatedAt:      t.CreatedAt,
		ValidatedAt:    t.ValidatedAt,
	}
}

func (r *TransactionRepository) rowToDomain(row dao.TransactionRow) domain.Transaction {
	number := row.CandidateNumber
	if number == 0 {
		number = CandidateNumber(row.CandidateID)
	}

	return domain.Transaction{
		ID:                row.ID,
		CandidateID:       row.CandidateID,
		PaymentMethod:     row.PaymentMethod,
		Code:              row.Code,
		NormalizedCode:    strings.ToUpper(row.Code),
		VoteCount:         row.VoteCount,
		Amount:            row.Amount,
		Status:            domain.TransactionStatus(row.Status),
		CreatedAt:         row.CreatedAt,
		ValidatedAt:       row.ValidatedAt,
		CandidateName:     row.CandidateName,
		CandidateCategory: domain.Category(row.CandidateCategory),
		CandidateNumber:   number,
	}
}
