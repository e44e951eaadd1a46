package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StatusPending   = "pending"
	StatusValidated = "validated"
	StatusRejected  = "rejected"
)

var (
	ErrCodeAlreadyUsed     = errors.New("transaction code already used")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type Transaction struct {
	ID uint `gorm:"primaryKey"`

	CandidateID string    `gorm:"size:50;not null;index"`
	Candidate   Candidate `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`

	PaymentMethod string `gorm:"size:50;not null"`
	Code          string `gorm:"size:100;not null"`
	// NormalizedCode is the upper-cased code; the unique index on it is the
	// one-use-per-code mechanism of record.
	NormalizedCode string `gorm:"size:100;not null;uniqueIndex"`
	VoteCount      int    `gorm:"not null"`
	Amount         int    `gorm:"not null"`
	Status         string `gorm:"size:20;not null;default:pending;index"`

	CreatedAt   time.Time `gorm:"not null"`
	ValidatedAt *time.Time
}

// TransactionRow is a transaction joined with its candidate's display data.
type TransactionRow struct {
	ID                uint       `json:"id"`
	CandidateID       string     `json:"candidate_id"`
	PaymentMethod     string     `json:"payment_method"`
	Code              string     `json:"transaction_code"`
	VoteCount         int        `json:"vote_count"`
	Amount            int        `json:"amount"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	ValidatedAt       *time.Time `json:"validated_at"`
	CandidateName     string     `json:"candidate_name"`
	CandidateCategory string     `json:"candidate_category"`
	CandidateNumber   int        `json:"candidate_number"`
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

// Insert stores a new pending transaction. The code is upper-cased into
// NormalizedCode before the write; a race between the caller's existence
// check and the insert still ends here, as a unique violation.
func (d *TransactionDAO) Insert(ctx context.Context, transaction Transaction) (Transaction, error) {
	transaction.NormalizedCode = strings.ToUpper(transaction.Code)
	transaction.Status = StatusPending

	result := d.db.WithContext(ctx).Create(&transaction)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return Transaction{}, ErrCodeAlreadyUsed
			case pgerrcode.ForeignKeyViolation:
				return Transaction{}, ErrCandidateNotFound
			}
		}

		return Transaction{}, result.Error
	}

	return transaction, nil
}

func (d *TransactionDAO) FindByNormalizedCode(ctx context.Context, code string) (TransactionRow, error) {
	var row TransactionRow
	err := d.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.id, t.candidate_id, t.payment_method, t.code, t.vote_count, t.amount, t.status, t.created_at, t.validated_at, "+
			"c.name AS candidate_name, c.category AS candidate_category").
		Joins("LEFT JOIN candidates AS c ON c.id = t.candidate_id").
		Where("t.normalized_code = ?", strings.ToUpper(code)).
		Order("t.created_at DESC").
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return TransactionRow{}, err
	}
	if row.ID == 0 {
		return TransactionRow{}, ErrTransactionNotFound
	}

	return row, nil
}

func (d *TransactionDAO) ListPending(ctx context.Context) ([]TransactionRow, error) {
	var rows []TransactionRow
	err := d.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.id, t.candidate_id, t.payment_method, t.code, t.vote_count, t.amount, t.status, t.created_at, t.validated_at, "+
			"c.name AS candidate_name, c.category AS candidate_category, "+
			"CAST(REGEXP_REPLACE(c.id, '[^0-9]', '', 'g') AS INTEGER) AS candidate_number").
		Joins("JOIN candidates AS c ON c.id = t.candidate_id").
		Where("t.status = ?", StatusPending).
		Order("t.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Validate moves a pending transaction to validated and credits the owning
// candidate's tally by its vote count, in a single database transaction.
// A transaction that is not pending (unknown id or already terminal) fails
// with ErrTransactionNotFound and leaves every tally untouched.
func (d *TransactionDAO) Validate(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transaction Transaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", id, StatusPending).
			First(&transaction).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}

			return err
		}

		now := time.Now().UTC()
		err = tx.Model(&Transaction{}).
			Where("id = ?", transaction.ID).
			Updates(map[string]interface{}{
				"status":       StatusValidated,
				"validated_at": &now,
			}).Error
		if err != nil {
			return err
		}

		return incrementVotes(tx, transaction.CandidateID, transaction.VoteCount)
	})
}

// Reject discards a pending transaction. Like Validate it is guarded on the
// pending status, so a terminal transaction cannot be re-rejected.
func (d *TransactionDAO) Reject(ctx context.Context, id uint) error {
	now := time.Now().UTC()
	result := d.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]interface{}{
			"status":       StatusRejected,
			"validated_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (d *TransactionDAO) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := d.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
