package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// candidateNumberExpr extracts the numeric suffix of a candidate ID
// ("miss2" -> 2) for display ordering.
const candidateNumberExpr = "CAST(REGEXP_REPLACE(id, '[^0-9]', '', 'g') AS INTEGER)"

type Candidate struct {
	ID string `gorm:"primaryKey;size:50"`

	Name     string `gorm:"size:100;not null"`
	Category string `gorm:"size:20;not null;index"`
	Image    string `gorm:"size:255"`
	Votes    int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
}

type CandidateDAO struct {
	db *gorm.DB
}

func NewCandidateDAO(db *gorm.DB) *CandidateDAO {
	return &CandidateDAO{
		db: db,
	}
}

func (d *CandidateDAO) List(ctx context.Context) ([]Candidate, error) {
	var candidates []Candidate
	err := d.db.WithContext(ctx).
		Order("category, " + candidateNumberExpr).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

func (d *CandidateDAO) ListByCategory(ctx context.Context, category string) ([]Candidate, error) {
	var candidates []Candidate
	err := d.db.WithContext(ctx).
		Where("category = ?", category).
		Order(candidateNumberExpr).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// ListByVotes returns candidates in ranking order: votes descending, ties
// broken by name ascending. A nil category returns the whole roster.
func (d *CandidateDAO) ListByVotes(ctx context.Context, category *string) ([]Candidate, error) {
	query := d.db.WithContext(ctx).Order("votes DESC, name ASC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var candidates []Candidate
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}

	return candidates, nil
}

func (d *CandidateDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&Candidate{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (d *CandidateDAO) SumVotes(ctx context.Context) (int64, error) {
	var total int64
	err := d.db.WithContext(ctx).
		Model(&Candidate{}).
		Select("COALESCE(SUM(votes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// incrementVotes bumps a candidate tally inside the caller's transaction.
// Only the ledger's validate transition calls it.
func incrementVotes(tx *gorm.DB, candidateID string, delta int) error {
	result := tx.Model(&Candidate{}).
		Where("id = ?", candidateID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}

	return nil
}
