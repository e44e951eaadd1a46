package domain

import "time"

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusValidated TransactionStatus = "validated"
	StatusRejected  TransactionStatus = "rejected"
)

type Transaction struct {
	ID             uint              `json:"id"`
	CandidateID    string            `json:"candidate_id"`
	PaymentMethod  string            `json:"payment_method"`
	Code           string            `json:"transaction_code"`
	NormalizedCode string            `json:"-"`
	VoteCount      int               `json:"vote_count"`
	Amount         int               `json:"amount"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	ValidatedAt    *time.Time        `json:"validated_at,omitempty"`

	// Candidate display data, populated on joined reads only.
	CandidateName     string   `json:"candidate_name,omitempty"`
	CandidateCategory Category `json:"candidate_category,omitempty"`
	CandidateNumber   int      `json:"candidate_number,omitempty"`
}
