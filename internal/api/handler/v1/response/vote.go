package response

import (
	"time"

	"github.com/sambafall/missmister-api/internal/domain"
)

type SubmitVote struct {
	Message       string `json:"message"`
	TransactionID uint   `json:"transaction_id"`
}

// DuplicateCode is the 409 body; it carries the conflicting transaction so
// the client can tell the user which submission already consumed the code.
type DuplicateCode struct {
	Error         string                   `json:"error"`
	Exists        bool                     `json:"exists"`
	TransactionID uint                     `json:"transaction_id"`
	CandidateID   string                   `json:"candidate_id"`
	Status        domain.TransactionStatus `json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
}

func NewDuplicateCode(existing domain.Transaction) DuplicateCode {
	return DuplicateCode{
		Error:         "transaction code already used",
		Exists:        true,
		TransactionID: existing.ID,
		CandidateID:   existing.CandidateID,
		Status:        existing.Status,
		CreatedAt:     existing.CreatedAt,
	}
}

type CheckTransaction struct {
	Exists      bool                `json:"exists"`
	Transaction *domain.Transaction `json:"transaction,omitempty"`
}

type Login struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type Message struct {
	Message string `json:"message"`
}

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
