package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Codes must carry at least one letter and one digit, like the references
// issued by the mobile-money providers ("OM1001", "WAVE2034"). The lookahead
// pattern needs regexp2; stdlib regexp has no lookaround.
const codeRegexPattern = `^(?=.*[A-Za-z])(?=.*\d)[A-Za-z0-9._-]{4,64}$`

var (
	codeRegex = regexp2.MustCompile(codeRegexPattern, regexp2.None)

	errInvalidCode = errors.New("transaction code must be 4-64 characters and contain at least one letter and one digit")
)

type SubmitVoteRequest struct {
	CandidateID     string `json:"candidate_id"`
	PaymentMethod   string `json:"payment_method"`
	TransactionCode string `json:"transaction_code"`
	VoteCount       int    `json:"vote_count"`
}

func (req *SubmitVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CandidateID, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.PaymentMethod, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.TransactionCode, validation.Required, validation.By(validateCode)),
		validation.Field(&req.VoteCount, validation.Min(1)),
	)
}

func validateCode(value interface{}) error {
	code, _ := value.(string)
	ok, err := codeRegex.MatchString(code)
	if err != nil || !ok {
		return errInvalidCode
	}

	return nil
}

type LoginRequest struct {
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
	)
}
