package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambafall/missmister-api/internal/domain"
	"github.com/sambafall/missmister-api/internal/service"
)

type fakeVoteService struct {
	submitted   domain.Transaction
	submitErr   error
	checkResult domain.Transaction
	checkExists bool
	checkErr    error

	gotCandidateID string
	gotVoteCount   int
}

func (f *fakeVoteService) SubmitVote(_ context.Context, candidateID, _, _ string, voteCount int) (domain.Transaction, error) {
	f.gotCandidateID = candidateID
	f.gotVoteCount = voteCount
	if f.submitErr != nil {
		return domain.Transaction{}, f.submitErr
	}

	return f.submitted, nil
}

func (f *fakeVoteService) CheckCode(_ context.Context, _ string) (domain.Transaction, bool, error) {
	return f.checkResult, f.checkExists, f.checkErr
}

func newVoteRouter(svc VoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewVoteHandler(svc)
	router.POST("/api/vote", handler.HandleSubmitVote)
	router.GET("/api/check-transaction/:code", handler.HandleCheckTransaction)

	return router
}

func TestHandleSubmitVote(t *testing.T) {
	existing := domain.Transaction{
		ID:          17,
		CandidateID: "miss1",
		Status:      domain.StatusPending,
		CreatedAt:   time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		svc            *fakeVoteService
		body           interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, svc *fakeVoteService, body []byte)
	}{
		{
			name: "valid submission",
			svc:  &fakeVoteService{submitted: domain.Transaction{ID: 5}},
			body: map[string]interface{}{
				"candidate_id":     "miss1",
				"payment_method":   "orange_money",
				"transaction_code": "OM1001",
				"vote_count":       3,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, svc *fakeVoteService, body []byte) {
				var resp struct {
					TransactionID uint `json:"transaction_id"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, uint(5), resp.TransactionID)
				assert.Equal(t, 3, svc.gotVoteCount)
			},
		},
		{
			name: "vote count defaults to one",
			svc:  &fakeVoteService{submitted: domain.Transaction{ID: 6}},
			body: map[string]interface{}{
				"candidate_id":     "miss1",
				"payment_method":   "wave",
				"transaction_code": "WV2002",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, svc *fakeVoteService, body []byte) {
				assert.Equal(t, 1, svc.gotVoteCount)
			},
		},
		{
			name: "missing candidate",
			svc:  &fakeVoteService{},
			body: map[string]interface{}{
				"payment_method":   "orange_money",
				"transaction_code": "OM1001",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing payment method",
			svc:  &fakeVoteService{},
			body: map[string]interface{}{
				"candidate_id":     "miss1",
				"transaction_code": "OM1001",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "code without a digit",
			svc:  &fakeVoteService{},
			body: map[string]interface{}{
				"candidate_id":     "miss1",
				"payment_method":   "wave",
				"transaction_code": "nodigits",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate code",
			svc:  &fakeVoteService{submitErr: &service.DuplicateCodeError{Existing: existing}},
			body: map[string]interface{}{
				"candidate_id":     "miss2",
				"payment_method":   "wave",
				"transaction_code": "OM1001",
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, svc *fakeVoteService, body []byte) {
				var resp struct {
					Exists        bool   `json:"exists"`
					TransactionID uint   `json:"transaction_id"`
					CandidateID   string `json:"candidate_id"`
					Status        string `json:"status"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.Exists)
				assert.Equal(t, uint(17), resp.TransactionID)
				assert.Equal(t, "miss1", resp.CandidateID)
				assert.Equal(t, "pending", resp.Status)
			},
		},
		{
			name: "voting closed",
			svc:  &fakeVoteService{submitErr: service.ErrVotingClosed},
			body: map[string]interface{}{
				"candidate_id":     "miss1",
				"payment_method":   "wave",
				"transaction_code": "OM9999",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown candidate",
			svc:  &fakeVoteService{submitErr: service.ErrCandidateNotFound},
			body: map[string]interface{}{
				"candidate_id":     "nobody9",
				"payment_method":   "wave",
				"transaction_code": "OM8888",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newVoteRouter(tt.svc)

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/vote", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, tt.svc, rec.Body.Bytes())
			}
		})
	}
}

func TestHandleCheckTransaction(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		svc := &fakeVoteService{
			checkExists: true,
			checkResult: domain.Transaction{ID: 3, CandidateID: "miss1", CandidateName: "Fatou Diop"},
		}
		router := newVoteRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/check-transaction/om1001", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Exists      bool                `json:"exists"`
			Transaction *domain.Transaction `json:"transaction"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Exists)
		require.NotNil(t, resp.Transaction)
		assert.Equal(t, uint(3), resp.Transaction.ID)
	})

	t.Run("unknown code", func(t *testing.T) {
		router := newVoteRouter(&fakeVoteService{})

		req := httptest.NewRequest(http.MethodGet, "/api/check-transaction/NOPE1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Exists      bool                `json:"exists"`
			Transaction *domain.Transaction `json:"transaction"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Exists)
		assert.Nil(t, resp.Transaction)
	})
}
