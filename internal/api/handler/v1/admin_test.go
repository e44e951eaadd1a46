package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambafall/missmister-api/internal/domain"
	"github.com/sambafall/missmister-api/internal/service"
)

type fakeAdminService struct {
	pending     []domain.Transaction
	validateErr error
	rejectErr   error
	validated   []uint
	rejected    []uint
}

func (f *fakeAdminService) PendingTransactions(_ context.Context) ([]domain.Transaction, error) {
	return f.pending, nil
}

func (f *fakeAdminService) ValidateTransaction(_ context.Context, id uint) error {
	if f.validateErr != nil {
		return f.validateErr
	}
	f.validated = append(f.validated, id)

	return nil
}

func (f *fakeAdminService) RejectTransaction(_ context.Context, id uint) error {
	if f.rejectErr != nil {
		return f.rejectErr
	}
	f.rejected = append(f.rejected, id)

	return nil
}

func newAdminRouter(svc AdminVoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAdminHandler(svc)
	router.GET("/api/admin/transactions/pending", handler.HandleListPending)
	router.POST("/api/admin/transactions/:id/validate", handler.HandleValidate)
	router.POST("/api/admin/transactions/:id/reject", handler.HandleReject)

	return router
}

func TestHandleListPending(t *testing.T) {
	svc := &fakeAdminService{
		pending: []domain.Transaction{
			{ID: 2, CandidateID: "miss1", CandidateName: "Fatou Diop", Status: domain.StatusPending},
			{ID: 1, CandidateID: "mister3", CandidateName: "Abdoulaye Diop", Status: domain.StatusPending},
		},
	}
	router := newAdminRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/transactions/pending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, uint(2), resp[0].ID)
	assert.Equal(t, "Fatou Diop", resp[0].CandidateName)
}

func TestHandleValidate(t *testing.T) {
	tests := []struct {
		name           string
		svc            *fakeAdminService
		path           string
		expectedStatus int
	}{
		{
			name:           "pending transaction",
			svc:            &fakeAdminService{},
			path:           "/api/admin/transactions/7/validate",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "already terminal",
			svc:            &fakeAdminService{validateErr: service.ErrTransactionNotFound},
			path:           "/api/admin/transactions/7/validate",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			svc:            &fakeAdminService{},
			path:           "/api/admin/transactions/abc/validate",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, []uint{7}, tt.svc.validated)
			}
		})
	}
}

func TestHandleReject(t *testing.T) {
	t.Run("pending transaction", func(t *testing.T) {
		svc := &fakeAdminService{}
		router := newAdminRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/transactions/9/reject", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []uint{9}, svc.rejected)
	})

	t.Run("already terminal", func(t *testing.T) {
		router := newAdminRouter(&fakeAdminService{rejectErr: service.ErrTransactionNotFound})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/transactions/9/reject", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
