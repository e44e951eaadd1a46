package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambafall/missmister-api/internal/pkg/jwthelper"
)

func newGuardedRouter(signingKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", NewAuthenticator(signingKey).VerifyJWT(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func TestVerifyJWT(t *testing.T) {
	const signingKey = "test-key"

	token, err := jwthelper.GenerateToken(signingKey, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{
			name:           "valid token",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer scheme",
			header:         "Basic " + token,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "tampered token",
			header:         "Bearer " + token + "x",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newGuardedRouter(signingKey)

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestVerifyJWT_WrongKey(t *testing.T) {
	token, err := jwthelper.GenerateToken("other-key", time.Hour)
	require.NoError(t, err)

	router := newGuardedRouter("test-key")

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
