package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/auth"
	timeprovider "github.com/investapp/invest-wallet/internal/infrastructure/adapter/time"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWT) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewJWT("test-secret", time.Hour, timeprovider.NewRealTimeProvider())

	router := gin.New()
	router.GET("/me", Authenticated(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": AccountID(c)})
	})
	router.GET("/admin", Authenticated(tokens), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, tokens
}

func TestAuthenticated_RejectsMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticated_RejectsGarbageToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticated_AcceptsValidToken(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.Issue(7, false)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"account_id":7`)
}

func TestAdminOnly_BlocksRegularToken(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.Issue(7, false)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AllowsAdminToken(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.Issue(1, true)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
