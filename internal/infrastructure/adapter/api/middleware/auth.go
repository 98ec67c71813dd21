package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/investapp/invest-wallet/internal/domain/error"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/auth"
)

// Context keys set by the auth middleware
const (
	ContextAccountID = "account_id"
	ContextIsAdmin   = "is_admin"
)

// TokenVerifier verifies a session token and returns its claims
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// Authenticated requires a valid bearer token and stores the decoded claims
// in the request context.
func Authenticated(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: err.Error(),
			})
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// AdminOnly rejects requests whose token does not carry the administrator
// capability. It must run after Authenticated; handlers behind it still
// verify the capability against the stored account.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeAdminRequired,
				Message: domainerr.ErrAdminRequired.Error(),
			})
			return
		}
		c.Next()
	}
}

// AccountID returns the authenticated account ID from the request context
func AccountID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextAccountID); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}
