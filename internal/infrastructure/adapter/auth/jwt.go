package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/investapp/invest-wallet/internal/domain/port/core"
)

// Claims is the decoded identity carried by a session token
type Claims struct {
	AccountID uint64
	IsAdmin   bool
}

// JWT issues and verifies HS256 session tokens. It implements the
// core.TokenIssuer port; verification is used by the auth middleware.
type JWT struct {
	secretKey    []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWT creates a new JWT token manager
func NewJWT(secretKey string, ttl time.Duration, timeProvider core.TimeProvider) *JWT {
	return &JWT{
		secretKey:    []byte(secretKey),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue signs a token for the given account
func (j *JWT) Issue(accountID uint64, isAdmin bool) (string, error) {
	now := j.timeProvider.Now()
	claims := jwt.MapClaims{
		"account_id": accountID,
		"is_admin":   isAdmin,
		"exp":        now.Add(j.ttl).Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Verify parses a token string and returns the claims if valid
func (j *JWT) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	rawID, ok := claims["account_id"].(float64)
	if !ok || rawID <= 0 {
		return nil, errors.New("account_id not found in token")
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return &Claims{
		AccountID: uint64(rawID),
		IsAdmin:   isAdmin,
	}, nil
}

// TokenFromHeader extracts the bearer token from an Authorization header value
func TokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
