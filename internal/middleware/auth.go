package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/types"
)

const (
	// ContextUserID holds the authenticated user id
	ContextUserID = "user_id"
	// ContextUsername holds the authenticated username
	ContextUsername = "username"
	// ContextClaims holds the full token claims
	ContextClaims = "claims"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// BearerToken extracts the token from an Authorization header. ok is false
// when the header is absent; a malformed header returns ok with an empty token.
func BearerToken(c *gin.Context) (token string, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", true
	}
	return parts[1], true
}

// AuthMiddleware validates an optional bearer token. Requests without an
// Authorization header pass through; a present but unusable token is
// rejected with 401. Paths in skip are never checked.
func AuthMiddleware(validator TokenValidator, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipped[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		token, present := BearerToken(c)
		if !present {
			c.Next()
			return
		}
		if token == "" {
			WriteError(c, apperrors.New(apperrors.ErrCodeAuthentication, "invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			WriteError(c, err)
			c.Abort()
			return
		}

		// Store user info in context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
