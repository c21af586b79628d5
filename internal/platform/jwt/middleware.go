package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskmanager_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key under which the authenticated user is
// stored. Use CurrentUser to read it.
const ContextUser = "currentUser"

// UserResolver looks up the token subject. Satisfied by the auth feature's
// user repository.
type UserResolver interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthRequired returns a gin middleware that admits only requests carrying a
// valid bearer token whose subject resolves to an existing user.
//
// Outcomes:
//   - no token / malformed header  -> 401
//   - token fails verification     -> 403
//   - subject user no longer exists -> 401
//   - otherwise the user is attached to the context and the request proceeds.
func AuthRequired(verifier Verifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token - user not found"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired.
// The second return is false on unauthenticated requests, which only happens
// when a handler is wired outside the middleware by mistake.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
