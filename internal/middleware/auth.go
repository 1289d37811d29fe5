package middleware

import (
	"strings"

	"internship_backend/internal/apperrors"
	"internship_backend/internal/logger"
	"internship_backend/internal/models"
	"internship_backend/internal/repositories"
	"internship_backend/internal/token"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserKey = "currentUser"
	ctxUserID  = "userID"
	ctxRole    = "role"
)

// Authenticate resolves the request identity: bearer token -> verified
// claims -> live user record. The user is loaded fresh so a deleted
// account is rejected even while its token is still within TTL. Expired
// and invalid tokens are deliberately indistinguishable to the client.
func Authenticate(tokens *token.Service, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			if apperrors.Is(err, token.ErrTokenExpired) {
				logger.CtxInfo(c.Request.Context(), "rejected expired token", "path", c.Request.URL.Path)
			}
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}
		user.PasswordHash = ""

		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Set(ctxUserKey, user)
		c.Set(ctxUserID, user.ID)
		c.Set(ctxRole, user.Role)
		c.Next()
	}
}

// RequireRole gates a route on the resolved identity's role. It must be
// registered after Authenticate; a missing identity means the chain is
// miswired and the request is refused.
func RequireRole(required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ctxRole)
		if !exists {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok || role != required {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: "+string(required)+" only"))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the identity resolved by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// GetUserID returns the authenticated user's id, or "" when the request
// is unauthenticated.
func GetUserID(c *gin.Context) string {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return ""
	}
	s, _ := id.(string)
	return s
}
