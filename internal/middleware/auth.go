package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "financeai/internal/errors"
	"financeai/internal/services"
)

// SessionCookieName is the cookie holding the opaque session token.
const SessionCookieName = "session_id"

// UserIDKey is the gin context key for the authenticated user ID.
const UserIDKey = "userID"

// RequireAuth resolves the caller from the session cookie, then from an
// Authorization: Bearer token. Requests with neither abort with 401.
func RequireAuth(sessions services.SessionServicer, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			if userID, err := sessions.ResolveSession(raw); err == nil {
				c.Set(UserIDKey, userID)
				c.Next()
				return
			}
		}

		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			if userID, ok := VerifyToken(token, secret); ok {
				c.Set(UserIDKey, userID)
				c.Next()
				return
			}
		}

		AbortWithError(c, apperrors.ErrUnauthorized)
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
