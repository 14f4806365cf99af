package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"chairside.app/console/common/logger"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	// SessionCookieName is shared with the auth handler, which sets it.
	SessionCookieName = "console_session"

	userContextKey      contextKey = "user"
	sessionIDContextKey contextKey = "session_id"
)

// RequireAuth rebuilds the AppUser from the session cookie and attaches it
// to the request context. Requests without a live session are rejected.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := getSessionID(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) {
				clearSessionCookie(c)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, sessionIDContextKey, sessionID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			IdentityID: logger.Ptr(user.ID),
			TenantID:   logger.Ptr(user.TenantID.String()),
			SessionID:  logger.Ptr(sessionID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSuperAdmin rejects any user who is not the platform operator.
// It must run after RequireAuth.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c.Request.Context())
		if user == nil || !user.IsSuperAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func GetUser(ctx context.Context) *model.AppUser {
	user, _ := ctx.Value(userContextKey).(*model.AppUser)
	return user
}

func GetSessionID(ctx context.Context) int64 {
	sessionID, _ := ctx.Value(sessionIDContextKey).(int64)
	return sessionID
}

func getSessionID(c *gin.Context) (int64, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
