package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"chairside.app/console/internal/http/dto"
	"chairside.app/console/internal/http/middleware"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 7 * 24 * 60 * 60

type AuthHandler struct {
	authService  service.AuthService
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, isProduction bool) *AuthHandler {
	return &AuthHandler{authService: authService, isProduction: isProduction}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		slog.ErrorContext(ctx, "sign-in failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	h.setSessionCookie(c, result.Session.ID)
	slog.InfoContext(ctx, "user signed in", "identity_id", result.User.ID, "email", result.User.Email)

	c.JSON(http.StatusOK, gin.H{
		"user":       dto.ToMeResponse(result.User),
		"resolution": dto.ToResolutionResponse(result.Resolution),
	})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.SignUp(ctx, service.SignUpParams{
		Email:            req.Email,
		Password:         req.Password,
		Name:             req.Name,
		OrganizationName: req.OrganizationName,
		InviteTenantID:   model.TenantID(req.InviteTenantID),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists, sign in instead"})
		case errors.Is(err, service.ErrTenantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "invite link is no longer valid"})
		default:
			slog.ErrorContext(ctx, "sign-up failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		}
		return
	}

	h.setSessionCookie(c, result.Session.ID)
	slog.InfoContext(ctx, "user signed up", "identity_id", result.User.ID, "email", result.User.Email)

	c.JSON(http.StatusCreated, gin.H{
		"user":       dto.ToMeResponse(result.User),
		"resolution": dto.ToResolutionResponse(result.Resolution),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sessionID, err := h.getSessionID(c); err == nil && sessionID > 0 {
		if err := h.authService.Logout(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err, "session_id", sessionID)
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := h.getSessionID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := h.authService.ValidateSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) {
			h.clearSessionCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		slog.ErrorContext(ctx, "failed to validate session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMeResponse(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID int64) {
	c.SetCookie(
		middleware.SessionCookieName,
		strconv.FormatInt(sessionID, 10),
		sessionMaxAge,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		middleware.SessionCookieName,
		"",
		-1,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func (h *AuthHandler) getSessionID(c *gin.Context) (int64, error) {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}
