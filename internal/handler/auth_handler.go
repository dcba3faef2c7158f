package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ideashelf/backend/internal/middleware"
	"github.com/ideashelf/backend/internal/service"
	"github.com/ideashelf/backend/pkg/logger"
)

type AuthHandler struct {
	authService *service.AuthService
	cookieTTL   int
	secure      bool
}

// NewAuthHandler wires the auth endpoints. cookieTTLSeconds bounds the
// session cookie lifetime; secure marks cookies HTTPS-only (production).
func NewAuthHandler(authService *service.AuthService, cookieTTLSeconds int, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieTTL:   cookieTTLSeconds,
		secure:      secure,
	}
}

type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}

	logger.Log.Info("User registration attempt",
		zap.String("username", req.Username),
		zap.String("ip", c.ClientIP()),
	)

	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, h.cookieTTL)

	c.JSON(http.StatusCreated, gin.H{
		"ok":     true,
		"userId": user.ID,
	})
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, h.cookieTTL)

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"userId": user.ID,
	})
}

// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if actor == nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loggedIn": true,
		"userId":   actor.ID,
		"username": actor.Username,
		"isAdmin":  actor.IsAdmin,
	})
}

// DELETE /api/account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	token, _ := c.Cookie(middleware.SessionCookie)

	if err := h.authService.DeleteAccount(c.Request.Context(), actor, token); err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode) // CSRF protection
	c.SetCookie(
		middleware.SessionCookie,
		token,
		maxAge,
		"/",
		"",       // domain (empty = current domain)
		h.secure, // HTTPS-only in production
		true,     // httpOnly
	)
}
