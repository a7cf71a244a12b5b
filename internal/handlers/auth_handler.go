package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillhub/skillhub-api/internal/middleware"
	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/services"
)

// AuthHandler handles registration, login, logout and session lookup
type AuthHandler struct {
	service          services.AuthServiceInterface
	sessionTTLSecond int
	cookieSecure     bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service services.AuthServiceInterface, sessionTTLSeconds int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		service:          service,
		sessionTTLSecond: sessionTTLSeconds,
		cookieSecure:     cookieSecure,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			respondError(c, http.StatusConflict, "Email already registered", err)
			return
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			respondError(c, http.StatusBadRequest, "Invalid role", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	c.JSON(http.StatusCreated, models.RegisterResponse{
		Success: true,
		UserID:  user.ID,
	})
}

// Login handles POST /login
// On success the session token is set as an HttpOnly cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	token, session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	middleware.SetSessionCookie(c, token, h.sessionTTLSecond, h.cookieSecure)

	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		Session: session,
	})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.cookieSecure)
	c.JSON(http.StatusOK, models.LogoutResponse{Success: true})
}

// Me handles GET /me
// Returns the decoded session of the caller, or null for anonymous callers
func (h *AuthHandler) Me(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, session)
}
