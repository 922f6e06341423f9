// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user with the given email and password.
	Signup(ctx context.Context, email, password string) error
	// Login authenticates a user and returns a JWT token on success.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration endpoint.
// Returns 400 on validation failure, 409 when the user cannot be created
// (duplicate email), and 201 on success.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		// Do not expose the real error, to prevent user enumeration.
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login handles the user login endpoint.
// Returns 400 on validation failure, 401 on authentication failure, and 200
// with a JWT token on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Do not expose the real error, to prevent user enumeration.
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
