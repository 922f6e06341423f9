// Package handler provides the HTTP handlers for the assistant feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/assistant/domain/entity"
	"finance_backend/internal/feature/assistant/usecase"
	jwtmw "finance_backend/internal/platform/jwt"
)

// AssistantUsecase defines the assistant operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AssistantUsecase interface {
	Connect(ctx context.Context, userID uint, cfg entity.ProviderConfig, promptName string) (model, prompt string, err error)
	Chat(ctx context.Context, userID uint, message string) (string, []string, error)
	Disconnect(userID uint)
	AnalyzeTicker(ctx context.Context, symbol string) (string, error)
}

// AssistantHandler handles HTTP requests for the LLM assistant.
type AssistantHandler struct {
	uc AssistantUsecase
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(uc AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// userID pulls the authenticated user from the gin context. The auth
// middleware guarantees it is set on protected routes.
func userID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Connect opens an assistant session with the caller's own provider key.
// The key stays in process memory only and is never logged.
//
// POST /api/assistant/connect
func (h *AssistantHandler) Connect(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	cfg := entity.ProviderConfig{APIKey: req.APIKey, BaseURL: req.BaseURL, Model: req.Model}
	model, prompt, err := h.uc.Connect(c.Request.Context(), id, cfg, req.Prompt)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownPrompt) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "connect failed"})
		return
	}
	slog.Info("assistant session opened", "user_id", id, "model", model, "prompt", prompt)
	c.JSON(http.StatusOK, api.ConnectResponse{Message: "connected", Model: model, Prompt: prompt})
}

// Chat relays one message through the session's provider.
//
// POST /api/assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	reply, calls, err := h.uc.Chat(c.Request.Context(), id, req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrNoSession) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Warn("assistant chat failed", "user_id", id, "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "chat failed"})
		return
	}
	c.JSON(http.StatusOK, api.ChatResponse{Reply: reply, FunctionCalls: calls})
}

// Disconnect drops the session, discarding the stored API key.
//
// DELETE /api/assistant/session
func (h *AssistantHandler) Disconnect(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	h.uc.Disconnect(id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "disconnected"})
}

// Analyze runs a one-shot Gemini analysis of a single ticker. It does not
// need an assistant session.
//
// POST /api/assistant/analyze
func (h *AssistantHandler) Analyze(c *gin.Context) {
	if _, ok := userID(c); !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	analysis, err := h.uc.AnalyzeTicker(c.Request.Context(), req.Symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.AnalyzeResponse{Symbol: req.Symbol, Analysis: analysis})
}
