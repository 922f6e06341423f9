// Package api defines the request and response types shared by the HTTP
// transport layer.
package api

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest is the request body for POST /signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CandleResponse is one OHLCV row as served by GET /api/candles/:symbol.
type CandleResponse struct {
	Symbol   string  `json:"symbol"`
	Interval string  `json:"interval"`
	Time     string  `json:"time"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   int64   `json:"volume"`
}

// SymbolItem is one tracked symbol as served by GET /api/symbols.
type SymbolItem struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
	Market string `json:"market"`
}

// ConnectRequest is the request body for POST /api/assistant/connect.
// The API key lives only in the in-memory session for as long as it is
// connected; it is never written to the database or Redis.
type ConnectRequest struct {
	APIKey  string `json:"api_key" binding:"required"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
}

// ConnectResponse confirms a new assistant session.
type ConnectResponse struct {
	Message string `json:"message"`
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
}

// ChatRequest is the request body for POST /api/assistant/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the assistant's reply, plus the names of any
// market-data functions executed while producing it.
type ChatResponse struct {
	Reply         string   `json:"reply"`
	FunctionCalls []string `json:"function_calls,omitempty"`
}

// AnalyzeRequest is the request body for POST /api/assistant/analyze.
type AnalyzeRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// AnalyzeResponse carries a one-shot model analysis of a single ticker.
type AnalyzeResponse struct {
	Symbol   string `json:"symbol"`
	Analysis string `json:"analysis"`
}

// RefreshResponse reports the outcome of GET /api/refresh.
type RefreshResponse struct {
	Message string `json:"message"`
	Symbols int    `json:"symbols"`
}
