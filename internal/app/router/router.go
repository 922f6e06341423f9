// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	assistanthandler "finance_backend/internal/feature/assistant/transport/handler"
	authhandler "finance_backend/internal/feature/auth/transport/handler"
	portfoliohandler "finance_backend/internal/feature/portfolio/transport/handler"
	quoteshandler "finance_backend/internal/feature/quotes/transport/handler"
	symbolhandler "finance_backend/internal/feature/symbols/transport/handler"
	"finance_backend/internal/platform/http/handler"
	jwtmw "finance_backend/internal/platform/jwt"
	"finance_backend/web"
)

// NewRouter builds the Gin engine with all routes registered.
func NewRouter(
	authH *authhandler.AuthHandler,
	quotesH *quoteshandler.QuotesHandler,
	portfolioH *portfoliohandler.PortfolioHandler,
	symbolH *symbolhandler.SymbolHandler,
	assistantH *assistanthandler.AssistantHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Embedded dashboard.
	r.GET("/", func(c *gin.Context) {
		b, err := web.FS.ReadFile("index.html")
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", b)
	})

	// Health checks: /healthz for orchestrators, /health kept for older
	// deploy configs.
	r.GET("/healthz", handler.Health)
	r.GET("/health", handler.Health)

	// Authentication.
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)

	// Public read-only market data.
	api := r.Group("/api")
	{
		api.GET("/data", portfolioH.Dashboard)
		api.GET("/portfolio", quotesH.GetPortfolioSummary)
		api.GET("/symbols", symbolH.List)
		api.GET("/candles/:symbol", quotesH.GetCandles)
		api.GET("/quote/:symbol", quotesH.GetQuote)
		api.GET("/stock/:symbol", quotesH.GetStockInfo)
	}

	// Routes that mutate state or relay user-supplied credentials require
	// a valid JWT.
	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/refresh", portfolioH.Refresh)
		auth.POST("/assistant/connect", assistantH.Connect)
		auth.POST("/assistant/chat", assistantH.Chat)
		auth.DELETE("/assistant/session", assistantH.Disconnect)
		auth.POST("/assistant/analyze", assistantH.Analyze)
	}

	return r
}
