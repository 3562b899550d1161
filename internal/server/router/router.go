package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/auth"
	"github.com/agriverse/warehouse/internal/server/handlers"
)

// Handlers bundles the HTTP adapters wired into the engine.
type Handlers struct {
	Session   *handlers.SessionHandler
	Inventory *handlers.InventoryHandler
	Ledger    *handlers.LedgerHandler
	Dashboard *handlers.DashboardHandler
}

// New wires the Gin engine with required routes and middlewares. Login,
// logout and health stay open; data routes require a session token.
func New(h Handlers, sessionSecret string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/api/login", h.Session.Login)
	r.POST("/api/logout", h.Session.Logout)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", requireSession(sessionSecret))
	api.GET("/session", h.Session.Current)
	api.GET("/inventory", h.Inventory.List)
	api.GET("/inventory/table", h.Inventory.Table)
	api.POST("/inventory", h.Inventory.Create)
	api.PATCH("/inventory/:id", h.Inventory.Update)
	api.DELETE("/inventory/:id", h.Inventory.Delete)
	api.GET("/transactions", h.Ledger.List)
	api.GET("/dashboard", h.Dashboard.Summary)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requireSession validates the bearer session token issued at login.
func requireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		claims, err := auth.ValidateToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		c.Set("session_email", claims.Email)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
