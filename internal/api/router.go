package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sbtvjoe-max/UniChat1.1/internal/api/handlers"
	"github.com/sbtvjoe-max/UniChat1.1/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Set Gin mode
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	handlers.Mode = cfg.Server.Mode

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware())
	router.Use(corsMiddleware())
	router.Use(allowedHostsMiddleware(cfg.Server))

	homeHandler := handlers.NewHomeHandler(cfg)
	infoHandler := handlers.NewInfoHandler(cfg, db)

	// The health probe answers any method (infrastructure probes vary)
	router.Any("/health", handlers.HealthCheck)
	router.GET("/", homeHandler.Home)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.GET("/info", infoHandler.GetInfo)
		v1.GET("/version", handlers.GetVersion)
	}

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	slog.Info("API router initialized", "mode", cfg.Server.Mode)
	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		slog.Info("HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.ClientIP(),
		)
	}
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// allowedHostsMiddleware rejects requests whose Host header is not in
// the configured allow list. An empty list is permissive only in
// development mode with debug enabled; "*" matches everything; a
// leading dot matches subdomains.
func allowedHostsMiddleware(cfg config.ServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !hostAllowed(c.Request.Host, cfg) {
			c.AbortWithStatusJSON(http.StatusBadRequest, handlers.ErrorResponse{
				Error: "Invalid Host header",
			})
			return
		}
		c.Next()
	}
}

func hostAllowed(host string, cfg config.ServerConfig) bool {
	if len(cfg.AllowedHosts) == 0 {
		// No allow list configured: permissive only in development
		// with debug on.
		return cfg.Debug && cfg.Mode != "production"
	}

	hostname := strings.ToLower(host)
	if i := strings.LastIndex(hostname, ":"); i >= 0 && !strings.Contains(hostname[i:], "]") {
		hostname = hostname[:i]
	}
	// Bracketed IPv6 literals compare against bare addresses.
	hostname = strings.TrimPrefix(hostname, "[")
	hostname = strings.TrimSuffix(hostname, "]")
	hostname = strings.TrimSuffix(hostname, ".")

	for _, allowed := range cfg.AllowedHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		switch {
		case allowed == "*":
			return true
		case strings.HasPrefix(allowed, "."):
			if strings.HasSuffix(hostname, allowed) || hostname == strings.TrimPrefix(allowed, ".") {
				return true
			}
		case hostname == allowed:
			return true
		}
	}
	return false
}
