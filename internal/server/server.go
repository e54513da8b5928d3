package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alkime/cotola/internal/config"
	"github.com/alkime/cotola/internal/content"
	"github.com/alkime/cotola/internal/metrics"
	"github.com/alkime/cotola/internal/post"
)

const serviceName = "cotola"

// Generator produces and refines copy. *content.Service implements it.
type Generator interface {
	Generate(ctx context.Context, data post.FormData) (*content.Result, error)
	Refine(ctx context.Context, in post.RefineRequest) (*content.Result, error)
}

// Server represents the HTTP server
type Server struct {
	config    *config.Config
	logger    *slog.Logger
	router    *gin.Engine
	generator Generator
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
}

// New creates a new Server instance. m and gatherer back the request metrics
// and the /metrics endpoint; they are usually built from the same registry.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	generator Generator,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Recovery())
	router.HandleMethodNotAllowed = true

	// Configure proxy trust for production (Fly.io)
	if cfg.Env == config.EnvProduction {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}
	// Development: no reverse proxy, uses direct client IP

	server := &Server{
		config:    cfg,
		logger:    logger,
		router:    router,
		generator: generator,
		metrics:   m,
		gatherer:  gatherer,
	}

	// Setup middleware and routes
	router.Use(requestID(logger), requestMetrics(m))
	setupSecurityMiddleware(router, cfg, logger)
	setupCORSMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := s.router.Group("/api")
	{
		api.GET("/options", s.handleOptions)
		api.POST("/generate", s.handleGenerate)
		api.POST("/refine", s.handleRefine)
		api.POST("/gemini", s.handleAction)
		api.POST("/format", s.handleFormat)
	}

	// The form is served from WEB_DIR as fallback.
	// NoRoute only triggers when no explicit routes match (like /health)
	s.router.NoRoute(static.Serve("/", static.LocalFile(s.config.WebDir, true)))
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}
