package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"seoforge/internal/config"
	"seoforge/internal/core"
	"seoforge/internal/logger"

	"github.com/gin-gonic/gin"
)

// Pipeline is the orchestration surface the HTTP layer depends on.
type Pipeline interface {
	GeneratePlan(ctx context.Context, profile core.BusinessProfile) (*core.PlanBundle, error)
	GenerateArticle(ctx context.Context, title string, keywords []string, contentType string) (*core.ArticleBundle, error)
	EvaluateArticle(ctx context.Context, article core.Article) (core.QualityReport, core.PerformanceEstimate, error)
}

// Server exposes the pipeline over HTTP.
type Server struct {
	router   *gin.Engine
	pipeline Pipeline
	cfg      config.Server
}

// New creates the HTTP server and registers its routes.
func New(pipeline Pipeline, cfg config.Server) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	router := gin.New()
	router.Use(Recovery())
	router.Use(RequestLogger())
	router.Use(CORS(cfg.AllowOrigins))

	s := &Server{
		router:   router,
		pipeline: pipeline,
		cfg:      cfg,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/generate-plan", s.handleGeneratePlan)
	s.router.POST("/generate-article", s.handleGenerateArticle)
	s.router.POST("/evaluate-content", s.handleEvaluateContent)
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logger.Info("HTTP server starting", "addr", addr)
	return s.router.Run(addr)
}

// Handler returns the underlying http.Handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Recovery converts panics into the generic failure envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered", fmt.Errorf("%v", err), "path", c.Request.URL.Path)
				c.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("an unexpected error occurred")))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP())
	}
}

// CORS sets permissive cross-origin headers for the dashboard.
func CORS(allowOrigins string) gin.HandlerFunc {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
