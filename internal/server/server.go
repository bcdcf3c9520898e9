// Package server exposes the scoring and planning pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/prepwise/backend/internal/attempts"
	"github.com/prepwise/backend/internal/config"
	"github.com/prepwise/backend/internal/logging"
	"github.com/prepwise/backend/internal/planner"
	"github.com/prepwise/backend/internal/store"
)

// userIDHeader carries the caller identity. The gateway in front of this
// service authenticates the user and injects the header.
const userIDHeader = "X-User-ID"

// Server wires the HTTP surface to the services.
type Server struct {
	cfg      config.Config
	store    *store.Store
	attempts *attempts.Service
	planner  *planner.Service
	log      *logging.Logger
	engine   *gin.Engine
	http     *http.Server
}

// New builds a server with all routes registered.
func New(cfg config.Config, st *store.Store, log *logging.Logger) *Server {
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		store:    st,
		attempts: attempts.NewService(st, log),
		planner:  planner.NewService(st, log),
		log:      log.With("component", "http"),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.requestLogger())
	engine.Use(cors.New(s.corsConfig()))

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api")
	api.Use(s.requireUser())
	{
		api.POST("/attempts", s.handleSubmitAttempt)
		api.POST("/plans", s.handleGeneratePlan)
		api.GET("/plans/current", s.handleCurrentPlan)
		api.PATCH("/plans/tasks/:id/complete", s.handleCompleteTask)
		api.GET("/skills", s.handleListSkills)
		api.GET("/constructs", s.handleListConstructs)
	}

	s.engine = engine
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", userIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(s.cfg.CORSOrigins) > 0 {
		c.AllowOrigins = s.cfg.CORSOrigins
	} else {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// requireUser rejects requests without a caller identity.
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + userIDHeader + " header"})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString("userID")
}
