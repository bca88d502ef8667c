package server

import (
	"context"
	"fmt"
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tutorialhub/tutorials-service/internal/config"
	"github.com/tutorialhub/tutorials-service/internal/server/middlewares"
)

// RegisterHandlerFn receives the /api router group and mounts the API routes.
type RegisterHandlerFn func(router *gin.RouterGroup)

// HealthFunc reports whether the service's dependencies are reachable.
// A nil error means healthy.
type HealthFunc func(ctx context.Context) error

type Server struct {
	cfg        *config.Configuration
	engine     *gin.Engine
	httpServer *http.Server
}

func NewServer(cfg *config.Configuration, health HealthFunc, registerHandlerFn RegisterHandlerFn) (*Server, error) {
	switch cfg.Server.ServerMode {
	case config.ServerModeProd:
		gin.SetMode(gin.ReleaseMode)
	case config.ServerModeDev:
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode: %q", cfg.Server.ServerMode)
	}

	engine := gin.New()
	engine.Use(
		middlewares.RequestID(),
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.L().Named("http"), true),
	)

	engine.GET("/actuator/health", healthHandler(health))

	api := engine.Group("/api")
	if cfg.Auth.Enabled {
		api.Use(middlewares.Auth(cfg.Auth))
	}
	registerHandlerFn(api)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return &Server{
		cfg:    cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler: engine,
		},
	}, nil
}

// Handler exposes the routed engine, mainly for tests driving requests
// through the full middleware stack without a listener.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves HTTP until the server is stopped. It returns
// http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	zap.S().Named("server").Infow("listening",
		"addr", s.httpServer.Addr,
		"mode", s.cfg.Server.ServerMode,
	)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully, waiting for in-flight requests to
// complete within the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Infow("shutting down")
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(health HealthFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				zap.S().Named("health").Warnw("dependency not healthy", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	}
}
