package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/config"
	"github.com/tdiagne/resto-inventory/internal/api"
	"github.com/tdiagne/resto-inventory/internal/middleware"
	"github.com/tdiagne/resto-inventory/templates"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance. A nil redis client disables rate
// limiting.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.Metrics())
	router.SetHTMLTemplate(templates.Load())

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewWriteRateLimiter(redisClient)
	}
	api.SetupAPI(router, db, limiter)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/inventory/")
	})

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}
}

// Router exposes the gin engine, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
