// Package server exposes the download-link API over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovrica/sget/internal/config"
	"github.com/ovrica/sget/internal/upstream"
)

// Server is the HTTP front end: one route per platform plus a health
// probe, all backed by the upstream client and the normalization
// pipeline
type Server struct {
	cfg     *config.Config
	client  *upstream.Client
	sniffer *upstream.Sniffer
	engine  *gin.Engine
}

// New wires routes and middleware
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		client: upstream.New(cfg),
	}
	if cfg.BrowserFallback {
		s.sniffer = upstream.NewSniffer(false)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), requestID())

	engine.GET("/healthz", s.handleHealth)
	api := engine.Group("/api")
	api.GET("/:platform", s.handleDownload)
	api.POST("/:platform", s.handleDownload)

	s.engine = engine
	return s
}

// Run blocks serving the API on the configured listen address
func (s *Server) Run() error {
	return s.engine.Run(s.cfg.Listen)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestID tags every request and response with a correlation ID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
