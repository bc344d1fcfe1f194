package server

import (
	"time"

	"github.com/danmuck/scramblectl/internal/config"
	"github.com/danmuck/scramblectl/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

// Server exposes the scrambling engine over HTTP.
type Server struct {
	Name            string
	Addr            string
	StrictInverse   bool
	MaxProgramLines int
	Appeared        time.Time

	router *gin.Engine
	newID  func() string
}

// New builds a server and its gin engine from cfg. Routes are registered
// by RegisterRoutes or Serve.
func New(cfg config.ServerConfig) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	maxLines := cfg.MaxProgramLines
	if maxLines <= 0 {
		maxLines = config.DefaultMaxProgramLines
	}
	return &Server{
		Name:            cfg.Name,
		Addr:            cfg.Addr,
		StrictInverse:   cfg.StrictInverse,
		MaxProgramLines: maxLines,
		Appeared:        time.Now(),
		router:          r,
		newID:           func() string { return uuid.New().String() },
	}
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	log.Info().Str("name", s.Name).Str("addr", s.Addr).Bool("strict", s.StrictInverse).Msg("scramble server listening")
	return s.router.Run(s.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
