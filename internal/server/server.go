package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftcalc/internal/config"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(cfg *config.Config, log *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/suggest", s.handleSuggest)
		r.Post("/warmups", s.handleWarmups)
		r.Post("/scheme", s.handleScheme)
		r.Post("/plates", s.handlePlates)
		r.Get("/increments/{lift}", s.handleIncrements)
		r.Get("/defaults", s.handleDefaults)
	})

	s.router.Get("/healthz", s.handleHealthz)
}
