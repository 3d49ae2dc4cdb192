package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sendrec/resources/internal/catalog"
	"github.com/sendrec/resources/internal/ratelimit"
	"github.com/sendrec/resources/internal/resources"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Catalog      *catalog.Catalog
	Pinger       Pinger
	BaseURL      string
	FrameSources []string
	APILimiter   *ratelimit.Limiter
}

type Server struct {
	router    chi.Router
	pinger    Pinger
	resources *resources.Handler
	limiter   *ratelimit.Limiter
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(SecurityConfig{
		BaseURL:      cfg.BaseURL,
		FrameSources: cfg.FrameSources,
	}))

	s := &Server{
		router:    r,
		pinger:    cfg.Pinger,
		resources: resources.NewHandler(cfg.Catalog),
		limiter:   cfg.APILimiter,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)

	s.router.Get("/", s.resources.Page)
	s.router.Get("/resources", s.resources.Page)

	s.router.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.limiter.Middleware)
		}
		r.Get("/api/resources", s.resources.List)
		r.Get("/api/resources/{id}/playback", s.resources.Playback)
		r.Get("/api/playback-url", s.resources.PlaybackURL)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"database unreachable"}`))
			return
		}
	}
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
