package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tailorhq/tailor/internal/config"
	"github.com/tailorhq/tailor/internal/suggest"
)

// Server is the HTTP API server for tailor.
type Server struct {
	router    chi.Router
	suggester *suggest.Suggester
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(suggester *suggest.Suggester, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		suggester: suggester,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.TailorAPIKey, s.log))

		r.Post("/api/resume/parse", s.handleResumeParse)
		r.Post("/api/job/analyze", s.handleJobAnalyze)
		r.Post("/api/job/keywords", s.handleJobKeywords)
		r.Post("/api/match", s.handleMatch)
		r.Post("/api/tailor", s.handleTailor)

		r.Get("/api/formats", s.handleFormats)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
