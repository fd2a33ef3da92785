// Package server exposes the engine over HTTP: create a game, play moves,
// ask the engine for one, browse the opening book.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"gambit/engine"
)

type Option func(s *Server)

func WithSelector(selector *engine.MoveSelector) Option {
	return func(s *Server) {
		if selector != nil {
			s.selector = selector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.log = logger
	}
}

// Server serves games from an in-memory session store. One selector is
// shared across games; sessions serialize their own searches.
type Server struct {
	selector *engine.MoveSelector
	store    *sessionStore
	log      zerolog.Logger
}

func New(options ...Option) *Server {
	s := &Server{
		store: newSessionStore(),
		log:   zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	if s.selector == nil {
		s.selector = engine.NewMoveSelector()
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Post("/games", s.handleCreateGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetGame)
		r.Post("/moves", s.handlePlayMove)
		r.Post("/search", s.handleSearchMove)
	})
	r.Get("/openings", s.handleOpenings)
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
