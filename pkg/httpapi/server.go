// Package httpapi exposes the layout pipeline over HTTP: POST /v1/layout
// and POST /v1/render accept a JSON input tree plus pipeline.Options and
// return a computed layout or rendered artifact; GET /v1/history reads
// through pkg/store; GET /healthz is a liveness probe (spec §6.6).
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sbcohen2000/raggedblocks/pkg/pipeline"
	"github.com/sbcohen2000/raggedblocks/pkg/store"
)

// Server serves the HTTP API. It is safe for concurrent use: pkg/pipeline's
// Runner and pkg/store's Store are both designed for concurrent access.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	router chi.Router
}

// NewServer creates a Server backed by runner for pipeline execution and
// s for history. A nil store defaults to store.NullStore.
func NewServer(runner *pipeline.Runner, s store.Store) *Server {
	if s == nil {
		s = store.NewNullStore()
	}
	srv := &Server{runner: runner, store: s}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Get("/healthz", srv.handleHealthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", srv.handleLayout)
		r.Post("/render", srv.handleRender)
		r.Get("/history", srv.handleHistory)
	})
	srv.router = r

	return srv
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
