// Package server exposes the placement pipeline over HTTP: job
// submission and status, artifact download and catalog browsing.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/eisla/eisla/internal/catalog"
	"github.com/eisla/eisla/internal/job"
	"github.com/eisla/eisla/internal/model"
)

// queueDepth bounds submissions waiting for a worker. A full queue
// turns new jobs away with 503.
const queueDepth = 64

// Server owns the HTTP surface and the worker pool behind it. The
// catalog is shared read-only across parallel jobs; every job runs with
// its own seed.
type Server struct {
	catalog   *catalog.Catalog
	runner    *job.Runner
	registry  *Registry
	queue     chan submission
	workers   int
	workspace string
	log       *log.Logger
}

// New wires a server to a catalog and workspace root. workers bounds
// how many pipelines run at once; values below 1 are raised to 1. A nil
// logger falls back to the package default.
func New(cat *catalog.Catalog, workspace string, workers int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Server{
		catalog:   cat,
		runner:    job.NewRunner(cat, workspace, logger),
		registry:  NewRegistry(),
		queue:     make(chan submission, queueDepth),
		workers:   workers,
		workspace: workspace,
		log:       logger,
	}
}

// Router assembles the chi routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/jobs", s.handleCreateJob)
		r.Get("/jobs", s.handleListJobs)
		r.Get("/jobs/{id}", s.handleGetJob)
		r.Get("/jobs/{id}/artifacts/{name}", s.handleArtifact)
	})
	return r
}

// ListenAndServe starts the worker pool and serves until ctx is
// cancelled, then drains with a short shutdown grace.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.StartWorkers(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.log.Info("listening", "addr", addr, "workers", s.workers)

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			"method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "duration_ms", time.Since(start).Milliseconds())
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"components": s.catalog.Len(),
		"jobs":       s.registry.Len(),
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	defs := s.catalog.All()
	if term := r.URL.Query().Get("q"); term != "" {
		defs = s.catalog.Search(term)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"count":      len(defs),
		"components": defs,
	})
}

// jobRequest is the POST /api/jobs body.
type jobRequest struct {
	Design  *model.Design `json:"design"`
	Profile string        `json:"profile,omitempty"`
	Seed    *int64        `json:"seed,omitempty"`
	Force   bool          `json:"force,omitempty"`
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Design == nil {
		s.writeError(w, http.StatusBadRequest, "design is required")
		return
	}
	if len(req.Design.Components) == 0 {
		s.writeError(w, http.StatusBadRequest, "design has no components")
		return
	}

	settings := model.DefaultSettings()
	if req.Profile != "" {
		prof, ok := profileNamed(req.Profile)
		if !ok {
			s.writeError(w, http.StatusBadRequest, "unknown profile: "+req.Profile)
			return
		}
		settings = prof.Settings
	}

	// An explicit seed is honored; otherwise each submission derives its
	// own stream.
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	id := uuid.New().String()
	rec := Record{
		ID:          id,
		DesignName:  req.Design.Name,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		Status:      StatusQueued,
	}
	s.registry.Add(rec)

	sub := submission{
		id:     id,
		design: *req.Design,
		opts: job.Options{
			ID:       id,
			Settings: settings,
			Seed:     seed,
			Force:    req.Force,
		},
	}

	select {
	case s.queue <- sub:
	default:
		s.registry.Remove(id)
		s.writeError(w, http.StatusServiceUnavailable, "job queue is full")
		return
	}

	s.log.Info("job queued", "job", id, "design", req.Design.Name)
	s.writeJSON(w, http.StatusAccepted, rec)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"jobs": s.registry.List()})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := s.registry.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}

	// Stage detail comes from the job directory once the runner has
	// started; until then (or if the record never got that far) the
	// registry's coarse view answers.
	if rec.Status != StatusQueued {
		if j, err := job.Load(filepath.Join(s.workspace, id)); err == nil {
			s.writeJSON(w, http.StatusOK, j)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	name := chi.URLParam(r, "name")

	if _, ok := s.registry.Get(id); !ok {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	// Artifact names are single path elements; anything else is a
	// traversal attempt.
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		s.writeError(w, http.StatusBadRequest, "invalid artifact name")
		return
	}

	path := filepath.Join(s.workspace, id, name)
	if _, err := os.Stat(path); err != nil {
		s.writeError(w, http.StatusNotFound, "artifact not found")
		return
	}
	http.ServeFile(w, r, path)
}

func profileNamed(name string) (model.AnnealProfile, bool) {
	for _, p := range model.AnnealProfiles {
		if p.Name == name {
			return p, true
		}
	}
	return model.AnnealProfile{}, false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{"error": msg})
}
