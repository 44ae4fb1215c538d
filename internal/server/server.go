// Package server exposes the placement engine over HTTP for the rendering
// collaborator.
//
// Routes:
//
//	POST /v1/placements       compute placements for one pictograph
//	GET  /v1/letters/{letter} letter classification info
//	GET  /healthz             liveness probe
//
// Placement computation is deterministic, so successful responses are
// cached under a content hash of the request. Per-arrow errors never fail
// a request: the arrow is skipped and reported in the response, and the
// rest of the pictograph still resolves.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/pictolab/glyphgrid/pkg/cache"
	gerr "github.com/pictolab/glyphgrid/pkg/errors"
	"github.com/pictolab/glyphgrid/pkg/observability"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement"
)

// Server wires the engine, the result cache and the router together.
type Server struct {
	engine   *placement.Engine
	cache    cache.Cache
	cacheTTL time.Duration
	gridMode pictograph.GridMode
	logger   *log.Logger
	router   chi.Router
}

// Options configures a Server.
type Options struct {
	// Cache stores computed results; nil disables caching.
	Cache cache.Cache

	// CacheTTL bounds cached entries. Zero means no expiration.
	CacheTTL time.Duration

	// GridMode is applied to requests that omit one.
	GridMode pictograph.GridMode

	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// New builds a Server around a constructed engine.
func New(engine *placement.Engine, opts Options) *Server {
	s := &Server{
		engine:   engine,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		gridMode: opts.GridMode,
		logger:   opts.Logger,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.gridMode == "" {
		s.gridMode = pictograph.Diamond
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/placements", s.handlePlacements)
		r.Get("/letters/{letter}", s.handleLetter)
	})
	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// placementRequest is the wire form of a placement computation request.
type placementRequest struct {
	Letter   pictograph.Letter                     `json:"letter"`
	GridMode pictograph.GridMode                   `json:"grid_mode,omitempty"`
	Arrows   map[pictograph.Color]pictograph.Arrow `json:"arrows"`
}

func (s *Server) handlePlacements(w http.ResponseWriter, r *http.Request) {
	var req placementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, gerr.Wrap(gerr.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}
	if req.GridMode == "" {
		req.GridMode = s.gridMode
	}

	pic := &pictograph.Pictograph{
		Letter:   req.Letter,
		GridMode: req.GridMode,
		Arrows:   req.Arrows,
	}

	key := cache.PlacementKey(pic.Letter, pic.GridMode, pic.Arrows)
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		observability.Cache().OnCacheHit(r.Context(), "placement")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "placement")

	start := time.Now()
	observability.Placement().OnComputeStart(r.Context(), string(pic.Letter), string(pic.GridMode))
	result, err := s.engine.Compute(pic)
	observability.Placement().OnComputeComplete(r.Context(),
		string(pic.Letter), string(pic.GridMode), len(result.Placements), time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		writeError(w, gerr.Wrap(gerr.ErrCodeInternal, err, "encoding result"))
		return
	}
	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		// A failed cache write only costs a recomputation later.
		s.logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), "placement", len(data))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "miss")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// letterInfo is the wire form of a letter classification response.
type letterInfo struct {
	Letter     pictograph.Letter `json:"letter"`
	Type       string            `json:"type"`
	DashFamily bool              `json:"dash_family"`
	BetaEnding bool              `json:"beta_ending"`
	KeySuffix  string            `json:"key_suffix"`
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	letter := pictograph.Letter(chi.URLParam(r, "letter"))
	t := letter.Type()
	if t == pictograph.TypeUnknown {
		writeError(w, gerr.New(gerr.ErrCodeNotFound, "unknown letter %q", letter))
		return
	}
	writeJSON(w, http.StatusOK, letterInfo{
		Letter:     letter,
		Type:       t.String(),
		DashFamily: letter.IsDashFamily(),
		BetaEnding: letter.IsBetaEnding(),
		KeySuffix:  letter.KeySuffix(),
	})
}
