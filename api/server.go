// Package api - Thin HTTP layer over the booking core
// The API is ONLY responsible for: input decoding, core orchestration, output
// serialization. It never computes prices or validity itself.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"kitchhub/core/engine"
	"kitchhub/core/form"
	"kitchhub/core/output"
	"kitchhub/core/submission"
	"kitchhub/core/types"
	"kitchhub/internal/errors"
)

// DefaultSessionTTL is how long an untouched form instance is kept
const DefaultSessionTTL = 2 * time.Hour

// Server is the API server
type Server struct {
	core      *engine.Core
	sessions  *SessionStore
	submitter submission.Submitter
	router    chi.Router
	version   string
	logger    *zap.Logger
	now       func() time.Time
}

// NewServer creates a new API server
func NewServer(version string, core *engine.Core, submitter submission.Submitter, logger *zap.Logger) *Server {
	s := &Server{
		core:      core,
		sessions:  NewSessionStore(core.NewForm, DefaultSessionTTL),
		submitter: submitter,
		router:    chi.NewRouter(),
		version:   version,
		logger:    logger,
		now:       time.Now,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.Use(middleware.RequestID, s.requestLogger, middleware.Recoverer)

	// Supporting endpoints
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)

	// Pricing
	s.router.Get("/options", s.handleOptions)
	s.router.Get("/price", s.handlePrice)

	// Lead form instances
	s.router.Route("/forms", func(r chi.Router) {
		r.Post("/", s.handleCreateForm)
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/events", s.handleFieldEvent)
			r.Post("/submit", s.handleSubmit)
			r.Delete("/", s.handleDeleteForm)
		})
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    s.now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"service":     "kitchhub",
		"api_version": "v1",
	}, http.StatusOK)
}

// handleOptions handles GET /options
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	locations, periods := s.core.Calculator().Options()
	s.writeJSON(w, OptionsResponse{
		Locations:    locations,
		Periods:      periods,
		Tiers:        types.Tiers,
		MinVisitDate: form.MinVisitDate(s.now()),
	}, http.StatusOK)
}

// handlePrice handles GET /price?city=&duration=[&tier=]
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := types.PriceQuery{
		Location: types.Location(q.Get("city")),
		Period:   types.Period(q.Get("duration")),
		Tier:     types.Tier(q.Get("tier")),
	}

	// Query strings are not a closed set: reject anything outside the catalog
	// before it reaches the calculator.
	cat := s.core.Calculator().Catalog()
	switch {
	case !cat.HasLocation(string(query.Location)):
		s.writeDomainError(w, errors.InvalidSelection("location", string(query.Location)))
		return
	case !cat.HasPeriod(string(query.Period)):
		s.writeDomainError(w, errors.InvalidSelection("period", string(query.Period)))
		return
	case query.Tier != "" && !query.Tier.IsValid():
		s.writeDomainError(w, errors.InvalidSelection("tier", string(query.Tier)))
		return
	}

	result, err := s.core.Calculator().Price(query)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, output.NewPriceView(result), http.StatusOK)
}

// requestLogger logs each request through zap
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorBody{Error: ErrorDetail{Code: code, Message: message}}, status)
}

// writeDomainError maps a typed error to its HTTP status
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	t := errors.TypeOf(err)
	status := http.StatusInternalServerError
	switch t {
	case errors.TypeInvalidSelection, errors.TypeInput:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	default:
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeError(w, string(t), err.Error(), status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
