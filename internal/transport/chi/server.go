// Package chi exposes the view-model services over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/huddle/internal/domain"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
	logpkg "github.com/kailas-cloud/huddle/internal/logger"
	healthuc "github.com/kailas-cloud/huddle/internal/usecase/health"
	"github.com/kailas-cloud/huddle/internal/usecase/mapview"
	searchuc "github.com/kailas-cloud/huddle/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Catalog is the read side of the catalog repository.
type Catalog interface {
	List(ctx context.Context, k kind.Kind) ([]social.Entity, error)
	Get(ctx context.Context, k kind.Kind, id string) (social.Entity, error)
}

// Server holds the HTTP handlers.
type Server struct {
	catalog       Catalog
	search        *searchuc.Service
	maps          *mapview.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog Catalog,
	search *searchuc.Service,
	maps *mapview.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog: catalog,
		search:  search,
		maps:    maps,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidKind, http.StatusBadRequest, ErrorResponseCodeInvalidKind),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorResponseCodeNotFound),
		sentinelHandler(domain.ErrInvalidEntity, http.StatusUnprocessableEntity, ErrorResponseCodeInvalidEntity),
	}
	return s
}

// Routes mounts the API on r.
func (s *Server) Routes(r gochi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/search", s.Search)
	r.Get("/map/pins", s.MapPins)
	r.Get("/catalog/{kind}", s.ListCatalog)
	r.Get("/catalog/{kind}/{id}", s.GetCatalogEntity)
}

// Search handles GET /search?q=&kind=.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	groups, err := s.search.Search(r.Context(), query, kindsParam(r))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchToResponse(query, groups))
}

// MapPins handles GET /map/pins?kind=.
func (s *Server) MapPins(w http.ResponseWriter, r *http.Request) {
	view, err := s.maps.Pins(r.Context(), kindsParam(r))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapToResponse(view))
}

// ListCatalog handles GET /catalog/{kind}.
func (s *Server) ListCatalog(w http.ResponseWriter, r *http.Request) {
	k := kind.Kind(gochi.URLParam(r, "kind"))
	items, err := s.catalog.List(r.Context(), k)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, EntityListResponse{
		Kind:  string(k),
		Count: len(items),
		Items: entitiesToResponse(items),
	})
}

// GetCatalogEntity handles GET /catalog/{kind}/{id}.
func (s *Server) GetCatalogEntity(w http.ResponseWriter, r *http.Request) {
	k := kind.Kind(gochi.URLParam(r, "kind"))
	e, err := s.catalog.Get(r.Context(), k, gochi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, entityToResponse(e))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	resp := HealthResponse{
		Status: string(report.Status),
		Checks: make(map[string]string, len(report.Checks)),
	}
	for k, v := range report.Checks {
		resp.Checks[k] = string(v)
	}
	if report.Entities != nil {
		resp.Entities = make(map[string]int, len(report.Entities))
		for k, n := range report.Entities {
			resp.Entities[string(k)] = n
		}
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// kindsParam accepts both ?kind=a&kind=b and ?kind=a,b.
func kindsParam(r *http.Request) []kind.Kind {
	var out []kind.Kind
	for _, v := range r.URL.Query()["kind"] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, kind.Kind(part))
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-safe message. Kind and entity errors only
// echo user input, so their text is kept without the wrapping prefixes.
func safeDomainMessage(err error) string {
	var ee *domain.EntityError
	switch {
	case errors.As(err, &ee):
		return ee.Error()
	case errors.Is(err, domain.ErrInvalidKind):
		msg := err.Error()
		if i := strings.Index(msg, domain.ErrInvalidKind.Error()); i >= 0 {
			return msg[i:]
		}
		return domain.ErrInvalidKind.Error()
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound.Error()
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logpkg.FromContext(ctx)
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}
