package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/collection"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
	"github.com/kailas-cloud/multisearch/internal/domain/search/mode"
	"github.com/kailas-cloud/multisearch/internal/domain/search/request"
	"github.com/kailas-cloud/multisearch/internal/domain/search/result"
	"github.com/kailas-cloud/multisearch/internal/logger"
	healthuc "github.com/kailas-cloud/multisearch/internal/usecase/health"
)

// DefaultPerPage is the page size used when per_page is absent.
const DefaultPerPage = 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Searcher runs single- and multi-collection searches.
type Searcher interface {
	Search(ctx context.Context, req request.Request) (result.TypeResult, error)
	SearchMulti(ctx context.Context, req request.Multi) (result.Aggregate, error)
}

// HealthChecker reports backend health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Catalog resolves searchable types to their descriptors.
type Catalog interface {
	Get(k kind.Kind) (collection.Descriptor, error)
}

// typeRoutes maps single-collection route slugs to kinds.
var typeRoutes = []struct {
	slug string
	kind kind.Kind
}{
	{"movies", kind.Movie},
	{"tv-series", kind.TVSeries},
	{"persons", kind.Person},
	{"users", kind.User},
	{"playlists", kind.Playlist},
}

// Server serves the search HTTP API.
type Server struct {
	search         Searcher
	health         HealthChecker
	catalog        Catalog
	defaultPerPage int
	logger         *zap.Logger
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server. defaultPerPage <= 0 selects DefaultPerPage.
func NewServer(
	search Searcher,
	health HealthChecker,
	catalog Catalog,
	defaultPerPage int,
	logger *zap.Logger,
) *Server {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}
	s := &Server{
		search:         search,
		health:         health,
		catalog:        catalog,
		defaultPerPage: defaultPerPage,
		logger:         logger,
	}
	s.errorHandlers = []errorHandler{
		detailHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorCodeBadRequest),
		detailHandler(domain.ErrUnknownType, http.StatusBadRequest, ErrorCodeBadRequest),
	}
	return s
}

// Routes registers the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/search", func(r chi.Router) {
		for _, tr := range typeRoutes {
			r.Get("/"+tr.slug, s.SearchType(tr.kind))
		}
		r.Get("/all", s.SearchMulti(mode.All))
		r.Get("/best-results", s.SearchMulti(mode.BestResults))
	})
}

// SearchType handles GET /search/{type} for one kind.
func (s *Server) SearchType(k kind.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := s.catalog.Get(k)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}

		p, err := singleParams(r.URL.Query(), d, s.defaultPerPage)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		p.Actor = ActorFromContext(r.Context())

		req, err := request.New(k, p)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}

		res, err := s.search.Search(r.Context(), req)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// SearchMulti handles GET /search/all and GET /search/best-results.
func (s *Server) SearchMulti(m mode.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		perType, kinds, err := multiParams(q)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}

		req, err := request.NewMulti(q.Get(paramQuery), m, perType, kinds, ActorFromContext(r.Context()))
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}

		agg, err := s.search.SearchMulti(r.Context(), req)
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, agg)
	}
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// detailHandler returns an errorHandler for caller-facing errors whose
// message is safe to return verbatim.
func detailHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

// handleDomainError maps err to a response. Engine and store failures, and
// anything unrecognized, become a generic 500.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContextOr(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Debug("Rejected request", zap.Error(err))
			return
		}
	}
	log.Error("internal error",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
