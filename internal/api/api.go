// Package api is the admin/dashboard backend of the feed parser. It
// validates feed urls, enqueues parse commands and serves the editable
// template parameter surface.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/feedline/yml-feed-parser/internal/platform/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "feed_api_request_duration_seconds",
	Help:    "HTTP request duration by route pattern and status.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// TemplateStore reads and edits persisted template parameters.
type TemplateStore interface {
	ListTemplateParameters(ctx context.Context, templateID int32) ([]models.TemplateParameter, error)
	UpdateTemplateParameter(ctx context.Context, id int32, patch storage.TemplateParameterPatch) error
	DeleteTemplateParameters(ctx context.Context, ids []int32) error
	ReorderTemplateParameters(ctx context.Context, templateID int32, orderedIDs []int32) error
}

// Commander enqueues parse commands.
type Commander interface {
	SendParseCommand(ctx context.Context, feedURL string) error
}

// Server holds API dependencies.
type Server struct {
	store     TemplateStore
	commander Commander
	validate  *validator.Validate
	logger    *zerolog.Logger
}

// NewServer returns new Server.
func NewServer(store TemplateStore, commander Commander, logger *zerolog.Logger) *Server {
	return &Server{
		store:     store,
		commander: commander,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

// Routes returns the API router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.metricsMiddleware)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/health", s.healthHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/feeds", func(r chi.Router) {
			r.Post("/validate", s.validateFeedHandler)
			r.Post("/parse", s.parseFeedHandler)
		})

		r.Route("/templates/{templateID}", func(r chi.Router) {
			r.Get("/parameters", s.listParametersHandler)
			r.Get("/parameters/tree", s.parameterTreeHandler)
			r.Post("/parameters/reorder", s.reorderParametersHandler)
		})

		r.Patch("/parameters/{parameterID}", s.updateParameterHandler)
		r.Delete("/parameters", s.deleteParametersHandler)
	})

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	_ = s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		requestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}

// pathID reads a positive int32 url parameter.
func pathID(r *http.Request, name string) (int32, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}
