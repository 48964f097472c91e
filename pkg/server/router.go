package server

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/schemakit/pkg/catalog"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/schema"
)

// DefaultMaxBodyBytes caps request bodies when RouterOptions leaves it unset.
const DefaultMaxBodyBytes = 1 << 20

// RouterOptions configures the HTTP API. Only Registry is required.
type RouterOptions struct {
	Registry *catalog.Registry

	// SchemaOptions apply to every validation request.
	SchemaOptions []schema.Option

	MaxBodyBytes int64
	Logger       *slog.Logger

	// Metrics, when set, records request outcomes and mounts GET /metrics.
	Metrics *Metrics
}

// Router builds the API:
//
//	GET  /healthz
//	GET  /schemas
//	GET  /schemas/{name}            JSON Schema export
//	POST /schemas/{name}/validate   200 valid, 422 invalid; ?async=true runs async hooks
//	POST /sanitize                  {"value": ..., "rules": {...}}
//	GET  /metrics
func Router(opts RouterOptions) chi.Router {
	if opts.Registry == nil {
		panic("server.Router: nil registry")
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	h := &handlers{
		registry:   opts.Registry,
		schemaOpts: slices.Concat([]schema.Option{schema.WithLogger(opts.Logger)}, opts.SchemaOptions),
		maxBody:    opts.MaxBodyBytes,
		log:        opts.Logger.With(logger.Component("http")),
		metrics:    opts.Metrics,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", HealthCheckHandler(h.log))
	r.Route("/schemas", func(r chi.Router) {
		r.Get("/", h.listSchemas)
		r.Get("/{name}", h.exportSchema)
		r.Post("/{name}/validate", h.validate)
	})
	r.Post("/sanitize", h.sanitize)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	return r
}
