package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// ServerOption configures Server
type ServerOption func(*serverConfig)

type serverConfig struct {
	corsOrigin string
	registry   *prometheus.Registry
}

// WithCORSOrigin sets the origin allowed to call the API from a browser
func WithCORSOrigin(origin string) ServerOption {
	return func(c *serverConfig) {
		c.corsOrigin = origin
	}
}

// WithRegistry exposes metrics through the given registry instead of a fresh one
func WithRegistry(registry *prometheus.Registry) ServerOption {
	return func(c *serverConfig) {
		c.registry = registry
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, bugUC interfaces.Bug, opts ...ServerOption) *Server {
	cfg := serverConfig{
		corsOrigin: "*",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
	}

	metrics := NewMetrics(cfg.registry)
	bugs := &bugHandler{uc: bugUC}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)
	router.Use(CORS(cfg.corsOrigin))
	router.Use(middleware.StripSlashes)

	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{}))

	router.Route("/bugs", func(r chi.Router) {
		r.Get("/", bugs.list)
		r.Post("/", bugs.create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", bugs.get)
			r.Patch("/", bugs.update)
			r.Delete("/", bugs.delete)
		})
	})
	router.Get("/bug-stats", bugs.stats)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Bug tracker API is running",
	})
}

// writeJSON writes v as a JSON response body
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response. extra is merged into the body next to "error".
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int, extra map[string]any) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	body := map[string]any{
		"error": message,
	}
	for k, v := range extra {
		body[k] = v
	}

	writeJSON(ctx, w, status, body)
}
