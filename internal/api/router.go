// Package api serves path searches over HTTP and websockets.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdrpinto/gridpath/internal/config"
)

// RouterConfig contains everything needed to construct the HTTP router.
type RouterConfig struct {
	// Limits bound the size of grids, batches and searches.
	Limits config.LimitsConfig

	// RateLimiter throttles requests per client IP. Nil disables rate
	// limiting. The caller owns Stop.
	RateLimiter *IPRateLimiter

	// CORSOrigins lists allowed browser origins.
	CORSOrigins []string

	// CheckOrigin overrides the websocket origin check. Nil keeps the
	// gorilla default, which only accepts same-host origins.
	CheckOrigin func(r *http.Request) bool

	// Logger receives request and search logs. Nil discards them.
	Logger *slog.Logger
}

// NewRouter constructs the HTTP router with all middleware and routes.
// It opens no listeners; use it with http.Server or httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &handlers{
		limits: cfg.Limits,
		logger: logger,
	}
	h.upgrader.ReadBufferSize = 4096
	h.upgrader.WriteBufferSize = 4096
	h.upgrader.CheckOrigin = cfg.CheckOrigin

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.handleIndex)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/demo", h.handleDemo)
		r.Get("/random", h.handleRandom)
		r.Post("/path", h.handlePath)
		r.Post("/path.png", h.handlePathPNG)
		r.Post("/batch", h.handleBatch)
	})
	r.Get("/ws/steps", h.handleSteps)

	return r
}

// requestLogger logs one record per request and feeds the HTTP metrics.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			endpoint := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				endpoint = rctx.RoutePattern()
			}
			elapsed := time.Since(start)
			RecordRequest(r.Method, endpoint, status, elapsed)
			logger.Debug("request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"endpoint", endpoint,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", elapsed)
		})
	}
}
