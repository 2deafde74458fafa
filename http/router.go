package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"fund-selector/service"
)

type RouterConfig struct {
	Profiles      *service.ProfileService
	Funds         *service.FundSearchService
	Metrics       *Metrics
	Limiter       *RateLimiter
	EnrichTimeout time.Duration
	Log           zerolog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Log.With().Str("component", "http").Logger()
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(log))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	profileHandler := NewProfileHandler(cfg.Profiles, cfg.Funds, cfg.EnrichTimeout, log)
	fundSearchHandler := NewFundSearchHandler(cfg.Funds, log)

	limited := r.With(func(next http.Handler) http.Handler {
		if cfg.Limiter == nil {
			return next
		}
		return RateLimitMiddleware(cfg.Limiter, next)
	})

	limited.Post("/profile", profileHandler.CreateProfile)
	r.Get("/profile/{id}", profileHandler.GetProfile)
	limited.Post("/funds/search", fundSearchHandler.Search)

	return r
}

func loggingMiddleware(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("HTTP request")
		})
	}
}
