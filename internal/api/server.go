package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/luxsports/datahub/internal/api/handler"
	"github.com/luxsports/datahub/internal/cache"
	"github.com/luxsports/datahub/internal/config"
	"github.com/luxsports/datahub/internal/db"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
// pool may be nil when the export archive is not configured.
func NewRouter(cfg *config.Config, appCache *cache.Cache, pool *db.Pool, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(cfg, appCache, pool, logger)

	// --- Dashboard pages ---
	r.Get("/", h.Index)
	r.Get("/sports/{sport}", h.SportPage)
	r.Get("/sports/{sport}/files/{file}", h.FilePage)
	r.Get("/sports/{sport}/perfects", h.PerfectsPage)
	r.Get("/logos/{team}", h.Logo)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sports", h.ListSports)
		r.Route("/sports/{sport}", func(r chi.Router) {
			r.Get("/files", h.ListFiles)
			r.Get("/files/{file}/stats/{stat}", h.GetTable)
			r.Get("/files/{file}/team", h.GetTeam)
			r.Get("/files/{file}/trends", h.GetTrends)
			r.Get("/perfects", h.GetPerfects)
			r.Get("/archive", h.GetArchive)
		})
	})

	return r
}
