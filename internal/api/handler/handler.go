// Package handler provides HTTP handlers for the dashboard pages and the
// JSON API. Every request re-reads workbooks from disk; only team logos are
// cached in memory.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/luxsports/datahub/internal/api/respond"
	"github.com/luxsports/datahub/internal/cache"
	"github.com/luxsports/datahub/internal/config"
	"github.com/luxsports/datahub/internal/db"
	"github.com/luxsports/datahub/internal/workbook"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	cfg    *config.Config
	cache  *cache.Cache
	pool   *db.Pool // nil when the archive is disabled
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(cfg *config.Config, c *cache.Cache, pool *db.Pool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{cfg: cfg, cache: c, pool: pool, logger: logger}
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"data_dir":  h.cfg.DataDir,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies archive database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity when the export archive is configured.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"database":  "disabled",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("database health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"pool":      h.pool.Status(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns logo cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Request helpers
// --------------------------------------------------------------------------

func param(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

// sport resolves the {sport} path parameter.
func (h *Handler) sport(r *http.Request) (config.SportConfig, bool) {
	return config.Sport(param(r, "sport"))
}

// book resolves {sport} and {file} and loads the workbook. It writes the
// error response itself and returns ok=false on failure.
func (h *Handler) book(w http.ResponseWriter, r *http.Request, html bool) (*workbook.Book, config.SportConfig, bool) {
	sc, ok := h.sport(r)
	if !ok {
		h.notFound(w, html, "UNKNOWN_SPORT", "Unknown sport "+param(r, "sport"))
		return nil, sc, false
	}
	info, ok := workbook.Lookup(h.cfg.DataDir, sc.ID, param(r, "file"))
	if !ok {
		h.notFound(w, html, "FILE_NOT_FOUND", "No such workbook for "+sc.ID)
		return nil, sc, false
	}
	b, err := workbook.Read(filepath.Join(h.cfg.DataDir, info.File))
	if err != nil {
		h.logger.Warn("failed to read workbook", "file", info.File, "error", err)
		if html {
			http.Error(w, "Could not read "+info.File, http.StatusInternalServerError)
		} else {
			respond.WriteErrorDetail(w, http.StatusInternalServerError, "READ_FAILED", "Could not read workbook", err.Error())
		}
		return nil, sc, false
	}
	return b, sc, true
}

func (h *Handler) notFound(w http.ResponseWriter, html bool, code, msg string) {
	if html {
		http.Error(w, msg, http.StatusNotFound)
		return
	}
	respond.WriteError(w, http.StatusNotFound, code, msg)
}
