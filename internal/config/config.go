// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/dashboard and cmd/ingest.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/luxsports/datahub/internal/cache"
	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/trend"
)

// --------------------------------------------------------------------------
// Sport registry
// --------------------------------------------------------------------------

type SportConfig struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	FileSuffix string `json:"file_suffix"`
	Active     bool   `json:"active"`
}

var SportRegistry = map[string]SportConfig{
	"NBA":   {ID: "NBA", Name: "NBA", Icon: "🏀", FileSuffix: "", Active: true},
	"NCAAM": {ID: "NCAAM", Name: "NCAA Men's Basketball", Icon: "🎓", FileSuffix: "ncaam", Active: true},
	"NFL":   {ID: "NFL", Name: "NFL", Icon: "🏈", FileSuffix: "nfl"},
	"NCAAF": {ID: "NCAAF", Name: "NCAA Football (NCAAF)", Icon: "🎓", FileSuffix: "ncaaf"},
	"WNBA":  {ID: "WNBA", Name: "WNBA", Icon: "🏀", FileSuffix: "wnba"},
	"NCAAW": {ID: "NCAAW", Name: "NCAA Women's Basketball (NCAAW)", Icon: "🎓", FileSuffix: "ncaaw"},
}

// SportOrder is the dashboard tab order.
var SportOrder = []string{"NBA", "NCAAM", "NFL", "NCAAF", "WNBA", "NCAAW"}

// Sport looks up a sport by ID, case-insensitively.
func Sport(id string) (SportConfig, bool) {
	sc, ok := SportRegistry[strings.ToUpper(id)]
	return sc, ok
}

// --------------------------------------------------------------------------
// Archive table names
// --------------------------------------------------------------------------

const (
	TeamSeasonsTable     = "team_seasons"
	PlayerGameStatsTable = "player_game_stats"
	TeamGamesTable       = "team_games"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Files
	DataDir string
	LogoDir string

	// Database archive, optional
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// Dashboard server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool
	LogLevel    slog.Level

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Providers
	ProviderMinInterval     time.Duration
	ProviderTimeout         time.Duration
	ProviderBreakerFailures int
	ProviderBreakerCooldown time.Duration
	ProviderCacheTTL        time.Duration
	CBBDAPIKey              string
	NBAStatsBaseURL         string
	CBBDBaseURL             string
	SportsRefBaseURL        string

	// Cache
	CacheEnabled bool
	RedisURL     string

	// Trends
	Thresholds trend.Thresholds
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	level, err := parseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	thresholds, err := loadThresholds()
	if err != nil {
		return nil, err
	}

	return &Config{
		DataDir: envOr("DATA_DIR", "data"),
		LogoDir: envOr("LOGO_DIR", "logos"),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 5),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8501)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
		LogLevel:    level,

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8501",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		ProviderMinInterval:     envDuration("PROVIDER_MIN_INTERVAL_MS", provider.DefaultMinInterval, time.Millisecond),
		ProviderTimeout:         envDuration("PROVIDER_TIMEOUT_SECONDS", 30*time.Second, time.Second),
		ProviderBreakerFailures: envInt("PROVIDER_BREAKER_FAILURES", 5),
		ProviderBreakerCooldown: envDuration("PROVIDER_BREAKER_COOLDOWN_SECONDS", 60*time.Second, time.Second),
		ProviderCacheTTL:        envDuration("PROVIDER_CACHE_TTL_MINUTES", cache.TTLProviderResponse, time.Minute),
		CBBDAPIKey:              envOr("CBBD_API_KEY", ""),
		NBAStatsBaseURL:         envOr("NBA_STATS_BASE_URL", ""),
		CBBDBaseURL:             envOr("CBBD_BASE_URL", ""),
		SportsRefBaseURL:        envOr("SPORTSREF_BASE_URL", ""),

		CacheEnabled: envBool("CACHE_ENABLED", true),
		RedisURL:     envOr("REDIS_URL", ""),

		Thresholds: thresholds,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ArchiveEnabled reports whether exports are also written to Postgres.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

// ClientOptions returns provider client options for one source. The caller
// fills in headers and the response cache.
func (c *Config) ClientOptions(name, baseURL string, logger *slog.Logger) provider.ClientOptions {
	return provider.ClientOptions{
		Name:            name,
		BaseURL:         baseURL,
		Timeout:         c.ProviderTimeout,
		MinInterval:     c.ProviderMinInterval,
		BreakerFailures: c.ProviderBreakerFailures,
		BreakerCooldown: c.ProviderBreakerCooldown,
		CacheTTL:        c.ProviderCacheTTL,
		Logger:          logger,
	}
}

// --------------------------------------------------------------------------
// Thresholds
// --------------------------------------------------------------------------

var thresholdKeys = map[provider.Stat]string{
	provider.StatPoints:   "POINTS_THRESHOLDS",
	provider.StatAssists:  "ASSISTS_THRESHOLDS",
	provider.StatRebounds: "REBOUNDS_THRESHOLDS",
	provider.StatThrees:   "THREES_THRESHOLDS",
}

func loadThresholds() (trend.Thresholds, error) {
	t := trend.DefaultThresholds()
	for stat, key := range thresholdKeys {
		v, err := envInts(key)
		if err != nil {
			return nil, err
		}
		if len(v) > 0 {
			t[stat] = v
		}
	}
	return t, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return l, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration reads an integer count of unit. Zero is a valid value.
func envDuration(key string, fallback, unit time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * unit
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// envInts parses a comma-separated list of positive integers. Unset yields
// nil; a malformed entry is an error rather than a silent fallback.
func envInts(key string) ([]int, error) {
	parts := envList(key, nil)
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s: invalid threshold %q", key, p)
		}
		out = append(out, n)
	}
	return out, nil
}
