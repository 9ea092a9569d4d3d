// Command ingest is the Lux Sports Data Hub export CLI. It pulls a team
// season from a stat provider and writes the team workbook.
//
// Usage:
//
//	datahub-ingest export nba
//	datahub-ingest export ncaam --mode all --season 2024-25
//	datahub-ingest export ncaam-sr --mode one --season 25 --team Duke
//
// Without flags every choice is prompted for.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/luxsports/datahub/internal/archive"
	"github.com/luxsports/datahub/internal/cache"
	"github.com/luxsports/datahub/internal/config"
	"github.com/luxsports/datahub/internal/db"
	"github.com/luxsports/datahub/internal/export"
	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/provider/cbbd"
	"github.com/luxsports/datahub/internal/provider/nbastats"
	"github.com/luxsports/datahub/internal/provider/sportsref"
	"github.com/luxsports/datahub/internal/season"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "datahub-ingest",
		Short: "Lux Sports Data Hub export CLI",
	}

	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// export command
// --------------------------------------------------------------------------

type exportFlags struct {
	mode      string
	season    string
	team      string
	outDir    string
	noArchive bool
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export team workbooks from a stat provider",
	}
	cmd.AddCommand(sourceCmd("nba", "Export NBA teams from stats.nba.com"))
	cmd.AddCommand(sourceCmd("ncaam", "Export NCAA men's teams from CollegeBasketballData"))
	cmd.AddCommand(sourceCmd("ncaam-sr", "Export NCAA men's teams from sports-reference.com"))
	return cmd
}

func sourceCmd(name, short string) *cobra.Command {
	var f exportFlags
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(func(ctx context.Context, cfg *config.Config, store cache.Store, archiveDB archive.DB) error {
				src, err := newSource(name, cfg, store)
				if err != nil {
					return err
				}
				if f.outDir == "" {
					f.outDir = cfg.DataDir
				}
				opts := export.Options{OutputDir: f.outDir, Logger: logger}
				if !f.noArchive {
					opts.Archive = archiveDB
				}
				return exportSource(ctx, src, f, opts, newPrompter(os.Stdin, os.Stdout))
			})
		},
	}
	cmd.Flags().StringVar(&f.mode, "mode", "", "one or all (prompted when empty)")
	cmd.Flags().StringVar(&f.season, "season", "", "Season, e.g. 2024-25, 2025 or 25 (prompted when empty)")
	cmd.Flags().StringVar(&f.team, "team", "", "Team name or abbreviation for --mode one (prompted when empty)")
	cmd.Flags().StringVar(&f.outDir, "out", "", "Output directory (defaults to DATA_DIR)")
	cmd.Flags().BoolVar(&f.noArchive, "no-archive", false, "Skip the Postgres archive even when DATABASE_URL is set")
	return cmd
}

// exportSource drives one export run: mode, season, then one team or all.
func exportSource(ctx context.Context, src provider.Source, f exportFlags, opts export.Options, p *prompter) error {
	sc, _ := config.Sport(src.Sport())
	p.printf("%s %s Tracker – Points, Assists, Rebounds, 3PM & Team Totals\n", sc.Icon, sc.ID)

	mode := f.mode
	if mode != "one" && mode != "all" {
		mode = p.mode()
	}
	raw := f.season
	if raw == "" {
		raw = p.ask(seasonQuestion(src.Convention()))
	}
	s := src.Convention().Parse(raw)
	p.printf("\nUsing season: %s (%s season param: %s)\n", s.Label, src.Name(), s.Param)

	start := time.Now()
	if mode == "all" {
		p.printf("\nDownloading stats for all %s teams...\n", sc.ID)
		batch := export.All(ctx, src, s, opts)
		if batch.Teams == 0 && len(batch.Errors) > 0 {
			return fmt.Errorf("export all %s teams: %s", sc.ID, batch.Errors[0])
		}
		for _, r := range batch.Results {
			if !r.Written() && !r.Skipped {
				p.printf("  ⚠️  Skipping %s because of an error: %s\n", r.Team, firstError(r.Errors))
			}
		}
		logger.Info("Export finished", "duration", time.Since(start).Round(time.Second), "summary", batch.Summary())
		p.printf("\n🏁 Done! All requested team data processed.\n")
		return nil
	}

	list, err := src.Teams(ctx, s)
	if err != nil {
		return fmt.Errorf("load %s teams for %s: %w", sc.ID, s.Label, err)
	}
	if len(list) == 0 {
		return fmt.Errorf("no %s teams were found for %s", sc.ID, s.Label)
	}
	p.printf("\nLoaded %d teams for that season.\n", len(list))

	team, ok := p.team(f.team, list)
	if !ok {
		p.printf("\n🏁 Done! No team selected.\n")
		return nil
	}
	result := export.Team(ctx, src, team, s, opts)
	for _, e := range result.Errors {
		logger.Error("export error", "team", team.Name, "error", e)
	}
	switch {
	case result.Written():
		p.printf("  💾 Saved '%s'\n", result.File)
	case result.Skipped:
		p.printf("  ⚠️  No games found for %s in %s. Skipping file.\n", team.Name, s.Label)
	}
	logger.Info("Export finished", "duration", time.Since(start).Round(time.Second), "summary", result.Summary())
	p.printf("\n🏁 Done! All requested team data processed.\n")
	return nil
}

func firstError(errs []string) string {
	if len(errs) == 0 {
		return "unknown error"
	}
	return errs[0]
}

func seasonQuestion(c season.Convention) string {
	now := time.Now()
	cur := c.Default(now)
	return fmt.Sprintf("Which season? (e.g., %s or %d or %02d): ", cur.Label, cur.End, cur.End%100)
}

// --------------------------------------------------------------------------
// Source wiring
// --------------------------------------------------------------------------

// newSource builds the adapter for a CLI key on top of a shared client
// configuration.
func newSource(name string, cfg *config.Config, store cache.Store) (provider.Source, error) {
	switch name {
	case "nba":
		opts := cfg.ClientOptions(name, orDefault(cfg.NBAStatsBaseURL, nbastats.DefaultBaseURL), logger)
		opts.Headers = nbastats.DefaultHeaders
		opts.Cache = store
		return nbastats.NewHandler(provider.NewClient(opts), logger), nil
	case "ncaam":
		if cfg.CBBDAPIKey == "" {
			return nil, fmt.Errorf("CBBD_API_KEY is required")
		}
		opts := cfg.ClientOptions(name, orDefault(cfg.CBBDBaseURL, cbbd.DefaultBaseURL), logger)
		opts.Headers = cbbd.AuthHeaders(cfg.CBBDAPIKey)
		opts.Cache = store
		return cbbd.NewHandler(provider.NewClient(opts), logger), nil
	case "ncaam-sr":
		opts := cfg.ClientOptions(name, orDefault(cfg.SportsRefBaseURL, sportsref.DefaultBaseURL), logger)
		opts.Headers = sportsref.DefaultHeaders
		opts.Cache = store
		return sportsref.NewHandler(provider.NewClient(opts), logger), nil
	}
	return nil, fmt.Errorf("unknown source %q", name)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runExport handles config loading, the provider response cache, the
// optional archive connection and context cancellation.
func runExport(fn func(ctx context.Context, cfg *config.Config, store cache.Store, archiveDB archive.DB) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var store cache.Store
	switch {
	case cfg.RedisURL != "":
		rs, err := cache.NewRedisStore(ctx, cfg.RedisURL, logger)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rs.Close()
		store = rs
		logger.Info("Provider cache: redis")
	case cfg.CacheEnabled:
		store = cache.New(true)
		logger.Info("Provider cache: in-memory")
	}

	var archiveDB archive.DB
	if cfg.ArchiveEnabled() {
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		archiveDB = pool
		logger.Info("Archive enabled")
	}

	return fn(ctx, cfg, store, archiveDB)
}
