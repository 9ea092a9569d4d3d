// Package export runs the fetch, aggregate and write pipeline for a team
// season, or for every team a provider lists.
package export

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/archive"
	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/season"
	"github.com/luxsports/datahub/internal/workbook"
)

// Options configures an export run.
type Options struct {
	OutputDir string
	Archive   archive.DB // nil disables the Postgres copy
	Logger    *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Team exports one team season. Provider and write failures are recorded
// in the result rather than returned, so a batch can keep going.
func Team(ctx context.Context, src provider.Source, team provider.Team, s season.Season, opts Options) Result {
	logger := opts.logger().With("source", src.Name(), "team", team.Name, "season", s.Label)
	result := Result{Team: team.Name, Season: s.Label}

	logger.Info("Fetching game records...")
	records, err := src.GameRecords(ctx, team, s)
	if err != nil {
		result.AddErrorf("fetch game records: %v", err)
		return result
	}
	result.Records = len(records)
	result.PlayersSeen = countPlayers(records)

	results, err := src.TeamResults(ctx, team, s)
	if err != nil {
		// Player sheets are still useful without the score sheet.
		logger.Warn("team results unavailable", "error", err)
		result.AddErrorf("fetch team results: %v", err)
		results = nil
	}
	result.TeamGames = len(results)

	tables := aggregate.Build(records, results)
	name := workbook.FileName(team.Name, s.Label, src.FileSuffix())
	path := filepath.Join(opts.OutputDir, name)

	if err := workbook.Write(path, tables); err != nil {
		if errors.Is(err, workbook.ErrNoGames) {
			logger.Info("No game data found, skipping workbook")
			result.Skipped = true
			return result
		}
		result.AddErrorf("write workbook: %v", err)
		return result
	}
	result.File = path
	logger.Info("Workbook saved", "file", path, "players", result.PlayersSeen, "records", result.Records)

	if opts.Archive != nil {
		_, err := archive.SaveTeamSeason(ctx, opts.Archive, archive.TeamSeason{
			Sport:   src.Sport(),
			Team:    team.Name,
			Season:  s.Label,
			Source:  src.Name(),
			File:    name,
			Records: records,
			Results: results,
		})
		if err != nil {
			logger.Warn("archive failed", "error", err)
			result.AddErrorf("archive: %v", err)
		} else {
			result.Archived = true
		}
	}
	return result
}

// All exports every team the provider lists for the season, one at a time.
// A cancelled context stops the loop between teams.
func All(ctx context.Context, src provider.Source, s season.Season, opts Options) Batch {
	logger := opts.logger()
	batch := Batch{Season: s.Label}

	list, err := src.Teams(ctx, s)
	if err != nil {
		batch.AddErrorf("fetch teams: %v", err)
		return batch
	}
	logger.Info("Exporting all teams", "source", src.Name(), "season", s.Label, "count", len(list))

	for i, team := range list {
		if err := ctx.Err(); err != nil {
			batch.AddErrorf("stopped after %d of %d teams: %v", i, len(list), err)
			break
		}
		logger.Info("Exporting team", "n", i+1, "of", len(list), "team", team.Name)
		batch.Add(Team(ctx, src, team, s, opts))
	}

	logger.Info("Export complete", "summary", batch.Summary())
	return batch
}

func countPlayers(records []provider.GameStatRecord) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.Player] = struct{}{}
	}
	return len(seen)
}
