// Package archive keeps an optional Postgres copy of every exported team
// season. Workbooks stay the source the dashboard reads; the archive is
// write-mostly and only listed for the API.
package archive

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/luxsports/datahub/internal/config"
	"github.com/luxsports/datahub/internal/provider"
)

//go:embed schema.sql
var schema string

// DB is the subset of pgxpool.Pool the archive needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TeamSeason is one exported team season.
type TeamSeason struct {
	Sport   string
	Team    string
	Season  string
	Source  string
	File    string
	Records []provider.GameStatRecord
	Results []provider.TeamGameRecord
}

// Counts reports the rows written by SaveTeamSeason.
type Counts struct {
	Records   int
	TeamGames int
}

// EnsureSchema creates the archive tables if they do not exist.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create archive schema: %w", err)
	}
	return nil
}

// SaveTeamSeason replaces the archived rows of a team season. The season row
// is upserted first; its game rows are deleted and re-inserted so a re-export
// matches the new workbook.
func SaveTeamSeason(ctx context.Context, db DB, ts TeamSeason) (Counts, error) {
	var c Counts

	_, err := db.Exec(ctx, `
		INSERT INTO `+config.TeamSeasonsTable+` (sport, team, season, source, file_name)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (sport, team, season) DO UPDATE SET
			source = EXCLUDED.source,
			file_name = EXCLUDED.file_name,
			exported_at = NOW()`,
		ts.Sport, ts.Team, ts.Season, ts.Source, ts.File,
	)
	if err != nil {
		return c, fmt.Errorf("upsert team season: %w", err)
	}

	for _, table := range []string{config.PlayerGameStatsTable, config.TeamGamesTable} {
		_, err := db.Exec(ctx,
			`DELETE FROM `+table+` WHERE sport = $1 AND team = $2 AND season = $3`,
			ts.Sport, ts.Team, ts.Season)
		if err != nil {
			return c, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, r := range ts.Records {
		_, err := db.Exec(ctx, `
			INSERT INTO `+config.PlayerGameStatsTable+` (
				sport, team, season, game_date, opponent, player,
				points, assists, rebounds, threes_made
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			ts.Sport, ts.Team, ts.Season, r.GameDate, r.Opponent, r.Player,
			r.Points, r.Assists, r.Rebounds, r.Threes,
		)
		if err != nil {
			return c, fmt.Errorf("insert record %s %s: %w", r.Player, r.GameDate, err)
		}
		c.Records++
	}

	for _, g := range ts.Results {
		_, err := db.Exec(ctx, `
			INSERT INTO `+config.TeamGamesTable+` (
				sport, team, season, game_date, opponent, team_points, opponent_points
			) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			ts.Sport, ts.Team, ts.Season, g.GameDate, g.Opponent, g.TeamPoints, g.OpponentPoints,
		)
		if err != nil {
			return c, fmt.Errorf("insert team game %s: %w", g.GameDate, err)
		}
		c.TeamGames++
	}
	return c, nil
}

// Entry is a row of the archive listing.
type Entry struct {
	Team       string    `json:"team"`
	Season     string    `json:"season"`
	Sport      string    `json:"sport"`
	ExportedAt time.Time `json:"exported_at"`
}

// List returns the archived team seasons of a sport.
func List(ctx context.Context, db DB, sport string) ([]Entry, error) {
	rows, err := db.Query(ctx, "archived_seasons", sport)
	if err != nil {
		return nil, fmt.Errorf("list archive: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Entry])
	if err != nil {
		return nil, fmt.Errorf("scan archive: %w", err)
	}
	return out, nil
}
