package provider

import (
	"context"

	"github.com/luxsports/datahub/internal/season"
)

// Source is a stat provider for one sport.
//
// Per-player and per-game failures are logged and skipped inside the
// adapter; an error is returned only when the whole team (or team list)
// cannot be loaded.
type Source interface {
	// Name is the CLI key ("nba", "ncaam", "ncaam-sr").
	Name() string
	// Sport is the sport registry ID ("NBA", "NCAAM").
	Sport() string
	// FileSuffix is appended to workbook names ("" for NBA).
	FileSuffix() string
	Convention() season.Convention

	Teams(ctx context.Context, s season.Season) ([]Team, error)
	GameRecords(ctx context.Context, team Team, s season.Season) ([]GameStatRecord, error)
	// TeamResults returns nil when the provider has no per-game team scores.
	TeamResults(ctx context.Context, team Team, s season.Season) ([]TeamGameRecord, error)
}
