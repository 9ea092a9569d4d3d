package archive

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxsports/datahub/internal/provider"
)

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	calls  []execCall
	failOn string
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, errors.New("boom")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func teamSeason() TeamSeason {
	return TeamSeason{
		Sport:  "NBA",
		Team:   "Boston Celtics",
		Season: "2024-25",
		Source: "nba",
		File:   "Boston_Celtics_2024-25_stats.xlsx",
		Records: []provider.GameStatRecord{
			{GameDate: "2024-10-22", Opponent: "NYK", Player: "A", Points: provider.Int(20)},
			{GameDate: "2024-10-24", Opponent: "MIL", Player: "A"},
		},
		Results: []provider.TeamGameRecord{{GameDate: "2024-10-22", Opponent: "NYK", TeamPoints: 132, OpponentPoints: 109}},
	}
}

func TestSaveTeamSeason(t *testing.T) {
	db := &fakeDB{}
	c, err := SaveTeamSeason(context.Background(), db, teamSeason())
	require.NoError(t, err)
	assert.Equal(t, Counts{Records: 2, TeamGames: 1}, c)

	// upsert + 2 deletes + 2 records + 1 team game
	require.Len(t, db.calls, 6)
	assert.Contains(t, db.calls[0].sql, "ON CONFLICT (sport, team, season)")
	assert.Contains(t, db.calls[1].sql, "DELETE FROM player_game_stats")
	assert.Contains(t, db.calls[2].sql, "DELETE FROM team_games")

	// Unrecorded stats are stored as NULL.
	second := db.calls[4].args
	assert.Nil(t, second[6].(*int))
	assert.Equal(t, 20, *db.calls[3].args[6].(*int))
}

func TestSaveTeamSeason_StopsOnError(t *testing.T) {
	db := &fakeDB{failOn: "INSERT INTO team_games"}
	c, err := SaveTeamSeason(context.Background(), db, teamSeason())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert team game")
	assert.Equal(t, 2, c.Records)
	assert.Equal(t, 0, c.TeamGames)
}

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, EnsureSchema(context.Background(), db))
	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "CREATE TABLE IF NOT EXISTS team_seasons")
}
