package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/provider"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "Los_Angeles_Lakers_2024-25_stats.xlsx", FileName("Los Angeles Lakers", "2024-25", ""))
	assert.Equal(t, "Duke_2024-25_ncaam_stats.xlsx", FileName("Duke", "2024-25", "ncaam"))
}

func TestParseFileName(t *testing.T) {
	tests := []struct {
		file string
		want Info
	}{
		{
			"Los_Angeles_Lakers_2024-25_stats.xlsx",
			Info{File: "Los_Angeles_Lakers_2024-25_stats.xlsx", Team: "Los Angeles Lakers", Season: "2024-25", Sport: "NBA"},
		},
		{
			"Duke_2024-25_ncaam_stats.xlsx",
			Info{File: "Duke_2024-25_ncaam_stats.xlsx", Team: "Duke", Season: "2024-25", Sport: "NCAAM"},
		},
		{
			"North_Carolina_2023-24_ncaab_stats.xlsx",
			Info{File: "North_Carolina_2023-24_ncaab_stats.xlsx", Team: "North Carolina", Season: "2023-24", Sport: "NCAAM"},
		},
		{
			"Celtics_stats.xlsx",
			Info{File: "Celtics_stats.xlsx", Team: "Celtics", Season: "Unknown", Sport: "NBA"},
		},
		{
			"Bethune-Cookman_ncaam_stats.xlsx",
			Info{File: "Bethune-Cookman_ncaam_stats.xlsx", Team: "Bethune-Cookman", Season: "Unknown", Sport: "NCAAM"},
		},
		{
			"2024-25_nba_stats.xlsx",
			Info{File: "2024-25_nba_stats.xlsx", Team: "Unknown Team", Season: "2024-25", Sport: "NBA"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got := ParseFileName(filepath.Join("data", tt.file))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFileName_RoundTripsFileName(t *testing.T) {
	info := ParseFileName(FileName("San Antonio Spurs", "2022-23", "nba"))
	assert.Equal(t, "San Antonio Spurs", info.Team)
	assert.Equal(t, "2022-23", info.Season)
	assert.Equal(t, "San Antonio Spurs (2022-23)", info.Label())
}

func sampleTables() aggregate.Tables {
	records := []provider.GameStatRecord{
		{GameDate: "2024-11-02", Opponent: "BOS", Player: "A", Points: provider.Int(20), Assists: provider.Int(5), Rebounds: provider.Int(7), Threes: provider.Int(2)},
		{GameDate: "2024-11-01", Opponent: "NYK", Player: "A", Points: provider.Int(12), Assists: provider.Int(3), Rebounds: provider.Int(4), Threes: provider.Int(1)},
		{GameDate: "2024-11-02", Opponent: "BOS", Player: "B", Points: provider.Int(8)},
	}
	results := []provider.TeamGameRecord{
		{GameDate: "2024-11-02", Opponent: "BOS", TeamPoints: 110, OpponentPoints: 104},
		{GameDate: "2024-11-01", Opponent: "NYK", TeamPoints: 99, OpponentPoints: 101},
	}
	return aggregate.Build(records, results)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", FileName("Test Team", "2024-25", "nba"))
	require.NoError(t, Write(path, sampleTables()))

	b, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Team", b.Team)
	assert.Equal(t, "2024-25", b.Season)

	points := b.Tables.Table(provider.StatPoints)
	assert.Equal(t, []string{"A", "B"}, points.Players)
	require.Len(t, points.Rows, 2)
	assert.Equal(t, "2024-11-01", points.Rows[0].GameDate)
	assert.Equal(t, "NYK", points.Rows[0].Opponent)
	assert.Equal(t, 12.0, points.Rows[0].Cells[0].Value)
	// Absent cells are written as zero and read back as recorded zeros.
	assert.Equal(t, aggregate.Cell{Value: 0, Present: true}, points.Rows[0].Cells[1])
	assert.Equal(t, 8.0, points.Rows[1].Cells[1].Value)

	avgs := b.Tables.Averages[provider.StatPoints]
	require.Len(t, avgs, 2)
	assert.Equal(t, "A", avgs[0].Player)
	assert.InDelta(t, 16.0, avgs[0].Average, 1e-9)

	assert.Equal(t, []string{"A"}, b.Tables.Table(provider.StatAssists).Players)

	require.True(t, b.HasTeamPoints())
	assert.Equal(t, provider.TeamGameRecord{GameDate: "2024-11-01", Opponent: "NYK", TeamPoints: 99, OpponentPoints: 101}, b.Tables.Team[0])
}

func TestWriteRead_KeepsUndatedGames(t *testing.T) {
	records := []provider.GameStatRecord{
		{GameDate: "", Opponent: "DUKE", Player: "A", Points: provider.Int(14)},
		{GameDate: "2024-11-05", Opponent: "UNC", Player: "A", Points: provider.Int(9)},
	}
	results := []provider.TeamGameRecord{
		{GameDate: "", Opponent: "DUKE", TeamPoints: 70, OpponentPoints: 65},
	}
	tables := aggregate.Build(records, results)
	require.Len(t, tables.Table(provider.StatPoints).Rows, 2)

	path := filepath.Join(t.TempDir(), FileName("Test Team", "2024-25", "ncaam"))
	require.NoError(t, Write(path, tables))

	b, err := Read(path)
	require.NoError(t, err)
	points := b.Tables.Table(provider.StatPoints)
	require.Len(t, points.Rows, 2)
	assert.Equal(t, "", points.Rows[0].GameDate)
	assert.Equal(t, "DUKE", points.Rows[0].Opponent)
	assert.Equal(t, 14.0, points.Rows[0].Cells[0].Value)
	assert.Equal(t, "2024-11-05", points.Rows[1].GameDate)

	require.Len(t, b.Tables.Team, 1)
	assert.Equal(t, provider.TeamGameRecord{Opponent: "DUKE", TeamPoints: 70, OpponentPoints: 65}, b.Tables.Team[0])
}

func TestWrite_SheetOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book_stats.xlsx")
	require.NoError(t, Write(path, sampleTables()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"Points", "Assists", "Rebounds", "3PM",
		"Avg Points", "Avg Assists", "Avg Rebounds", "Avg 3PM",
		"Team Points",
	}, f.GetSheetList())

	rows, err := f.GetRows("Team Points")
	require.NoError(t, err)
	assert.Equal(t, []string{"Game Time (PST)", "Opponent", "Team Points", "Opponent Points", "Game Total Points"}, rows[0])
	assert.Equal(t, "214", rows[2][4])
}

func TestWrite_NoTeamSheetWithoutResults(t *testing.T) {
	tables := sampleTables()
	tables.Team = nil
	path := filepath.Join(t.TempDir(), "book_stats.xlsx")
	require.NoError(t, Write(path, tables))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.NotContains(t, f.GetSheetList(), SheetTeamPoints)
}

func TestWrite_EmptyPointsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty_stats.xlsx")
	err := Write(path, aggregate.Build(nil, nil))
	assert.ErrorIs(t, err, ErrNoGames)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRead_MissingSheetsArePlaceholders(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Points"))
	require.NoError(t, f.SetSheetRow("Points", "A1", &[]interface{}{"Game Date", "Opponent", "A"}))
	require.NoError(t, f.SetSheetRow("Points", "A2", &[]interface{}{"2024-01-01", "X", 14}))
	require.NoError(t, f.SetSheetRow("Points", "A3", &[]interface{}{"2024-01-03", "Y"}))
	_, err := f.NewSheet("Avg Points")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Avg Points", "A1", &[]interface{}{"Player", "Mean"}))
	require.NoError(t, f.SetSheetRow("Avg Points", "A2", &[]interface{}{"A", 14.5}))

	path := filepath.Join(t.TempDir(), "Old_2023-24_stats.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	b, err := Read(path)
	require.NoError(t, err)

	points := b.Tables.Table(provider.StatPoints)
	require.Len(t, points.Rows, 2)
	assert.Equal(t, aggregate.Cell{Value: 14, Present: true}, points.Rows[0].Cells[0])
	assert.False(t, points.Rows[1].Cells[0].Present)

	// Unknown value header falls back to the last column.
	require.Len(t, b.Tables.Averages[provider.StatPoints], 1)
	assert.Equal(t, 14.5, b.Tables.Averages[provider.StatPoints][0].Average)

	assert.True(t, b.Tables.Table(provider.StatRebounds).Empty())
	assert.Empty(t, b.Tables.Averages[provider.StatThrees])
	assert.False(t, b.HasTeamPoints())
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope_stats.xlsx"))
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"Duke_2024-25_ncaam_stats.xlsx",
		"Boston_Celtics_2024-25_stats.xlsx",
		"Atlanta_Hawks_2024-25_nba_stats.xlsx",
		"~$Boston_Celtics_2024-25_stats.xlsx",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	all, err := List(dir)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Atlanta Hawks", all[0].Team)
	assert.Equal(t, "Boston Celtics", all[1].Team)

	nba, err := ListSport(dir, "NBA")
	require.NoError(t, err)
	assert.Len(t, nba, 2)

	_, ok := Lookup(dir, "NCAAM", "Duke_2024-25_ncaam_stats.xlsx")
	assert.True(t, ok)
	_, ok = Lookup(dir, "NBA", "Duke_2024-25_ncaam_stats.xlsx")
	assert.False(t, ok)
	_, ok = Lookup(dir, "NCAAM", "../Duke_2024-25_ncaam_stats.xlsx")
	assert.False(t, ok)

	missing, err := List(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}
