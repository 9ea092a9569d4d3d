package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxsports/datahub/internal/provider"
)

func rec(date, opp, player string, pts *int) provider.GameStatRecord {
	return provider.GameStatRecord{GameDate: date, Opponent: opp, Player: player, Points: pts}
}

var p = provider.Int

func TestPivot(t *testing.T) {
	records := []provider.GameStatRecord{
		rec("2024-11-08", "BOS", "Reaves", p(14)),
		rec("2024-11-01", "DEN", "James", p(20)),
		rec("2024-11-01", "DEN", "Reaves", p(11)),
		rec("2024-11-08", "BOS", "James", p(25)),
		rec("2024-11-04", "MIN", "James", p(30)),
	}

	table := Pivot(records, provider.StatPoints)

	assert.Equal(t, []string{"Reaves", "James"}, table.Players, "first-appearance order")
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "2024-11-01", table.Rows[0].GameDate)
	assert.Equal(t, "2024-11-04", table.Rows[1].GameDate)
	assert.Equal(t, "2024-11-08", table.Rows[2].GameDate)

	mid := table.Rows[1]
	assert.False(t, mid.Cells[0].Present, "Reaves did not play MIN")
	assert.Equal(t, 0.0, mid.Cells[0].Float())
	assert.Equal(t, Cell{Value: 30, Present: true}, mid.Cells[1])
}

func TestPivot_DatesNonDecreasing(t *testing.T) {
	records := []provider.GameStatRecord{
		rec("2025-01-03", "A", "x", p(1)),
		rec("2024-12-30", "B", "y", p(2)),
		rec("2025-01-01", "C", "x", p(3)),
		rec("2024-12-30", "A", "x", p(4)),
	}
	table := Pivot(records, provider.StatPoints)
	for i := 1; i < len(table.Rows); i++ {
		assert.LessOrEqual(t, table.Rows[i-1].GameDate, table.Rows[i].GameDate)
	}
	assert.Equal(t, "A", table.Rows[0].Opponent, "same date sorts by opponent")
}

func TestPivot_DuplicatesSum(t *testing.T) {
	records := []provider.GameStatRecord{
		rec("2024-11-01", "DEN", "James", p(10)),
		rec("2024-11-01", "DEN", "James", p(5)),
	}
	table := Pivot(records, provider.StatPoints)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 15.0, table.Rows[0].Cells[0].Value)
}

func TestPivot_EmptyOpponentTolerated(t *testing.T) {
	table := Pivot([]provider.GameStatRecord{rec("2024-11-01", "", "James", p(10))}, provider.StatPoints)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0].Opponent)
}

func TestPivot_AbsentValuesCreateNothing(t *testing.T) {
	records := []provider.GameStatRecord{
		rec("2024-11-01", "DEN", "James", nil),
	}
	table := Pivot(records, provider.StatPoints)
	assert.True(t, table.Empty())
	assert.Empty(t, table.Players)
}

func TestPivot_Empty(t *testing.T) {
	table := Pivot(nil, provider.StatAssists)
	assert.True(t, table.Empty())
	assert.Equal(t, provider.StatAssists, table.Stat)
	assert.Empty(t, SeasonAverages(nil, provider.StatAssists))
}

func TestPivot_Idempotent(t *testing.T) {
	records := []provider.GameStatRecord{
		rec("2024-11-08", "BOS", "Reaves", p(14)),
		rec("2024-11-01", "DEN", "James", p(20)),
	}
	assert.Equal(t, Pivot(records, provider.StatPoints), Pivot(records, provider.StatPoints))
	assert.Equal(t, SeasonAverages(records, provider.StatPoints), SeasonAverages(records, provider.StatPoints))
}

func TestSeasonAverages_AbsentGamesExcluded(t *testing.T) {
	// Player A: [10, absent, 20] -> 15, not 10.
	records := []provider.GameStatRecord{
		rec("2024-11-01", "X", "A", p(10)),
		rec("2024-11-02", "Y", "B", p(8)),
		rec("2024-11-03", "Z", "A", p(20)),
		rec("2024-11-03", "Z", "B", p(8)),
	}
	avgs := SeasonAverages(records, provider.StatPoints)
	require.Len(t, avgs, 2)
	assert.Equal(t, SeasonAverage{Player: "A", Average: 15, Games: 2}, avgs[0])
	assert.Equal(t, SeasonAverage{Player: "B", Average: 8, Games: 2}, avgs[1])

	// The wide table still materializes the missing game as zero.
	col := Pivot(records, provider.StatPoints).Column("A")
	require.Len(t, col, 3)
	assert.Equal(t, 0.0, col[1].Float())
}

func TestSeasonAverages_TiesKeepNameOrder(t *testing.T) {
	records := []provider.GameStatRecord{
		rec("d", "o", "Zed", p(10)),
		rec("d", "o", "Amy", p(10)),
		rec("d", "o", "Max", p(12)),
	}
	avgs := SeasonAverages(records, provider.StatPoints)
	names := []string{avgs[0].Player, avgs[1].Player, avgs[2].Player}
	assert.Equal(t, []string{"Max", "Amy", "Zed"}, names)
}

func TestTeamTotals(t *testing.T) {
	in := []provider.TeamGameRecord{
		{GameDate: "2024-11-10", Opponent: "B", TeamPoints: 70, OpponentPoints: 65},
		{GameDate: "2024-11-02", Opponent: "A", TeamPoints: 80, OpponentPoints: 81},
	}
	out := TeamTotals(in)
	assert.Equal(t, "2024-11-02", out[0].GameDate)
	assert.Equal(t, 161, out[0].Total())
	assert.Equal(t, "2024-11-10", in[0].GameDate, "input is not reordered")
}

func TestBuild(t *testing.T) {
	records := []provider.GameStatRecord{
		{GameDate: "2024-11-01", Opponent: "DEN", Player: "James", Points: p(20), Assists: p(9), Rebounds: p(7), Threes: p(2)},
	}
	tables := Build(records, nil)
	for _, s := range provider.AllStats {
		assert.False(t, tables.Table(s).Empty(), s)
		assert.Len(t, tables.Averages[s], 1)
	}
	assert.Nil(t, tables.Team)
	assert.True(t, Tables{}.Table(provider.StatPoints).Empty())
}

func TestSummarize(t *testing.T) {
	results := []provider.TeamGameRecord{
		{GameDate: "2024-11-01", Opponent: "A", TeamPoints: 80, OpponentPoints: 70},
		{GameDate: "2024-11-05", Opponent: "B", TeamPoints: 90, OpponentPoints: 95},
		{GameDate: "2024-11-09", Opponent: "C", TeamPoints: 100, OpponentPoints: 85},
		{GameDate: "2024-11-12", Opponent: "D", TeamPoints: 60, OpponentPoints: 60},
	}
	s := Summarize(results)
	assert.Equal(t, 4, s.Games)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.InDelta(t, 82.5, s.AvgTeamPoints, 1e-9)
	assert.InDelta(t, 77.5, s.AvgOppPoints, 1e-9)
	assert.InDelta(t, 160.0, s.AvgTotalPoints, 1e-9)
	require.NotNil(t, s.HighestScoring)
	assert.Equal(t, "B", s.HighestScoring.Opponent, "first of the tied 185-point games")

	assert.Equal(t, Tie, OutcomeOf(results[3]))
	assert.Nil(t, Summarize(nil).HighestScoring)
}
