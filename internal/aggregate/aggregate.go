// Package aggregate reshapes long-format game records into the wide
// per-game tables, season averages and team totals that make up a team
// workbook.
//
// Absent values stay absent until materialization: a player with no record
// for a game has no cell, averages skip it, and only Cell.Float resolves it
// to zero.
package aggregate

import (
	"sort"

	"github.com/luxsports/datahub/internal/provider"
)

// Cell is one player's value for one game.
type Cell struct {
	Value   float64
	Present bool
}

// Float materializes the cell, treating an absent value as zero.
func (c Cell) Float() float64 {
	if !c.Present {
		return 0
	}
	return c.Value
}

// Row is one game. Cells align with WideTable.Players.
type Row struct {
	GameDate string
	Opponent string
	Cells    []Cell
}

// WideTable is games x players for one stat.
type WideTable struct {
	Stat    provider.Stat
	Players []string
	Rows    []Row
}

// Empty reports whether the table has no game rows.
func (t WideTable) Empty() bool {
	return len(t.Rows) == 0
}

// PlayerIndex returns the column of player, or -1.
func (t WideTable) PlayerIndex(player string) int {
	for i, p := range t.Players {
		if p == player {
			return i
		}
	}
	return -1
}

// Column returns a player's cells in row order, or nil if the player is not
// in the table.
func (t WideTable) Column(player string) []Cell {
	idx := t.PlayerIndex(player)
	if idx < 0 {
		return nil
	}
	out := make([]Cell, len(t.Rows))
	for i, r := range t.Rows {
		if idx < len(r.Cells) {
			out[i] = r.Cells[idx]
		}
	}
	return out
}

type gameKey struct {
	date     string
	opponent string
}

// Pivot groups records by (date, opponent, player) and sums the stat.
// Duplicate rows add up. Rows are sorted by date then opponent; players
// appear in the order they are first seen. Records without a value for the
// stat contribute nothing.
func Pivot(records []provider.GameStatRecord, stat provider.Stat) WideTable {
	t := WideTable{Stat: stat}

	colIdx := make(map[string]int)
	rowIdx := make(map[gameKey]int)
	var sums []map[int]float64

	for _, r := range records {
		v := r.Value(stat)
		if v == nil {
			continue
		}
		ci, ok := colIdx[r.Player]
		if !ok {
			ci = len(t.Players)
			colIdx[r.Player] = ci
			t.Players = append(t.Players, r.Player)
		}
		k := gameKey{r.GameDate, r.Opponent}
		ri, ok := rowIdx[k]
		if !ok {
			ri = len(t.Rows)
			rowIdx[k] = ri
			t.Rows = append(t.Rows, Row{GameDate: k.date, Opponent: k.opponent})
			sums = append(sums, make(map[int]float64))
		}
		sums[ri][ci] += float64(*v)
	}

	for i := range t.Rows {
		cells := make([]Cell, len(t.Players))
		for ci, v := range sums[i] {
			cells[ci] = Cell{Value: v, Present: true}
		}
		t.Rows[i].Cells = cells
	}

	SortRows(t.Rows)
	return t
}

// SortRows orders rows by date then opponent, keeping ties stable.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].GameDate != rows[j].GameDate {
			return rows[i].GameDate < rows[j].GameDate
		}
		return rows[i].Opponent < rows[j].Opponent
	})
}

// SeasonAverage is a player's mean over the games where the stat was
// recorded.
type SeasonAverage struct {
	Player  string  `json:"player"`
	Average float64 `json:"average"`
	Games   int     `json:"games"`
}

// SeasonAverages computes per-player means over recorded values only, best
// first. Equal averages keep player-name order.
func SeasonAverages(records []provider.GameStatRecord, stat provider.Stat) []SeasonAverage {
	type acc struct {
		sum float64
		n   int
	}
	byPlayer := make(map[string]*acc)
	for _, r := range records {
		v := r.Value(stat)
		if v == nil {
			continue
		}
		a, ok := byPlayer[r.Player]
		if !ok {
			a = &acc{}
			byPlayer[r.Player] = a
		}
		a.sum += float64(*v)
		a.n++
	}

	players := make([]string, 0, len(byPlayer))
	for p := range byPlayer {
		players = append(players, p)
	}
	sort.Strings(players)

	out := make([]SeasonAverage, 0, len(players))
	for _, p := range players {
		a := byPlayer[p]
		out = append(out, SeasonAverage{Player: p, Average: a.sum / float64(a.n), Games: a.n})
	}
	SortAverages(out)
	return out
}

// SortAverages orders averages descending, keeping ties stable.
func SortAverages(avgs []SeasonAverage) {
	sort.SliceStable(avgs, func(i, j int) bool {
		return avgs[i].Average > avgs[j].Average
	})
}

// TeamTotals returns a copy of results sorted by game date.
func TeamTotals(results []provider.TeamGameRecord) []provider.TeamGameRecord {
	out := make([]provider.TeamGameRecord, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GameDate < out[j].GameDate
	})
	return out
}

// Tables is everything written to one team workbook.
type Tables struct {
	Wide     map[provider.Stat]WideTable
	Averages map[provider.Stat][]SeasonAverage
	Team     []provider.TeamGameRecord
}

// Table returns the wide table for stat, or an empty one.
func (t Tables) Table(stat provider.Stat) WideTable {
	if w, ok := t.Wide[stat]; ok {
		return w
	}
	return WideTable{Stat: stat}
}

// Build computes every table for a team season.
func Build(records []provider.GameStatRecord, results []provider.TeamGameRecord) Tables {
	t := Tables{
		Wide:     make(map[provider.Stat]WideTable, len(provider.AllStats)),
		Averages: make(map[provider.Stat][]SeasonAverage, len(provider.AllStats)),
	}
	for _, s := range provider.AllStats {
		t.Wide[s] = Pivot(records, s)
		t.Averages[s] = SeasonAverages(records, s)
	}
	if len(results) > 0 {
		t.Team = TeamTotals(results)
	}
	return t
}
