// Package trend finds threshold props in a wide stat table: hit streaks of
// at least MinStreak games, and "perfect" props hit in every game played.
package trend

import (
	"fmt"
	"sort"

	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/provider"
)

// MinStreak is the shortest streak reported as a trend.
const MinStreak = 3

// Entry is a player's record against one threshold.
type Entry struct {
	Player        string        `json:"player"`
	Stat          provider.Stat `json:"stat"`
	Threshold     int           `json:"threshold"`
	Prop          string        `json:"prop"`
	TotalGamesHit int           `json:"total_games_hit"`
	LongestStreak int           `json:"longest_streak"`
	TotalGames    int           `json:"total_games"`
	HitPercentage float64       `json:"hit_percentage"`
}

// Prop renders a threshold as "20+ Points".
func Prop(threshold int, stat provider.Stat) string {
	return fmt.Sprintf("%d+ %s", threshold, stat)
}

// byDate returns the table rows ordered by game date, ties kept in place.
func byDate(t aggregate.WideTable) []aggregate.Row {
	rows := make([]aggregate.Row, len(t.Rows))
	copy(rows, t.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GameDate < rows[j].GameDate
	})
	return rows
}

// Compute scans every player column against every threshold. Every row
// counts as a game and absent cells count as zero. A value hits when it is
// at least the threshold; a miss resets the running streak. Entries with a
// longest streak below MinStreak are dropped.
//
// Results are ordered by hit percentage, then longest streak, then hits,
// all descending, with ties in player/threshold order.
func Compute(t aggregate.WideTable, thresholds []int) []Entry {
	rows := byDate(t)
	total := len(rows)
	if total == 0 {
		return nil
	}

	var out []Entry
	for col, player := range t.Players {
		series := make([]float64, total)
		for i, r := range rows {
			if col < len(r.Cells) {
				series[i] = r.Cells[col].Float()
			}
		}

		for _, th := range thresholds {
			hits, longest, current := 0, 0, 0
			limit := float64(th)
			for _, v := range series {
				if v >= limit {
					hits++
					current++
					if current > longest {
						longest = current
					}
				} else {
					current = 0
				}
			}
			if longest < MinStreak {
				continue
			}
			out = append(out, Entry{
				Player:        player,
				Stat:          t.Stat,
				Threshold:     th,
				Prop:          Prop(th, t.Stat),
				TotalGamesHit: hits,
				LongestStreak: longest,
				TotalGames:    total,
				HitPercentage: float64(hits) / float64(total) * 100,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HitPercentage != b.HitPercentage {
			return a.HitPercentage > b.HitPercentage
		}
		if a.LongestStreak != b.LongestStreak {
			return a.LongestStreak > b.LongestStreak
		}
		return a.TotalGamesHit > b.TotalGamesHit
	})
	return out
}
