package trend

import (
	"sort"

	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/provider"
)

// Perfect is a prop a player hit in every game they played.
type Perfect struct {
	Player        string        `json:"player"`
	Team          string        `json:"team"`
	Stat          provider.Stat `json:"stat"`
	Threshold     int           `json:"threshold"`
	Prop          string        `json:"prop"`
	TotalGames    int           `json:"total_games"`
	HitPercentage float64       `json:"hit_percentage"`
}

// Perfects finds props hit in every game a player has a recorded value for.
// Unlike Compute, absent cells are not games. Results are ordered by games
// played descending, then threshold ascending.
func Perfects(t aggregate.WideTable, thresholds []int, team string) []Perfect {
	rows := byDate(t)

	var out []Perfect
	for col, player := range t.Players {
		var series []float64
		for _, r := range rows {
			if col < len(r.Cells) && r.Cells[col].Present {
				series = append(series, r.Cells[col].Value)
			}
		}
		games := len(series)
		if games == 0 {
			continue
		}

		for _, th := range thresholds {
			hits := 0
			for _, v := range series {
				if v >= float64(th) {
					hits++
				}
			}
			if hits != games {
				continue
			}
			out = append(out, Perfect{
				Player:        player,
				Team:          team,
				Stat:          t.Stat,
				Threshold:     th,
				Prop:          Prop(th, t.Stat),
				TotalGames:    games,
				HitPercentage: 100,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalGames != out[j].TotalGames {
			return out[i].TotalGames > out[j].TotalGames
		}
		return out[i].Threshold < out[j].Threshold
	})
	return out
}

// SortPerfects orders perfects gathered across teams: games played
// descending, then threshold, team and player ascending.
func SortPerfects(ps []Perfect) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.TotalGames != b.TotalGames {
			return a.TotalGames > b.TotalGames
		}
		if a.Threshold != b.Threshold {
			return a.Threshold < b.Threshold
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.Player < b.Player
	})
}
