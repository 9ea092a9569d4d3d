package aggregate

import (
	"github.com/montanaflynn/stats"

	"github.com/luxsports/datahub/internal/provider"
)

// Outcome of a game from the team's side.
type Outcome string

const (
	Win  Outcome = "win"
	Loss Outcome = "loss"
	Tie  Outcome = "tie"
)

// OutcomeOf compares the two scores.
func OutcomeOf(r provider.TeamGameRecord) Outcome {
	switch {
	case r.TeamPoints > r.OpponentPoints:
		return Win
	case r.TeamPoints < r.OpponentPoints:
		return Loss
	}
	return Tie
}

// TeamSummary is the headline block of the team totals view.
type TeamSummary struct {
	Games          int                      `json:"games"`
	Wins           int                      `json:"wins"`
	Losses         int                      `json:"losses"`
	AvgTeamPoints  float64                  `json:"avg_team_points"`
	AvgOppPoints   float64                  `json:"avg_opponent_points"`
	AvgTotalPoints float64                  `json:"avg_total_points"`
	HighestScoring *provider.TeamGameRecord `json:"highest_scoring,omitempty"`
}

// Summarize computes averages, the win/loss record and the highest-scoring
// game. The first game wins ties for highest scoring.
func Summarize(results []provider.TeamGameRecord) TeamSummary {
	s := TeamSummary{Games: len(results)}
	if len(results) == 0 {
		return s
	}
	team := make(stats.Float64Data, 0, len(results))
	opp := make(stats.Float64Data, 0, len(results))
	total := make(stats.Float64Data, 0, len(results))
	best := 0
	for i, r := range results {
		team = append(team, float64(r.TeamPoints))
		opp = append(opp, float64(r.OpponentPoints))
		total = append(total, float64(r.Total()))
		switch OutcomeOf(r) {
		case Win:
			s.Wins++
		case Loss:
			s.Losses++
		}
		if r.Total() > results[best].Total() {
			best = i
		}
	}
	// Mean only fails on empty input, ruled out above.
	s.AvgTeamPoints, _ = team.Mean()
	s.AvgOppPoints, _ = opp.Mean()
	s.AvgTotalPoints, _ = total.Mean()
	top := results[best]
	s.HighestScoring = &top
	return s
}
