// Package provider defines canonical data types that all stat providers
// normalize into. These structs are the contract between provider adapters
// and the aggregation engine: adapters output these, the engine never sees a
// provider-specific field name.
//
// Adding a new provider means implementing Source. Aggregation, trends and
// the workbook format never change.
package provider

// Team is the canonical team identity listed by a provider for a season.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname,omitempty"`
	City         string `json:"city,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	// Slug is a provider-local lookup key (e.g. a sports-reference school path).
	Slug string `json:"slug,omitempty"`
}

// GameStatRecord is one player's line for one game, in long format.
//
// Stat fields are nil when the provider did not report the stat at all.
// A nil value is "not recorded", not zero: averages skip it and only the wide
// table materialization resolves it to zero.
type GameStatRecord struct {
	GameDate string `json:"game_date"` // YYYY-MM-DD
	Opponent string `json:"opponent"`
	Player   string `json:"player"`
	Points   *int   `json:"points,omitempty"`
	Assists  *int   `json:"assists,omitempty"`
	Rebounds *int   `json:"rebounds,omitempty"`
	Threes   *int   `json:"threes_made,omitempty"`
}

// Value returns the record's value for a stat category.
func (r GameStatRecord) Value(s Stat) *int {
	switch s {
	case StatPoints:
		return r.Points
	case StatAssists:
		return r.Assists
	case StatRebounds:
		return r.Rebounds
	case StatThrees:
		return r.Threes
	}
	return nil
}

// TeamGameRecord is the final score of one game from the team's side.
type TeamGameRecord struct {
	GameDate       string `json:"game_date"`
	Opponent       string `json:"opponent"`
	TeamPoints     int    `json:"team_points"`
	OpponentPoints int    `json:"opponent_points"`
}

// Total returns the combined score of both teams.
func (r TeamGameRecord) Total() int {
	return r.TeamPoints + r.OpponentPoints
}

// Stat is a tracked per-player stat category. The string value doubles as
// the workbook sheet name.
type Stat string

const (
	StatPoints   Stat = "Points"
	StatAssists  Stat = "Assists"
	StatRebounds Stat = "Rebounds"
	StatThrees   Stat = "3PM"
)

// AllStats lists the stat categories in export order.
var AllStats = []Stat{StatPoints, StatAssists, StatRebounds, StatThrees}

// ParseStat maps a loose name ("points", "3pm", "threes") to a Stat.
func ParseStat(s string) (Stat, bool) {
	switch s {
	case "points", "Points", "pts":
		return StatPoints, true
	case "assists", "Assists", "ast":
		return StatAssists, true
	case "rebounds", "Rebounds", "reb":
		return StatRebounds, true
	case "3pm", "3PM", "threes", "fg3m":
		return StatThrees, true
	}
	return "", false
}

// AverageHeader is the value column name of the stat's average sheet.
func (s Stat) AverageHeader() string {
	return "Avg " + string(s)
}

// Slug is the lowercase URL form of the stat.
func (s Stat) Slug() string {
	if s == StatThrees {
		return "3pm"
	}
	b := []byte(s)
	if len(b) > 0 && b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
