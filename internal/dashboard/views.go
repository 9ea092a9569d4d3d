// Package dashboard turns loaded workbooks into the view models rendered by
// the web dashboard: highlighted stat tables, the team totals view, and
// trend and 100%er chip lists.
package dashboard

import (
	"fmt"
	"strconv"

	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/trend"
)

// Chart is line chart data: one label per game, one series per line.
type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// Series is one chart line. Nil points are gaps.
type Series struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

// ---------------------------------------------------------------------------
// Player stat view
// ---------------------------------------------------------------------------

type StatCell struct {
	Text      string
	Highlight bool
}

type StatRow struct {
	Date     string
	Opponent string
	Cells    []StatCell
}

type AverageRow struct {
	Player  string
	Average string
}

// StatView is one player stat sheet with the chosen players.
type StatView struct {
	Stat      provider.Stat
	Icon      string
	Highlight Highlight
	Players   []string
	Selected  []string
	Rows      []StatRow
	Chart     Chart
	Averages  []AverageRow
}

// IsSelected reports whether player is shown.
func (v StatView) IsSelected(player string) bool {
	for _, p := range v.Selected {
		if p == player {
			return true
		}
	}
	return false
}

// NewStatView builds the view of a wide table. A nil selection shows every
// player; an empty one shows only the date and opponent columns.
func NewStatView(t aggregate.WideTable, avgs []aggregate.SeasonAverage, selected []string) StatView {
	v := StatView{
		Stat:      t.Stat,
		Icon:      statIcons[t.Stat],
		Highlight: HighlightFor(t.Stat),
		Players:   t.Players,
	}

	var cols []int
	if selected == nil {
		v.Selected = t.Players
		for i := range t.Players {
			cols = append(cols, i)
		}
	} else {
		want := make(map[string]bool, len(selected))
		for _, p := range selected {
			want[p] = true
		}
		v.Selected = []string{}
		for i, p := range t.Players {
			if want[p] {
				v.Selected = append(v.Selected, p)
				cols = append(cols, i)
			}
		}
	}

	limit := float64(v.Highlight.Threshold)
	v.Chart.Series = make([]Series, len(cols))
	for i, c := range cols {
		v.Chart.Series[i] = Series{Name: t.Players[c]}
	}
	for _, r := range t.Rows {
		row := StatRow{Date: r.GameDate, Opponent: r.Opponent, Cells: make([]StatCell, len(cols))}
		v.Chart.Labels = append(v.Chart.Labels, r.GameDate)
		for i, c := range cols {
			var cell aggregate.Cell
			if c < len(r.Cells) {
				cell = r.Cells[c]
			}
			if !cell.Present {
				v.Chart.Series[i].Values = append(v.Chart.Series[i].Values, nil)
				continue
			}
			val := cell.Value
			row.Cells[i] = StatCell{Text: formatNumber(val), Highlight: val >= limit}
			v.Chart.Series[i].Values = append(v.Chart.Series[i].Values, &val)
		}
		v.Rows = append(v.Rows, row)
	}

	for _, a := range avgs {
		v.Averages = append(v.Averages, AverageRow{Player: a.Player, Average: fmt.Sprintf("%.2f", a.Average)})
	}
	return v
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ---------------------------------------------------------------------------
// Team totals view
// ---------------------------------------------------------------------------

type TeamRow struct {
	Date     string
	Opponent string
	Our      int
	Their    int
	Total    int
	Outcome  aggregate.Outcome
	Colors
}

// TeamView is the team scores page.
type TeamView struct {
	Empty    bool
	AvgOur   string
	AvgTheir string
	AvgTotal string
	Firework *TeamRow
	Rows     []TeamRow
	Chart    Chart
}

// NewTeamView builds the team totals view, games in date order.
func NewTeamView(games []provider.TeamGameRecord) TeamView {
	games = aggregate.TeamTotals(games)
	if len(games) == 0 {
		return TeamView{Empty: true}
	}

	s := aggregate.Summarize(games)
	v := TeamView{
		AvgOur:   fmt.Sprintf("%.1f", s.AvgTeamPoints),
		AvgTheir: fmt.Sprintf("%.1f", s.AvgOppPoints),
		AvgTotal: fmt.Sprintf("%.1f", s.AvgTotalPoints),
	}

	our := Series{Name: "Team Points"}
	their := Series{Name: "Opponent Points"}
	total := Series{Name: "Game Total Points"}
	for _, g := range games {
		o := aggregate.OutcomeOf(g)
		v.Rows = append(v.Rows, TeamRow{
			Date:     g.GameDate,
			Opponent: g.Opponent,
			Our:      g.TeamPoints,
			Their:    g.OpponentPoints,
			Total:    g.Total(),
			Outcome:  o,
			Colors:   outcomeColors[o],
		})
		v.Chart.Labels = append(v.Chart.Labels, g.GameDate)
		our.Values = append(our.Values, floatPtr(g.TeamPoints))
		their.Values = append(their.Values, floatPtr(g.OpponentPoints))
		total.Values = append(total.Values, floatPtr(g.Total()))
	}
	v.Chart.Series = []Series{our, their, total}

	if h := s.HighestScoring; h != nil {
		for i := range v.Rows {
			if v.Rows[i].Date == h.GameDate && v.Rows[i].Opponent == h.Opponent && v.Rows[i].Total == h.Total() {
				row := v.Rows[i]
				v.Firework = &row
				break
			}
		}
	}
	return v
}

func floatPtr(n int) *float64 {
	f := float64(n)
	return &f
}

// ---------------------------------------------------------------------------
// Chip lists
// ---------------------------------------------------------------------------

// Chip is one trend or 100%er line.
type Chip struct {
	Team  string // logo lookup
	Label string
	Colors
	Rate string
	Meta string
}

// ChipGroup is the chips sharing one threshold.
type ChipGroup struct {
	Header string
	Color  string
	Chips  []Chip
}

// ChipSection is one stat tab of the Quick Bets or 100%ers view.
type ChipSection struct {
	Stat   provider.Stat
	Icon   string
	Title  string
	Total  int
	Shown  int
	Min    int
	Max    int
	Groups []ChipGroup
}

// Adjustable reports whether the shown count can be changed.
func (s ChipSection) Adjustable() bool {
	return s.Total > trend.MinShown && s.Max > s.Min
}

func newSection(stat provider.Stat, title string, total, requested, def, limit int) ChipSection {
	return ChipSection{
		Stat:  stat,
		Icon:  statIcons[stat],
		Title: title,
		Total: total,
		Shown: trend.TopN(total, requested, def, limit),
		Min:   trend.MinShown,
		Max:   min(limit, total),
	}
}

// TrendSection renders a team's trends for one stat. requested is the
// wanted chip count, zero for the default.
func TrendSection(stat provider.Stat, entries []trend.Entry, team string, requested int) ChipSection {
	s := newSection(stat, fmt.Sprintf("Hottest %s Props", stat), len(entries), requested,
		trend.TrendsDefaultShown, trend.TrendsMaxShown)

	for _, g := range trend.GroupByThreshold(entries[:s.Shown], func(e trend.Entry) int { return e.Threshold }) {
		group := ChipGroup{Header: trend.Prop(g.Threshold, stat), Color: HeaderColor(stat, g.Threshold)}
		for _, e := range g.Items {
			group.Chips = append(group.Chips, Chip{
				Team:   team,
				Label:  e.Player + " " + e.Prop,
				Colors: ChipColors(stat, e.Threshold),
				Rate:   fmt.Sprintf("%.1f%% hit rate", e.HitPercentage),
				Meta:   fmt.Sprintf("(%d/%d games, best streak %d)", e.TotalGamesHit, e.TotalGames, e.LongestStreak),
			})
		}
		s.Groups = append(s.Groups, group)
	}
	return s
}

// PerfectSection renders 100%ers gathered across teams for one stat.
func PerfectSection(stat provider.Stat, perfects []trend.Perfect, requested int) ChipSection {
	s := newSection(stat, fmt.Sprintf("Perfect %s Props", stat), len(perfects), requested,
		trend.PerfectsDefaultShown, trend.PerfectsMaxShown)

	for _, g := range trend.GroupByThreshold(perfects[:s.Shown], func(p trend.Perfect) int { return p.Threshold }) {
		group := ChipGroup{Header: trend.Prop(g.Threshold, stat), Color: HeaderColor(stat, g.Threshold)}
		for _, p := range g.Items {
			group.Chips = append(group.Chips, Chip{
				Team:   p.Team,
				Label:  fmt.Sprintf("(%s) %s %s", p.Team, p.Player, p.Prop),
				Colors: ChipColors(stat, p.Threshold),
				Rate:   fmt.Sprintf("%.0f%% hit rate", p.HitPercentage),
				Meta:   fmt.Sprintf("(%d/%d games)", p.TotalGames, p.TotalGames),
			})
		}
		s.Groups = append(s.Groups, group)
	}
	return s
}
