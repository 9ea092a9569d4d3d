package dashboard

import (
	"net/url"

	"github.com/luxsports/datahub/internal/provider"
)

// File page views.
const (
	ViewTeam     = "team"
	ViewTrends   = "trends"
	ViewPerfects = "perfects"
)

var viewLabels = []struct {
	key, label string
}{
	{provider.StatPoints.Slug(), "Player Points"},
	{provider.StatAssists.Slug(), "Player Assists"},
	{provider.StatRebounds.Slug(), "Player Rebounds"},
	{provider.StatThrees.Slug(), "Player 3PM"},
	{ViewTeam, "Team Totals"},
	{ViewTrends, "Quick Bets"},
	{ViewPerfects, "100%ers"},
}

// ViewStat maps a view key to its stat, if it is a player view.
func ViewStat(view string) (provider.Stat, bool) {
	for _, s := range provider.AllStats {
		if s.Slug() == view {
			return s, true
		}
	}
	return "", false
}

// ViewLinks builds the view switcher of a file page. The 100%ers view
// spans every file of the sport, so it links to the sport-wide page.
func ViewLinks(sport, file, current string) []ViewLink {
	base := "/sports/" + url.PathEscape(sport) + "/files/" + url.PathEscape(file)
	links := make([]ViewLink, 0, len(viewLabels))
	for _, v := range viewLabels {
		href := base + "?view=" + v.key
		if v.key == ViewPerfects {
			href = "/sports/" + url.PathEscape(sport) + "/perfects"
		}
		links = append(links, ViewLink{Label: v.label, Href: href, Current: v.key == current})
	}
	return links
}
