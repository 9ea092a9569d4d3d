package handler

import (
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/luxsports/datahub/internal/api/respond"
	"github.com/luxsports/datahub/internal/cache"
	"github.com/luxsports/datahub/internal/dashboard"
	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/trend"
	"github.com/luxsports/datahub/internal/workbook"
)

const (
	emptyTrends   = "No strong trends (3+ game streaks) found for this stat."
	emptyPerfects = "No players with a 100% hit rate on tracked props in your current data."
)

func (h *Handler) render(w http.ResponseWriter, name string, p dashboard.Page) {
	page, err := dashboard.Render(name, p)
	if err != nil {
		h.logger.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Could not render page", http.StatusInternalServerError)
		return
	}
	respond.WriteHTML(w, http.StatusOK, page)
}

// Index serves the sport tab overview at /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index", dashboard.Page{Tabs: dashboard.Tabs("")})
}

// SportPage lists the workbooks of one sport, or the placeholder card for
// sports without an exporter.
func (h *Handler) SportPage(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.sport(r)
	if !ok {
		h.notFound(w, true, "UNKNOWN_SPORT", "Unknown sport "+param(r, "sport"))
		return
	}
	p := dashboard.Page{Tabs: dashboard.Tabs(sc.ID), Sport: sc}
	if sc.Active {
		files, err := workbook.ListSport(h.cfg.DataDir, sc.ID)
		if err != nil {
			h.logger.Warn("failed to list workbooks", "dir", h.cfg.DataDir, "error", err)
		}
		p.Files = files
		p.Empty = "No Excel files found for " + sc.ID + " in " + h.cfg.DataDir + ". Run the exporter first."
	}
	h.render(w, "sport", p)
}

// FilePage shows one workbook. The view query parameter picks a player stat
// sheet, team totals or Quick Bets.
func (h *Handler) FilePage(w http.ResponseWriter, r *http.Request) {
	b, sc, ok := h.book(w, r, true)
	if !ok {
		return
	}
	q := r.URL.Query()
	view := q.Get("view")
	if view == "" {
		view = provider.StatPoints.Slug()
	}
	if view == dashboard.ViewPerfects {
		http.Redirect(w, r, "/sports/"+url.PathEscape(sc.ID)+"/perfects", http.StatusSeeOther)
		return
	}

	info := b.Info
	p := dashboard.Page{
		Tabs:  dashboard.Tabs(sc.ID),
		Sport: sc,
		File:  &info,
		Views: dashboard.ViewLinks(sc.ID, info.File, view),
	}

	if stat, ok := dashboard.ViewStat(view); ok {
		v := dashboard.NewStatView(b.Tables.Table(stat), b.Tables.Averages[stat], selection(q))
		p.Stat = &v
		h.render(w, "file", p)
		return
	}

	switch view {
	case dashboard.ViewTeam:
		v := dashboard.NewTeamView(b.Tables.Team)
		p.Team = &v
	case dashboard.ViewTrends:
		p.Heading = "⚡ Quick Bets – Trend Finder"
		p.Intro = "See which players are on fire for this team & season. Only props with at least a 3-game hit streak are shown."
		p.Empty = emptyTrends
		for _, stat := range provider.AllStats {
			entries := trend.Compute(b.Tables.Table(stat), h.cfg.Thresholds.For(stat))
			p.Sections = append(p.Sections, dashboard.TrendSection(stat, entries, info.Team, shown(q, stat)))
		}
	default:
		http.Error(w, "Unknown view "+view, http.StatusBadRequest)
		return
	}
	h.render(w, "file", p)
}

// PerfectsPage shows the 100%ers across every workbook of a sport.
func (h *Handler) PerfectsPage(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.sport(r)
	if !ok || !sc.Active {
		h.notFound(w, true, "UNKNOWN_SPORT", "Unknown sport "+param(r, "sport"))
		return
	}
	perfects, err := dashboard.Perfects(h.cfg.DataDir, sc.ID, h.cfg.Thresholds, h.logger)
	if err != nil {
		h.logger.Warn("failed to collect perfects", "sport", sc.ID, "error", err)
	}

	p := dashboard.Page{
		Tabs:    dashboard.Tabs(sc.ID),
		Sport:   sc,
		Heading: "💯 100%ers – Perfect Hit Rates",
		Intro:   "Players in your " + sc.ID + " files who have a 100% hit rate on any tracked prop.",
		Empty:   emptyPerfects,
	}
	q := r.URL.Query()
	for _, stat := range provider.AllStats {
		p.Sections = append(p.Sections, dashboard.PerfectSection(stat, perfects[stat], shown(q, stat)))
	}
	h.render(w, "perfects", p)
}

// Logo serves LOGO_DIR/<team>.png, kept in memory after the first read.
func (h *Handler) Logo(w http.ResponseWriter, r *http.Request) {
	team := param(r, "team")
	key := "logo:" + team

	if data, etag, ok := h.cache.Get(key); ok {
		respond.WritePNG(w, r, data, etag, cache.TTLProviderResponse, true)
		return
	}

	data, err := os.ReadFile(dashboard.LogoFile(h.cfg.LogoDir, team))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	etag := h.cache.Set(key, data, cache.TTLSession)
	respond.WritePNG(w, r, data, etag, cache.TTLProviderResponse, false)
}

// selection reads the players filter. Absent means every player; the
// picker form always sends an empty value so clearing every box shows none.
func selection(q url.Values) []string {
	values, ok := q["players"]
	if !ok {
		return nil
	}
	out := []string{}
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// shown reads the top_<stat> chip count; zero means the default.
func shown(q url.Values, stat provider.Stat) int {
	n, err := strconv.Atoi(q.Get("top_" + stat.Slug()))
	if err != nil {
		return 0
	}
	return n
}
