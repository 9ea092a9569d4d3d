package handler

import (
	"net/http"

	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/api/respond"
	"github.com/luxsports/datahub/internal/archive"
	"github.com/luxsports/datahub/internal/config"
	"github.com/luxsports/datahub/internal/dashboard"
	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/trend"
)

// --------------------------------------------------------------------------
// Response shapes
// --------------------------------------------------------------------------

// TableResponse is one wide stat sheet. Exported workbooks are zero-filled,
// so a null value only comes from a blank cell in a hand-edited workbook.
type TableResponse struct {
	File     string                    `json:"file"`
	Stat     provider.Stat             `json:"stat"`
	Players  []string                  `json:"players"`
	Rows     []TableRow                `json:"rows"`
	Averages []aggregate.SeasonAverage `json:"averages"`
}

// TableRow is one game of a TableResponse.
type TableRow struct {
	GameDate string     `json:"game_date"`
	Opponent string     `json:"opponent"`
	Values   []*float64 `json:"values"`
}

// TeamResponse is the Team Points sheet with its averages.
type TeamResponse struct {
	File    string                    `json:"file"`
	Games   []provider.TeamGameRecord `json:"games"`
	Summary aggregate.TeamSummary     `json:"summary"`
}

// TrendsResponse holds the Quick Bets of one workbook per stat.
type TrendsResponse struct {
	File   string                          `json:"file"`
	Team   string                          `json:"team"`
	Season string                          `json:"season"`
	Trends map[provider.Stat][]trend.Entry `json:"trends"`
}

func newTableResponse(file string, t aggregate.WideTable, avgs []aggregate.SeasonAverage) TableResponse {
	resp := TableResponse{
		File:     file,
		Stat:     t.Stat,
		Players:  t.Players,
		Rows:     make([]TableRow, 0, len(t.Rows)),
		Averages: avgs,
	}
	if resp.Players == nil {
		resp.Players = []string{}
	}
	for _, r := range t.Rows {
		row := TableRow{GameDate: r.GameDate, Opponent: r.Opponent, Values: make([]*float64, len(r.Cells))}
		for i, c := range r.Cells {
			if c.Present {
				v := c.Value
				row.Values[i] = &v
			}
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp
}

// --------------------------------------------------------------------------
// Endpoints
// --------------------------------------------------------------------------

// ListSports returns the sport registry in tab order.
// @Summary List sports
// @Description Returns every sport tab, including the ones without an exporter yet.
// @Tags sports
// @Produce json
// @Success 200 {array} config.SportConfig
// @Router /sports [get]
func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	out := make([]config.SportConfig, 0, len(config.SportOrder))
	for _, id := range config.SportOrder {
		out = append(out, config.SportRegistry[id])
	}
	respond.WriteValue(w, r, out)
}

// GetTable returns one stat sheet of a workbook.
// @Summary Get stat table
// @Description Returns the wide per-game table and season averages for one stat.
// @Tags workbooks
// @Produce json
// @Param sport path string true "Sport identifier" Enums(NBA, NCAAM)
// @Param file path string true "Workbook file name"
// @Param stat path string true "Stat" Enums(points, assists, rebounds, 3pm)
// @Success 200 {object} TableResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /sports/{sport}/files/{file}/stats/{stat} [get]
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	stat, ok := provider.ParseStat(param(r, "stat"))
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_STAT", "Unknown stat "+param(r, "stat"))
		return
	}
	b, _, ok := h.book(w, r, false)
	if !ok {
		return
	}
	avgs := b.Tables.Averages[stat]
	if avgs == nil {
		avgs = []aggregate.SeasonAverage{}
	}
	respond.WriteValue(w, r, newTableResponse(b.Info.File, b.Tables.Table(stat), avgs))
}

// GetTeam returns the team points sheet of a workbook.
// @Summary Get team points
// @Description Returns the per-game team and opponent scores with averages.
// @Tags workbooks
// @Produce json
// @Param sport path string true "Sport identifier" Enums(NBA, NCAAM)
// @Param file path string true "Workbook file name"
// @Success 200 {object} TeamResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /sports/{sport}/files/{file}/team [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	b, _, ok := h.book(w, r, false)
	if !ok {
		return
	}
	games := b.Tables.Team
	if games == nil {
		games = []provider.TeamGameRecord{}
	}
	respond.WriteValue(w, r, TeamResponse{
		File:    b.Info.File,
		Games:   games,
		Summary: aggregate.Summarize(games),
	})
}

// GetTrends returns the streak trends of a workbook.
// @Summary Get trends
// @Description Returns, per stat, every prop with at least a 3-game hit streak.
// @Tags trends
// @Produce json
// @Param sport path string true "Sport identifier" Enums(NBA, NCAAM)
// @Param file path string true "Workbook file name"
// @Success 200 {object} TrendsResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /sports/{sport}/files/{file}/trends [get]
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	b, _, ok := h.book(w, r, false)
	if !ok {
		return
	}
	resp := TrendsResponse{
		File:   b.Info.File,
		Team:   b.Info.Team,
		Season: b.Info.Season,
		Trends: make(map[provider.Stat][]trend.Entry, len(provider.AllStats)),
	}
	for _, stat := range provider.AllStats {
		entries := trend.Compute(b.Tables.Table(stat), h.cfg.Thresholds.For(stat))
		if entries == nil {
			entries = []trend.Entry{}
		}
		resp.Trends[stat] = entries
	}
	respond.WriteValue(w, r, resp)
}

// GetPerfects returns the 100%ers across every workbook of a sport.
// @Summary Get perfect props
// @Description Returns, per stat, every prop a player hit in all of their games.
// @Tags trends
// @Produce json
// @Param sport path string true "Sport identifier" Enums(NBA, NCAAM)
// @Success 200 {object} map[string][]trend.Perfect
// @Failure 404 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /sports/{sport}/perfects [get]
func (h *Handler) GetPerfects(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.sport(r)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_SPORT", "Unknown sport "+param(r, "sport"))
		return
	}
	perfects, err := dashboard.Perfects(h.cfg.DataDir, sc.ID, h.cfg.Thresholds, h.logger)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "LIST_FAILED", "Could not list workbooks", err.Error())
		return
	}
	for _, stat := range provider.AllStats {
		if perfects[stat] == nil {
			perfects[stat] = []trend.Perfect{}
		}
	}
	respond.WriteValue(w, r, perfects)
}

// GetArchive lists the team seasons stored in the export archive.
// @Summary List archived seasons
// @Description Returns the team seasons the exporter archived to Postgres.
// @Tags archive
// @Produce json
// @Param sport path string true "Sport identifier" Enums(NBA, NCAAM)
// @Success 200 {array} archive.Entry
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /sports/{sport}/archive [get]
func (h *Handler) GetArchive(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.sport(r)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_SPORT", "Unknown sport "+param(r, "sport"))
		return
	}
	if h.pool == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "ARCHIVE_DISABLED", "DATABASE_URL is not configured")
		return
	}
	entries, err := archive.List(r.Context(), h.pool, sc.ID)
	if err != nil {
		h.logger.Error("failed to list archive", "sport", sc.ID, "error", err)
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "QUERY_FAILED", "Could not list archive", err.Error())
		return
	}
	if entries == nil {
		entries = []archive.Entry{}
	}
	respond.WriteValue(w, r, entries)
}
