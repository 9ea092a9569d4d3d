// Package nbastats fetches NBA rosters and player game logs from
// stats.nba.com.
//
// Responses use the resultSets layout: a header list plus positional row
// arrays. Rows are decoded into header-keyed maps so field access goes
// through a provider.FieldMap like every other adapter.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/season"
)

const (
	DefaultBaseURL = "https://stats.nba.com/stats"
	sourceName     = "nba"
	sportID        = "NBA"
)

// DefaultHeaders are required by stats.nba.com; requests without a browser
// user agent and referer hang until timeout.
var DefaultHeaders = map[string]string{
	"Accept":     "application/json",
	"Referer":    "https://www.nba.com/",
	"Origin":     "https://www.nba.com",
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

var gameLogFields = provider.FieldMap{
	"date":     {"GAME_DATE"},
	"matchup":  {"MATCHUP"},
	"points":   {"PTS"},
	"assists":  {"AST"},
	"rebounds": {"REB"},
	"threes":   {"FG3M"},
}

var rosterFields = provider.FieldMap{
	"id":   {"PLAYER_ID", "Player_ID"},
	"name": {"PLAYER", "PLAYER_NAME"},
}

// Handler implements provider.Source for stats.nba.com.
type Handler struct {
	client *provider.Client
	logger *slog.Logger
}

// NewHandler creates a stats.nba.com source on top of a configured client.
func NewHandler(client *provider.Client, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{client: client, logger: logger}
}

func (h *Handler) Name() string                  { return sourceName }
func (h *Handler) Sport() string                 { return sportID }
func (h *Handler) FileSuffix() string            { return "" }
func (h *Handler) Convention() season.Convention { return season.NBA }

// Teams returns the static franchise list; the season is ignored.
func (h *Handler) Teams(_ context.Context, _ season.Season) ([]provider.Team, error) {
	out := make([]provider.Team, len(nbaTeams))
	copy(out, nbaTeams)
	return out, nil
}

// TeamResults is not offered by this source.
func (h *Handler) TeamResults(context.Context, provider.Team, season.Season) ([]provider.TeamGameRecord, error) {
	return nil, nil
}

// --------------------------------------------------------------------------
// resultSets decoding
// --------------------------------------------------------------------------

type resultSetsResponse struct {
	ResultSets []struct {
		Name    string          `json:"name"`
		Headers []string        `json:"headers"`
		RowSet  [][]interface{} `json:"rowSet"`
	} `json:"resultSets"`
}

// rows decodes the first result set into header-keyed maps.
func rows(body []byte) ([]map[string]interface{}, error) {
	var resp resultSetsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode resultSets: %w", err)
	}
	if len(resp.ResultSets) == 0 {
		return nil, nil
	}
	set := resp.ResultSets[0]
	out := make([]map[string]interface{}, 0, len(set.RowSet))
	for _, raw := range set.RowSet {
		row := make(map[string]interface{}, len(set.Headers))
		for i, h := range set.Headers {
			if i < len(raw) {
				row[h] = raw[i]
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// Roster and game logs
// --------------------------------------------------------------------------

type rosterPlayer struct {
	ID   string
	Name string
}

func (h *Handler) roster(ctx context.Context, team provider.Team, s season.Season) ([]rosterPlayer, error) {
	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", s.Param)
	params.Set("TeamID", team.ID)

	body, err := h.client.Get(ctx, "/commonteamroster", params)
	if err != nil {
		return nil, fmt.Errorf("fetch roster for %s: %w", team.Name, err)
	}
	rs, err := rows(body)
	if err != nil {
		return nil, fmt.Errorf("decode roster for %s: %w", team.Name, err)
	}

	players := make([]rosterPlayer, 0, len(rs))
	for _, r := range rs {
		p := rosterPlayer{ID: rosterFields.String(r, "id"), Name: rosterFields.String(r, "name")}
		if p.ID == "" || p.Name == "" {
			continue
		}
		players = append(players, p)
	}
	return players, nil
}

func (h *Handler) gameLog(ctx context.Context, p rosterPlayer, s season.Season) ([]provider.GameStatRecord, error) {
	params := url.Values{}
	params.Set("PlayerID", p.ID)
	params.Set("Season", s.Param)
	params.Set("SeasonType", "Regular Season")

	body, err := h.client.Get(ctx, "/playergamelog", params)
	if err != nil {
		return nil, err
	}
	rs, err := rows(body)
	if err != nil {
		return nil, err
	}

	records := make([]provider.GameStatRecord, 0, len(rs))
	for _, r := range rs {
		records = append(records, normalizeGameLog(p.Name, r))
	}
	return records, nil
}

func normalizeGameLog(player string, r map[string]interface{}) provider.GameStatRecord {
	return provider.GameStatRecord{
		GameDate: provider.NormalizeDate(gameLogFields.String(r, "date")),
		Opponent: opponentFromMatchup(gameLogFields.String(r, "matchup")),
		Player:   player,
		Points:   gameLogFields.Stat(r, "points"),
		Assists:  gameLogFields.Stat(r, "assists"),
		Rebounds: gameLogFields.Stat(r, "rebounds"),
		Threes:   gameLogFields.Stat(r, "threes"),
	}
}

// opponentFromMatchup takes the last token of "LAL vs. BOS" / "LAL @ BOS".
func opponentFromMatchup(m string) string {
	fields := strings.Fields(m)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// GameRecords fetches the roster then each player's regular-season game log.
// A failed game log skips that player only.
func (h *Handler) GameRecords(ctx context.Context, team provider.Team, s season.Season) ([]provider.GameStatRecord, error) {
	players, err := h.roster(ctx, team, s)
	if err != nil {
		return nil, err
	}
	h.logger.Info("Fetched NBA roster", "team", team.Name, "season", s.Label, "players", len(players))

	var records []provider.GameStatRecord
	for _, p := range players {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		games, err := h.gameLog(ctx, p, s)
		if err != nil {
			h.logger.Warn("Skipping player game log", "team", team.Name, "player", p.Name, "error", err)
			continue
		}
		h.logger.Debug("Fetched game log", "player", p.Name, "games", len(games))
		records = append(records, games...)
	}
	return records, nil
}
