// Package cbbd fetches NCAA men's basketball data from the
// CollegeBasketballData API (api.collegebasketballdata.com).
//
// The API takes the season as its start year and filters by school name.
// Shooting and rebounding come back as nested objects ({"made": 3} /
// {"total": 7}); provider.FieldMap flattens them.
package cbbd

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/season"
)

const (
	DefaultBaseURL = "https://api.collegebasketballdata.com"
	sourceName     = "ncaam"
	sportID        = "NCAAM"
	fileSuffix     = "ncaam"
	unknownPlayer  = "Unknown Player"
)

// AuthHeaders returns the bearer header for an API key.
func AuthHeaders(apiKey string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + apiKey,
		"Accept":        "application/json",
	}
}

var teamFields = provider.FieldMap{
	"id":     {"id", "teamId"},
	"name":   {"school", "team", "name", "displayName"},
	"mascot": {"mascot", "nickname"},
	"abbr":   {"abbreviation"},
}

var gameFields = provider.FieldMap{
	"date":       {"startDate", "gameStartDate", "start_date", "game_start_date"},
	"home":       {"homeTeam", "home_team"},
	"away":       {"awayTeam", "away_team"},
	"opponent":   {"opponent"},
	"homePoints": {"homePoints", "homeScore", "home_points", "home_score"},
	"awayPoints": {"awayPoints", "awayScore", "away_points", "away_score"},
}

var playerFields = provider.FieldMap{
	"name":     {"name", "player", "athlete"},
	"points":   {"points", "pts"},
	"assists":  {"assists", "ast"},
	"rebounds": {"totalRebounds", "total_rebounds", "rebounds"},
	"threes":   {"threePointersMade", "three_pointers_made", "threePointFieldGoals", "threePointers", "three_pointers"},
}

// Handler implements provider.Source for CollegeBasketballData.
type Handler struct {
	client *provider.Client
	logger *slog.Logger
}

// NewHandler creates a CBBD source on top of a configured client.
func NewHandler(client *provider.Client, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{client: client, logger: logger}
}

func (h *Handler) Name() string                  { return sourceName }
func (h *Handler) Sport() string                 { return sportID }
func (h *Handler) FileSuffix() string            { return fileSuffix }
func (h *Handler) Convention() season.Convention { return season.CBBD }

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

// Teams lists the schools active in a season.
func (h *Handler) Teams(ctx context.Context, s season.Season) ([]provider.Team, error) {
	params := url.Values{}
	params.Set("season", s.Param)

	var raw []map[string]interface{}
	if err := h.client.GetJSON(ctx, "/teams", params, &raw); err != nil {
		return nil, fmt.Errorf("fetch NCAAM teams for %s: %w", s.Param, err)
	}

	teams := make([]provider.Team, 0, len(raw))
	for _, obj := range raw {
		t := normalizeTeam(obj)
		if t.Name == "" {
			continue
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func normalizeTeam(obj map[string]interface{}) provider.Team {
	return provider.Team{
		ID:           teamFields.String(obj, "id"),
		Name:         teamFields.String(obj, "name"),
		Nickname:     teamFields.String(obj, "mascot"),
		Abbreviation: teamFields.String(obj, "abbr"),
	}
}

// --------------------------------------------------------------------------
// Player box scores
// --------------------------------------------------------------------------

// GameRecords pulls every player box score for the team's season in one call.
func (h *Handler) GameRecords(ctx context.Context, team provider.Team, s season.Season) ([]provider.GameStatRecord, error) {
	params := url.Values{}
	params.Set("season", s.Param)
	params.Set("team", team.Name)

	var boxes []map[string]interface{}
	if err := h.client.GetJSON(ctx, "/games/players", params, &boxes); err != nil {
		return nil, fmt.Errorf("fetch player box scores for %s: %w", team.Name, err)
	}

	var records []provider.GameStatRecord
	for _, box := range boxes {
		date := provider.NormalizeDate(gameFields.String(box, "date"))
		opponent := resolveOpponent(team.Name, box)

		players, _ := box["players"].([]interface{})
		for _, p := range players {
			obj, ok := p.(map[string]interface{})
			if !ok {
				h.logger.Warn("Skipping malformed player entry", "team", team.Name, "date", date)
				continue
			}
			records = append(records, normalizePlayer(date, opponent, obj))
		}
	}
	return records, nil
}

func normalizePlayer(date, opponent string, obj map[string]interface{}) provider.GameStatRecord {
	name := playerFields.String(obj, "name")
	if name == "" {
		name = unknownPlayer
	}
	return provider.GameStatRecord{
		GameDate: date,
		Opponent: opponent,
		Player:   name,
		Points:   playerFields.Stat(obj, "points"),
		Assists:  playerFields.Stat(obj, "assists"),
		Rebounds: playerFields.Stat(obj, "rebounds"),
		Threes:   playerFields.Stat(obj, "threes"),
	}
}

// resolveOpponent picks the other side of a home/away pairing, falling back
// to an explicit opponent field.
func resolveOpponent(teamName string, obj map[string]interface{}) string {
	home := gameFields.String(obj, "home")
	away := gameFields.String(obj, "away")
	switch {
	case home != "" && home == teamName:
		return away
	case away != "" && away == teamName:
		return home
	}
	return gameFields.String(obj, "opponent")
}

// --------------------------------------------------------------------------
// Team results
// --------------------------------------------------------------------------

// TeamResults returns the final score of each completed game the team played.
func (h *Handler) TeamResults(ctx context.Context, team provider.Team, s season.Season) ([]provider.TeamGameRecord, error) {
	params := url.Values{}
	params.Set("season", s.Param)
	params.Set("team", team.Name)

	var games []map[string]interface{}
	if err := h.client.GetJSON(ctx, "/games", params, &games); err != nil {
		return nil, fmt.Errorf("fetch games for %s: %w", team.Name, err)
	}

	var out []provider.TeamGameRecord
	for _, g := range games {
		rec, ok := normalizeGame(team.Name, g)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func normalizeGame(teamName string, g map[string]interface{}) (provider.TeamGameRecord, bool) {
	homePts, homeOK := gameFields.Value(g, "homePoints")
	awayPts, awayOK := gameFields.Value(g, "awayPoints")
	if !homeOK && !awayOK {
		// Scheduled but not played.
		return provider.TeamGameRecord{}, false
	}

	home := gameFields.String(g, "home")
	away := gameFields.String(g, "away")
	rec := provider.TeamGameRecord{GameDate: provider.NormalizeDate(gameFields.String(g, "date"))}
	switch teamName {
	case home:
		rec.Opponent = away
		rec.TeamPoints, rec.OpponentPoints = int(homePts), int(awayPts)
	case away:
		rec.Opponent = home
		rec.TeamPoints, rec.OpponentPoints = int(awayPts), int(homePts)
	default:
		return provider.TeamGameRecord{}, false
	}
	return rec, true
}
