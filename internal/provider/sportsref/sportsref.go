// Package sportsref scrapes NCAA men's basketball schedules and box scores
// from sports-reference.com/cbb.
//
// Seasons are keyed by the year they end ("2025" is 2024-25). Pages are
// parsed with goquery by data-stat attribute, which sports-reference keeps
// stable across layout changes.
package sportsref

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/season"
)

const (
	DefaultBaseURL = "https://www.sports-reference.com"
	sourceName     = "ncaam-sr"
	sportID        = "NCAAM"
	fileSuffix     = "ncaab"
)

// DefaultHeaders identify the scraper as a browser.
var DefaultHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":     "text/html",
}

// Handler implements provider.Source for sports-reference.
type Handler struct {
	client *provider.Client
	logger *slog.Logger

	mu        sync.Mutex
	schedules map[string][]scheduleGame // keyed by slug + season param
}

// NewHandler creates a sports-reference source on top of a configured client.
func NewHandler(client *provider.Client, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		client:    client,
		logger:    logger,
		schedules: make(map[string][]scheduleGame),
	}
}

func (h *Handler) Name() string                  { return sourceName }
func (h *Handler) Sport() string                 { return sportID }
func (h *Handler) FileSuffix() string            { return fileSuffix }
func (h *Handler) Convention() season.Convention { return season.SportsReference }

func (h *Handler) document(ctx context.Context, path string) (*goquery.Document, error) {
	body, err := h.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

// Teams lists the schools in the season's school-stats table.
func (h *Handler) Teams(ctx context.Context, s season.Season) ([]provider.Team, error) {
	path := fmt.Sprintf("/cbb/seasons/men/%s-school-stats.html", s.Param)
	doc, err := h.document(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch NCAAB teams for %s: %w", s.Param, err)
	}

	var teams []provider.Team
	seen := make(map[string]bool)
	doc.Find(`td[data-stat="school_name"] a`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		slug := schoolSlug(href)
		if slug == "" || seen[slug] {
			return
		}
		seen[slug] = true
		teams = append(teams, provider.Team{
			ID:           slug,
			Name:         cleanSchoolName(a.Text()),
			Abbreviation: strings.ToUpper(slug),
			Slug:         slug,
		})
	})
	return teams, nil
}

// schoolSlug extracts "duke" from "/cbb/schools/duke/men/2025.html".
func schoolSlug(href string) string {
	parts := strings.Split(strings.Trim(href, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "schools" {
			return parts[i+1]
		}
	}
	return ""
}

func teamSlug(t provider.Team) string {
	if t.Slug != "" {
		return t.Slug
	}
	return t.ID
}

func cleanSchoolName(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
	return strings.TrimSpace(strings.TrimSuffix(s, "NCAA"))
}

// --------------------------------------------------------------------------
// Schedule
// --------------------------------------------------------------------------

type scheduleGame struct {
	Date          string
	Opponent      string
	PointsFor     int
	PointsAgainst int
	Played        bool
	BoxScorePath  string
}

func (h *Handler) schedule(ctx context.Context, team provider.Team, s season.Season) ([]scheduleGame, error) {
	slug := teamSlug(team)
	key := slug + ":" + s.Param

	h.mu.Lock()
	cached, ok := h.schedules[key]
	h.mu.Unlock()
	if ok {
		return cached, nil
	}

	path := fmt.Sprintf("/cbb/schools/%s/men/%s-schedule.html", slug, s.Param)
	doc, err := h.document(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule for %s: %w", team.Name, err)
	}
	games := parseSchedule(doc)

	h.mu.Lock()
	h.schedules[key] = games
	h.mu.Unlock()
	return games, nil
}

func parseSchedule(doc *goquery.Document) []scheduleGame {
	var games []scheduleGame
	doc.Find("table#schedule tbody tr").Each(func(_ int, row *goquery.Selection) {
		if row.HasClass("thead") {
			return
		}
		date := cellText(row, "date_game")
		if date == "" {
			return
		}
		g := scheduleGame{
			Date:     provider.NormalizeDate(date),
			Opponent: cellText(row, "opp_name"),
		}
		pts, ptsOK := cellInt(row, "pts")
		opp, oppOK := cellInt(row, "opp_pts")
		if ptsOK && oppOK {
			g.PointsFor, g.PointsAgainst, g.Played = pts, opp, true
		}
		if href, ok := row.Find(`a[href*="/boxscores/"]`).First().Attr("href"); ok {
			g.BoxScorePath = href
		}
		games = append(games, g)
	})
	return games
}

// TeamResults derives final scores from the schedule. Unplayed games are
// left out.
func (h *Handler) TeamResults(ctx context.Context, team provider.Team, s season.Season) ([]provider.TeamGameRecord, error) {
	games, err := h.schedule(ctx, team, s)
	if err != nil {
		return nil, err
	}
	var out []provider.TeamGameRecord
	for _, g := range games {
		if !g.Played {
			continue
		}
		out = append(out, provider.TeamGameRecord{
			GameDate:       g.Date,
			Opponent:       g.Opponent,
			TeamPoints:     g.PointsFor,
			OpponentPoints: g.PointsAgainst,
		})
	}
	return out, nil
}

// --------------------------------------------------------------------------
// Box scores
// --------------------------------------------------------------------------

// GameRecords walks the schedule and scrapes the team's basic box score for
// each played game. A box score that fails to load skips that game only.
func (h *Handler) GameRecords(ctx context.Context, team provider.Team, s season.Season) ([]provider.GameStatRecord, error) {
	games, err := h.schedule(ctx, team, s)
	if err != nil {
		return nil, err
	}
	h.logger.Info("Fetched NCAAB schedule", "team", team.Name, "season", s.Label, "games", len(games))

	slug := teamSlug(team)

	var records []provider.GameStatRecord
	for _, g := range games {
		if !g.Played || g.BoxScorePath == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return records, err
		}
		doc, err := h.document(ctx, g.BoxScorePath)
		if provider.IsNotFound(err) {
			h.logger.Debug("No box score", "team", team.Name, "date", g.Date)
			continue
		}
		if err != nil {
			h.logger.Warn("Skipping box score", "team", team.Name, "date", g.Date, "error", err)
			continue
		}
		records = append(records, parseBoxScore(doc, slug, g)...)
	}
	return records, nil
}

func parseBoxScore(doc *goquery.Document, slug string, g scheduleGame) []provider.GameStatRecord {
	var records []provider.GameStatRecord
	table := doc.Find("table#box-score-basic-" + slug)
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if row.HasClass("thead") {
			return
		}
		name := strings.TrimSpace(row.Find(`[data-stat="player"]`).First().Text())
		if name == "" || name == "Reserves" || name == "School Totals" {
			return
		}
		// Players who did not play have a single colspan cell.
		if row.Find(`td[data-stat="pts"]`).Length() == 0 {
			return
		}
		records = append(records, provider.GameStatRecord{
			GameDate: g.Date,
			Opponent: g.Opponent,
			Player:   name,
			Points:   cellStat(row, "pts"),
			Assists:  cellStat(row, "ast"),
			Rebounds: cellStat(row, "trb"),
			Threes:   cellStat(row, "fg3"),
		})
	})
	return records
}

// --------------------------------------------------------------------------
// Cell helpers
// --------------------------------------------------------------------------

func cellText(row *goquery.Selection, stat string) string {
	return strings.TrimSpace(row.Find(`[data-stat="` + stat + `"]`).First().Text())
}

func cellInt(row *goquery.Selection, stat string) (int, bool) {
	v, err := strconv.Atoi(cellText(row, stat))
	if err != nil {
		return 0, false
	}
	return v, true
}

// cellStat returns nil when the column is missing and zero when it is blank.
func cellStat(row *goquery.Selection, stat string) *int {
	cell := row.Find(`td[data-stat="` + stat + `"]`)
	if cell.Length() == 0 {
		return nil
	}
	v, _ := strconv.Atoi(strings.TrimSpace(cell.First().Text()))
	return provider.Int(v)
}
