package sportsref

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/season"
)

const schoolStatsHTML = `<html><body><table id="basic_school_stats"><tbody>
<tr><th data-stat="ranker">1</th><td data-stat="school_name"><a href="/cbb/schools/duke/men/2025.html">Duke</a>&nbsp;NCAA</td></tr>
<tr class="thead"><th>Rk</th></tr>
<tr><th data-stat="ranker">2</th><td data-stat="school_name"><a href="/cbb/schools/gonzaga/men/2025.html">Gonzaga</a></td></tr>
</tbody></table></body></html>`

const scheduleHTML = `<html><body><table id="schedule"><tbody>
<tr><th data-stat="g">1</th><td data-stat="date_game"><a href="/cbb/boxscores/2024-11-04-19-duke.html">Mon, Nov 4, 2024</a></td>
 <td data-stat="opp_name">Maine</td><td data-stat="pts">96</td><td data-stat="opp_pts">62</td></tr>
<tr><th data-stat="g">2</th><td data-stat="date_game"><a href="/cbb/boxscores/2024-11-12-21-kentucky.html">Tue, Nov 12, 2024</a></td>
 <td data-stat="opp_name">Kentucky</td><td data-stat="pts">72</td><td data-stat="opp_pts">77</td></tr>
<tr><th data-stat="g">3</th><td data-stat="date_game">Sat, Mar 8, 2025</td>
 <td data-stat="opp_name">North Carolina</td><td data-stat="pts"></td><td data-stat="opp_pts"></td></tr>
</tbody></table></body></html>`

const boxScoreHTML = `<html><body>
<table id="box-score-basic-maine"><tbody><tr><th data-stat="player">Opponent Guy</th><td data-stat="pts">30</td></tr></tbody></table>
<table id="box-score-basic-duke"><tbody>
<tr><th data-stat="player"><a href="/cbb/players/cooper-flagg-1.html">Cooper Flagg</a></th>
 <td data-stat="fg3">2</td><td data-stat="trb">7</td><td data-stat="ast">6</td><td data-stat="pts">18</td></tr>
<tr class="thead"><th data-stat="player">Reserves</th></tr>
<tr><th data-stat="player">Isaiah Evans</th><td data-stat="fg3"></td><td data-stat="trb">1</td><td data-stat="ast">0</td><td data-stat="pts">4</td></tr>
<tr><th data-stat="player">Walk On</th><td data-stat="reason" colspan="19">Did Not Play</td></tr>
</tbody><tfoot><tr><th data-stat="player">School Totals</th><td data-stat="pts">96</td></tr></tfoot></table>
</body></html>`

func newTestHandler(t *testing.T, boxHits *int32) *Handler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cbb/seasons/men/2025-school-stats.html":
			w.Write([]byte(schoolStatsHTML))
		case "/cbb/schools/duke/men/2025-schedule.html":
			w.Write([]byte(scheduleHTML))
		case "/cbb/boxscores/2024-11-04-19-duke.html":
			atomic.AddInt32(boxHits, 1)
			w.Write([]byte(boxScoreHTML))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return NewHandler(provider.NewClient(provider.ClientOptions{Name: "ncaam-sr", BaseURL: srv.URL}), nil)
}

func TestTeams(t *testing.T) {
	var hits int32
	h := newTestHandler(t, &hits)

	list, err := h.Teams(context.Background(), season.SportsReference.ParseAt("2025", time.Now()))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, provider.Team{ID: "duke", Name: "Duke", Abbreviation: "DUKE", Slug: "duke"}, list[0])
	assert.Equal(t, "Gonzaga", list[1].Name)
}

func TestGameRecordsAndResults(t *testing.T) {
	var hits int32
	h := newTestHandler(t, &hits)
	duke := provider.Team{ID: "duke", Name: "Duke", Slug: "duke"}
	s := season.Season{Start: 2024, End: 2025, Label: "2024-25", Param: "2025"}

	records, err := h.GameRecords(context.Background(), duke, s)
	require.NoError(t, err, "a missing box score is skipped, not fatal")
	require.Len(t, records, 2)

	assert.Equal(t, "Cooper Flagg", records[0].Player)
	assert.Equal(t, "2024-11-04", records[0].GameDate)
	assert.Equal(t, "Maine", records[0].Opponent)
	assert.Equal(t, 18, *records[0].Points)
	assert.Equal(t, 6, *records[0].Assists)
	assert.Equal(t, 7, *records[0].Rebounds)
	assert.Equal(t, 2, *records[0].Threes)

	assert.Equal(t, "Isaiah Evans", records[1].Player)
	assert.Equal(t, 0, *records[1].Threes, "blank cell is zero")

	results, err := h.TeamResults(context.Background(), duke, s)
	require.NoError(t, err)
	require.Len(t, results, 2, "unplayed game is left out")
	assert.Equal(t, provider.TeamGameRecord{GameDate: "2024-11-12", Opponent: "Kentucky", TeamPoints: 72, OpponentPoints: 77}, results[1])

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestGameRecords_MissingBoxScoreIsQuiet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cbb/schools/duke/men/2025-schedule.html":
			w.Write([]byte(scheduleHTML))
		case "/cbb/boxscores/2024-11-04-19-duke.html":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := NewHandler(provider.NewClient(provider.ClientOptions{Name: "ncaam-sr", BaseURL: srv.URL}), logger)

	s := season.Season{Start: 2024, End: 2025, Label: "2024-25", Param: "2025"}
	records, err := h.GameRecords(context.Background(), provider.Team{ID: "duke", Name: "Duke", Slug: "duke"}, s)
	require.NoError(t, err)
	assert.Empty(t, records)

	out := logs.String()
	assert.Contains(t, out, `msg="No box score"`)
	assert.Contains(t, out, "date=2024-11-12")
	assert.Equal(t, 1, strings.Count(out, `msg="Skipping box score"`), "only the failed request warns")
}

func TestSchoolSlug(t *testing.T) {
	assert.Equal(t, "north-carolina", schoolSlug("/cbb/schools/north-carolina/men/2025.html"))
	assert.Equal(t, "", schoolSlug("/cbb/players/x.html"))
}
