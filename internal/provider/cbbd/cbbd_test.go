package cbbd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxsports/datahub/internal/provider"
	"github.com/luxsports/datahub/internal/season"
)

const boxScoresJSON = `[
 {"gameId":1,"startDate":"2024-11-05T00:30:00.000Z","team":"Duke","opponent":"Maine","isHome":true,
  "players":[
   {"name":"Cooper Flagg","points":18,"assists":6,"rebounds":{"offensive":2,"defensive":5,"total":7},
    "threePointFieldGoals":{"made":2,"attempted":5}},
   {"name":"Tyrese Proctor","points":null,"assists":3,"rebounds":{"total":2},"threePointFieldGoals":{"made":0}}
  ]},
 {"gameId":2,"startDate":"2024-11-12T19:00:00Z","homeTeam":"Kentucky","awayTeam":"Duke",
  "players":[{"name":"Cooper Flagg","points":26,"assists":4}]}
]`

const gamesJSON = `[
 {"id":1,"startDate":"2024-11-05T00:30:00.000Z","homeTeam":"Duke","awayTeam":"Maine","homePoints":96,"awayPoints":62},
 {"id":2,"startDate":"2024-11-12T19:00:00Z","homeTeam":"Kentucky","awayTeam":"Duke","homePoints":77,"awayPoints":72},
 {"id":3,"startDate":"2025-03-01T19:00:00Z","homeTeam":"Duke","awayTeam":"UNC","homePoints":null,"awayPoints":null},
 {"id":4,"startDate":"2024-11-20T19:00:00Z","homeTeam":"Army","awayTeam":"Navy","homePoints":60,"awayPoints":58}
]`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/teams":
			assert.Equal(t, "2024", r.URL.Query().Get("season"))
			w.Write([]byte(`[{"id":64,"school":"Duke","mascot":"Blue Devils","abbreviation":"DUKE"},{"id":0,"school":""}]`))
		case "/games/players":
			assert.Equal(t, "Duke", r.URL.Query().Get("team"))
			w.Write([]byte(boxScoresJSON))
		case "/games":
			w.Write([]byte(gamesJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := provider.NewClient(provider.ClientOptions{
		Name:    "ncaam",
		BaseURL: srv.URL,
		Headers: AuthHeaders("test-key"),
	})
	return NewHandler(client, nil)
}

func TestTeams(t *testing.T) {
	h := newTestHandler(t)
	list, err := h.Teams(context.Background(), season.CBBD.FromStart(2024))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, provider.Team{ID: "64", Name: "Duke", Nickname: "Blue Devils", Abbreviation: "DUKE"}, list[0])
}

func TestGameRecords(t *testing.T) {
	h := newTestHandler(t)
	duke := provider.Team{Name: "Duke"}

	records, err := h.GameRecords(context.Background(), duke, season.CBBD.FromStart(2024))
	require.NoError(t, err)
	require.Len(t, records, 3)

	flagg := records[0]
	assert.Equal(t, "2024-11-04", flagg.GameDate, "UTC tip-off converted to Pacific")
	assert.Equal(t, "Maine", flagg.Opponent)
	assert.Equal(t, 18, *flagg.Points)
	assert.Equal(t, 7, *flagg.Rebounds)
	assert.Equal(t, 2, *flagg.Threes)

	proctor := records[1]
	require.NotNil(t, proctor.Points)
	assert.Equal(t, 0, *proctor.Points)

	away := records[2]
	assert.Equal(t, "Kentucky", away.Opponent)
	assert.Equal(t, 26, *away.Points)
	assert.Nil(t, away.Rebounds, "stat never reported stays absent")
}

func TestTeamResults(t *testing.T) {
	h := newTestHandler(t)
	results, err := h.TeamResults(context.Background(), provider.Team{Name: "Duke"}, season.CBBD.FromStart(2024))
	require.NoError(t, err)
	require.Len(t, results, 2, "unplayed and unrelated games are dropped")

	assert.Equal(t, provider.TeamGameRecord{GameDate: "2024-11-04", Opponent: "Maine", TeamPoints: 96, OpponentPoints: 62}, results[0])
	assert.Equal(t, "Kentucky", results[1].Opponent)
	assert.Equal(t, 72, results[1].TeamPoints)
	assert.Equal(t, 77, results[1].OpponentPoints)
	assert.Equal(t, 149, results[1].Total())
}

func TestGameRecords_TeamLevelFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	h := NewHandler(provider.NewClient(provider.ClientOptions{Name: "ncaam", BaseURL: srv.URL}), nil)
	_, err := h.GameRecords(context.Background(), provider.Team{Name: "Duke"}, season.CBBD.FromStart(2024))
	require.Error(t, err)

	var se *provider.StatusError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}
