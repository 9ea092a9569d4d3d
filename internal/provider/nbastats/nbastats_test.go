package nbastats

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

const rosterJSON = `{"resultSets":[{"name":"CommonTeamRoster",
 "headers":["TeamID","SEASON","PLAYER","PLAYER_ID"],
 "rowSet":[[1610612747,"2024","LeBron James",2544],[1610612747,"2024","Anthony Davis",203076]]}]}`

const lebronLogJSON = `{"resultSets":[{"name":"PlayerGameLog",
 "headers":["GAME_DATE","MATCHUP","PTS","AST","REB","FG3M"],
 "rowSet":[["OCT 22, 2024","LAL vs. MIN",16,5,10,1],["OCT 25, 2024","LAL @ PHX",21,8,4,null]]}]}`

func newTestHandler(t *testing.T, handler http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := provider.NewClient(provider.ClientOptions{Name: "nba", BaseURL: srv.URL})
	return NewHandler(client, nil)
}

func TestGameRecords(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/commonteamroster":
			assert.Equal(t, "2024-25", r.URL.Query().Get("Season"))
			assert.Equal(t, "1610612747", r.URL.Query().Get("TeamID"))
			w.Write([]byte(rosterJSON))
		case "/playergamelog":
			if r.URL.Query().Get("PlayerID") == "203076" {
				http.Error(w, "timeout", http.StatusGatewayTimeout)
				return
			}
			w.Write([]byte(lebronLogJSON))
		default:
			http.NotFound(w, r)
		}
	})

	s := season.NBA.FromStart(2024)
	lakers := provider.Team{ID: "1610612747", Name: "Los Angeles Lakers"}

	records, err := h.GameRecords(context.Background(), lakers, s)
	require.NoError(t, err)
	require.Len(t, records, 2, "failed player is skipped, not fatal")

	first := records[0]
	assert.Equal(t, "2024-10-22", first.GameDate)
	assert.Equal(t, "MIN", first.Opponent)
	assert.Equal(t, "LeBron James", first.Player)
	assert.Equal(t, 16, *first.Points)
	assert.Equal(t, 5, *first.Assists)
	assert.Equal(t, 10, *first.Rebounds)
	assert.Equal(t, 1, *first.Threes)

	second := records[1]
	assert.Equal(t, "PHX", second.Opponent)
	require.NotNil(t, second.Threes)
	assert.Equal(t, 0, *second.Threes, "null stat on a played game is zero")
}

func TestGameRecords_RosterFailureIsTeamLevel(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	})

	_, err := h.GameRecords(context.Background(), provider.Team{ID: "1", Name: "X"}, season.NBA.FromStart(2024))
	assert.Error(t, err)
}

func TestTeams(t *testing.T) {
	h := NewHandler(nil, nil)
	list, err := h.Teams(context.Background(), season.Season{})
	require.NoError(t, err)
	assert.Len(t, list, 30)

	list[0].Name = "mutated"
	again, _ := h.Teams(context.Background(), season.Season{})
	assert.Equal(t, "Atlanta Hawks", again[0].Name)
}

func TestOpponentFromMatchup(t *testing.T) {
	assert.Equal(t, "BOS", opponentFromMatchup("LAL vs. BOS"))
	assert.Equal(t, "DEN", opponentFromMatchup("LAL @ DEN"))
	assert.Equal(t, "", opponentFromMatchup(""))
}
