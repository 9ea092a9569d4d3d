package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxsports/datahub/internal/provider"
)

var nbaSample = []provider.Team{
	{ID: "1610612737", Name: "Atlanta Hawks", Nickname: "Hawks", City: "Atlanta", Abbreviation: "ATL"},
	{ID: "1610612747", Name: "Los Angeles Lakers", Nickname: "Lakers", City: "Los Angeles", Abbreviation: "LAL"},
	{ID: "1610612746", Name: "LA Clippers", Nickname: "Clippers", City: "LA", Abbreviation: "LAC"},
	{ID: "1610612760", Name: "Oklahoma City Thunder", Nickname: "Thunder", City: "Oklahoma City", Abbreviation: "OKC"},
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "losangeleslakers", Normalize("Los Angeles Lakers"))
	assert.Equal(t, "stjohnsny", Normalize("St. John's (NY)"))
	assert.Equal(t, "", Normalize("  "))
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		found  bool
	}{
		{"nickname", "Lakers", "1610612747", true},
		{"abbreviation", "lal", "1610612747", true},
		{"full name with spaces", "los angeles lakers", "1610612747", true},
		{"city plus nickname", "LA Clippers", "1610612746", true},
		{"partial name", "thund", "1610612760", true},
		{"punctuation ignored", "O.K.C.", "1610612760", true},
		{"not found", "Sonics", "", false},
		{"empty input", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, ok := Find(tt.input, nbaSample)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantID, team.ID)
		})
	}
}

func TestFind_FirstMatchWins(t *testing.T) {
	// "la" is contained in several names; list order decides.
	team, ok := Find("la", nbaSample)
	assert.True(t, ok)
	assert.Equal(t, "Atlanta Hawks", team.Name)
}

func TestCloseMatches(t *testing.T) {
	got := CloseMatches("Dook", []string{"Duke", "Gonzaga", "Drake"}, DefaultSuggestions, DefaultCutoff)
	assert.Equal(t, []string{"Duke", "Drake"}, got)
}

func TestCloseMatches_TiesSortByLabelDescending(t *testing.T) {
	got := CloseMatches("cat", []string{"cot", "cut"}, 10, 0.4)
	assert.Equal(t, []string{"cut", "cot"}, got)
}

func TestCloseMatches_LimitAndEmpty(t *testing.T) {
	got := CloseMatches("cat", []string{"cot", "cut", "cat"}, 1, 0.4)
	assert.Equal(t, []string{"cat"}, got)

	assert.Nil(t, CloseMatches("", []string{"cat"}, 10, 0.4))
	assert.Empty(t, CloseMatches("zzz", []string{"Duke"}, 10, 0.4))
}

func TestSuggest(t *testing.T) {
	got := Suggest("Lakerz", nbaSample, DefaultSuggestions, DefaultCutoff)
	assert.NotEmpty(t, got)
	assert.Equal(t, "Los Angeles Lakers", got[0])
}

func TestExamples(t *testing.T) {
	got := Examples(nbaSample, 2)
	assert.Equal(t, []string{"Atlanta Hawks  (ATL)", "Los Angeles Lakers  (LAL)"}, got)
	assert.Len(t, Examples(nbaSample, 99), len(nbaSample))
}
