package nbastats

import "github.com/luxsports/datahub/internal/provider"

// nbaTeams is the static franchise list. stats.nba.com has no cheap
// endpoint for it and franchise IDs never change.
var nbaTeams = []provider.Team{
	{ID: "1610612737", Name: "Atlanta Hawks", Nickname: "Hawks", City: "Atlanta", Abbreviation: "ATL"},
	{ID: "1610612738", Name: "Boston Celtics", Nickname: "Celtics", City: "Boston", Abbreviation: "BOS"},
	{ID: "1610612751", Name: "Brooklyn Nets", Nickname: "Nets", City: "Brooklyn", Abbreviation: "BKN"},
	{ID: "1610612766", Name: "Charlotte Hornets", Nickname: "Hornets", City: "Charlotte", Abbreviation: "CHA"},
	{ID: "1610612741", Name: "Chicago Bulls", Nickname: "Bulls", City: "Chicago", Abbreviation: "CHI"},
	{ID: "1610612739", Name: "Cleveland Cavaliers", Nickname: "Cavaliers", City: "Cleveland", Abbreviation: "CLE"},
	{ID: "1610612742", Name: "Dallas Mavericks", Nickname: "Mavericks", City: "Dallas", Abbreviation: "DAL"},
	{ID: "1610612743", Name: "Denver Nuggets", Nickname: "Nuggets", City: "Denver", Abbreviation: "DEN"},
	{ID: "1610612765", Name: "Detroit Pistons", Nickname: "Pistons", City: "Detroit", Abbreviation: "DET"},
	{ID: "1610612744", Name: "Golden State Warriors", Nickname: "Warriors", City: "Golden State", Abbreviation: "GSW"},
	{ID: "1610612745", Name: "Houston Rockets", Nickname: "Rockets", City: "Houston", Abbreviation: "HOU"},
	{ID: "1610612754", Name: "Indiana Pacers", Nickname: "Pacers", City: "Indiana", Abbreviation: "IND"},
	{ID: "1610612746", Name: "Los Angeles Clippers", Nickname: "Clippers", City: "Los Angeles", Abbreviation: "LAC"},
	{ID: "1610612747", Name: "Los Angeles Lakers", Nickname: "Lakers", City: "Los Angeles", Abbreviation: "LAL"},
	{ID: "1610612763", Name: "Memphis Grizzlies", Nickname: "Grizzlies", City: "Memphis", Abbreviation: "MEM"},
	{ID: "1610612748", Name: "Miami Heat", Nickname: "Heat", City: "Miami", Abbreviation: "MIA"},
	{ID: "1610612749", Name: "Milwaukee Bucks", Nickname: "Bucks", City: "Milwaukee", Abbreviation: "MIL"},
	{ID: "1610612750", Name: "Minnesota Timberwolves", Nickname: "Timberwolves", City: "Minnesota", Abbreviation: "MIN"},
	{ID: "1610612740", Name: "New Orleans Pelicans", Nickname: "Pelicans", City: "New Orleans", Abbreviation: "NOP"},
	{ID: "1610612752", Name: "New York Knicks", Nickname: "Knicks", City: "New York", Abbreviation: "NYK"},
	{ID: "1610612760", Name: "Oklahoma City Thunder", Nickname: "Thunder", City: "Oklahoma City", Abbreviation: "OKC"},
	{ID: "1610612753", Name: "Orlando Magic", Nickname: "Magic", City: "Orlando", Abbreviation: "ORL"},
	{ID: "1610612755", Name: "Philadelphia 76ers", Nickname: "76ers", City: "Philadelphia", Abbreviation: "PHI"},
	{ID: "1610612756", Name: "Phoenix Suns", Nickname: "Suns", City: "Phoenix", Abbreviation: "PHX"},
	{ID: "1610612757", Name: "Portland Trail Blazers", Nickname: "Trail Blazers", City: "Portland", Abbreviation: "POR"},
	{ID: "1610612758", Name: "Sacramento Kings", Nickname: "Kings", City: "Sacramento", Abbreviation: "SAC"},
	{ID: "1610612759", Name: "San Antonio Spurs", Nickname: "Spurs", City: "San Antonio", Abbreviation: "SAS"},
	{ID: "1610612761", Name: "Toronto Raptors", Nickname: "Raptors", City: "Toronto", Abbreviation: "TOR"},
	{ID: "1610612762", Name: "Utah Jazz", Nickname: "Jazz", City: "Utah", Abbreviation: "UTA"},
	{ID: "1610612764", Name: "Washington Wizards", Nickname: "Wizards", City: "Washington", Abbreviation: "WAS"},
}
