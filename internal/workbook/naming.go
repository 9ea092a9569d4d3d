package workbook

import (
	"path/filepath"
	"strings"

	"github.com/luxsports/datahub/internal/season"
)

// FileExt is the suffix every exported workbook name ends with.
const FileExt = "_stats.xlsx"

// Default labels for file names that do not carry the part.
const (
	UnknownTeam   = "Unknown Team"
	UnknownSeason = "Unknown"
	DefaultSport  = "NBA"
)

// suffixSports maps file-name sport suffixes to sport IDs. "ncaab" is the
// sports-reference export of the same men's game.
var suffixSports = map[string]string{
	"nba":   "NBA",
	"ncaam": "NCAAM",
	"ncaab": "NCAAM",
	"nfl":   "NFL",
	"ncaaf": "NCAAF",
	"wnba":  "WNBA",
	"ncaaw": "NCAAW",
}

// FileName builds "Los_Angeles_Lakers_2024-25_stats.xlsx" or, with a
// suffix, "Duke_2024-25_ncaam_stats.xlsx".
func FileName(team, seasonLabel, suffix string) string {
	parts := []string{strings.ReplaceAll(team, " ", "_"), seasonLabel}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, "_") + FileExt
}

// Info is what a workbook's file name says about it.
type Info struct {
	File   string `json:"file"`
	Team   string `json:"team"`
	Season string `json:"season"`
	Sport  string `json:"sport"`
}

// Label is the picker text, "Team (Season)".
func (i Info) Label() string {
	return i.Team + " (" + i.Season + ")"
}

// ParseFileName reverses FileName. Names without a sport suffix are NBA
// exports from before suffixes existed.
func ParseFileName(path string) Info {
	name := filepath.Base(path)
	info := Info{File: name, Sport: DefaultSport}

	base := name
	if strings.HasSuffix(strings.ToLower(base), FileExt) {
		base = base[:len(base)-len(FileExt)]
	}
	parts := strings.Split(base, "_")

	if n := len(parts); n > 0 {
		if sport, ok := suffixSports[strings.ToLower(parts[n-1])]; ok {
			info.Sport = sport
			parts = parts[:n-1]
		}
	}

	info.Season = UnknownSeason
	if n := len(parts); n > 0 {
		if s, ok := season.ParseLabel(parts[n-1]); ok {
			info.Season = s.Label
			parts = parts[:n-1]
		}
	}

	info.Team = strings.TrimSpace(strings.Join(parts, " "))
	if info.Team == "" {
		info.Team = UnknownTeam
	}
	return info
}

// IsWorkbook reports whether name looks like an exported workbook.
func IsWorkbook(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), FileExt) && !strings.HasPrefix(name, "~$")
}
