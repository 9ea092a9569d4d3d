package dashboard

import (
	"github.com/luxsports/datahub/internal/aggregate"
	"github.com/luxsports/datahub/internal/provider"
)

// Colors is a background/text pair.
type Colors struct {
	BG   string `json:"bg"`
	Text string `json:"text"`
}

// Highlight marks stat cells at or above Threshold.
type Highlight struct {
	Threshold int
	Colors
	Legend string
}

var highlights = map[provider.Stat]Highlight{
	provider.StatPoints:   {10, Colors{"#FFF4D2", "#4A3B1C"}, "🥇 Gold highlight = Player scored more than 10 points"},
	provider.StatAssists:  {3, Colors{"#E6E0FF", "#2F2545"}, "👑 Royal highlight = Player recorded 3 or more assists"},
	provider.StatRebounds: {5, Colors{"#E0FFE6", "#1F3A2E"}, "🟢 Highlight = Player grabbed 5+ rebounds"},
	provider.StatThrees:   {2, Colors{"#E0F2FF", "#123047"}, "🎯 Highlight = Player made 2+ 3-pointers"},
}

// HighlightFor returns the cell highlight of a stat.
func HighlightFor(stat provider.Stat) Highlight {
	return highlights[stat]
}

// Chip colors per stat and threshold.
var palettes = map[provider.Stat]map[int]Colors{
	provider.StatPoints: {
		10: {"#F7C948", "#111827"},
		15: {"#F4A300", "#111827"},
		20: {"#E66F00", "#FFFFFF"},
		25: {"#C83C00", "#FFFFFF"},
		30: {"#B91C1C", "#FFFFFF"},
		35: {"#7F1D1D", "#FFFFFF"},
	},
	provider.StatAssists: {
		3:  {"#3B82F6", "#FFFFFF"},
		5:  {"#2563EB", "#FFFFFF"},
		7:  {"#7C3AED", "#FFFFFF"},
		10: {"#6D28D9", "#FFFFFF"},
	},
	provider.StatRebounds: {
		5:  {"#34D399", "#064E3B"},
		8:  {"#10B981", "#FFFFFF"},
		10: {"#059669", "#FFFFFF"},
		12: {"#047857", "#FFFFFF"},
		15: {"#065F46", "#FFFFFF"},
	},
	provider.StatThrees: {
		1: {"#BFDBFE", "#111827"},
		2: {"#93C5FD", "#111827"},
		3: {"#60A5FA", "#FFFFFF"},
		4: {"#3B82F6", "#FFFFFF"},
		5: {"#1D4ED8", "#FFFFFF"},
	},
}

const (
	PercentColor  = "#10B981"
	headerDefault = "#F9A826"
)

var chipDefault = Colors{"#F7C948", "#111827"}

// ChipColors returns the chip colors for a threshold. Thresholds outside
// the palette (custom config) get the default gold chip.
func ChipColors(stat provider.Stat, threshold int) Colors {
	if c, ok := palettes[stat][threshold]; ok {
		return c
	}
	return chipDefault
}

// HeaderColor is the text color of a threshold group header.
func HeaderColor(stat provider.Stat, threshold int) string {
	if c, ok := palettes[stat][threshold]; ok {
		return c.BG
	}
	return headerDefault
}

// Row colors of the team totals table.
var outcomeColors = map[aggregate.Outcome]Colors{
	aggregate.Win:  {"#DCFCE7", "#14532D"},
	aggregate.Loss: {"#FEE2E2", "#991B1B"},
	aggregate.Tie:  {"#E5E7EB", "#111827"},
}

// Stat tab labels.
var statIcons = map[provider.Stat]string{
	provider.StatPoints:   "🥇",
	provider.StatAssists:  "👑",
	provider.StatRebounds: "🟢",
	provider.StatThrees:   "🎯",
}
