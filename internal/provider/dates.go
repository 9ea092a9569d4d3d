package provider

import (
	"strings"
	"time"
)

// DateLayout is the canonical game date format used throughout the workbooks.
const DateLayout = "2006-01-02"

// pacific is the zone game times are reported in ("Game Time (PST)").
var pacific = loadPacific()

func loadPacific() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.FixedZone("PST", -8*3600)
	}
	return loc
}

// Timestamp layouts carry a time of day and are converted to Pacific time
// before the date is taken.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z", // ESPN-style, no seconds
	"2006-01-02T15:04:05.000Z",
}

// Calendar layouts are already local dates.
var calendarLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"Jan 2, 2006",      // stats.nba.com GAME_DATE ("OCT 22, 2024")
	"Mon, Jan 2, 2006", // sports-reference schedule
	"Mon, January 2, 2006",
	"01/02/2006",
}

// NormalizeDate converts a provider date or timestamp into YYYY-MM-DD.
// Unparseable input is returned trimmed but otherwise unchanged so the row
// still groups consistently.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(pacific).Format(DateLayout)
		}
	}
	for _, layout := range calendarLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout)
		}
	}
	return s
}
