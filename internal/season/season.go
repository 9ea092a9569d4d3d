// Package season parses free-text season input ("25", "2025", "2024-25",
// "the 2017 to 2018 season") into a canonical season for a provider.
//
// Providers disagree on what a bare year means. stats.nba.com and CBBD read
// it as the year the season starts, sports-reference reads it as the year it
// ends. Each Convention encodes one of these calendars; they are kept apart
// on purpose and never unified.
package season

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Anchor says which end of the season a bare year names.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorEnd
)

// ParamStyle says how the season is passed to the provider's API.
type ParamStyle int

const (
	ParamLabel     ParamStyle = iota // "2024-25"
	ParamStartYear                   // "2024"
	ParamEndYear                     // "2025"
)

// Convention is a provider-local season calendar.
type Convention struct {
	Name string
	// CutoffMonth is the first month of a new season. Before it, the
	// default season is the one that started the previous calendar year.
	CutoffMonth time.Month
	BareYear    Anchor
	Param       ParamStyle
}

var (
	// NBA: stats.nba.com seasons roll over in August, bare year = start.
	NBA = Convention{Name: "nba", CutoffMonth: time.August, BareYear: AnchorStart, Param: ParamLabel}
	// CBBD: collegebasketballdata.com takes the start year as its season param.
	CBBD = Convention{Name: "cbbd", CutoffMonth: time.July, BareYear: AnchorStart, Param: ParamStartYear}
	// SportsReference: seasons are keyed by the year they end.
	SportsReference = Convention{Name: "sports-reference", CutoffMonth: time.July, BareYear: AnchorEnd, Param: ParamEndYear}
)

// Season is a resolved season.
type Season struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"` // "YYYY-YY"
	Param string `json:"param"` // value sent to the provider
}

func (s Season) String() string {
	return s.Label
}

var (
	noise   = regexp.MustCompile(`season|the|\s`)
	pattern = regexp.MustCompile(`^(\d{2,4})(?:-|to)?(\d{2,4})?`)
)

// Parse resolves input using the current time.
func (c Convention) Parse(input string) Season {
	return c.ParseAt(input, time.Now())
}

// ParseAt resolves input against now. Unparseable or empty input falls back
// to the season in progress at now; it never fails.
func (c Convention) ParseAt(input string, now time.Time) Season {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return c.Default(now)
	}
	s = noise.ReplaceAllString(s, "")
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return c.Default(now)
	}

	first, second := m[1], m[2]
	var start, end int
	switch {
	case second != "" && c.BareYear == AnchorEnd:
		end = expandYear(second)
		start = end - 1
	case second != "":
		start = expandYear(first)
		end = expandYear(second)
	case c.BareYear == AnchorEnd:
		end = expandYear(first)
		start = end - 1
	default:
		start = expandYear(first)
		end = start + 1
	}
	return c.make(start, end)
}

// Default is the season in progress at now.
func (c Convention) Default(now time.Time) Season {
	start := now.Year()
	if now.Month() < c.CutoffMonth {
		start--
	}
	return c.FromStart(start)
}

// FromStart builds the season that starts in year.
func (c Convention) FromStart(year int) Season {
	return c.make(year, year+1)
}

func (c Convention) make(start, end int) Season {
	s := Season{
		Start: start,
		End:   end,
		Label: Label(start, end),
	}
	switch c.Param {
	case ParamStartYear:
		s.Param = strconv.Itoa(start)
	case ParamEndYear:
		s.Param = strconv.Itoa(end)
	default:
		s.Param = s.Label
	}
	return s
}

// Label formats a season as "YYYY-YY".
func Label(start, end int) string {
	return fmt.Sprintf("%d-%02d", start, end%100)
}

// expandYear turns a 2-digit year into a full year pivoting at 50.
// Four-digit years are taken as written.
func expandYear(tok string) int {
	v, _ := strconv.Atoi(tok)
	if len(tok) == 4 {
		return v
	}
	v %= 100
	if v < 50 {
		return 2000 + v
	}
	return 1900 + v
}

// labelPattern matches a canonical season label inside a file name.
var labelPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParseLabel parses a canonical "YYYY-YY" label.
func ParseLabel(label string) (Season, bool) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return Season{}, false
	}
	start, _ := strconv.Atoi(m[1])
	yy, _ := strconv.Atoi(m[2])
	end := start - start%100 + yy
	if end <= start {
		end += 100
	}
	return Season{Start: start, End: end, Label: label, Param: label}, true
}
