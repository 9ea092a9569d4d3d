package export

import "fmt"

// Result tracks counts and errors from exporting one team season.
type Result struct {
	Team        string
	Season      string
	File        string
	PlayersSeen int
	Records     int
	TeamGames   int
	Skipped     bool
	Archived    bool
	Errors      []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Written reports whether a workbook was saved.
func (r *Result) Written() bool {
	return r.File != "" && !r.Skipped
}

// Summary returns a human-readable summary of the export.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"team=%q season=%s players=%d records=%d team_games=%d skipped=%t errors=%d",
		r.Team, r.Season, r.PlayersSeen, r.Records, r.TeamGames, r.Skipped, len(r.Errors),
	)
}

// Batch tracks an export across every team of a season.
type Batch struct {
	Season  string
	Teams   int
	Written int
	Skipped int
	Failed  int
	Results []Result
	Errors  []string
}

// Add merges a team result into the batch.
func (b *Batch) Add(r Result) {
	b.Teams++
	switch {
	case r.Written():
		b.Written++
	case r.Skipped:
		b.Skipped++
	default:
		b.Failed++
	}
	b.Results = append(b.Results, r)
	for _, e := range r.Errors {
		b.Errors = append(b.Errors, r.Team+": "+e)
	}
}

// AddErrorf records a batch-level error.
func (b *Batch) AddErrorf(format string, args ...interface{}) {
	b.Errors = append(b.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the batch.
func (b *Batch) Summary() string {
	return fmt.Sprintf(
		"season=%s teams=%d written=%d skipped=%d failed=%d errors=%d",
		b.Season, b.Teams, b.Written, b.Skipped, b.Failed, len(b.Errors),
	)
}
