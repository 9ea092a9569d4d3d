// Package teams resolves free-text team input ("Lakers", "LAL",
// "los angeles lakers", "Duke") against a provider's team list.
package teams

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/luxsports/datahub/internal/provider"
)

// Suggestion defaults used by the CLI when a team is not found.
const (
	DefaultSuggestions = 10
	DefaultCutoff      = 0.4
)

// Normalize lowercases s and drops everything but letters and digits.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Find returns the first team whose name, nickname or city+nickname
// contains the normalized input, or whose abbreviation equals it.
func Find(input string, list []provider.Team) (provider.Team, bool) {
	target := Normalize(input)
	if target == "" {
		return provider.Team{}, false
	}
	for _, t := range list {
		if matches(target, t) {
			return t, true
		}
	}
	return provider.Team{}, false
}

func matches(target string, t provider.Team) bool {
	if abbr := Normalize(t.Abbreviation); abbr != "" && target == abbr {
		return true
	}
	candidates := []string{t.Name, t.Nickname}
	if t.City != "" && t.Nickname != "" {
		candidates = append(candidates, t.City+t.Nickname)
	}
	for _, c := range candidates {
		if n := Normalize(c); n != "" && strings.Contains(n, target) {
			return true
		}
	}
	return false
}

// Suggest returns up to n team names similar to input, best first.
func Suggest(input string, list []provider.Team, n int, cutoff float64) []string {
	labels := make([]string, 0, len(list))
	for _, t := range list {
		if t.Name != "" {
			labels = append(labels, t.Name)
		}
	}
	return CloseMatches(input, labels, n, cutoff)
}

type scored struct {
	score float64
	label string
}

// CloseMatches ranks possibilities by SequenceMatcher ratio against word and
// keeps those scoring at least cutoff. Ties sort by label, descending.
func CloseMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if n <= 0 || word == "" {
		return nil
	}

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(strings.Split(word, ""))

	var hits []scored
	for _, p := range possibilities {
		m.SetSeq1(strings.Split(p, ""))
		if m.RealQuickRatio() >= cutoff && m.QuickRatio() >= cutoff {
			if r := m.Ratio(); r >= cutoff {
				hits = append(hits, scored{score: r, label: p})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].label > hits[j].label
	})
	if len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.label
	}
	return out
}

// Examples returns the first n team labels formatted as "Name (ABBR)".
func Examples(list []provider.Team, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	out := make([]string, 0, n)
	for _, t := range list[:n] {
		if t.Abbreviation != "" {
			out = append(out, t.Name+"  ("+t.Abbreviation+")")
		} else {
			out = append(out, t.Name)
		}
	}
	return out
}
