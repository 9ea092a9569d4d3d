package trend

import (
	"sort"

	"github.com/luxsports/datahub/internal/provider"
)

// Thresholds lists the prop lines tracked per stat.
type Thresholds map[provider.Stat][]int

// DefaultThresholds returns the standard prop lines.
func DefaultThresholds() Thresholds {
	return Thresholds{
		provider.StatPoints:   {10, 15, 20, 25, 30, 35},
		provider.StatAssists:  {3, 5, 7, 10},
		provider.StatRebounds: {5, 8, 10, 12, 15},
		provider.StatThrees:   {1, 2, 3, 4, 5},
	}
}

// For returns the lines for stat, falling back to the defaults.
func (t Thresholds) For(stat provider.Stat) []int {
	if v, ok := t[stat]; ok && len(v) > 0 {
		return v
	}
	return DefaultThresholds()[stat]
}

// Display limits for grouped chip lists.
const (
	TrendsDefaultShown   = 10
	TrendsMaxShown       = 20
	PerfectsDefaultShown = 15
	PerfectsMaxShown     = 40
	MinShown             = 5
)

// TopN decides how many of n results to show. Five or fewer are all shown;
// otherwise requested (or def when requested is zero) is clamped to
// [MinShown, min(limit, n)].
func TopN(n, requested, def, limit int) int {
	if n <= MinShown {
		return n
	}
	upper := min(limit, n)
	if upper <= MinShown {
		return upper
	}
	v := requested
	if v <= 0 {
		v = def
	}
	if v > upper {
		v = upper
	}
	if v < MinShown {
		v = MinShown
	}
	return v
}

// Group is a run of results sharing one threshold.
type Group[T any] struct {
	Threshold int
	Items     []T
}

// GroupByThreshold buckets items by threshold, ascending, keeping each
// bucket in input order.
func GroupByThreshold[T any](items []T, threshold func(T) int) []Group[T] {
	idx := make(map[int]int)
	var groups []Group[T]
	for _, it := range items {
		th := threshold(it)
		i, ok := idx[th]
		if !ok {
			i = len(groups)
			idx[th] = i
			groups = append(groups, Group[T]{Threshold: th})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Threshold < groups[j].Threshold
	})
	return groups
}
