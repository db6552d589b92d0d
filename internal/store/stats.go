package store

import (
	"fmt"
	"sort"
	"time"
)

// Stats summarizes the current collection for the dashboard.
type Stats struct {
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	TotalHours string `json:"totalHours"`
	TopTag     string `json:"topTag"`
	Recent     int    `json:"recentEvents"`
}

// Stats computes derived statistics over the collection: counts, the
// duration sum formatted to one decimal, the most frequent tag (ties
// broken by the lexicographically smallest tag), and how many events
// fall within the trailing seven days, inclusive.
func (s *Store) Stats() Stats {
	stats := Stats{
		Total:  len(s.events),
		TopTag: "None",
	}

	var hours float64
	counts := make(map[string]int)
	cutoff := recentCutoff(s.now())

	for _, e := range s.events {
		if e.Completed {
			stats.Completed++
		}
		hours += e.Duration.Value()
		counts[e.Tag]++

		if date, err := time.Parse("2006-01-02", e.Date); err == nil && !date.Before(cutoff) {
			stats.Recent++
		}
	}
	stats.TotalHours = fmt.Sprintf("%.1f", hours)

	best := 0
	for tag, n := range counts {
		if n > best || (n == best && tag < stats.TopTag) {
			best = n
			stats.TopTag = tag
		}
	}

	return stats
}

// UniqueTags returns the distinct tag values, case-sensitive, sorted
// ascending.
func (s *Store) UniqueTags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, e := range s.events {
		if _, ok := seen[e.Tag]; ok {
			continue
		}
		seen[e.Tag] = struct{}{}
		tags = append(tags, e.Tag)
	}
	sort.Strings(tags)
	return tags
}

// recentCutoff is midnight seven days before now, so "seven days ago"
// counts regardless of the current time of day.
func recentCutoff(now time.Time) time.Time {
	week := now.AddDate(0, 0, -7)
	return time.Date(week.Year(), week.Month(), week.Day(), 0, 0, 0, 0, time.UTC)
}
