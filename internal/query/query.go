// Package query implements the pure transforms behind the planner's
// list view: filter by tag, free-text search, and sort. The adapters
// compose them in that fixed order over the store's event sequence.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hafizd/campusplan/internal/event"
)

// FilterAll is the tag value that disables tag filtering.
const FilterAll = "all"

var titleCollator = collate.New(language.English)

// FilterByTag keeps events whose tag equals the given tag,
// case-insensitively. The value "all" is the identity transform.
func FilterByTag(events []event.Event, tag string) []event.Event {
	if tag == FilterAll {
		return events
	}
	var out []event.Event
	for _, e := range events {
		if strings.EqualFold(e.Tag, tag) {
			out = append(out, e)
		}
	}
	return out
}

// Search keeps events whose title, tag, or description matches the
// query. A blank query is the identity transform. A description that
// is absent never matches.
func Search(events []event.Event, query string) []event.Event {
	m := NewMatcher(query)
	if m == nil {
		return events
	}
	var out []event.Event
	for _, e := range events {
		if m.Match(e.Title) || m.Match(e.Tag) || m.Match(e.Description) {
			out = append(out, e)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given key: "date" ascending,
// "title" in collation order, "duration" ascending numeric. Any other
// key preserves the input order. The sort is stable and never mutates
// its input.
func Sort(events []event.Event, key string) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)

	switch key {
	case "date":
		// ISO dates order lexicographically.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date < sorted[j].Date
		})
	case "title":
		sort.SliceStable(sorted, func(i, j int) bool {
			return titleCollator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case "duration":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Duration.Value() < sorted[j].Duration.Value()
		})
	}

	return sorted
}
