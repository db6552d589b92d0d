package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/hafizd/campusplan/internal/event"
)

// ExportFileName returns the conventional export file name for the
// given day, e.g. campus_events_2024-03-01.json.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("campus_events_%s.json", now.Format("2006-01-02"))
}

// ExportJSON writes the collection as an indented JSON array. The
// output round-trips through ImportJSON unchanged.
func ExportJSON(w io.Writer, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// ImportJSON parses a user-supplied file and applies the lenient
// structural validation for imports: the payload must be an array, and
// each element needs a non-empty string id, title, date, and tag plus
// a duration of string or number type. This is deliberately weaker
// than form validation; imported data is trusted to have been exported
// by a planner. Any violation rejects the whole import, naming the
// offending index and field.
func ImportJSON(r io.Reader) ([]event.Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON file")
	}
	records, ok := payload.([]any)
	if !ok {
		return nil, fmt.Errorf("data must be an array")
	}

	for i, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("event at index %d is not an object", i)
		}
		for _, field := range []string{"id", "title", "date", "tag"} {
			if s, ok := obj[field].(string); !ok || s == "" {
				return nil, fmt.Errorf("event at index %d missing valid %s", i, field)
			}
		}
		switch d := obj["duration"].(type) {
		case string:
			if d == "" {
				return nil, fmt.Errorf("event at index %d missing valid duration", i)
			}
		case float64:
			if d == 0 {
				return nil, fmt.Errorf("event at index %d missing valid duration", i)
			}
		default:
			return nil, fmt.Errorf("event at index %d missing valid duration", i)
		}
	}

	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("invalid JSON file")
	}
	return events, nil
}
