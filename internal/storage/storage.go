// Package storage persists the planner's data through a small
// key-value contract. Two backends implement it: a file-per-key store
// and a SQLite database. Serialization of the event collection and the
// theme preference lives here so backends only ever see opaque blobs.
package storage

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/hafizd/campusplan/internal/event"
)

const (
	// KeyEvents holds the full event collection as a JSON array.
	KeyEvents = "campusEvents"
	// KeyTheme holds the theme preference as a plain string.
	KeyTheme = "campusTheme"
)

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Backend is the persistence collaborator: load returns the blob for a
// key when one exists, save replaces it.
type Backend interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadEvents reads the persisted collection. A missing key yields an
// empty collection, not an error.
func LoadEvents(b Backend) ([]event.Event, error) {
	data, ok, err := b.Load(KeyEvents)
	if err != nil || !ok {
		return nil, err
	}
	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SaveEvents writes the full collection.
func SaveEvents(b Backend, events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return b.Save(KeyEvents, data)
}

// LoadTheme returns the persisted theme preference, defaulting to
// light for a missing or unrecognized value. Read failures also fall
// back to the default; the theme is never worth failing over.
func LoadTheme(b Backend) string {
	data, ok, err := b.Load(KeyTheme)
	if err != nil || !ok {
		return ThemeLight
	}
	if theme := string(data); theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SaveTheme persists the theme preference.
func SaveTheme(b Backend, theme string) error {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return b.Save(KeyTheme, []byte(theme))
}
