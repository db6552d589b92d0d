// Package store owns the live event collection: every mutation goes
// through it, is persisted to the storage backend, and is announced to
// subscribed observers. The store is single-owner state for a
// single-threaded interactive program; it performs no locking.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hafizd/campusplan/internal/event"
	"github.com/hafizd/campusplan/internal/storage"
)

// Store is the authoritative in-memory event collection.
type Store struct {
	backend storage.Backend
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string

	events    []event.Event
	editingID string
	observers []observer
	nextToken int
}

type observer struct {
	token int
	fn    func()
}

// Option customizes a Store, mainly for tests.
type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc replaces the event id generator.
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New constructs an empty store persisting through the given backend.
func New(backend storage.Backend, log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     log,
		now:     time.Now,
		newID:   func() string { return "evt_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with whatever the backend holds. Meant
// for startup; it does not persist or notify.
func (s *Store) Load() error {
	events, err := storage.LoadEvents(s.backend)
	if err != nil {
		return err
	}
	s.events = events
	return nil
}

// SetEvents replaces the entire collection verbatim, persists, and
// notifies. It does not validate; the import path runs its own lenient
// check first.
func (s *Store) SetEvents(events []event.Event) {
	s.events = make([]event.Event, len(events))
	copy(s.events, events)
	s.persist()
	s.notify()
}

// Add constructs a new event from validated fields, appends it, and
// returns it. The creation and update timestamps start out equal.
func (s *Store) Add(f event.Fields) event.Event {
	now := s.now()
	e := event.Event{
		ID:          s.newID(),
		Title:       f.Title,
		Date:        f.Date,
		Duration:    event.Hours(f.Duration),
		Tag:         f.Tag,
		Description: f.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.events = append(s.events, e)
	s.persist()
	s.notify()
	return e
}

// Update merges the given partial over the stored event. Fields left
// nil keep their current values; UpdatedAt is always refreshed. It
// reports false, without persisting or notifying, when no event has
// the id.
func (s *Store) Update(id string, p event.Partial) bool {
	i := s.index(id)
	if i == -1 {
		return false
	}

	e := &s.events[i]
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Duration != nil {
		e.Duration = event.Hours(*p.Duration)
	}
	if p.Tag != nil {
		e.Tag = *p.Tag
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	e.UpdatedAt = s.now()

	s.persist()
	s.notify()
	return true
}

// Delete removes the matching event, reporting whether one existed.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i == -1 {
		return false
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	s.persist()
	s.notify()
	return true
}

// ToggleComplete flips the completed flag and refreshes UpdatedAt.
func (s *Store) ToggleComplete(id string) bool {
	i := s.index(id)
	if i == -1 {
		return false
	}
	s.events[i].Completed = !s.events[i].Completed
	s.events[i].UpdatedAt = s.now()
	s.persist()
	s.notify()
	return true
}

// Get returns the event with the given id.
func (s *Store) Get(id string) (event.Event, bool) {
	if i := s.index(id); i != -1 {
		return s.events[i], true
	}
	return event.Event{}, false
}

// All returns a copy of the collection in insertion order. Mutating
// the result never affects the store.
func (s *Store) All() []event.Event {
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}

// SetEditing records which event is open for editing. The reference is
// weak: it is resolved against the live collection on read.
func (s *Store) SetEditing(id string) {
	s.editingID = id
}

// Editing resolves the editing reference. A deleted target reads as
// absent.
func (s *Store) Editing() (event.Event, bool) {
	if s.editingID == "" {
		return event.Event{}, false
	}
	return s.Get(s.editingID)
}

// ClearEditing drops the editing reference.
func (s *Store) ClearEditing() {
	s.editingID = ""
}

// Subscribe registers an observer called after every mutation, in
// registration order. The returned function unsubscribes it.
func (s *Store) Subscribe(fn func()) func() {
	s.nextToken++
	token := s.nextToken
	s.observers = append(s.observers, observer{token: token, fn: fn})
	return func() {
		for i, ob := range s.observers {
			if ob.token == token {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) index(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the collection through the backend. Failure is
// best-effort: the in-memory mutation stands for the rest of the
// session, and the error is only logged.
func (s *Store) persist() {
	if err := storage.SaveEvents(s.backend, s.events); err != nil {
		s.log.Warn().Err(err).Msg("persist failed, keeping in-memory state")
	}
}

func (s *Store) notify() {
	for _, ob := range s.observers {
		s.invoke(ob.fn)
	}
}

// invoke isolates observer panics so one failing observer cannot
// block the rest.
func (s *Store) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("observer panicked")
		}
	}()
	fn()
}
