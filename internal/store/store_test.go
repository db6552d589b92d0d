package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hafizd/campusplan/internal/event"
	"github.com/hafizd/campusplan/internal/storage"
)

// memBackend is an in-memory storage.Backend that can be told to fail.
type memBackend struct {
	data    map[string][]byte
	saves   int
	failing bool
}

func newMemBackend() *memBackend {
	return &memBackend{data: make(map[string][]byte)}
}

func (m *memBackend) Load(key string) ([]byte, bool, error) {
	data, ok := m.data[key]
	return data, ok, nil
}

func (m *memBackend) Save(key string, data []byte) error {
	if m.failing {
		return errors.New("quota exceeded")
	}
	m.saves++
	m.data[key] = data
	return nil
}

func newTestStore(t *testing.T, backend storage.Backend) *Store {
	t.Helper()
	seq := 0
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	return New(backend, zerolog.Nop(),
		WithClock(func() time.Time {
			now = now.Add(time.Minute)
			return now
		}),
		WithIDFunc(func() string {
			seq++
			return fmt.Sprintf("evt_%d", seq)
		}),
	)
}

func validFields() event.Fields {
	return event.Fields{
		Title:       "Robotics workshop",
		Date:        "2024-03-01",
		Duration:    "2.5",
		Tag:         "club",
		Description: "Build day",
	}
}

func TestAddAssignsIdentityAndTimestamps(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	created := s.Add(validFields())
	if created.ID == "" {
		t.Fatal("Add returned empty id")
	}
	if created.Completed {
		t.Fatal("new event should not be completed")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("timestamps differ at creation: %s vs %s", created.CreatedAt, created.UpdatedAt)
	}

	got, ok := s.Get(created.ID)
	if !ok {
		t.Fatal("Get after Add: not found")
	}
	if got != created {
		t.Fatalf("Get = %#v, want %#v", got, created)
	}

	second := s.Add(validFields())
	if second.ID == created.ID {
		t.Fatalf("Add reused id %q", second.ID)
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	s := newTestStore(t, newMemBackend())
	created := s.Add(validFields())

	title := "Late workshop"
	if !s.Update(created.ID, event.Partial{Title: &title}) {
		t.Fatal("Update reported failure")
	}

	got, _ := s.Get(created.ID)
	if got.Title != title {
		t.Fatalf("Title = %q, want %q", got.Title, title)
	}
	if got.Date != created.Date || got.Duration != created.Duration ||
		got.Tag != created.Tag || got.Description != created.Description {
		t.Fatalf("Update touched unrelated fields: %#v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("Update changed CreatedAt")
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("Update did not refresh UpdatedAt")
	}
}

func TestUpdateUnknownIdIsNoOp(t *testing.T) {
	backend := newMemBackend()
	s := newTestStore(t, backend)
	s.Add(validFields())
	savesBefore := backend.saves

	notified := false
	s.Subscribe(func() { notified = true })

	title := "x"
	if s.Update("evt_missing", event.Partial{Title: &title}) {
		t.Fatal("Update of unknown id reported success")
	}
	if notified {
		t.Fatal("Update of unknown id notified observers")
	}
	if backend.saves != savesBefore {
		t.Fatal("Update of unknown id persisted")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t, newMemBackend())
	created := s.Add(validFields())

	if !s.Delete(created.ID) {
		t.Fatal("Delete reported failure")
	}
	if _, ok := s.Get(created.ID); ok {
		t.Fatal("event still present after Delete")
	}
	if s.Delete(created.ID) {
		t.Fatal("second Delete reported success")
	}
}

func TestToggleCompleteIsIdempotentUnderDoubleApplication(t *testing.T) {
	s := newTestStore(t, newMemBackend())
	created := s.Add(validFields())

	if !s.ToggleComplete(created.ID) {
		t.Fatal("first toggle failed")
	}
	afterFirst, _ := s.Get(created.ID)
	if !afterFirst.Completed {
		t.Fatal("first toggle did not complete the event")
	}
	if !afterFirst.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("first toggle did not refresh UpdatedAt")
	}

	if !s.ToggleComplete(created.ID) {
		t.Fatal("second toggle failed")
	}
	afterSecond, _ := s.Get(created.ID)
	if afterSecond.Completed {
		t.Fatal("double toggle did not restore original state")
	}
	if !afterSecond.UpdatedAt.After(afterFirst.UpdatedAt) {
		t.Fatal("second toggle did not refresh UpdatedAt")
	}

	if s.ToggleComplete("evt_missing") {
		t.Fatal("toggle of unknown id reported success")
	}
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	s := newTestStore(t, newMemBackend())
	created := s.Add(validFields())

	all := s.All()
	all[0].Title = "mutated"

	got, _ := s.Get(created.ID)
	if got.Title != created.Title {
		t.Fatal("mutating All() result reached store internals")
	}
}

func TestSetEventsReplacesWholesale(t *testing.T) {
	backend := newMemBackend()
	s := newTestStore(t, backend)
	s.Add(validFields())

	replacement := []event.Event{
		{ID: "imp_1", Title: "Imported", Date: "2024-04-01", Duration: "1", Tag: "misc"},
	}
	s.SetEvents(replacement)

	all := s.All()
	if len(all) != 1 || all[0].ID != "imp_1" {
		t.Fatalf("All after SetEvents = %#v", all)
	}
	if _, ok := backend.data[storage.KeyEvents]; !ok {
		t.Fatal("SetEvents did not persist")
	}
}

func TestEditingReferenceIsWeak(t *testing.T) {
	s := newTestStore(t, newMemBackend())
	created := s.Add(validFields())

	if _, ok := s.Editing(); ok {
		t.Fatal("Editing set before SetEditing")
	}

	s.SetEditing(created.ID)
	got, ok := s.Editing()
	if !ok || got.ID != created.ID {
		t.Fatalf("Editing = %#v ok=%v", got, ok)
	}

	s.Delete(created.ID)
	if _, ok := s.Editing(); ok {
		t.Fatal("Editing resolved a deleted event")
	}

	s.ClearEditing()
	if _, ok := s.Editing(); ok {
		t.Fatal("Editing set after ClearEditing")
	}
}

func TestObserversRunInOrderAndUnsubscribe(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	var calls []string
	s.Subscribe(func() { calls = append(calls, "first") })
	unsub := s.Subscribe(func() { calls = append(calls, "second") })
	s.Subscribe(func() { calls = append(calls, "third") })

	s.Add(validFields())
	if len(calls) != 3 || calls[0] != "first" || calls[1] != "second" || calls[2] != "third" {
		t.Fatalf("calls = %v, want registration order", calls)
	}

	calls = nil
	unsub()
	s.Add(validFields())
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "third" {
		t.Fatalf("calls after unsubscribe = %v", calls)
	}
}

func TestObserverPanicIsIsolated(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	reached := false
	s.Subscribe(func() { panic("observer bug") })
	s.Subscribe(func() { reached = true })

	s.Add(validFields())
	if !reached {
		t.Fatal("panicking observer blocked the next one")
	}
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	backend := newMemBackend()
	backend.failing = true
	s := newTestStore(t, backend)

	created := s.Add(validFields())
	if _, ok := s.Get(created.ID); !ok {
		t.Fatal("failed persist dropped the in-memory mutation")
	}
}

func TestLoadReadsBackendState(t *testing.T) {
	backend := newMemBackend()
	first := newTestStore(t, backend)
	created := first.Add(validFields())

	second := newTestStore(t, backend)
	if err := second.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok := second.Get(created.ID)
	if !ok {
		t.Fatal("Load missed persisted event")
	}
	if got.Title != created.Title {
		t.Fatalf("Load title = %q, want %q", got.Title, created.Title)
	}
}
