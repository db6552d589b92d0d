package storage

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestExportImportRoundTrip(t *testing.T) {
	want := sampleEvents()

	var buf bytes.Buffer
	if err := ExportJSON(&buf, want); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	got, err := ImportJSON(&buf)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("imported %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestImportAcceptsNumericDuration(t *testing.T) {
	input := `[{"id":"evt_1","title":"Gym","date":"2024-03-01","duration":1.5,"tag":"fitness"}]`
	events, err := ImportJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("imported %d events, want 1", len(events))
	}
	if string(events[0].Duration) != "1.5" {
		t.Fatalf("duration = %q, want %q", events[0].Duration, "1.5")
	}
}

func TestImportRejections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed json", `{"id":`, "invalid JSON file"},
		{"not an array", `{"id":"x"}`, "data must be an array"},
		{"element not object", `[42]`, "event at index 0 is not an object"},
		{"missing id", `[{"title":"a","date":"2024-03-01","duration":"1","tag":"t"}]`, "event at index 0 missing valid id"},
		{"empty title", `[{"id":"x","title":"","date":"2024-03-01","duration":"1","tag":"t"}]`, "event at index 0 missing valid title"},
		{"numeric date", `[{"id":"x","title":"a","date":20240301,"duration":"1","tag":"t"}]`, "event at index 0 missing valid date"},
		{"missing duration", `[{"id":"x","title":"a","date":"2024-03-01","tag":"t"}]`, "event at index 0 missing valid duration"},
		{"boolean duration", `[{"id":"x","title":"a","date":"2024-03-01","duration":true,"tag":"t"}]`, "event at index 0 missing valid duration"},
		{"missing tag", `[{"id":"x","title":"a","date":"2024-03-01","duration":"1"}]`, "event at index 0 missing valid tag"},
		{
			"second element bad",
			`[{"id":"x","title":"a","date":"2024-03-01","duration":"1","tag":"t"},{"id":"","title":"b","date":"2024-03-02","duration":"1","tag":"t"}]`,
			"event at index 1 missing valid id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ImportJSON accepted invalid payload")
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("error = %q, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestImportDoesNotRequireFormValidity(t *testing.T) {
	// Import is structural only: values that would fail form validation
	// (a date that is not a calendar day, a 40-hour duration) pass.
	input := `[{"id":"x","title":"a","date":"2024-02-30","duration":"40","tag":"Tag1"}]`
	events, err := ImportJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("imported %d events, want 1", len(events))
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, time.March, 1, 15, 4, 5, 0, time.UTC)
	if got := ExportFileName(now); got != "campus_events_2024-03-01.json" {
		t.Fatalf("ExportFileName = %q", got)
	}
}

func TestExportEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, nil); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("ExportJSON = %q, want empty array", buf.String())
	}
}
