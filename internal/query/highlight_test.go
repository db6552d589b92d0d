package query

import (
	"strings"
	"testing"
)

func TestHighlightWrapsMatches(t *testing.T) {
	m := NewMatcher("fair")
	got := Highlight("Career fair prep", m)
	want := `Career <mark class="highlight">fair</mark> prep`
	if got != want {
		t.Fatalf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightEscapesMarkup(t *testing.T) {
	m := NewMatcher("a")
	got := Highlight("a<b", m)
	if !strings.Contains(got, "&lt;") {
		t.Fatalf("Highlight = %q, want escaped angle bracket", got)
	}
	stripped := strings.ReplaceAll(got, markOpen, "")
	stripped = strings.ReplaceAll(stripped, markClose, "")
	if strings.ContainsAny(stripped, "<>") {
		t.Fatalf("Highlight leaked raw markup outside marks: %q", got)
	}
}

func TestHighlightEscapesMatchedSegment(t *testing.T) {
	m := NewMatcher("<b>")
	got := Highlight("bold <b> tag", m)
	want := `bold <mark class="highlight">&lt;b&gt;</mark> tag`
	if got != want {
		t.Fatalf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightWithoutMatcherEscapesOnly(t *testing.T) {
	if got := Highlight("a<b", nil); got != "a&lt;b" {
		t.Fatalf("Highlight with nil matcher = %q, want %q", got, "a&lt;b")
	}
	if got := Highlight("", NewMatcher("x")); got != "" {
		t.Fatalf("Highlight of empty text = %q, want empty", got)
	}
}

func TestHighlightZeroWidthPattern(t *testing.T) {
	// Patterns that can match empty strings must not produce empty marks.
	m := NewMatcher("x*")
	got := Highlight("abc", m)
	if strings.Contains(got, markOpen) {
		t.Fatalf("Highlight wrapped zero-width matches: %q", got)
	}
}

func TestDecorate(t *testing.T) {
	m := NewMatcher("fair")
	got := Decorate("Career fair", m, func(s string) string { return "[" + s + "]" })
	if got != "Career [fair]" {
		t.Fatalf("Decorate = %q, want %q", got, "Career [fair]")
	}

	if got := Decorate("plain", nil, strings.ToUpper); got != "plain" {
		t.Fatalf("Decorate with nil matcher = %q, want unchanged", got)
	}
}
