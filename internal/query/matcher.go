package query

import (
	"regexp"
	"strings"
)

// Compile attempts to build a case-insensitive regular expression from
// a user-supplied pattern. The boolean result replaces exception-style
// control flow: callers branch instead of recovering.
func Compile(pattern string) (*regexp.Regexp, bool) {
	if strings.TrimSpace(pattern) == "" {
		return nil, false
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, false
	}
	return re, true
}

// Matcher matches event text against a search query. A query that
// compiles as a regular expression is used as one; anything else falls
// back to a literal case-insensitive substring match. The same matcher
// drives both filtering and highlighting, so the two always agree.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher builds a matcher for the query, or nil when the query is
// empty or whitespace-only (meaning: match nothing, filter nothing).
func NewMatcher(query string) *Matcher {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	if re, ok := Compile(q); ok {
		return &Matcher{re: re}
	}
	return &Matcher{re: regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))}
}

// Match reports whether s contains the query. A nil matcher matches
// nothing.
func (m *Matcher) Match(s string) bool {
	if m == nil || s == "" {
		return false
	}
	return m.re.MatchString(s)
}

// Spans returns the [start, end) byte ranges of every non-empty match
// in s, in order.
func (m *Matcher) Spans(s string) [][2]int {
	if m == nil || s == "" {
		return nil
	}
	var spans [][2]int
	for _, loc := range m.re.FindAllStringIndex(s, -1) {
		if loc[1] > loc[0] {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	return spans
}
