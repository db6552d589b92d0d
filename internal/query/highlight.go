package query

import (
	"html"
	"strings"
)

const (
	markOpen  = `<mark class="highlight">`
	markClose = `</mark>`
)

// Highlight escapes text for HTML rendering and wraps every matched
// substring in a <mark> element. Both matched and unmatched segments
// are escaped first, so event content can never inject markup.
func Highlight(text string, m *Matcher) string {
	spans := m.Spans(text)
	if len(spans) == 0 {
		return html.EscapeString(text)
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(html.EscapeString(text[last:span[0]]))
		b.WriteString(markOpen)
		b.WriteString(html.EscapeString(text[span[0]:span[1]]))
		b.WriteString(markClose)
		last = span[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}

// Decorate wraps every matched substring of text using the supplied
// render function, leaving the rest untouched. The terminal adapters
// use it with a lipgloss style where Highlight would emit HTML.
func Decorate(text string, m *Matcher, render func(string) string) string {
	spans := m.Spans(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(text[last:span[0]])
		b.WriteString(render(text[span[0]:span[1]]))
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
