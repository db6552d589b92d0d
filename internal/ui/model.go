package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hafizd/campusplan/internal/config"
	"github.com/hafizd/campusplan/internal/event"
	"github.com/hafizd/campusplan/internal/query"
	"github.com/hafizd/campusplan/internal/storage"
	"github.com/hafizd/campusplan/internal/store"
)

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 5 * time.Second

var sortKeys = []string{"date", "title", "duration"}

var formFields = []string{"title", "date", "duration", "tag", "description"}

// Model owns Bubble Tea state for the interactive planner.
type Model struct {
	ctx     context.Context
	store   *store.Store
	backend storage.Backend

	mode      mode
	selected  int
	filterTag string
	searching bool
	search    textinput.Model
	sortKey   string

	theme  string
	styles styles

	// form state for add/edit
	inputs     []textinput.Model
	focused    int
	formErrors map[string]string

	// transient status line; seq invalidates stale dismiss ticks
	statusLine string
	statusErr  bool
	statusSeq  int
}

type mode uint8

const (
	modeNormal mode = iota
	modeForm
	modeConfirmDelete
)

// statusExpiredMsg dismisses the status line identified by seq. A
// newer status bumps the sequence, so the pending dismissal of an
// older one is ignored instead of cutting the new message short.
type statusExpiredMsg struct {
	seq int
}

// NewModel seeds a Bubble Tea model with its collaborators.
func NewModel(ctx context.Context, st *store.Store, backend storage.Backend, cfg *config.Config) Model {
	theme := storage.LoadTheme(backend)

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search (regex or text)"
	search.CharLimit = 120

	inputs := make([]textinput.Model, len(formFields))
	for i, field := range formFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = field
		in.CharLimit = 200
		inputs[i] = in
	}

	return Model{
		ctx:       ctx,
		store:     st,
		backend:   backend,
		filterTag: query.FilterAll,
		search:    search,
		sortKey:   cfg.DefaultSort,
		theme:     theme,
		styles:    newStyles(theme),
		inputs:    inputs,
	}
}

// Init is a no-op: the store is loaded before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires TUI state transitions from user input and timers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.statusLine = ""
			m.statusErr = false
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(m.visible())-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "x", " ":
		return m.toggleSelected()
	case "a":
		return m.beginAdd()
	case "e":
		return m.beginEdit()
	case "d":
		if len(m.visible()) > 0 {
			m.mode = modeConfirmDelete
		}
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "f":
		m.cycleFilter()
	case "s":
		m.cycleSort()
	case "T":
		return m.toggleTheme()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.selected = 0
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.selected = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeNormal
		visible := m.visible()
		if m.selected >= len(visible) {
			return m, nil
		}
		target := visible[m.selected]
		if m.store.Delete(target.ID) {
			if m.selected > 0 {
				m.selected--
			}
			return m.setStatus(fmt.Sprintf("Deleted %q.", target.Title), false)
		}
		return m.setStatus("Event already gone.", true)
	case "n", "N", "esc":
		m.mode = modeNormal
		return m.setStatus("Delete cancelled.", false)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) beginAdd() (tea.Model, tea.Cmd) {
	m.store.ClearEditing()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	return m.openForm()
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	visible := m.visible()
	if m.selected >= len(visible) {
		return m, nil
	}
	target := visible[m.selected]
	m.store.SetEditing(target.ID)

	m.inputs[0].SetValue(target.Title)
	m.inputs[1].SetValue(target.Date)
	m.inputs[2].SetValue(string(target.Duration))
	m.inputs[3].SetValue(target.Tag)
	m.inputs[4].SetValue(target.Description)
	return m.openForm()
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.mode = modeForm
	m.formErrors = nil
	m.focused = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	return m, textinput.Blink
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.store.ClearEditing()
		return m.setStatus("Cancelled.", false)
	case tea.KeyEnter:
		if m.focused == len(m.inputs)-1 {
			return m.submitForm()
		}
		return m.focusField(m.focused + 1)
	case tea.KeyTab, tea.KeyDown:
		return m.focusField(m.focused + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.focusField(m.focused - 1)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) focusField(index int) (tea.Model, tea.Cmd) {
	if index < 0 {
		index = len(m.inputs) - 1
	}
	if index >= len(m.inputs) {
		index = 0
	}
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
	return m, textinput.Blink
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	fields := event.Fields{
		Title:       m.inputs[0].Value(),
		Date:        m.inputs[1].Value(),
		Duration:    m.inputs[2].Value(),
		Tag:         m.inputs[3].Value(),
		Description: m.inputs[4].Value(),
	}

	if errs := event.ValidateForm(fields); len(errs) > 0 {
		m.formErrors = errs
		return m.setStatus("Please fix validation errors.", true)
	}

	if editing, ok := m.store.Editing(); ok {
		m.store.Update(editing.ID, event.Partial{
			Title:       &fields.Title,
			Date:        &fields.Date,
			Duration:    &fields.Duration,
			Tag:         &fields.Tag,
			Description: &fields.Description,
		})
		m.store.ClearEditing()
		m.mode = modeNormal
		return m.setStatus("Event updated.", false)
	}

	m.store.Add(fields)
	m.mode = modeNormal
	return m.setStatus("Event created.", false)
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	visible := m.visible()
	if m.selected >= len(visible) {
		return m, nil
	}
	target := visible[m.selected]
	if !m.store.ToggleComplete(target.ID) {
		return m.setStatus("Event already gone.", true)
	}
	toggled, _ := m.store.Get(target.ID)
	if toggled.Completed {
		return m.setStatus(fmt.Sprintf("Completed %q.", toggled.Title), false)
	}
	return m.setStatus(fmt.Sprintf("Reopened %q.", toggled.Title), false)
}

// cycleFilter steps through "all" plus every tag currently in use.
func (m *Model) cycleFilter() {
	tags := append([]string{query.FilterAll}, m.store.UniqueTags()...)
	next := 0
	for i, tag := range tags {
		if tag == m.filterTag {
			next = (i + 1) % len(tags)
			break
		}
	}
	m.filterTag = tags[next]
	m.selected = 0
}

func (m *Model) cycleSort() {
	for i, key := range sortKeys {
		if key == m.sortKey {
			m.sortKey = sortKeys[(i+1)%len(sortKeys)]
			return
		}
	}
	m.sortKey = sortKeys[0]
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == storage.ThemeDark {
		m.theme = storage.ThemeLight
	} else {
		m.theme = storage.ThemeDark
	}
	m.styles = newStyles(m.theme)
	if err := storage.SaveTheme(m.backend, m.theme); err != nil {
		return m.setStatus("Theme changed but not saved.", true)
	}
	return m.setStatus(fmt.Sprintf("Theme: %s.", m.theme), false)
}

// setStatus shows a transient message and schedules its dismissal.
func (m Model) setStatus(line string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusLine = line
	m.statusErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// visible runs the fixed pipeline over the collection:
// filter by tag, then search, then sort.
func (m Model) visible() []event.Event {
	events := m.store.All()
	events = query.FilterByTag(events, m.filterTag)
	events = query.Search(events, m.search.Value())
	events = query.Sort(events, m.sortKey)
	return events
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.header.Render("campusplan"))
	stats := m.store.Stats()
	b.WriteString(fmt.Sprintf("  %d events, %d done, %sh total", stats.Total, stats.Completed, stats.TotalHours))
	b.WriteByte('\n')
	b.WriteString(m.styles.help.Render(fmt.Sprintf("filter: %s  sort: %s", m.filterTag, m.sortKey)))
	b.WriteString("\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if m.mode == modeForm {
		m.renderForm(&b)
	} else {
		m.renderList(&b)
	}

	if m.mode == modeConfirmDelete {
		b.WriteString("\nDelete selected event? (y/n)\n")
	}

	if m.statusLine != "" {
		b.WriteByte('\n')
		if m.statusErr {
			b.WriteString(m.styles.errorLine.Render("! " + m.statusLine))
		} else {
			b.WriteString(m.styles.status.Render(m.statusLine))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.styles.help.Render("j/k select  space/x toggle  a add  e edit  d delete  / search  f filter  s sort  T theme  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderList(b *strings.Builder) {
	events := m.visible()
	if len(events) == 0 {
		b.WriteString("(no events)\n")
		return
	}

	matcher := query.NewMatcher(m.search.Value())
	mark := func(s string) string { return m.styles.highlight.Render(s) }

	for i, e := range events {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}

		status := "[ ]"
		if e.Completed {
			status = "[x]"
		}

		title := query.Decorate(e.Title, matcher, mark)
		if e.Completed {
			title = m.styles.done.Render(title)
		}
		tag := m.styles.tag.Render("#" + query.Decorate(e.Tag, matcher, mark))

		line := fmt.Sprintf("%s%s %s (%sh) %s %s", cursor, status, e.Date, e.Duration, title, tag)
		if i == m.selected {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func (m Model) renderForm(b *strings.Builder) {
	title := "New event"
	if _, ok := m.store.Editing(); ok {
		title = "Edit event"
	}
	b.WriteString(m.styles.header.Render(title))
	b.WriteString("\n\n")

	for i, field := range formFields {
		marker := "  "
		if i == m.focused {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-12s %s\n", marker, field, m.inputs[i].View()))
		if msg, ok := m.formErrors[field]; ok {
			b.WriteString("               ")
			b.WriteString(m.styles.fieldErr.Render(msg))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(m.styles.help.Render("enter next/submit  tab/shift+tab move  esc cancel"))
	b.WriteByte('\n')
}
