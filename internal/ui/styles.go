package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hafizd/campusplan/internal/storage"
)

// styles bundles the lipgloss styles for one theme. The theme
// preference is the persisted light|dark value; it only affects
// rendering, never the data model.
type styles struct {
	header    lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	tag       lipgloss.Style
	highlight lipgloss.Style
	status    lipgloss.Style
	errorLine lipgloss.Style
	fieldErr  lipgloss.Style
	help      lipgloss.Style
}

func newStyles(theme string) styles {
	if theme == storage.ThemeDark {
		return styles{
			header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
			selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
			tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("115")),
			highlight: lipgloss.NewStyle().Reverse(true),
			status:    lipgloss.NewStyle().Foreground(lipgloss.Color("115")),
			errorLine: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			fieldErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			help:      lipgloss.NewStyle().Faint(true),
		}
	}
	return styles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
		done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
		tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
		highlight: lipgloss.NewStyle().Reverse(true),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
		errorLine: lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		fieldErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		help:      lipgloss.NewStyle().Faint(true),
	}
}
