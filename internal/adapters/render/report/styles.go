package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	owner    lipgloss.Style
	section  lipgloss.Style
	heading  lipgloss.Style
	bill     lipgloss.Style
	detail   lipgloss.Style
	paid     lipgloss.Style
	deferred lipgloss.Style
	warning  lipgloss.Style
	card     lipgloss.Style
	total    lipgloss.Style
	empty    lipgloss.Style
	raw      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		owner:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		section:  lipgloss.NewStyle().MarginTop(1),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		bill:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("252")),
		detail:   lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("245")),
		paid:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("114")),
		deferred: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("179")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		card:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("159")),
		total:    lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("252")),
		empty:    lipgloss.NewStyle().Faint(true),
		raw:      lipgloss.NewStyle().PaddingLeft(4),
	}
}
