package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	warning     lipgloss.Style
	pending     lipgloss.Style
	section     lipgloss.Style
	heading     lipgloss.Style
	sectionName lipgloss.Style
	body        lipgloss.Style
	empty       lipgloss.Style
	userLabel   lipgloss.Style
	systemLabel lipgloss.Style
	errorReply  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		warning:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:     lipgloss.NewStyle().MarginTop(1),
		heading:     lipgloss.NewStyle().Bold(true).Underline(true),
		sectionName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:       lipgloss.NewStyle().Faint(true),
		userLabel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		systemLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("150")),
		errorReply:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
