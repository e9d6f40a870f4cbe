package checks

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner  lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	summary lipgloss.Style
	hint    lipgloss.Style
	rule    lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	return styles{
		banner: lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			Width(bannerWidth).
			Align(lipgloss.Center),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		fail:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		summary: lipgloss.NewStyle().Bold(true),
		hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section: lipgloss.NewStyle().MarginTop(1),
	}
}
