// Package tui renders pipeline progress and validation reports for the
// terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	groupStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	bannerPass    = lipgloss.NewStyle().Bold(true).Foreground(success)
	bannerFail    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// humanize turns a CamelCase check identifier into words. Names that
// are literal paths or filenames are left untouched.
func humanize(name string) string {
	if strings.ContainsAny(name, "./-_") {
		return name
	}
	words := camelcase.Split(name)
	for i, w := range words {
		if w != strings.ToUpper(w) {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}
