package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title lipgloss.Style
	step  lipgloss.Style
	body  lipgloss.Style
	panel lipgloss.Style
	dim   lipgloss.Style
	track lipgloss.Style
}

func defaultStyles() styles {
	subtle := lipgloss.AdaptiveColor{Light: "245", Dark: "244"}
	border := lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		step:  lipgloss.NewStyle().Foreground(subtle).Transform(strings.ToUpper),
		body:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "238", Dark: "252"}),
		panel: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		dim:   lipgloss.NewStyle().Foreground(subtle),
		track: lipgloss.NewStyle().Foreground(border),
	}
}
