package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Border   lipgloss.Color
	Header   lipgloss.Style
	Clock    lipgloss.Style
	Complete lipgloss.Style
	Dim      lipgloss.Style
	Input    lipgloss.Style
	Notice   lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("63"),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Clock:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Complete: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Blink(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(30),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	},
	"mono": {
		Name:     "Mono",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("250"),
		Header:   lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		Clock:    lipgloss.NewStyle().Bold(true),
		Complete: lipgloss.NewStyle().Bold(true).Reverse(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(30),
		Notice:   lipgloss.NewStyle().Bold(true),
	},
}

var CurrentTheme = Themes["default"]
