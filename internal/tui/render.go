package tui

import (
	"strings"

	"github.com/akyairhashvil/tickdown/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m CountdownModel) View() string {
	clockStyle := CurrentTheme.Clock
	status := "RUNNING"
	if m.surface.Has(config.CompleteMarker) {
		clockStyle = CurrentTheme.Complete
		status = "COMPLETE"
	} else if !m.widget.Running() {
		status = "PAUSED"
	}

	header := CurrentTheme.Header.Render("T I C K D O W N")
	clock := clockStyle.Render(m.surface.Text())
	bar := m.progress.ViewAs(m.elapsedFraction())
	hints := CurrentTheme.Dim.Render("[s] start  [p] pause  [r] reset  [q] quit")

	lines := []string{header, "", clock, "", bar, "", CurrentTheme.Dim.Render(status)}
	if m.notice.text != "" {
		lines = append(lines, CurrentTheme.Notice.Render(m.notice.text))
	}
	lines = append(lines, "", hints)

	innerWidth := config.MinPaneWidth
	for _, l := range lines {
		if w := ansi.StringWidth(l); w > innerWidth {
			innerWidth = w
		}
	}

	var content strings.Builder
	for i, l := range lines {
		content.WriteString(centerLine(l, innerWidth))
		if i < len(lines)-1 {
			content.WriteString("\n")
		}
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2)
	pane := frame.Render(content.String())
	if m.width > 0 {
		pane = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, pane)
	}
	return CurrentTheme.Base.Render(pane)
}

// centerLine pads s to width, accounting for ANSI escapes.
func centerLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
