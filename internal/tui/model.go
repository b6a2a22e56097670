package tui

import (
	"fmt"

	"github.com/akyairhashvil/tickdown/internal/config"
	"github.com/akyairhashvil/tickdown/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateConfiguring SessionState = iota
	StateCountdown
)

// MainModel is the root bubbletea model that switches between the
// duration prompt and the countdown screen.
type MainModel struct {
	state     SessionState
	textInput textinput.Model
	countdown CountdownModel
	err       error
	width     int
	height    int
}

func NewMainModel() MainModel {
	ti := textinput.New()
	ti.Placeholder = "mm:ss"
	ti.Focus()
	ti.CharLimit = config.MaxDurationInputLength
	ti.Width = 12

	return MainModel{
		state:     StateConfiguring,
		textInput: ti,
	}
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink // Keep the cursor blinking
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Propagate to the countdown screen if active
		if m.state == StateCountdown {
			newCd, cmd := m.countdown.Update(msg)
			m.countdown = newCd.(CountdownModel)
			return m, cmd
		}
	}

	switch m.state {
	case StateConfiguring:
		return m.updateConfiguring(msg)
	case StateCountdown:
		// Cast the return value back to CountdownModel to keep our state correct
		newCd, cmd := m.countdown.Update(msg)
		m.countdown = newCd.(CountdownModel)
		return m, cmd
	}

	return m, nil
}

func (m MainModel) updateConfiguring(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		if msg.Type == tea.KeyEnter {
			seconds, err := util.ParseClock(m.textInput.Value())
			if err != nil {
				m.err = fmt.Errorf("please enter a duration like 25:00, 1:30:00, or 90")
				return m, nil
			}

			// Transition state
			m.state = StateCountdown
			m.countdown = NewCountdownModel(seconds)
			m.countdown.width = m.width
			m.countdown.height = m.height
			return m, m.countdown.Init()
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	switch m.state {
	case StateConfiguring:
		view := fmt.Sprintf(
			"\n  %s\n\n  %s\n\n  %s\n",
			"Salutations. Define your countdown.",
			"How long? (hh:mm:ss, mm:ss, or bare seconds)",
			m.textInput.View(),
		)
		if m.err != nil {
			view += fmt.Sprintf("\n  %s\n", CurrentTheme.Notice.Render(m.err.Error()))
		}
		return view
	case StateCountdown:
		return m.countdown.View()
	}

	return ""
}
