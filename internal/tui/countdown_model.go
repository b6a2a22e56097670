package tui

import (
	"time"

	"github.com/akyairhashvil/tickdown/internal/config"
	"github.com/akyairhashvil/tickdown/internal/countdown"
	"github.com/akyairhashvil/tickdown/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// CountdownModel drives a single countdown widget. The widget's two
// capabilities are backed by TUI state: the surface is the pane View
// renders, and the scheduler forwards TickMsg deliveries. Those live
// behind pointers so they survive bubbletea's value-copy update cycle.
type CountdownModel struct {
	widget   *countdown.Widget
	surface  *paneSurface
	sched    *teaScheduler
	notice   *notice
	progress progress.Model
	width    int
	height   int
}

type notice struct {
	text string
}

// NewCountdownModel builds the countdown screen and starts it ticking
// from the given number of seconds.
func NewCountdownModel(seconds int) CountdownModel {
	surface := newPaneSurface()
	sched := &teaScheduler{}
	n := &notice{}

	reg := countdown.NewRegistry()
	reg.Register(config.SurfaceID, surface)

	widget := countdown.Begin(reg, config.SurfaceID, seconds, sched, countdown.Config{
		Format:     formatFor(seconds),
		OnComplete: func() { n.text = "Time! Press r to wind it back up." },
	})

	p := progress.New(progress.WithDefaultGradient())
	p.Width = config.TargetProgressWidth

	return CountdownModel{
		widget:   widget,
		surface:  surface,
		sched:    sched,
		notice:   n,
		progress: p,
	}
}

// formatFor widens the clock to show hours only when the duration needs
// them.
func formatFor(seconds int) string {
	if seconds >= 3600 {
		return "hh:mm:ss"
	}
	return config.DefaultFormat
}

func (m CountdownModel) Init() tea.Cmd {
	return tickCmd()
}

func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m CountdownModel) handleWindowSize(msg tea.WindowSizeMsg) (CountdownModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.TargetProgressWidth)
	}
	return m, nil
}

func (m CountdownModel) handleTick(msg TickMsg) (CountdownModel, tea.Cmd) {
	m.sched.Dispatch()
	newProg, progCmd := m.progress.Update(msg)
	m.progress = newProg.(progress.Model)
	return m, tea.Batch(tickCmd(), progCmd)
}

func (m CountdownModel) handleKey(msg tea.KeyMsg) (CountdownModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s", " ":
		m.widget.Start()
	case "p":
		m.widget.Pause()
	case "r":
		m.notice.text = ""
		m.widget.Reset()
	}
	return m, nil
}

// elapsedFraction reports how much of the countdown has run, for the
// progress bar.
func (m CountdownModel) elapsedFraction() float64 {
	total := m.widget.Total()
	if total == 0 {
		return 1
	}
	return float64(total-m.widget.Remaining()) / float64(total)
}
