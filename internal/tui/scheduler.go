package tui

import (
	"time"

	"github.com/akyairhashvil/tickdown/internal/countdown"
)

// teaScheduler adapts the widget's scheduling capability to the
// bubbletea update loop. The program's TickMsg cadence already matches
// the widget's interval, so Every just parks the callback and Dispatch
// forwards each TickMsg to it while the handle is live.
type teaScheduler struct {
	fn     func()
	active bool
}

func (s *teaScheduler) Every(_ time.Duration, fn func()) countdown.Handle {
	s.fn = fn
	s.active = true
	return teaHandle{s}
}

// Dispatch runs the scheduled callback, if one is active.
func (s *teaScheduler) Dispatch() {
	if s.active && s.fn != nil {
		s.fn()
	}
}

type teaHandle struct {
	s *teaScheduler
}

func (h teaHandle) Cancel() {
	h.s.active = false
}
