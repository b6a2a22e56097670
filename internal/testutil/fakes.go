// Package testutil provides in-memory fakes and builders shared by the
// countdown and tui tests.
package testutil

import (
	"time"

	"github.com/akyairhashvil/tickdown/internal/countdown"
)

// RecordingSurface captures every mutation made to it so tests can
// assert on render history as well as final state.
type RecordingSurface struct {
	Texts   []string
	Markers map[string]bool
}

func NewSurface() *RecordingSurface {
	return &RecordingSurface{Markers: make(map[string]bool)}
}

func (s *RecordingSurface) SetText(text string) {
	s.Texts = append(s.Texts, text)
}

func (s *RecordingSurface) AddMarker(name string) {
	s.Markers[name] = true
}

func (s *RecordingSurface) RemoveMarker(name string) {
	delete(s.Markers, name)
}

// Text returns the most recently rendered string.
func (s *RecordingSurface) Text() string {
	if len(s.Texts) == 0 {
		return ""
	}
	return s.Texts[len(s.Texts)-1]
}

func (s *RecordingSurface) HasMarker(name string) bool {
	return s.Markers[name]
}

// ManualScheduler hands tick cadence control to the test. Fire invokes
// the most recently scheduled callback even after its handle was
// canceled, which is exactly the stale-callback delivery the widget has
// to tolerate.
type ManualScheduler struct {
	fn        func()
	active    bool
	Schedules int
	Interval  time.Duration
}

func NewScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) countdown.Handle {
	s.fn = fn
	s.active = true
	s.Schedules++
	s.Interval = interval
	return manualHandle{s}
}

// Fire delivers one tick to the scheduled callback, if any.
func (s *ManualScheduler) Fire() {
	if s.fn != nil {
		s.fn()
	}
}

// FireN delivers n ticks.
func (s *ManualScheduler) FireN(n int) {
	for i := 0; i < n; i++ {
		s.Fire()
	}
}

// Active reports whether the current handle is still scheduled.
func (s *ManualScheduler) Active() bool {
	return s.active
}

type manualHandle struct {
	s *ManualScheduler
}

func (h manualHandle) Cancel() {
	h.s.active = false
}
