// Package countdown implements a countdown-timer widget binding an
// integer duration to a text display surface. The surface and the
// periodic scheduler are injected capabilities, so the decrement,
// formatting, and callback logic runs the same against a terminal
// pane, a test fake, or anything else that can show a string.
package countdown

import (
	"github.com/akyairhashvil/tickdown/internal/config"
	"github.com/akyairhashvil/tickdown/internal/util"
)

// Config carries the construction options recognized by New.
type Config struct {
	// Format selects which clock components to render, as a
	// colon-separated subset of "hh", "mm", "ss". Empty means
	// config.DefaultFormat.
	Format string

	// OnTick, when set, is invoked after every decrement with the
	// remaining whole seconds.
	OnTick func(remaining int)

	// OnComplete, when set, is invoked once per completion event.
	OnComplete func()
}

// Widget owns the countdown state for a single surface. All methods
// must be called from the goroutine that dispatches scheduler
// callbacks; there is exactly one mutator path, so the widget performs
// no locking of its own. A widget backed by TickerScheduler must be
// paused before it is discarded, otherwise its callback keeps firing.
type Widget struct {
	total      int
	remaining  int
	units      []unit
	surface    Surface
	sched      Scheduler
	handle     Handle
	onTick     func(int)
	onComplete func()
	completed  bool
}

// New resolves id against reg and builds a widget counting down from
// seconds, rendering the initial formatted duration immediately. If the
// identifier resolves to nothing the failure is logged and New returns
// nil; callers must check before calling Start.
func New(reg *Registry, id string, seconds int, sched Scheduler, cfg Config) *Widget {
	surface, ok := reg.Lookup(id)
	if !ok {
		util.Errorf("countdown: no surface registered for %q", id)
		return nil
	}
	if seconds < 0 {
		seconds = 0
	}
	format := cfg.Format
	if format == "" {
		format = config.DefaultFormat
	}
	w := &Widget{
		total:      seconds,
		remaining:  seconds,
		units:      parseFormat(format),
		surface:    surface,
		sched:      sched,
		onTick:     cfg.OnTick,
		onComplete: cfg.OnComplete,
	}
	w.render()
	return w
}

// Begin constructs a widget via New and immediately starts it, sparing
// callers the manual Start call. Returns nil when the surface
// identifier does not resolve.
func Begin(reg *Registry, id string, seconds int, sched Scheduler, cfg Config) *Widget {
	w := New(reg, id, seconds, sched, cfg)
	if w == nil {
		return nil
	}
	w.Start()
	return w
}

// Start schedules the once-per-second tick. Starting an already-running
// widget, or a completed one that has not been Reset, logs a warning
// and does nothing.
func (w *Widget) Start() {
	if w.handle != nil {
		util.Warnf("countdown: start ignored, already running")
		return
	}
	if w.completed {
		util.Warnf("countdown: start ignored after completion, reset first")
		return
	}
	w.handle = w.sched.Every(config.TickInterval, w.tick)
}

// Pause cancels the periodic callback without touching the remaining
// time. Pausing a stopped widget logs a warning and does nothing.
func (w *Widget) Pause() {
	if w.handle == nil {
		util.Warnf("countdown: pause ignored, not running")
		return
	}
	w.stop()
}

// Reset stops ticking if needed, restores the full duration, clears the
// completion marker, and re-renders. Ticking does not resume until
// Start is called again.
func (w *Widget) Reset() {
	w.stop()
	w.remaining = w.total
	w.completed = false
	w.surface.RemoveMarker(config.CompleteMarker)
	w.render()
}

// Complete forces the terminal visual state: ticking stops, the surface
// shows the zero rendering plus the completion marker, and OnComplete
// fires. Further calls are no-ops until Reset, so a stale scheduler
// callback landing after cancellation cannot re-fire the side effects.
func (w *Widget) Complete() {
	if w.completed {
		return
	}
	w.completed = true
	w.stop()
	w.remaining = 0
	w.render()
	w.surface.AddMarker(config.CompleteMarker)
	if w.onComplete != nil {
		w.onComplete()
	}
}

// Running reports whether a periodic callback is currently scheduled.
func (w *Widget) Running() bool { return w.handle != nil }

// Remaining returns the remaining whole seconds.
func (w *Widget) Remaining() int { return w.remaining }

// Total returns the construction-time duration in seconds.
func (w *Widget) Total() int { return w.total }

// Completed reports whether the widget is in its terminal visual state.
func (w *Widget) Completed() bool { return w.completed }

func (w *Widget) tick() {
	if w.remaining == 0 {
		w.Complete()
		return
	}
	w.remaining--
	w.render()
	if w.onTick != nil {
		w.onTick(w.remaining)
	}
	if w.remaining == 0 {
		w.Complete()
	}
}

func (w *Widget) stop() {
	if w.handle != nil {
		w.handle.Cancel()
		w.handle = nil
	}
}

func (w *Widget) render() {
	w.surface.SetText(formatClock(w.remaining, w.units))
}
