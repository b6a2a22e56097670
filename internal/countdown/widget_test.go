package countdown_test

import (
	"testing"

	"github.com/akyairhashvil/tickdown/internal/config"
	"github.com/akyairhashvil/tickdown/internal/countdown"
	"github.com/akyairhashvil/tickdown/internal/testutil"
)

func TestNewRendersInitialDuration(t *testing.T) {
	for _, seconds := range []int{0, 3, 65, 3661} {
		w, surface, _ := testutil.NewWidget().WithDuration(seconds).WithFormat("hh:mm:ss").Build()
		if w == nil {
			t.Fatalf("expected widget for duration %d", seconds)
		}
		if w.Remaining() != seconds {
			t.Fatalf("remaining = %d, want %d", w.Remaining(), seconds)
		}
		if len(surface.Texts) != 1 {
			t.Fatalf("expected exactly one initial render, got %d", len(surface.Texts))
		}
	}
}

func TestNewUnknownSurface(t *testing.T) {
	reg := countdown.NewRegistry()
	w := countdown.New(reg, "nowhere", 10, testutil.NewScheduler(), countdown.Config{})
	if w != nil {
		t.Fatalf("expected nil widget for unresolved surface")
	}
}

func TestDefaultFormat(t *testing.T) {
	_, surface, _ := testutil.NewWidget().WithDuration(65).Build()
	if surface.Text() != "01:05" {
		t.Fatalf("default format rendered %q, want 01:05", surface.Text())
	}
}

func TestStartTicksDown(t *testing.T) {
	var ticks []int
	w, surface, sched := testutil.NewWidget().
		WithDuration(3).
		WithOnTick(func(remaining int) { ticks = append(ticks, remaining) }).
		Build()

	w.Start()
	if !w.Running() {
		t.Fatalf("expected widget to be running after Start")
	}
	sched.Fire()
	if w.Remaining() != 2 {
		t.Fatalf("remaining = %d after one tick, want 2", w.Remaining())
	}
	if surface.Text() != "00:02" {
		t.Fatalf("display = %q after one tick, want 00:02", surface.Text())
	}
	if len(ticks) != 1 || ticks[0] != 2 {
		t.Fatalf("unexpected onTick values: %v", ticks)
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	w, _, sched := testutil.NewWidget().WithDuration(10).Build()
	w.Start()
	w.Start()
	if sched.Schedules != 1 {
		t.Fatalf("expected a single schedule, got %d", sched.Schedules)
	}
	sched.Fire()
	if w.Remaining() != 9 {
		t.Fatalf("double start must not double-decrement: remaining = %d", w.Remaining())
	}
}

func TestPauseAndResume(t *testing.T) {
	w, _, sched := testutil.NewWidget().WithDuration(10).Build()
	w.Start()
	sched.FireN(4)
	w.Pause()
	if w.Running() {
		t.Fatalf("expected widget to stop after Pause")
	}
	if sched.Active() {
		t.Fatalf("expected handle to be canceled")
	}
	if w.Remaining() != 6 {
		t.Fatalf("pause must not alter remaining: got %d", w.Remaining())
	}

	w.Start()
	sched.Fire()
	if w.Remaining() != 5 {
		t.Fatalf("resume must continue from paused value: got %d", w.Remaining())
	}
}

func TestPauseWhileStoppedIsNoop(t *testing.T) {
	w, _, sched := testutil.NewWidget().WithDuration(10).Build()
	w.Pause()
	if w.Remaining() != 10 || sched.Schedules != 0 {
		t.Fatalf("pause on a stopped widget must change nothing")
	}
}

func TestReset(t *testing.T) {
	w, surface, sched := testutil.NewWidget().WithDuration(5).Build()
	w.Start()
	sched.FireN(3)
	w.Reset()
	if w.Remaining() != 5 {
		t.Fatalf("reset must restore the full duration: got %d", w.Remaining())
	}
	if w.Running() {
		t.Fatalf("reset must not auto-start")
	}
	if surface.Text() != "00:05" {
		t.Fatalf("reset must re-render, got %q", surface.Text())
	}
}

func TestCompletion(t *testing.T) {
	completions := 0
	w, surface, sched := testutil.NewWidget().
		WithDuration(3).
		WithOnComplete(func() { completions++ }).
		Build()

	if surface.Text() != "00:03" {
		t.Fatalf("initial display = %q, want 00:03", surface.Text())
	}
	w.Start()
	sched.FireN(3)

	if surface.Text() != "00:00" {
		t.Fatalf("display = %q at expiry, want 00:00", surface.Text())
	}
	if !surface.HasMarker(config.CompleteMarker) {
		t.Fatalf("expected completion marker at expiry")
	}
	if completions != 1 {
		t.Fatalf("onComplete fired %d times, want 1", completions)
	}
	if !w.Completed() || w.Running() {
		t.Fatalf("expected completed, stopped widget")
	}

	// Stale callbacks delivered after cancellation must not re-fire the
	// completion side effects.
	sched.FireN(2)
	if completions != 1 {
		t.Fatalf("stale ticks re-fired completion: %d", completions)
	}
}

func TestStartAfterCompletionRequiresReset(t *testing.T) {
	w, _, sched := testutil.NewWidget().WithDuration(1).Build()
	w.Start()
	sched.Fire()
	if !w.Completed() {
		t.Fatalf("expected completion after final tick")
	}

	w.Start()
	if w.Running() {
		t.Fatalf("start after completion must be a no-op until reset")
	}

	w.Reset()
	w.Start()
	sched.Fire()
	if !w.Completed() {
		t.Fatalf("expected a fresh completion after reset")
	}
}

func TestResetClearsCompletionMarker(t *testing.T) {
	onCompletes := 0
	w, surface, sched := testutil.NewWidget().
		WithDuration(2).
		WithOnComplete(func() { onCompletes++ }).
		Build()
	w.Start()
	sched.FireN(2)
	if !surface.HasMarker(config.CompleteMarker) {
		t.Fatalf("expected marker before reset")
	}

	w.Reset()
	if surface.HasMarker(config.CompleteMarker) {
		t.Fatalf("reset must clear the completion marker")
	}

	// The widget is reusable: a second run completes again.
	w.Start()
	sched.FireN(2)
	if onCompletes != 2 {
		t.Fatalf("expected one completion per run, got %d", onCompletes)
	}
}

func TestForcedComplete(t *testing.T) {
	completions := 0
	w, surface, _ := testutil.NewWidget().
		WithDuration(30).
		WithOnComplete(func() { completions++ }).
		Build()

	w.Complete()
	if surface.Text() != "00:00" {
		t.Fatalf("forced completion must render zero, got %q", surface.Text())
	}
	if !surface.HasMarker(config.CompleteMarker) || completions != 1 {
		t.Fatalf("forced completion side effects missing")
	}

	w.Complete()
	if completions != 1 {
		t.Fatalf("repeated Complete must be idempotent, fired %d", completions)
	}
}

func TestBegin(t *testing.T) {
	surface := testutil.NewSurface()
	sched := testutil.NewScheduler()
	reg := countdown.NewRegistry()
	reg.Register("pane", surface)

	w := countdown.Begin(reg, "pane", 10, sched, countdown.Config{})
	if w == nil || !w.Running() {
		t.Fatalf("Begin must return a started widget")
	}

	if got := countdown.Begin(reg, "missing", 10, sched, countdown.Config{}); got != nil {
		t.Fatalf("Begin with unresolved surface must return nil")
	}
}
