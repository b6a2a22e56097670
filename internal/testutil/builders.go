package testutil

import (
	"github.com/akyairhashvil/tickdown/internal/countdown"
)

// WidgetBuilder provides a fluent API for creating test widgets wired
// to a RecordingSurface and a ManualScheduler.
type WidgetBuilder struct {
	id      string
	seconds int
	cfg     countdown.Config
}

func NewWidget() *WidgetBuilder {
	return &WidgetBuilder{id: "main", seconds: 3}
}

func (b *WidgetBuilder) WithID(id string) *WidgetBuilder {
	b.id = id
	return b
}

func (b *WidgetBuilder) WithDuration(seconds int) *WidgetBuilder {
	b.seconds = seconds
	return b
}

func (b *WidgetBuilder) WithFormat(format string) *WidgetBuilder {
	b.cfg.Format = format
	return b
}

func (b *WidgetBuilder) WithOnTick(fn func(int)) *WidgetBuilder {
	b.cfg.OnTick = fn
	return b
}

func (b *WidgetBuilder) WithOnComplete(fn func()) *WidgetBuilder {
	b.cfg.OnComplete = fn
	return b
}

// Build registers a fresh surface under the builder's identifier and
// constructs the widget against it.
func (b *WidgetBuilder) Build() (*countdown.Widget, *RecordingSurface, *ManualScheduler) {
	surface := NewSurface()
	sched := NewScheduler()
	reg := countdown.NewRegistry()
	reg.Register(b.id, surface)
	return countdown.New(reg, b.id, b.seconds, sched, b.cfg), surface, sched
}
