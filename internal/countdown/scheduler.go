package countdown

import (
	"sync"
	"time"
)

// Handle cancels a scheduled periodic callback. Cancel is safe to call
// more than once and from within the callback itself.
type Handle interface {
	Cancel()
}

// Scheduler invokes a function at a fixed cadence until the returned
// handle is canceled. Implementations decide where the callback runs;
// the widget assumes all invocations are serialized.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// TickerScheduler backs each scheduled callback with a time.Ticker on
// its own goroutine. Canceling the handle stops future invocations and
// releases the ticker.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{stop: make(chan struct{})}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-t.C:
				fn()
			}
		}
	}()
	return h
}

type tickerHandle struct {
	stop chan struct{}
	once sync.Once
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() { close(h.stop) })
}
