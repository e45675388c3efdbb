package clock

import (
	"sync"
	"time"
)

// Clock abstracts time to keep usecases deterministic in tests.
// Times are device-local: day attribution follows the local calendar.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Ticker schedules a repeating callback at a fixed cadence. Schedule
// replaces any previously scheduled source, so at most one tick source
// is live at a time. The callback runs to completion before the next
// tick is delivered; ticks arriving in the meantime are dropped.
type Ticker interface {
	Schedule(interval time.Duration, fn func())
	Cancel()
}

type SystemTicker struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewSystemTicker() *SystemTicker {
	return &SystemTicker{}
}

func (t *SystemTicker) Schedule(interval time.Duration, fn func()) {
	t.Cancel()
	stop := make(chan struct{})
	done := make(chan struct{})
	t.mu.Lock()
	t.stop = stop
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

// Cancel stops the tick source and joins its goroutine, so no callback
// is still running once Cancel returns. Calling Cancel from inside the
// callback would deadlock.
func (t *SystemTicker) Cancel() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}
