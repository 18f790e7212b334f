// Package timer provides the cooperative countdown used for rest periods
// and the workout-duration clock. Owners must always call Stop on their
// teardown path, otherwise the ticking goroutine leaks.
package timer

import (
	"sync"
	"time"
)

type Timer struct {
	mutex     sync.Mutex
	interval  time.Duration
	remaining time.Duration
	running   bool
	stopped   bool

	onTick   func(remaining time.Duration)
	onExpire func()

	resume chan struct{}
	done   chan struct{}
}

// New creates a countdown over the given total duration, ticking once per
// interval. Callbacks may be nil. A zero total duration never expires and
// ticks until stopped, which is how the workout-duration clock uses it.
func New(total, interval time.Duration, onTick func(remaining time.Duration), onExpire func()) *Timer {
	return &Timer{
		interval:  interval,
		remaining: total,
		onTick:    onTick,
		onExpire:  onExpire,
		resume:    make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

// Start begins the countdown. It may be called once; subsequent calls are
// no-ops.
func (t *Timer) Start() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.running || t.stopped {
		return
	}
	t.running = true
	go t.run()
}

func (t *Timer) Pause() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.running = false
}

func (t *Timer) Resume() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.stopped || t.running {
		return
	}
	t.running = true
	select {
	case t.resume <- struct{}{}:
	default:
	}
}

// Stop cancels the timer for good and releases its goroutine. Safe to call
// multiple times and from any goroutine.
func (t *Timer) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.running = false
	close(t.done)
}

// Remaining returns the time left on the countdown.
func (t *Timer) Remaining() time.Duration {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.remaining
}

func (t *Timer) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
		}

		t.mutex.Lock()
		if t.stopped {
			t.mutex.Unlock()
			return
		}
		if !t.running {
			t.mutex.Unlock()
			// paused, wait until resumed or stopped
			select {
			case <-t.done:
				return
			case <-t.resume:
				ticker.Reset(t.interval)
				continue
			}
		}

		countingDown := t.remaining > 0
		if countingDown {
			t.remaining -= t.interval
			if t.remaining < 0 {
				t.remaining = 0
			}
		}
		remaining := t.remaining
		expired := countingDown && remaining == 0
		if expired {
			t.stopped = true
			t.running = false
		}
		t.mutex.Unlock()

		if t.onTick != nil {
			t.onTick(remaining)
		}
		if expired {
			if t.onExpire != nil {
				t.onExpire()
			}
			t.mutex.Lock()
			// done channel may already be closed by a concurrent Stop
			select {
			case <-t.done:
			default:
				close(t.done)
			}
			t.mutex.Unlock()
			return
		}
	}
}
