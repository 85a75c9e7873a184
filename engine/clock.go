package engine

import (
	"sync"
	"time"
)

// Clock drives the per-frame callback while an active phase requires redraw.
// The subscription is the sole scoped resource in the engine: it is added
// only on entering an active phase and must be released on every exit path,
// including forced teardown.
type Clock interface {
	// Start begins delivering ticks to fn. Starting an already running clock
	// is a no-op: re-entering an active phase while a subscription is live
	// must not create a second one.
	Start(fn func(now time.Time))

	// Stop cancels the subscription. Idempotent.
	Stop()

	// Running reports whether a subscription is live.
	Running() bool
}

// TickerClock delivers ticks from a background ticker at a fixed interval.
type TickerClock struct {
	interval time.Duration
	time     TimeProvider

	mu     sync.Mutex
	stopCh chan struct{}
}

// NewTickerClock creates a clock ticking every interval.
func NewTickerClock(interval time.Duration, tp TimeProvider) *TickerClock {
	if tp == nil {
		tp = NewSystemTimeProvider()
	}
	return &TickerClock{interval: interval, time: tp}
}

// Start launches the tick loop. No-op while already running.
func (c *TickerClock) Start(fn func(now time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopCh != nil {
		return
	}

	stop := make(chan struct{})
	c.stopCh = stop

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// Re-check so a tick racing the cancel is dropped, not
				// delivered after Stop.
				select {
				case <-stop:
					return
				default:
				}
				fn(c.time.Now())
			}
		}
	}()
}

// Stop cancels the tick loop. Safe to call from inside a tick callback, which
// is how the engine cancels the clock when a tick completes the Exiting phase.
func (c *TickerClock) Stop() {
	c.mu.Lock()
	stop := c.stopCh
	c.stopCh = nil
	c.mu.Unlock()

	if stop != nil {
		close(stop)
	}
}

// Running reports whether the tick loop is live.
func (c *TickerClock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopCh != nil
}

// ManualClock is a test clock fired by hand. It records how many times Start
// was invoked so tests can assert against double registration.
type ManualClock struct {
	mu         sync.Mutex
	fn         func(now time.Time)
	StartCalls int
}

// Start registers the callback. Starting a running clock is a counted no-op.
func (c *ManualClock) Start(fn func(now time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.StartCalls++
	if c.fn != nil {
		return
	}
	c.fn = fn
}

// Stop drops the callback.
func (c *ManualClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fn = nil
}

// Running reports whether a callback is registered.
func (c *ManualClock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fn != nil
}

// Fire delivers one tick at the given time, if subscribed.
func (c *ManualClock) Fire(now time.Time) {
	c.mu.Lock()
	fn := c.fn
	c.mu.Unlock()
	if fn != nil {
		fn(now)
	}
}
