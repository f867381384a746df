package listing

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the quiescence window used by the search boxes.
const DefaultSearchDelay = 300 * time.Millisecond

// Debouncer emits a value only after it has stopped changing for a fixed
// delay. Each Set restarts the timer, so a burst of rapid changes produces
// at most one emission: the final value. Values are delivered on C.
type Debouncer[T any] struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool

	out chan T
}

// NewDebouncer creates a Debouncer with the given delay. A non-positive
// delay falls back to DefaultSearchDelay.
func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Debouncer[T]{
		delay: delay,
		out:   make(chan T, 1),
	}
}

// Set records a new raw value, cancelling any pending emission.
// After the delay elapses with no further Set calls, v is sent on C.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.emit(v)
	})
}

// C returns the channel on which debounced values are delivered.
// The channel has a buffer of one; if a value is still unread when the next
// emission fires, the stale value is replaced.
func (d *Debouncer[T]) C() <-chan T {
	return d.out
}

// Stop cancels any pending emission. No value is delivered after Stop
// returns, and subsequent Set calls are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) emit(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	// Drop an unread stale value so the latest one always wins.
	select {
	case <-d.out:
	default:
	}
	d.out <- v
}
