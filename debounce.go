package sift

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period applied to free-text input before
// the query is parsed and applied.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces a burst of inputs into one callback invocation:
// each Trigger cancels the pending timer and restarts the quiet period
// with the latest value. It is the only asynchronous piece of the filter
// core; everything else runs synchronously.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(string)
}

// NewDebouncer creates a Debouncer invoking fn after delay of quiet.
// A non-positive delay falls back to DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger restarts the quiet period with the given value. Only the value
// from the last Trigger before the period elapses reaches the callback.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fn(value) })
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush cancels the pending timer and invokes the callback immediately
// with the given value.
func (d *Debouncer) Flush(value string) {
	d.Stop()
	d.fn(value)
}
