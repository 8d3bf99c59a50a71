// Package reload keeps the catalog in sync with its data source. A
// filesystem watcher feeds change events into a debouncer so that a burst of
// writes triggers exactly one reload, after a quiet period.
package reload

import (
	"sync"
	"time"
)

// DefaultQuiet is the debounce quiet period: the catalog is rebuilt only
// after the source has stopped changing for this long.
const DefaultQuiet = 300 * time.Millisecond

// Debouncer coalesces bursts of Trigger calls into a single fn invocation
// after a quiet period. Each Trigger restarts the pending timer, so only the
// last event within the window is ever acted on. Implemented as a timer plus
// a generation counter: a fired timer runs fn only when no newer Trigger has
// superseded it, which also makes Stop race-free.
//
// fn runs on a timer goroutine; it must synchronize its own state.
type Debouncer struct {
	quiet time.Duration
	fn    func()

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// NewDebouncer creates a Debouncer invoking fn after quiet. A non-positive
// quiet falls back to DefaultQuiet.
func NewDebouncer(quiet time.Duration, fn func()) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{quiet: quiet, fn: fn}
}

// Trigger (re)starts the quiet-period timer, cancelling any pending
// invocation.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		stale := gen != d.gen
		d.mu.Unlock()
		if !stale {
			d.fn()
		}
	})
}

// Stop cancels any pending invocation. Further Triggers restart the cycle.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
