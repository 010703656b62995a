// internal/app/system/debounce/debounce.go

// Package debounce coalesces bursts of trigger calls into a single delayed
// invocation. The sync feature uses it so that rapid manual refresh requests
// collapse into one upstream fetch after a short quiescence period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer invokes fn once the configured delay has elapsed with no further
// Trigger calls. A Trigger while a fire is pending supersedes it: the pending
// timer is canceled and the delay restarts. Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
	stop  bool
}

// New creates a Debouncer that runs fn after delay of quiescence.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger requests an invocation. Any pending invocation is superseded.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		stopped := d.stop
		d.mu.Unlock()
		if !stopped {
			d.fn()
		}
	})
}

// Stop cancels any pending invocation and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stop = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether an invocation is currently scheduled. Intended for
// status reporting, not for synchronization.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil && !d.stop
}
