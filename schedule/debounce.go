// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package schedule

import "time"

// DefaultResizeDelay is the quiet period applied to viewport resizes.
const DefaultResizeDelay = 100 * time.Millisecond

// Debouncer collapses a burst of triggers into one action that runs
// delay after the last trigger.
type Debouncer struct {
	timers  Timers
	delay   time.Duration
	action  func()
	pending Timer
}

// NewDebouncer creates a Debouncer. The action runs on the timers'
// goroutine.
func NewDebouncer(timers Timers, delay time.Duration, action func()) *Debouncer {
	return &Debouncer{timers: timers, delay: delay, action: action}
}

// Trigger restarts the quiet period, discarding any pending run.
func (d *Debouncer) Trigger() {
	d.Cancel()
	d.pending = d.timers.AfterFunc(d.delay, d.fire)
}

// Cancel discards a pending run, if any.
func (d *Debouncer) Cancel() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

func (d *Debouncer) fire() {
	d.pending = nil
	d.action()
}
