// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

// Package schedule provides frame scheduling, one-shot timers and
// debouncing for a single-goroutine presentation loop.
//
// Two implementations are provided. Loop runs against the wall clock and
// serializes frames, timers and host events on the goroutine that calls
// Run. Manual keeps virtual time and only moves when told to, which makes
// it suitable for tests and headless rendering.
package schedule

import "time"

// DefaultFrameInterval is the frame period used when none is configured.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameID identifies a pending frame request. The zero value is never
// issued and is safe to pass to CancelFrame.
type FrameID uint64

// Scheduler runs callbacks on the next display frame.
type Scheduler interface {
	// RequestFrame schedules fn to run once on the next frame.
	RequestFrame(fn func()) FrameID

	// CancelFrame removes a pending request. Unknown or already-run IDs
	// are ignored.
	CancelFrame(id FrameID)
}

// Timers creates one-shot timers whose callbacks run on the scheduler's
// goroutine.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the
	// call stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// frameQueue holds pending frame callbacks in request order.
type frameQueue struct {
	next    FrameID
	pending []frameEntry
}

type frameEntry struct {
	id FrameID
	fn func()
}

func (q *frameQueue) add(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, frameEntry{id: q.next, fn: fn})
	return q.next
}

func (q *frameQueue) cancel(id FrameID) {
	for i, e := range q.pending {
		if e.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// take empties the queue. Callbacks requested while the returned batch
// runs go to the next frame.
func (q *frameQueue) take() []frameEntry {
	batch := q.pending
	q.pending = nil
	return batch
}
