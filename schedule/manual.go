// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package schedule

import (
	"sort"
	"time"
)

// Epoch is the virtual time a Manual scheduler starts at.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ManualOption configures a Manual scheduler.
type ManualOption func(*Manual)

// WithFrameStep sets how far virtual time advances on every Frame call.
// Zero keeps time still between frames.
func WithFrameStep(d time.Duration) ManualOption {
	return func(m *Manual) {
		if d >= 0 {
			m.step = d
		}
	}
}

// Manual is a virtual-time Scheduler and Timers. Nothing happens until
// Frame or Advance is called, and everything runs on the caller's
// goroutine. Manual also satisfies fps.Clock through Now.
//
// Manual is not safe for concurrent use.
type Manual struct {
	now    time.Time
	step   time.Duration
	frames frameQueue
	timers []*manualTimer
	seq    uint64
}

// NewManual creates a Manual scheduler at Epoch that advances
// DefaultFrameInterval per frame.
func NewManual(opts ...ManualOption) *Manual {
	m := &Manual{now: Epoch, step: DefaultFrameInterval}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// RequestFrame implements Scheduler.
func (m *Manual) RequestFrame(fn func()) FrameID {
	return m.frames.add(fn)
}

// CancelFrame implements Scheduler.
func (m *Manual) CancelFrame(id FrameID) {
	m.frames.cancel(id)
}

// Pending returns the number of frame callbacks waiting for the next frame.
func (m *Manual) Pending() int {
	return len(m.frames.pending)
}

// Frame advances virtual time by the frame step, firing any timers that
// come due, and then runs the frame callbacks that were pending. It
// reports whether any frame callback ran.
func (m *Manual) Frame() bool {
	m.Advance(m.step)
	batch := m.frames.take()
	for _, e := range batch {
		e.fn()
	}
	return len(batch) > 0
}

// AfterFunc implements Timers.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTimer{m: m, at: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves virtual time forward by d and fires every timer whose
// deadline is reached, in deadline order. Timers created by a firing
// callback fire too if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.remove(t)
		if t.at.After(m.now) {
			m.now = t.at
		}
		t.fn()
	}
	m.now = target
}

// Timers returns the number of timers that have not fired or been stopped.
func (m *Manual) Timers() int {
	return len(m.timers)
}

func (m *Manual) nextDue(target time.Time) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		a, b := m.timers[i], m.timers[j]
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.seq < b.seq
	})
	if t := m.timers[0]; !t.at.After(target) {
		return t
	}
	return nil
}

func (m *Manual) remove(t *manualTimer) bool {
	for i, p := range m.timers {
		if p == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	m   *Manual
	at  time.Time
	seq uint64
	fn  func()
}

func (t *manualTimer) Stop() bool {
	return t.m.remove(t)
}
