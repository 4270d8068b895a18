// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithFrameInterval sets the frame period. Non-positive values are ignored.
func WithFrameInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// Loop is a wall-clock event loop. Frame callbacks, timer callbacks and
// posted functions all run on the goroutine executing Run, one at a time.
//
// RequestFrame, CancelFrame, AfterFunc and Post are safe to call from any
// goroutine.
type Loop struct {
	interval time.Duration

	mu     sync.Mutex
	frames frameQueue
	posted []func()
	wake   chan struct{}
}

// NewLoop creates a loop with the given options.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		interval: DefaultFrameInterval,
		wake:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Interval returns the frame period.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn func()) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames.add(fn)
}

// CancelFrame implements Scheduler.
func (l *Loop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames.cancel(id)
}

// Post enqueues fn to run on the loop goroutine. Hosts use it to hand
// input events to the loop.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.posted = append(l.posted, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// AfterFunc implements Timers. The callback is posted to the loop when
// the timer expires.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})
	return t
}

// Run executes frames and posted work until ctx is done. It returns
// ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.drain()
		case <-ticker.C:
			l.drain()
			l.frame()
		}
	}
}

func (l *Loop) drain() {
	l.mu.Lock()
	batch := l.posted
	l.posted = nil
	l.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
}

func (l *Loop) frame() {
	l.mu.Lock()
	batch := l.frames.take()
	l.mu.Unlock()

	for _, e := range batch {
		e.fn()
	}
}

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

type loopTimer struct {
	timer *time.Timer
	state atomic.Int32
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return t.state.CompareAndSwap(timerPending, timerStopped)
}
