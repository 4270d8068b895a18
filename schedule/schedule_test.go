// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	_ Scheduler = (*Loop)(nil)
	_ Timers    = (*Loop)(nil)
	_ Scheduler = (*Manual)(nil)
	_ Timers    = (*Manual)(nil)
)

func TestManualFrameRunsPending(t *testing.T) {
	m := NewManual()
	var order []int
	m.RequestFrame(func() { order = append(order, 1) })
	id := m.RequestFrame(func() { order = append(order, 2) })
	m.RequestFrame(func() { order = append(order, 3) })
	m.CancelFrame(id)

	if m.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", m.Pending())
	}
	if !m.Frame() {
		t.Fatal("Frame reported no callbacks")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("order = %v, want [1 3]", order)
	}
	if m.Frame() {
		t.Error("second Frame ran callbacks")
	}
}

func TestManualRequestDuringFrameDefers(t *testing.T) {
	m := NewManual()
	runs := 0
	var tick func()
	tick = func() {
		runs++
		m.RequestFrame(tick)
	}
	m.RequestFrame(tick)

	for i := 0; i < 3; i++ {
		m.Frame()
	}
	if runs != 3 {
		t.Errorf("runs = %d, want one per frame", runs)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", m.Pending())
	}
}

func TestManualCancelUnknownIsNoop(t *testing.T) {
	m := NewManual()
	m.RequestFrame(func() {})
	m.CancelFrame(0)
	m.CancelFrame(42)
	if m.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", m.Pending())
	}
}

func TestManualFrameAdvancesClock(t *testing.T) {
	m := NewManual(WithFrameStep(20 * time.Millisecond))
	m.Frame()
	m.Frame()
	if got := m.Now().Sub(Epoch); got != 40*time.Millisecond {
		t.Errorf("elapsed = %v, want 40ms", got)
	}

	still := NewManual(WithFrameStep(0))
	still.Frame()
	if !still.Now().Equal(Epoch) {
		t.Errorf("clock moved with zero frame step")
	}
}

func TestManualTimersFireInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var fired []string
	var at []time.Duration
	record := func(name string) func() {
		return func() {
			fired = append(fired, name)
			at = append(at, m.Now().Sub(Epoch))
		}
	}
	m.AfterFunc(30*time.Millisecond, record("c"))
	m.AfterFunc(10*time.Millisecond, record("a"))
	m.AfterFunc(20*time.Millisecond, record("b"))
	m.AfterFunc(50*time.Millisecond, record("late"))

	m.Advance(30 * time.Millisecond)

	want := []string{"a", "b", "c"}
	if len(fired) != len(want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired[%d] = %q, want %q", i, fired[i], want[i])
		}
		if at[i] != time.Duration(i+1)*10*time.Millisecond {
			t.Errorf("%q fired at %v", fired[i], at[i])
		}
	}
	if m.Timers() != 1 {
		t.Errorf("Timers = %d, want 1", m.Timers())
	}
}

func TestManualTimerStop(t *testing.T) {
	m := NewManual()
	fired := false
	tm := m.AfterFunc(time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Error("Stop on pending timer = false")
	}
	if tm.Stop() {
		t.Error("second Stop = true")
	}
	m.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestDebouncerCollapsesBurst(t *testing.T) {
	m := NewManual()
	runs := 0
	d := NewDebouncer(m, DefaultResizeDelay, func() { runs++ })

	for i := 0; i < 5; i++ {
		d.Trigger()
		m.Advance(50 * time.Millisecond)
	}
	if runs != 0 {
		t.Fatalf("runs = %d during burst, want 0", runs)
	}
	if !d.Pending() {
		t.Fatal("Pending = false during burst")
	}

	m.Advance(50 * time.Millisecond)
	if runs != 1 {
		t.Errorf("runs = %d after quiet period, want 1", runs)
	}
	if d.Pending() {
		t.Error("Pending = true after run")
	}
	if m.Timers() != 0 {
		t.Errorf("Timers = %d, want 0", m.Timers())
	}
}

func TestDebouncerCancel(t *testing.T) {
	m := NewManual()
	runs := 0
	d := NewDebouncer(m, 10*time.Millisecond, func() { runs++ })
	d.Trigger()
	d.Cancel()
	d.Cancel()
	m.Advance(time.Second)
	if runs != 0 {
		t.Errorf("runs = %d after Cancel, want 0", runs)
	}
}

func TestLoopRunsFramesAndPosts(t *testing.T) {
	l := NewLoop(WithFrameInterval(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frames := 0
	var tick func()
	tick = func() {
		frames++
		if frames == 3 {
			cancel()
			return
		}
		l.RequestFrame(tick)
	}
	posted := false
	l.Post(func() {
		posted = true
		l.RequestFrame(tick)
	})

	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if !posted || frames != 3 {
		t.Errorf("posted = %v, frames = %d", posted, frames)
	}
}

func TestLoopTimerRunsOnLoop(t *testing.T) {
	l := NewLoop(WithFrameInterval(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stopped := l.AfterFunc(time.Millisecond, func() { t.Error("stopped timer fired") })
	if !stopped.Stop() {
		t.Error("Stop on pending timer = false")
	}

	fired := l.AfterFunc(2*time.Millisecond, cancel)
	_ = l.Run(ctx)
	if fired.Stop() {
		t.Error("Stop after fire = true")
	}
	if ctx.Err() != context.Canceled {
		t.Errorf("context error = %v, want Canceled (timer should cancel)", ctx.Err())
	}
}
