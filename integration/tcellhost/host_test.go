// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package tcellhost

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/emstresh/lifecanvas/app"
	"github.com/emstresh/lifecanvas/life"
	"github.com/emstresh/lifecanvas/theme"
)

var _ app.Canvas = (*Screen)(nil)

func startHost(t *testing.T) (*Host, tcell.SimulationScreen, *life.Universe) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	eng := life.New(1, 1, life.WithEmpty())
	h := New(sim, eng)
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(h.Close)
	return h, sim, eng
}

func background(t *testing.T, sim tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestStartFitsGridToTerminal(t *testing.T) {
	h, _, eng := startHost(t)
	// 80x25 terminal, one status row, pitch 2
	g := h.App().Geometry()
	if g.Width != 40 || g.Height != 12 {
		t.Errorf("geometry = %dx%d, want 40x12", g.Width, g.Height)
	}
	if eng.Width() != 40 || eng.Height() != 12 {
		t.Errorf("engine = %dx%d", eng.Width(), eng.Height())
	}
	if w, ht := h.canvas.Size(); w != 81 || ht != 25 {
		t.Errorf("canvas = %dx%d, want 81x25", w, ht)
	}
}

func TestClickPaintsCell(t *testing.T) {
	h, sim, eng := startHost(t)

	// canvas pixel (7,3) is inside cell (1,3); the canvas starts one row down
	h.HandleEvent(tcell.NewEventMouse(7, 4, tcell.Button1, tcell.ModNone))
	if !eng.Alive(1, 3) {
		t.Fatal("cell (1,3) not alive after click")
	}
	if got, want := background(t, sim, 7, 4), toColor(theme.Ember.Alive()); got != want {
		t.Errorf("cell background = %v, want %v", got, want)
	}
	if got, want := background(t, sim, 6, 4), toColor(theme.Ember.GridLine()); got != want {
		t.Errorf("lattice background = %v, want %v", got, want)
	}

	// holding the button does not click again
	h.HandleEvent(tcell.NewEventMouse(7, 4, tcell.Button1, tcell.ModNone))
	if !eng.Alive(1, 3) {
		t.Error("drag toggled the cell back")
	}
}

func TestClickModifiers(t *testing.T) {
	h, _, eng := startHost(t)
	h.HandleEvent(key('c'))

	h.HandleEvent(tcell.NewEventMouse(21, 12, tcell.Button1, tcell.ModAlt))
	h.HandleEvent(tcell.NewEventMouse(21, 12, tcell.ButtonNone, tcell.ModNone))
	if got := eng.Population(); got != 5 {
		t.Fatalf("population after Alt click = %d, want a glider", got)
	}

	h.HandleEvent(key('c'))
	h.HandleEvent(tcell.NewEventMouse(41, 12, tcell.Button1, tcell.ModShift))
	// centred on row 5 of 12, so the pulsar's top row is clipped
	if got := eng.Population(); got != 42 {
		t.Errorf("population after Shift click = %d, want a clipped pulsar", got)
	}
}

func TestKeys(t *testing.T) {
	h, _, _ := startHost(t)
	d := h.App().Driver()

	h.HandleEvent(key(' '))
	if !d.Running() {
		t.Error("space did not start playback")
	}
	h.HandleEvent(key('+'))
	h.HandleEvent(key('+'))
	h.HandleEvent(key('-'))
	if d.StepsPerFrame() != 2 {
		t.Errorf("steps = %d, want 2", d.StepsPerFrame())
	}
	h.HandleEvent(key('-'))
	h.HandleEvent(key('-'))
	if d.StepsPerFrame() != 1 {
		t.Errorf("steps = %d, want 1", d.StepsPerFrame())
	}
	h.HandleEvent(key('t'))
	if got := h.App().Registry().Current().Name; got != "lagoon" {
		t.Errorf("theme = %q, want lagoon", got)
	}
	h.HandleEvent(key(' '))
	if d.Running() {
		t.Error("space did not pause")
	}

	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if !h.HandleEvent(ev) {
			t.Errorf("%s did not quit", ev.Name())
		}
	}
	if h.HandleEvent(key('x')) {
		t.Error("unbound key quit")
	}
}

func TestResizeEventIsForwarded(t *testing.T) {
	h, _, _ := startHost(t)
	h.HandleEvent(tcell.NewEventResize(60, 21))
	if !h.App().ResizePending() {
		t.Error("resize not pending")
	}
	if w, ht := h.App().Viewport(); w != 60 || ht != 20 {
		t.Errorf("viewport = %dx%d, want 60x20", w, ht)
	}
}

func TestStatusLine(t *testing.T) {
	h, sim, _ := startHost(t)
	line := h.StatusLine()
	for _, want := range []string{"paused", "ember", "steps 1"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q lacks %q", line, want)
		}
	}
	if r, _, _, _ := sim.GetContent(0, 0); r != 'p' {
		t.Errorf("status row starts with %q", r)
	}
}

func TestScreenClipsAndRejectsBadSize(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	defer sim.Fini()

	s := NewScreen(sim, 2, 1)
	if err := s.Resize(0, 3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0,3) = %v", err)
	}
	if err := s.Resize(4, 3); err != nil {
		t.Fatal(err)
	}
	s.SetColor(theme.Lagoon.Alive())
	s.DrawRectangle(-2, -2, 100, 100)
	if err := s.Fill(); err != nil {
		t.Fatal(err)
	}
	want := toColor(theme.Lagoon.Alive())
	if got := background(t, sim, 2, 1); got != want {
		t.Errorf("canvas origin = %v, want %v", got, want)
	}
	if got := background(t, sim, 5, 3); got != want {
		t.Errorf("canvas far corner = %v, want %v", got, want)
	}
	if got := background(t, sim, 6, 1); got == want {
		t.Error("fill spilled past the canvas width")
	}
	if got := background(t, sim, 2, 4); got == want {
		t.Error("fill spilled past the canvas height")
	}
}

func TestRunStopsWithContext(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	h := New(sim, life.New(4, 4), WithFrameInterval(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := h.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want DeadlineExceeded", err)
	}
}
