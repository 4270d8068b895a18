// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

// Package tcellhost presents a lifecanvas app in a terminal.
//
// The top terminal row is a status line; the canvas fills the rest, one
// terminal cell per canvas pixel. Input is translated into app commands:
//
//	space    play / pause
//	t        next theme
//	r        reset
//	c        clear
//	+ / -    more / fewer steps per frame
//	click    toggle a cell (Shift: pulsar, Alt or Meta: glider)
//	q, Esc   quit
package tcellhost

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/emstresh/lifecanvas"
	"github.com/emstresh/lifecanvas/app"
	"github.com/emstresh/lifecanvas/fps"
	"github.com/emstresh/lifecanvas/schedule"
)

// statusRows is the number of terminal rows above the canvas.
const statusRows = 1

// DefaultCellSize gives one terminal cell per grid cell with a one-cell
// lattice between them.
const DefaultCellSize = 1

type config struct {
	cellSize      int
	frameInterval time.Duration
	appOpts       []app.Option
}

// Option configures a Host.
type Option func(*config)

// WithCellSize sets the cell side in terminal cells.
func WithCellSize(n int) Option {
	return func(c *config) {
		c.cellSize = n
	}
}

// WithFrameInterval sets the frame period of the host loop.
func WithFrameInterval(d time.Duration) Option {
	return func(c *config) {
		c.frameInterval = d
	}
}

// WithAppOptions passes extra options to app.New.
func WithAppOptions(opts ...app.Option) Option {
	return func(c *config) {
		c.appOpts = append(c.appOpts, opts...)
	}
}

// Host runs an app against a tcell screen.
type Host struct {
	screen tcell.Screen
	eng    app.Engine
	cfg    config

	loop   *schedule.Loop
	canvas *Screen
	app    *app.App

	pressed bool
	stats   fps.Stats
}

// New creates a host. The screen is initialized by Start or Run.
func New(screen tcell.Screen, eng app.Engine, opts ...Option) *Host {
	cfg := config{
		cellSize:      DefaultCellSize,
		frameInterval: schedule.DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Host{
		screen: screen,
		eng:    eng,
		cfg:    cfg,
		loop:   schedule.NewLoop(schedule.WithFrameInterval(cfg.frameInterval)),
		canvas: NewScreen(screen, 0, statusRows),
	}
}

// Start initializes the screen and builds the app over it. Run calls
// Start; call it directly only to drive the host without its loop.
func (h *Host) Start() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("tcellhost: init screen: %w", err)
	}
	h.screen.EnableMouse()
	h.screen.Clear()

	w, ht := h.screen.Size()
	opts := append([]app.Option{
		app.WithCellSize(h.cfg.cellSize),
		app.WithRenderFunc(h.show),
		app.WithStatsFunc(h.setStats),
	}, h.cfg.appOpts...)

	a, err := app.New(h.eng, h.canvas, h.loop, h.loop, w, ht-statusRows, opts...)
	if err != nil {
		h.screen.Fini()
		return err
	}
	h.app = a
	h.show()
	return nil
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}

// App returns the app built by Start, or nil before it.
func (h *Host) App() *app.App { return h.app }

// Run starts the host and processes frames and input until ctx is done or
// the user quits. Quitting returns nil.
func (h *Host) Run(ctx context.Context) error {
	if err := h.Start(); err != nil {
		return err
	}
	defer h.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := false
	go h.poll(func(ev tcell.Event) {
		if h.HandleEvent(ev) {
			quit = true
			cancel()
		}
	})

	err := h.loop.Run(ctx)
	if quit && errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// poll forwards terminal events to the loop until the screen stops.
func (h *Host) poll(handle func(tcell.Event)) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		h.loop.Post(func() { handle(ev) })
	}
}

// HandleEvent applies one terminal event and reports whether the user
// asked to quit. It must run on the loop goroutine.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	var err error
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.screen.Clear()
		err = h.app.Dispatch(app.Resize{Width: w, Height: ht - statusRows})
	case *tcell.EventMouse:
		err = h.mouse(ev)
	case *tcell.EventKey:
		var quit bool
		quit, err = h.key(ev)
		if quit {
			return true
		}
	}
	if err != nil {
		lifecanvas.Logger().Warn("tcellhost: command failed", "err", err)
	}
	h.show()
	return false
}

// mouse dispatches a click on the press edge of the primary button.
func (h *Host) mouse(ev *tcell.EventMouse) error {
	down := ev.Buttons()&tcell.Button1 != 0
	if !down || h.pressed {
		h.pressed = down
		return nil
	}
	h.pressed = true

	x, y := ev.Position()
	var mods app.Modifiers
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mods |= app.ModShift
	}
	if m&(tcell.ModMeta|tcell.ModAlt) != 0 {
		mods |= app.ModMeta
	}
	return h.app.Dispatch(app.Click{
		X:    float64(x),
		Y:    float64(y - statusRows),
		Mods: mods,
	})
}

func (h *Host) key(ev *tcell.EventKey) (quit bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
	default:
		return false, nil
	}

	switch ev.Rune() {
	case 'q':
		return true, nil
	case ' ':
		err = h.app.Dispatch(app.TogglePlayback{})
	case 't':
		err = h.app.Dispatch(app.CycleTheme{})
	case 'r':
		err = h.app.Dispatch(app.Reset{})
	case 'c':
		err = h.app.Dispatch(app.Clear{})
	case '+', '=':
		err = h.app.Dispatch(app.SetTickRate{Steps: h.app.Driver().StepsPerFrame() + 1})
	case '-':
		if n := h.app.Driver().StepsPerFrame(); n > 1 {
			err = h.app.Dispatch(app.SetTickRate{Steps: n - 1})
		}
	}
	return false, err
}

func (h *Host) setStats(s fps.Stats) {
	h.stats = s
}

// StatusLine returns the text shown above the canvas.
func (h *Host) StatusLine() string {
	if h.app == nil {
		return ""
	}
	d := h.app.Driver()
	latest := h.stats.Latest
	if math.IsInf(latest, 0) || math.IsNaN(latest) {
		latest = 0
	}
	return fmt.Sprintf("%-7s %-8s steps %-3d fps %4.0f  [space] play  [t] theme  [r] reset  [c] clear  [q] quit",
		d.State(), h.app.Registry().Current().Name, d.StepsPerFrame(), latest)
}

// show redraws the status line and flushes the screen.
func (h *Host) show() {
	w, _ := h.screen.Size()
	line := []rune(h.StatusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		h.screen.SetContent(x, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	h.screen.Show()
}
