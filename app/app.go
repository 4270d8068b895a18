// Package app wires an engine, a canvas and a scheduler into the
// presentation layer: it owns the geometry, the theme registry and the
// animation driver, and applies commands translated from host input.
//
// All methods must be called from the scheduler's goroutine.
package app

import (
	"errors"
	"fmt"

	"github.com/emstresh/lifecanvas"
	"github.com/emstresh/lifecanvas/anim"
	"github.com/emstresh/lifecanvas/fps"
	"github.com/emstresh/lifecanvas/geometry"
	"github.com/emstresh/lifecanvas/grid"
	"github.com/emstresh/lifecanvas/render"
	"github.com/emstresh/lifecanvas/schedule"
	"github.com/emstresh/lifecanvas/theme"
)

// ErrInvalidCellSize is returned by New when the cell size is not positive.
var ErrInvalidCellSize = errors.New("app: cell size must be positive")

// Engine is the simulation the App presents. It owns the cell buffer and
// diff list; both views are re-acquired after every call that can change
// them. Only the first NumChanged entries of DiffCells are painted.
type Engine interface {
	Width() int
	Height() int
	Cells() grid.PackedGrid
	DiffCells() grid.DiffList
	NumChanged() int
	Tick()
	ToggleCell(row, col int)
	InsertGlider(row, col int)
	InsertPulsar(row, col int)
	Reset()
	Clear()
	Resize(width, height int)
}

// Canvas is a drawing surface with a resizable backing store.
// *gg.Context satisfies it.
type Canvas interface {
	render.Surface
	Resize(width, height int) error
}

// App is the presentation controller.
type App struct {
	eng    Engine
	canvas Canvas
	cfg    config

	geom     geometry.Geometry
	registry *theme.Registry
	monitor  *fps.Monitor
	driver   *anim.Driver
	resizer  *schedule.Debouncer

	viewportW, viewportH int
	stats                fps.Stats
}

// New creates an App for a viewport of viewportW x viewportH pixels.
// It computes the geometry, resizes the engine when its dimensions
// differ, sizes the canvas and paints the first frame. The driver starts
// paused.
func New(eng Engine, canvas Canvas, sched schedule.Scheduler, timers schedule.Timers, viewportW, viewportH int, opts ...Option) (*App, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cellSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCellSize, cfg.cellSize)
	}
	if cfg.steps < 1 {
		return nil, fmt.Errorf("%w: got %d", anim.ErrInvalidStepCount, cfg.steps)
	}
	if cfg.registry == nil {
		r, err := theme.NewRegistry()
		if err != nil {
			return nil, err
		}
		cfg.registry = r
	}

	a := &App{
		eng:       eng,
		canvas:    canvas,
		cfg:       cfg,
		registry:  cfg.registry,
		viewportW: viewportW,
		viewportH: viewportH,
	}
	a.monitor = fps.NewMonitor(fps.WithClock(cfg.clock))
	a.driver = anim.NewDriver(sched, a, a.monitor,
		anim.WithStepsPerFrame(cfg.steps),
		anim.WithStatsFunc(a.publishStats))
	a.resizer = schedule.NewDebouncer(timers, cfg.resizeDelay, a.applyResize)

	a.geom = geometry.Compute(viewportW, viewportH, cfg.cellSize)
	if eng.Width() != a.geom.Width || eng.Height() != a.geom.Height {
		eng.Resize(a.geom.Width, a.geom.Height)
	}
	if err := a.resizeCanvas(); err != nil {
		return nil, err
	}
	if err := a.Redraw(); err != nil {
		return nil, err
	}
	return a, nil
}

// Render paints the cells listed in the engine's diff list and the
// lattice, then runs the render hook.
func (a *App) Render() error {
	return a.paint(false)
}

// Redraw paints every cell and the lattice, then runs the render hook.
func (a *App) Redraw() error {
	return a.paint(true)
}

// Step implements anim.Stepper. Each tick's diff is painted right after
// the tick, so no changed cell is skipped when a frame advances several
// ticks; the lattice and the render hook run once per frame.
func (a *App) Step(steps int) {
	p := a.registry.Current()
	for i := 0; i < steps; i++ {
		a.eng.Tick()
		if err := render.PaintChanged(a.canvas, a.frame(), a.diff(), p); err != nil {
			lifecanvas.Logger().Warn("app: step paint failed", "err", err)
			return
		}
	}
	if err := render.PaintGrid(a.canvas, a.geom, p.GridLine()); err != nil {
		lifecanvas.Logger().Warn("app: grid paint failed", "err", err)
		return
	}
	lifecanvas.Logger().Debug("app: step", "steps", steps, "changed", a.eng.NumChanged())
	a.presented()
}

// Geometry returns the current grid geometry.
func (a *App) Geometry() geometry.Geometry { return a.geom }

// Registry returns the theme registry.
func (a *App) Registry() *theme.Registry { return a.registry }

// Driver returns the animation driver.
func (a *App) Driver() *anim.Driver { return a.driver }

// Engine returns the engine being presented.
func (a *App) Engine() Engine { return a.eng }

// Stats returns the frame-rate statistics published by the last frame.
func (a *App) Stats() fps.Stats { return a.stats }

// Viewport returns the most recent viewport size, including one whose
// resize is still pending.
func (a *App) Viewport() (w, h int) { return a.viewportW, a.viewportH }

// ResizePending reports whether a debounced resize has not run yet.
func (a *App) ResizePending() bool { return a.resizer.Pending() }

func (a *App) frame() render.Frame {
	return render.Frame{Cells: a.eng.Cells(), Geometry: a.geom}
}

// diff returns the engine's diff list cut to NumChanged entries.
func (a *App) diff() grid.DiffList {
	d := a.eng.DiffCells()
	if n := a.eng.NumChanged(); n >= 0 && n < len(d) {
		d = d[:n]
	}
	return d
}

func (a *App) paint(full bool) error {
	if err := render.Cycle(a.canvas, a.frame(), a.diff(), a.registry.Current(), full); err != nil {
		return err
	}
	a.presented()
	return nil
}

func (a *App) presented() {
	if a.cfg.onRender != nil {
		a.cfg.onRender()
	}
}

func (a *App) publishStats(s fps.Stats) {
	a.stats = s
	if a.cfg.onStats != nil {
		a.cfg.onStats(s)
	}
}

func (a *App) resizeCanvas() error {
	w, h := a.geom.CanvasSize()
	if err := a.canvas.Resize(w, h); err != nil {
		return fmt.Errorf("app: resize canvas to %dx%d: %w", w, h, err)
	}
	return nil
}

// applyResize runs once per quiet period after a burst of Resize commands.
func (a *App) applyResize() {
	a.driver.Pause()

	a.geom = geometry.Compute(a.viewportW, a.viewportH, a.cfg.cellSize)
	a.eng.Resize(a.geom.Width, a.geom.Height)
	if err := a.resizeCanvas(); err != nil {
		lifecanvas.Logger().Warn("app: resize failed", "err", err)
		return
	}
	if err := a.Redraw(); err != nil {
		lifecanvas.Logger().Warn("app: redraw after resize failed", "err", err)
		return
	}
	lifecanvas.Logger().Info("app: resize applied",
		"viewport_w", a.viewportW, "viewport_h", a.viewportH,
		"grid_w", a.geom.Width, "grid_h", a.geom.Height)
}
