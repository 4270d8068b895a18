package app

import (
	"time"

	"github.com/emstresh/lifecanvas/fps"
	"github.com/emstresh/lifecanvas/schedule"
	"github.com/emstresh/lifecanvas/theme"
)

// DefaultCellSize is the side of a cell square in pixels.
const DefaultCellSize = 10

// config holds the construction settings of an App.
type config struct {
	cellSize    int
	registry    *theme.Registry
	steps       int
	resizeDelay time.Duration
	clock       fps.Clock
	onStats     func(fps.Stats)
	onRender    func()
}

func defaultConfig() config {
	return config{
		cellSize:    DefaultCellSize,
		steps:       1,
		resizeDelay: schedule.DefaultResizeDelay,
		clock:       fps.SystemClock{},
	}
}

// Option configures an App.
type Option func(*config)

// WithCellSize sets the cell side in pixels. New fails with
// ErrInvalidCellSize for non-positive values.
func WithCellSize(px int) Option {
	return func(c *config) {
		c.cellSize = px
	}
}

// WithRegistry sets the theme registry. By default a registry over the
// built-in palettes is created.
func WithRegistry(r *theme.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithStepsPerFrame sets the initial tick rate. New fails with
// anim.ErrInvalidStepCount for values below one.
func WithStepsPerFrame(n int) Option {
	return func(c *config) {
		c.steps = n
	}
}

// WithResizeDelay sets the quiet period applied to Resize commands.
func WithResizeDelay(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.resizeDelay = d
		}
	}
}

// WithClock sets the time source of the frame-rate monitor.
func WithClock(clk fps.Clock) Option {
	return func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithStatsFunc installs a callback receiving frame-rate statistics after
// every animation frame.
func WithStatsFunc(fn func(fps.Stats)) Option {
	return func(c *config) {
		c.onStats = fn
	}
}

// WithRenderFunc installs a hook that runs after every render, once the
// canvas holds the new frame. Hosts use it to present the canvas.
func WithRenderFunc(fn func()) Option {
	return func(c *config) {
		c.onRender = fn
	}
}
