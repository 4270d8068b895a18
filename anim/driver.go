// Package anim drives the per-frame simulation loop.
//
// A Driver is a two-state machine. While Running it owns exactly one
// pending frame request; every frame records a frame-rate sample, asks
// the Stepper to advance the simulation and then requests the next frame.
// Pause cancels that one pending request, so no further step happens
// after Pause returns.
package anim

import (
	"errors"
	"fmt"

	"github.com/emstresh/lifecanvas"
	"github.com/emstresh/lifecanvas/fps"
	"github.com/emstresh/lifecanvas/schedule"
)

// ErrInvalidStepCount is returned when the steps per frame is less than one.
var ErrInvalidStepCount = errors.New("anim: steps per frame must be at least 1")

// State is the playback state of a Driver.
type State int

const (
	// Paused is the initial state. No frame is pending.
	Paused State = iota

	// Running means exactly one frame request is pending.
	Running
)

// String returns "paused" or "running".
func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stepper advances the simulation by steps ticks and paints the result.
type Stepper interface {
	Step(steps int)
}

// StepperFunc adapts a function to the Stepper interface.
type StepperFunc func(steps int)

// Step calls f(steps).
func (f StepperFunc) Step(steps int) { f(steps) }

// Option configures a Driver.
type Option func(*Driver)

// WithStepsPerFrame sets how many ticks each frame advances.
// Values below one are ignored; use SetStepsPerFrame to get an error.
func WithStepsPerFrame(n int) Option {
	return func(d *Driver) {
		if n >= 1 {
			d.steps = n
		}
	}
}

// WithStatsFunc installs a callback that receives the frame-rate
// statistics after every frame.
func WithStatsFunc(fn func(fps.Stats)) Option {
	return func(d *Driver) {
		d.onStats = fn
	}
}

// Driver schedules simulation steps on display frames.
// It is not safe for concurrent use; call it from the scheduler's goroutine.
type Driver struct {
	sched   schedule.Scheduler
	stepper Stepper
	monitor *fps.Monitor
	onStats func(fps.Stats)

	steps   int
	state   State
	pending schedule.FrameID
	frames  uint64
}

// NewDriver creates a paused driver. A nil monitor gets a default one.
func NewDriver(s schedule.Scheduler, st Stepper, m *fps.Monitor, opts ...Option) *Driver {
	if m == nil {
		m = fps.NewMonitor()
	}
	d := &Driver{
		sched:   s,
		stepper: st,
		monitor: m,
		steps:   1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Play starts the loop by requesting the next frame. It does nothing when
// already running.
func (d *Driver) Play() {
	if d.state == Running {
		return
	}
	d.state = Running
	d.pending = d.sched.RequestFrame(d.frame)
	lifecanvas.Logger().Info("anim: play", "steps", d.steps)
}

// Pause cancels the pending frame. It does nothing when already paused.
func (d *Driver) Pause() {
	if d.state == Paused {
		return
	}
	d.sched.CancelFrame(d.pending)
	d.pending = 0
	d.state = Paused
	lifecanvas.Logger().Info("anim: pause", "frames", d.frames)
}

// Toggle switches between Running and Paused.
func (d *Driver) Toggle() {
	if d.state == Running {
		d.Pause()
	} else {
		d.Play()
	}
}

// State returns the playback state.
func (d *Driver) State() State { return d.state }

// Running reports whether the driver is running.
func (d *Driver) Running() bool { return d.state == Running }

// StepsPerFrame returns how many ticks each frame advances.
func (d *Driver) StepsPerFrame() int { return d.steps }

// SetStepsPerFrame changes the tick rate. It takes effect on the next frame.
func (d *Driver) SetStepsPerFrame(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStepCount, n)
	}
	d.steps = n
	return nil
}

// Monitor returns the frame-rate monitor.
func (d *Driver) Monitor() *fps.Monitor { return d.monitor }

// Frames returns the number of frames run since construction.
func (d *Driver) Frames() uint64 { return d.frames }

func (d *Driver) frame() {
	d.pending = 0
	d.frames++

	stats := d.monitor.Record()
	if d.onStats != nil {
		d.onStats(stats)
	}

	d.stepper.Step(d.steps)

	// The stepper may have paused, or paused and resumed.
	if d.state == Running && d.pending == 0 {
		d.pending = d.sched.RequestFrame(d.frame)
	}
}
