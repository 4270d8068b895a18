// Package fps measures frame rate over a sliding window of recent frames.
package fps

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// WindowSize is the default number of samples kept by a Monitor.
const WindowSize = 100

// Clock is the time source used by a Monitor.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Stats summarizes the samples currently in the window.
type Stats struct {
	Latest  float64
	Mean    float64
	Min     float64
	Max     float64
	Samples int
}

// String renders the stats as the multi-line frame-rate report.
func (s Stats) String() string {
	var b strings.Builder
	b.WriteString("Frames per Second:\n")
	fmt.Fprintf(&b, "         latest = %d\n", round(s.Latest))
	fmt.Fprintf(&b, "avg of last %d = %d\n", s.Samples, round(s.Mean))
	fmt.Fprintf(&b, "min of last %d = %d\n", s.Samples, round(s.Min))
	fmt.Fprintf(&b, "max of last %d = %d", s.Samples, round(s.Max))
	return b.String()
}

func round(v float64) int64 {
	if math.IsInf(v, 1) || v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(v))
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(m *Monitor) {
		m.clock = c
	}
}

// WithWindowSize sets the number of samples kept. Values below 1 are ignored.
func WithWindowSize(n int) Option {
	return func(m *Monitor) {
		if n > 0 {
			m.capacity = n
		}
	}
}

// Monitor keeps a FIFO window of instantaneous frame rates.
// The baseline timestamp is taken when the Monitor is created, so the
// first Record yields a sample instead of failing.
//
// Monitor is NOT safe for concurrent use.
type Monitor struct {
	clock    Clock
	capacity int
	samples  []float64 // ring buffer, len <= capacity
	head     int       // index of the oldest sample once full
	last     time.Time
}

// NewMonitor creates a Monitor and records the baseline timestamp.
func NewMonitor(opts ...Option) *Monitor {
	m := &Monitor{
		clock:    SystemClock{},
		capacity: WindowSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.samples = make([]float64, 0, m.capacity)
	m.last = m.clock.Now()
	return m
}

// Record samples the frame rate since the previous call (or since creation)
// and returns the stats over the current window.
func (m *Monitor) Record() Stats {
	now := m.clock.Now()
	deltaMs := float64(now.Sub(m.last)) / float64(time.Millisecond)
	m.last = now

	// A zero delta yields +Inf, as float division does.
	fps := 1000 / deltaMs

	if len(m.samples) < m.capacity {
		m.samples = append(m.samples, fps)
	} else {
		m.samples[m.head] = fps
		m.head = (m.head + 1) % m.capacity
	}
	return m.stats(fps)
}

// Stats returns the stats over the current window without recording.
// Latest is zero before the first Record.
func (m *Monitor) Stats() Stats {
	if len(m.samples) == 0 {
		return Stats{}
	}
	latest := m.samples[len(m.samples)-1]
	if len(m.samples) == m.capacity {
		latest = m.samples[(m.head+m.capacity-1)%m.capacity]
	}
	return m.stats(latest)
}

func (m *Monitor) stats(latest float64) Stats {
	s := Stats{
		Latest:  latest,
		Min:     math.Inf(1),
		Max:     math.Inf(-1),
		Samples: len(m.samples),
	}
	var sum float64
	for _, v := range m.samples {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(m.samples))
	return s
}

// Samples returns a copy of the window in arrival order, oldest first.
func (m *Monitor) Samples() []float64 {
	out := make([]float64, 0, len(m.samples))
	if len(m.samples) < m.capacity {
		return append(out, m.samples...)
	}
	out = append(out, m.samples[m.head:]...)
	return append(out, m.samples[:m.head]...)
}

// Capacity returns the window size.
func (m *Monitor) Capacity() int {
	return m.capacity
}
