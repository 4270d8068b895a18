// Package lifecanvas renders a cellular-automaton grid onto a 2D canvas.
//
// # Overview
//
// A simulation engine owns the authoritative cell state as a packed bit
// buffer and reports, after every step, the indices of the cells that
// changed. lifecanvas decodes that buffer and repaints only the changed
// cells, falling back to a full repaint after a resize, a reset or a theme
// change.
//
// # Quick Start
//
//	u := life.New(64, 64)
//	dc := gg.NewContext(1, 1)
//	sched := schedule.NewManual()
//
//	a, err := app.New(u, dc, sched, sched, 705, 705)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = a.Dispatch(app.Play{})
//	for i := 0; i < 60; i++ {
//	    sched.Frame()
//	}
//	_ = dc.SavePNG("life.png")
//
// # Architecture
//
// The module is organized leaves first:
//   - grid: packed-bit decoding and index arithmetic
//   - theme: palettes and the theme registry
//   - fps: frame-rate window
//   - geometry: viewport to grid dimensions, pointer to cell mapping
//   - render: diff and full repaint onto any [render.Surface]
//   - schedule: frame scheduling, timers and debouncing
//   - anim: the play/pause animation driver
//   - app: command dispatch that wires everything to an engine
//   - life: a reference Conway engine
//   - integration/tcellhost, integration/gpuhost: hosts
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner of the canvas. Each cell occupies a
// cellSize x cellSize square preceded by a 1px border, so the cell at
// (row, col) starts at (col*(cellSize+1)+1, row*(cellSize+1)+1).
//
// # Threading
//
// Everything runs on one goroutine. Hosts translate raw events into
// [app.Command] values and hand them to the loop that also runs frames.
package lifecanvas

// Version information
const (
	// Version is the current version of the module
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
