// Package render paints a decoded cell grid onto a 2D surface.
//
// Cells are painted in two batched passes, alive first and dead second.
// Each pass sets the fill color once, accumulates one rectangle per cell
// and fills them together, so a frame costs at most two fills for cells
// and one for the lattice regardless of how many cells changed.
//
// The diff path (PaintChanged) and the full path (PaintAll) produce the
// same pixels for the same grid, provided every cell whose state changed
// since the previous paint is listed in the diff.
package render

import (
	"fmt"
	"image/color"

	"github.com/emstresh/lifecanvas"
	"github.com/emstresh/lifecanvas/geometry"
	"github.com/emstresh/lifecanvas/grid"
	"github.com/emstresh/lifecanvas/theme"
)

// Surface is the subset of a 2D drawing context the renderer needs.
// *gg.Context satisfies it.
type Surface interface {
	SetColor(c color.Color)
	DrawRectangle(x, y, w, h float64)
	Fill() error
}

// Frame is a read-only view of the engine state for one paint.
// Cells must hold at least PackedLen(Width, Height) bytes.
type Frame struct {
	Cells    grid.PackedGrid
	Geometry geometry.Geometry
}

// PaintChanged repaints only the cells listed in diff.
// Indices outside the grid are ignored.
func PaintChanged(s Surface, f Frame, diff grid.DiffList, p theme.Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	n := f.Geometry.Cells()
	at := func(i int) (int, bool) {
		idx := int(diff[i])
		return idx, idx < n
	}
	return paint(s, f, p, len(diff), at)
}

// PaintAll repaints every cell of the grid.
func PaintAll(s Surface, f Frame, p theme.Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	at := func(i int) (int, bool) { return i, true }
	return paint(s, f, p, f.Geometry.Cells(), at)
}

// PaintGrid draws the lattice. Line i is the 1px strip of pixels that ends
// at LineOffset(i), spanning the whole canvas. Lines sit in the gaps between
// cell squares, so they never cover a cell.
func PaintGrid(s Surface, g geometry.Geometry, line color.Color) error {
	if g.CellSize <= 0 {
		return nil
	}
	cw, ch := g.CanvasSize()
	s.SetColor(line)
	for i := 0; i <= g.Width; i++ {
		x := g.LineOffset(i)
		s.DrawRectangle(float64(x-1), 0, 1, float64(ch))
	}
	for j := 0; j <= g.Height; j++ {
		y := g.LineOffset(j)
		s.DrawRectangle(0, float64(y-1), float64(cw), 1)
	}
	if err := s.Fill(); err != nil {
		return fmt.Errorf("render: grid fill: %w", err)
	}
	return nil
}

// Cycle runs one render cycle: the cells (all of them when full is set,
// otherwise only diff) followed by the lattice.
func Cycle(s Surface, f Frame, diff grid.DiffList, p theme.Palette, full bool) error {
	var err error
	if full {
		err = PaintAll(s, f, p)
	} else {
		err = PaintChanged(s, f, diff, p)
	}
	if err != nil {
		return err
	}
	return PaintGrid(s, f.Geometry, p.GridLine())
}

func paint(s Surface, f Frame, p theme.Palette, n int, at func(int) (int, bool)) error {
	if f.Geometry.Empty() {
		return nil
	}
	alive, err := pass(s, f, p.Alive(), n, at, true)
	if err != nil {
		return err
	}
	dead, err := pass(s, f, p.Dead(), n, at, false)
	if err != nil {
		return err
	}
	lifecanvas.Logger().Debug("render: cells painted",
		"alive", alive, "dead", dead, "candidates", n)
	return nil
}

// pass paints every listed cell whose state equals want with c.
// SetColor and Fill are skipped when nothing matches.
func pass(s Surface, f Frame, c color.Color, n int, at func(int) (int, bool), want bool) (int, error) {
	g := f.Geometry
	size := float64(g.CellSize)
	drawn := 0
	for i := 0; i < n; i++ {
		idx, ok := at(i)
		if !ok || grid.IsAlive(f.Cells, idx) != want {
			continue
		}
		if drawn == 0 {
			s.SetColor(c)
		}
		row, col := grid.RowCol(idx, g.Width)
		x, y := g.CellOrigin(row, col)
		s.DrawRectangle(float64(x), float64(y), size, size)
		drawn++
	}
	if drawn == 0 {
		return 0, nil
	}
	if err := s.Fill(); err != nil {
		return drawn, fmt.Errorf("render: cell fill: %w", err)
	}
	return drawn, nil
}
