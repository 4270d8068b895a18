// Package geometry maps between viewport pixels and grid cells.
//
// Every cell is a CellSize x CellSize square preceded by a 1px border, so
// the distance between neighboring cell origins (the pitch) is CellSize+1
// and a canvas holding an n-cell row is pitch*n+1 pixels wide.
package geometry

import "math"

// Geometry describes the logical grid and the pixel size of its cells.
// Values are recomputed, never mutated, when the viewport changes.
type Geometry struct {
	CellSize int
	Width    int
	Height   int
}

// Compute derives the grid dimensions that fit a viewport.
// A viewport smaller than one pitch yields a zero dimension, which is
// passed through uncorrected. A non-positive cell size yields an empty grid.
func Compute(viewportW, viewportH, cellSize int) Geometry {
	g := Geometry{CellSize: cellSize}
	if cellSize <= 0 {
		return g
	}
	pitch := cellSize + 1
	if viewportW > 0 {
		g.Width = viewportW / pitch
	}
	if viewportH > 0 {
		g.Height = viewportH / pitch
	}
	return g
}

// Pitch returns the distance between neighboring cell origins.
func (g Geometry) Pitch() int {
	return g.CellSize + 1
}

// Cells returns the number of cells in the grid.
func (g Geometry) Cells() int {
	return g.Width * g.Height
}

// Empty reports whether the grid has no cells.
func (g Geometry) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// CanvasSize returns the backing-store size that holds the grid, including
// one closing border line on the right and bottom.
func (g Geometry) CanvasSize() (w, h int) {
	return g.Pitch()*g.Width + 1, g.Pitch()*g.Height + 1
}

// CellOrigin returns the top-left pixel of the cell at (row, col).
func (g Geometry) CellOrigin(row, col int) (x, y int) {
	return col*g.Pitch() + 1, row*g.Pitch() + 1
}

// CellCenter returns the canvas pixel at the center of the cell at (row, col).
func (g Geometry) CellCenter(row, col int) (x, y float64) {
	ox, oy := g.CellOrigin(row, col)
	half := float64(g.CellSize) / 2
	return float64(ox) + half, float64(oy) + half
}

// LineOffset returns the canvas coordinate of lattice boundary i.
func (g Geometry) LineOffset(i int) int {
	return i*g.Pitch() + 1
}

// Rect is the on-screen rectangle the canvas is displayed in, in client
// coordinates. It may differ in size from the canvas backing store when the
// host scales the canvas.
type Rect struct {
	X, Y float64
	W, H float64
}

// PixelToCell maps a client-space point to the grid cell under it.
// The point is rescaled by the ratio of the canvas backing-store size to the
// displayed size, then clamped to the grid so points outside map to the
// nearest edge cell. ok is false only when the grid has no cells.
func (g Geometry) PixelToCell(px, py float64, rect Rect, canvasW, canvasH int) (row, col int, ok bool) {
	if g.Empty() || g.CellSize <= 0 {
		return 0, 0, false
	}

	scaleX, scaleY := 1.0, 1.0
	if rect.W > 0 {
		scaleX = float64(canvasW) / rect.W
	}
	if rect.H > 0 {
		scaleY = float64(canvasH) / rect.H
	}

	canvasX := (px - rect.X) * scaleX
	canvasY := (py - rect.Y) * scaleY

	pitch := float64(g.Pitch())
	row = clamp(int(math.Floor(canvasY/pitch)), g.Height-1)
	col = clamp(int(math.Floor(canvasX/pitch)), g.Width-1)
	return row, col, true
}

// CanvasRect returns the Rect of a canvas displayed unscaled at the origin.
func (g Geometry) CanvasRect() Rect {
	w, h := g.CanvasSize()
	return Rect{W: float64(w), H: float64(h)}
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
