// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package tcellhost

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidSize is returned by Screen.Resize for non-positive dimensions.
var ErrInvalidSize = errors.New("tcellhost: canvas size must be positive")

type rect struct {
	x0, y0, x1, y1 int
}

// Screen is an app.Canvas backed by a terminal. Each terminal cell is one
// canvas pixel; filled rectangles become runs of spaces whose background
// is the fill color. The canvas is placed at (OriginX, OriginY) and
// clipped to both its own size and the terminal.
type Screen struct {
	screen           tcell.Screen
	originX, originY int
	width, height    int
	style            tcell.Style
	pending          []rect
}

// NewScreen creates a canvas drawn at (originX, originY) on s.
func NewScreen(s tcell.Screen, originX, originY int) *Screen {
	return &Screen{
		screen:  s,
		originX: originX,
		originY: originY,
		width:   1,
		height:  1,
		style:   tcell.StyleDefault,
	}
}

// SetColor sets the fill color for the next Fill.
func (s *Screen) SetColor(c color.Color) {
	s.style = tcell.StyleDefault.Background(toColor(c))
}

// DrawRectangle queues a rectangle for the next Fill.
func (s *Screen) DrawRectangle(x, y, w, h float64) {
	s.pending = append(s.pending, rect{
		x0: int(math.Floor(x)),
		y0: int(math.Floor(y)),
		x1: int(math.Ceil(x + w)),
		y1: int(math.Ceil(y + h)),
	})
}

// Fill paints every queued rectangle and clears the queue.
func (s *Screen) Fill() error {
	sw, sh := s.screen.Size()
	for _, r := range s.pending {
		for y := max(r.y0, 0); y < min(r.y1, s.height); y++ {
			ty := s.originY + y
			if ty >= sh {
				break
			}
			for x := max(r.x0, 0); x < min(r.x1, s.width); x++ {
				tx := s.originX + x
				if tx >= sw {
					break
				}
				s.screen.SetContent(tx, ty, ' ', nil, s.style)
			}
		}
	}
	s.pending = s.pending[:0]
	return nil
}

// Resize sets the canvas size in terminal cells.
func (s *Screen) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s.width, s.height = width, height
	return nil
}

// Size returns the canvas size in terminal cells.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// toColor converts c to a 24-bit terminal color.
func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
