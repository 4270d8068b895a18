// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// Presenter is an app.Canvas backed by a GPU-uploadable canvas.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	canvas *ggcanvas.Canvas
}

// NewPresenter creates a 1x1 presenter; the app sizes it on construction.
func NewPresenter(provider gpucontext.DeviceProvider) (*Presenter, error) {
	c, err := ggcanvas.New(provider, 1, 1)
	if err != nil {
		return nil, err
	}
	return &Presenter{canvas: c}, nil
}

// SetColor sets the fill color.
func (p *Presenter) SetColor(c color.Color) {
	p.canvas.Context().SetColor(c)
}

// DrawRectangle adds a rectangle to the current path.
func (p *Presenter) DrawRectangle(x, y, w, h float64) {
	p.canvas.Context().DrawRectangle(x, y, w, h)
}

// Fill fills the current path and flags the canvas for upload.
func (p *Presenter) Fill() error {
	err := p.canvas.Context().Fill()
	p.canvas.MarkDirty()
	return err
}

// Resize changes the canvas size, clearing it.
func (p *Presenter) Resize(width, height int) error {
	return p.canvas.Resize(width, height)
}

// Present uploads the canvas if it changed and draws it at the origin.
func (p *Presenter) Present(dc gpucontext.TextureDrawer) error {
	return p.canvas.RenderTo(dc)
}

// Context returns the drawing context, for reading pixels back.
func (p *Presenter) Context() *gg.Context {
	return p.canvas.Context()
}

// Canvas returns the underlying canvas.
func (p *Presenter) Canvas() *ggcanvas.Canvas {
	return p.canvas
}

// Close releases the canvas and its texture.
func (p *Presenter) Close() error {
	return p.canvas.Close()
}
