// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"github.com/gogpu/gpucontext"

	"github.com/emstresh/lifecanvas"
	"github.com/emstresh/lifecanvas/app"
	"github.com/emstresh/lifecanvas/geometry"
)

// Option configures a Binding.
type Option func(*Binding)

// WithPost routes every command through post, which must run it on the
// app's goroutine. Use it when events arrive on another goroutine, for
// example with schedule.Loop.Post. By default commands run inline.
func WithPost(post func(func())) Option {
	return func(b *Binding) {
		if post != nil {
			b.post = post
		}
	}
}

// WithQuit sets the callback run for Q and Escape.
func WithQuit(fn func()) Option {
	return func(b *Binding) {
		b.quit = fn
	}
}

// WithCanvasRect sets a function reporting where the canvas is shown in
// window coordinates, for hosts that scale or offset it.
func WithCanvasRect(fn func() geometry.Rect) Option {
	return func(b *Binding) {
		b.rect = fn
	}
}

// Binding holds the input state of a bound window.
type Binding struct {
	app  *app.App
	post func(func())
	quit func()
	rect func() geometry.Rect

	mods gpucontext.Modifiers
}

// Bind registers input handlers on events. Clicks come from OnPointer when
// events also implements gpucontext.PointerEventSource, otherwise from
// OnMousePress with the modifiers of the last key event.
func Bind(events gpucontext.EventSource, a *app.App, opts ...Option) *Binding {
	b := &Binding{
		app:  a,
		post: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(b)
	}

	events.OnKeyPress(b.keyPress)
	events.OnKeyRelease(b.keyRelease)
	events.OnResize(func(w, h int) {
		b.dispatch(app.Resize{Width: w, Height: h})
	})

	if ps, ok := events.(gpucontext.PointerEventSource); ok {
		ps.OnPointer(b.pointer)
	} else {
		events.OnMousePress(func(btn gpucontext.MouseButton, x, y float64) {
			if btn == gpucontext.MouseButtonLeft {
				b.click(x, y, b.mods)
			}
		})
	}
	return b
}

func (b *Binding) dispatch(cmd app.Command) {
	b.post(func() {
		if err := b.app.Dispatch(cmd); err != nil {
			lifecanvas.Logger().Warn("gpuhost: command failed",
				"command", cmd.CommandName(), "err", err)
		}
	})
}

func (b *Binding) pointer(ev gpucontext.PointerEvent) {
	if ev.Type != gpucontext.PointerDown || ev.Button != gpucontext.ButtonLeft {
		return
	}
	b.click(ev.X, ev.Y, ev.Modifiers)
}

func (b *Binding) click(x, y float64, mods gpucontext.Modifiers) {
	c := app.Click{X: x, Y: y, Mods: translateMods(mods)}
	if b.rect != nil {
		c.Rect = b.rect()
	}
	b.dispatch(c)
}

func translateMods(m gpucontext.Modifiers) app.Modifiers {
	var out app.Modifiers
	if m.HasShift() {
		out |= app.ModShift
	}
	if m&gpucontext.ModSuper != 0 {
		out |= app.ModMeta
	}
	return out
}

func (b *Binding) keyPress(key gpucontext.Key, mods gpucontext.Modifiers) {
	b.mods = mods | modifierOf(key)

	switch key {
	case gpucontext.KeySpace:
		b.dispatch(app.TogglePlayback{})
	case gpucontext.KeyT:
		b.dispatch(app.CycleTheme{})
	case gpucontext.KeyR:
		b.dispatch(app.Reset{})
	case gpucontext.KeyC:
		b.dispatch(app.Clear{})
	case gpucontext.KeyEqual, gpucontext.KeyNumpadAdd:
		b.post(func() { b.adjustSteps(1) })
	case gpucontext.KeyMinus, gpucontext.KeyNumpadSubtract:
		b.post(func() { b.adjustSteps(-1) })
	case gpucontext.KeyQ, gpucontext.KeyEscape:
		if b.quit != nil {
			b.post(b.quit)
		}
	}
}

func (b *Binding) keyRelease(key gpucontext.Key, mods gpucontext.Modifiers) {
	b.mods = mods &^ modifierOf(key)
}

// adjustSteps changes the tick rate by delta, never going below one.
func (b *Binding) adjustSteps(delta int) {
	n := b.app.Driver().StepsPerFrame() + delta
	if n < 1 {
		return
	}
	if err := b.app.Dispatch(app.SetTickRate{Steps: n}); err != nil {
		lifecanvas.Logger().Warn("gpuhost: tick rate", "err", err)
	}
}

// modifierOf returns the modifier a modifier key controls.
func modifierOf(key gpucontext.Key) gpucontext.Modifiers {
	switch key {
	case gpucontext.KeyLeftShift, gpucontext.KeyRightShift:
		return gpucontext.ModShift
	case gpucontext.KeyLeftControl, gpucontext.KeyRightControl:
		return gpucontext.ModControl
	case gpucontext.KeyLeftAlt, gpucontext.KeyRightAlt:
		return gpucontext.ModAlt
	case gpucontext.KeyLeftSuper, gpucontext.KeyRightSuper:
		return gpucontext.ModSuper
	}
	return 0
}
