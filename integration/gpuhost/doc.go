// Copyright 2026 The lifecanvas Authors
// SPDX-License-Identifier: MIT

// Package gpuhost presents a lifecanvas app in a GPU window.
//
// Presenter renders into a [ggcanvas.Canvas] and uploads it as a texture,
// and Bind translates window input from any [gpucontext.EventSource] into
// app commands. Neither depends on a particular windowing library; any
// host implementing the gpucontext interfaces works.
//
// # Usage
//
//	p, err := gpuhost.NewPresenter(provider)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	a, err := app.New(life.New(64, 64), p, sched, timers, w, h)
//	if err != nil {
//	    return err
//	}
//	gpuhost.Bind(events, a, gpuhost.WithQuit(stop))
//
//	// every draw callback
//	_ = p.Present(drawer)
//
// # Input
//
//	Space        play / pause
//	T            next theme
//	R            reset
//	C            clear
//	= / -        more / fewer steps per frame (numpad + / - too)
//	click        toggle a cell (Shift: pulsar, Super: glider)
//	Q, Escape    quit
package gpuhost
