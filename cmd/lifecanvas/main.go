// Command lifecanvas runs Conway's Game of Life on a canvas.
//
// By default it simulates a number of frames headless and saves the final
// frame as a PNG:
//
//	lifecanvas -width 641 -height 481 -frames 120 -output life.png
//
// With -term it runs interactively in the terminal instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/emstresh/lifecanvas"
	"github.com/emstresh/lifecanvas/app"
	"github.com/emstresh/lifecanvas/integration/tcellhost"
	"github.com/emstresh/lifecanvas/life"
	"github.com/emstresh/lifecanvas/schedule"
	"github.com/emstresh/lifecanvas/theme"
)

func main() {
	var (
		width   = flag.Int("width", 641, "viewport width in pixels")
		height  = flag.Int("height", 481, "viewport height in pixels")
		cell    = flag.Int("cell", 0, "cell size in pixels (default 10, or 1 with -term)")
		frames  = flag.Int("frames", 60, "frames to simulate in headless mode")
		steps   = flag.Int("steps", 1, "generations per frame")
		seed    = flag.Uint64("seed", 1, "random seed for the initial pattern")
		themeFl = flag.String("theme", "", "initial theme: "+strings.Join(builtinNames(), ", "))
		palette = flag.String("palette", "", "custom palette: 5 comma-separated hex colors (alive,dead,primary,secondary,grid)")
		output  = flag.String("output", "life.png", "output file")
		stats   = flag.Bool("stats", false, "draw the frame-rate report onto the output")
		term    = flag.Bool("term", false, "run interactively in the terminal")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		lifecanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	reg, err := registry(*themeFl, *palette)
	if err != nil {
		log.Fatal(err)
	}
	eng := life.New(0, 0, life.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	opts := []app.Option{
		app.WithRegistry(reg),
		app.WithStepsPerFrame(*steps),
	}

	if *term {
		if err := runTerminal(eng, *cell, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *cell == 0 {
		*cell = app.DefaultCellSize
	}
	opts = append(opts, app.WithCellSize(*cell))
	if err := runHeadless(eng, *width, *height, *frames, *output, *stats, opts); err != nil {
		log.Fatal(err)
	}
}

func builtinNames() []string {
	var names []string
	for _, p := range theme.Defaults() {
		names = append(names, p.Name)
	}
	return names
}

// registry builds the theme registry from the -theme and -palette flags.
func registry(name, custom string) (*theme.Registry, error) {
	palettes := theme.Defaults()
	if custom != "" {
		p, err := theme.ParsePalette("custom", strings.Split(custom, ",")...)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
		if name == "" {
			name = p.Name
		}
	}
	reg, err := theme.NewRegistry(palettes...)
	if err != nil {
		return nil, err
	}
	if name != "" {
		if err := reg.Select(name); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func runHeadless(eng *life.Universe, width, height, frames int, output string, drawStats bool, opts []app.Option) error {
	dc := gg.NewContext(1, 1)
	defer dc.Close()

	m := schedule.NewManual()
	a, err := app.New(eng, dc, m, m, width, height, append(opts, app.WithClock(m))...)
	if err != nil {
		return err
	}

	if err := a.Dispatch(app.Play{}); err != nil {
		return err
	}
	for range frames {
		m.Frame()
	}

	if drawStats {
		if err := drawReport(dc, a); err != nil {
			return err
		}
	}
	if err := dc.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	g := a.Geometry()
	log.Printf("%d frames of a %dx%d grid saved to %s (%dx%d), population %d\n",
		frames, g.Width, g.Height, output, dc.Width(), dc.Height(), eng.Population())
	return nil
}

// drawReport writes the frame-rate statistics in the top-left corner.
func drawReport(dc *gg.Context, a *app.App) error {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer src.Close()

	p := a.Registry().Current()
	dc.SetFont(src.Face(12))
	dc.SetColor(p.GridLine())
	dc.DrawRectangle(0, 0, float64(dc.Width()), 18)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.SetColor(p.Alive())
	dc.DrawString(a.Stats().String(), 4, 13)
	return nil
}

func runTerminal(eng *life.Universe, cell int, opts []app.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if cell == 0 {
		cell = tcellhost.DefaultCellSize
	}
	h := tcellhost.New(screen, eng,
		tcellhost.WithCellSize(cell),
		tcellhost.WithAppOptions(opts...))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := h.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
