package app

import (
	"errors"
	"fmt"

	"github.com/emstresh/lifecanvas"
	"github.com/emstresh/lifecanvas/geometry"
	"github.com/emstresh/lifecanvas/theme"
)

// Command errors.
var (
	// ErrUnknownCommand is returned by Dispatch for a nil or foreign command.
	ErrUnknownCommand = errors.New("app: unknown command")

	// ErrUnknownTheme is returned when SelectTheme names no registered
	// palette. It is returned together with theme.ErrUnknownPalette.
	ErrUnknownTheme = errors.New("app: unknown theme")
)

// Command is a state transition requested by the host.
type Command interface {
	CommandName() string
}

// Modifiers is the set of modifier keys held during a click.
type Modifiers uint8

// Modifier flags.
const (
	ModShift Modifiers = 1 << iota
	ModMeta
)

// Has reports whether all of m2 are set in m.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// ToggleCell flips the cell at (Row, Col).
type ToggleCell struct{ Row, Col int }

// InsertGlider stamps a glider centred at (Row, Col).
type InsertGlider struct{ Row, Col int }

// InsertPulsar stamps a pulsar centred at (Row, Col).
type InsertPulsar struct{ Row, Col int }

// Click is a pointer press at client coordinates (X, Y) over a canvas
// displayed in Rect. A zero Rect means the canvas is shown unscaled at the
// origin. Meta inserts a glider, Shift a pulsar, otherwise the cell toggles.
type Click struct {
	X, Y float64
	Rect geometry.Rect
	Mods Modifiers
}

// Reset refills the engine randomly.
type Reset struct{}

// Clear kills every cell.
type Clear struct{}

// CycleTheme activates the next registered palette.
type CycleTheme struct{}

// Play starts the animation.
type Play struct{}

// Pause stops the animation.
type Pause struct{}

// TogglePlayback switches between playing and paused.
type TogglePlayback struct{}

// SetTickRate sets how many ticks each frame advances.
type SetTickRate struct{ Steps int }

// Resize reports a new viewport size. Bursts are debounced.
type Resize struct{ Width, Height int }

// SetPalette activates a palette that need not be registered.
type SetPalette struct{ Palette theme.Palette }

// SelectTheme activates the registered palette with the given name.
type SelectTheme struct{ Name string }

func (ToggleCell) CommandName() string     { return "toggle-cell" }
func (InsertGlider) CommandName() string   { return "insert-glider" }
func (InsertPulsar) CommandName() string   { return "insert-pulsar" }
func (Click) CommandName() string          { return "click" }
func (Reset) CommandName() string          { return "reset" }
func (Clear) CommandName() string          { return "clear" }
func (CycleTheme) CommandName() string     { return "cycle-theme" }
func (Play) CommandName() string           { return "play" }
func (Pause) CommandName() string          { return "pause" }
func (TogglePlayback) CommandName() string { return "toggle-playback" }
func (SetTickRate) CommandName() string    { return "set-tick-rate" }
func (Resize) CommandName() string         { return "resize" }
func (SetPalette) CommandName() string     { return "set-palette" }
func (SelectTheme) CommandName() string    { return "select-theme" }

// Dispatch applies cmd synchronously. Engine mutations are painted before
// Dispatch returns.
func (a *App) Dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case ToggleCell:
		a.eng.ToggleCell(c.Row, c.Col)
		return a.Render()
	case InsertGlider:
		a.eng.InsertGlider(c.Row, c.Col)
		return a.Render()
	case InsertPulsar:
		a.eng.InsertPulsar(c.Row, c.Col)
		return a.Render()
	case Click:
		return a.click(c)
	case Reset:
		a.eng.Reset()
		return a.Redraw()
	case Clear:
		a.eng.Clear()
		return a.Redraw()
	case CycleTheme:
		p := a.registry.Cycle()
		lifecanvas.Logger().Info("app: theme changed", "theme", p.Name)
		return a.Redraw()
	case Play:
		a.driver.Play()
		return nil
	case Pause:
		a.driver.Pause()
		return nil
	case TogglePlayback:
		a.driver.Toggle()
		return nil
	case SetTickRate:
		return a.driver.SetStepsPerFrame(c.Steps)
	case Resize:
		a.viewportW, a.viewportH = c.Width, c.Height
		a.resizer.Trigger()
		return nil
	case SetPalette:
		if err := a.registry.SetPalette(c.Palette); err != nil {
			return err
		}
		lifecanvas.Logger().Info("app: theme changed", "theme", c.Palette.Name)
		return a.Redraw()
	case SelectTheme:
		if err := a.registry.Select(c.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrUnknownTheme, err)
		}
		lifecanvas.Logger().Info("app: theme changed", "theme", c.Name)
		return a.Redraw()
	case nil:
		return fmt.Errorf("%w: nil", ErrUnknownCommand)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.CommandName())
	}
}

func (a *App) click(c Click) error {
	rect := c.Rect
	if rect == (geometry.Rect{}) {
		rect = a.geom.CanvasRect()
	}
	cw, ch := a.geom.CanvasSize()
	row, col, ok := a.geom.PixelToCell(c.X, c.Y, rect, cw, ch)
	if !ok {
		return nil
	}
	switch {
	case c.Mods.Has(ModMeta):
		return a.Dispatch(InsertGlider{Row: row, Col: col})
	case c.Mods.Has(ModShift):
		return a.Dispatch(InsertPulsar{Row: row, Col: col})
	default:
		return a.Dispatch(ToggleCell{Row: row, Col: col})
	}
}
