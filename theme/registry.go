// Package theme holds color palettes and the registry that selects the
// active one.
//
// A palette assigns one color to each of five roles. The registry keeps an
// ordered set of palettes plus the active palette; changing it never
// repaints anything, callers trigger a full repaint themselves.
package theme

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Registry is an ordered set of palettes and the currently active one.
//
// Registry is NOT safe for concurrent use; it belongs to the single
// goroutine that renders.
type Registry struct {
	palettes []Palette
	index    int
	active   Palette
}

// NewRegistry creates a registry over palettes, activating the first one.
// With no arguments the built-in Defaults are registered.
// Fails with ErrInvalidPalette if any palette is malformed.
func NewRegistry(palettes ...Palette) (*Registry, error) {
	if len(palettes) == 0 {
		palettes = Defaults()
	}
	r := &Registry{palettes: make([]Palette, 0, len(palettes))}
	for _, p := range palettes {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		r.palettes = append(r.palettes, p.clone())
	}
	r.active = r.palettes[0].clone()
	return r, nil
}

// SetPalette validates p and makes it the active palette. Nothing changes
// when validation fails. If p's name matches a registered palette, cycling
// continues from that palette.
func (r *Registry) SetPalette(p Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for i := range r.palettes {
		if r.palettes[i].Name == p.Name {
			r.index = i
			break
		}
	}
	r.active = p.clone()
	return nil
}

// Cycle advances to the next registered palette, wrapping to the first,
// and returns it.
func (r *Registry) Cycle() Palette {
	r.index = (r.index + 1) % len(r.palettes)
	r.active = r.palettes[r.index].clone()
	return r.active
}

// Select activates the registered palette with the given name.
func (r *Registry) Select(name string) error {
	for i := range r.palettes {
		if r.palettes[i].Name == name {
			r.index = i
			r.active = r.palettes[i].clone()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// ColorOf returns the active palette's color for role.
func (r *Registry) ColorOf(role Role) (gg.RGBA, error) {
	return r.active.Color(role)
}

// Current returns a copy of the active palette.
func (r *Registry) Current() Palette {
	return r.active.clone()
}

// Index returns the position of the registered palette cycling continues from.
func (r *Registry) Index() int {
	return r.index
}

// Len returns the number of registered palettes.
func (r *Registry) Len() int {
	return len(r.palettes)
}

// Names returns the registered palette names in cycling order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.palettes))
	for i, p := range r.palettes {
		names[i] = p.Name
	}
	return names
}
