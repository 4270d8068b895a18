package theme

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// Common errors returned by palette and registry operations.
var (
	// ErrInvalidPalette is returned when a palette does not have exactly
	// one color per role or a color string cannot be parsed.
	ErrInvalidPalette = errors.New("theme: invalid palette")

	// ErrUnknownRole is returned when a color is requested for a role
	// that is not one of the five palette roles.
	ErrUnknownRole = errors.New("theme: unknown role")

	// ErrUnknownPalette is returned by Select when no registered palette
	// has the requested name.
	ErrUnknownPalette = errors.New("theme: unknown palette")
)

// Role is the semantic slot a palette color is assigned to.
type Role int

// Palette roles, in palette order.
const (
	RoleAlive Role = iota
	RoleDead
	RolePrimary
	RoleSecondary
	RoleGridLine

	numRoles
)

// PaletteSize is the number of colors in every palette.
const PaletteSize = int(numRoles)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleAlive:
		return "alive"
	case RoleDead:
		return "dead"
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	case RoleGridLine:
		return "grid-line"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Valid reports whether r is one of the palette roles.
func (r Role) Valid() bool {
	return r >= RoleAlive && r < numRoles
}

// Roles returns all palette roles in palette order.
func Roles() []Role {
	return []Role{RoleAlive, RoleDead, RolePrimary, RoleSecondary, RoleGridLine}
}

// Palette is a named set of colors, one per Role, indexed by Role.
type Palette struct {
	Name   string
	Colors []gg.RGBA
}

// NewPalette builds a palette from colors given in role order.
// It fails with ErrInvalidPalette unless exactly PaletteSize colors are given.
func NewPalette(name string, colors ...gg.RGBA) (Palette, error) {
	p := Palette{Name: name, Colors: append([]gg.RGBA(nil), colors...)}
	if err := p.Validate(); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// ParsePalette builds a palette from hex color strings given in role order.
// Accepted forms are RGB, RGBA, RRGGBB and RRGGBBAA, with an optional
// leading '#'.
func ParsePalette(name string, hexes ...string) (Palette, error) {
	if len(hexes) != PaletteSize {
		return Palette{}, fmt.Errorf("%w: %q has %d colors, want %d", ErrInvalidPalette, name, len(hexes), PaletteSize)
	}
	colors := make([]gg.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := gg.ParseHex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: %q %s color: %w", ErrInvalidPalette, name, Role(i), err)
		}
		colors[i] = c
	}
	return Palette{Name: name, Colors: colors}, nil
}

// MustParsePalette is like ParsePalette but panics on error.
// Use only for palettes written into the source.
func MustParsePalette(name string, hexes ...string) Palette {
	p, err := ParsePalette(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks that the palette has exactly one color per role.
func (p Palette) Validate() error {
	if len(p.Colors) != PaletteSize {
		return fmt.Errorf("%w: %q has %d colors, want %d", ErrInvalidPalette, p.Name, len(p.Colors), PaletteSize)
	}
	return nil
}

// Color returns the palette color for role.
func (p Palette) Color(role Role) (gg.RGBA, error) {
	if !role.Valid() {
		return gg.RGBA{}, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}
	if int(role) >= len(p.Colors) {
		return gg.RGBA{}, fmt.Errorf("%w: %q has no %s color", ErrInvalidPalette, p.Name, role)
	}
	return p.Colors[role], nil
}

// Alive returns the alive-cell color. The palette must be valid.
func (p Palette) Alive() gg.RGBA { return p.Colors[RoleAlive] }

// Dead returns the dead-cell color. The palette must be valid.
func (p Palette) Dead() gg.RGBA { return p.Colors[RoleDead] }

// GridLine returns the lattice color. The palette must be valid.
func (p Palette) GridLine() gg.RGBA { return p.Colors[RoleGridLine] }

// clone returns a copy that shares no memory with p.
func (p Palette) clone() Palette {
	return Palette{Name: p.Name, Colors: append([]gg.RGBA(nil), p.Colors...)}
}

// Built-in palettes.
var (
	// Ember is the default warm palette.
	Ember = MustParsePalette("ember", "#8a5e4b", "#301c2a", "#5b1036", "#7c3e4f", "#bb9564")

	// Lagoon is a cool high-contrast palette.
	Lagoon = MustParsePalette("lagoon", "#023C40", "#C3979F", "#0AD3FF", "#78FFD6", "#E1FAF9")

	// Classic keeps the dark cells of Ember on a light gray lattice.
	Classic = MustParsePalette("classic", "#8a5e4b", "#301c2a", "#7c3e4f", "#bb9564", "#CCCCCC")
)

// Defaults returns copies of the built-in palettes in cycling order.
func Defaults() []Palette {
	return []Palette{Ember.clone(), Lagoon.clone(), Classic.clone()}
}
