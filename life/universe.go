// Package life is a reference Conway engine that produces the packed cell
// buffer and per-step diff list consumed by the renderer.
//
// The universe is toroidal: the rows and columns at the edges are
// neighbors of the opposite edge. Every mutating call replaces the diff
// list with exactly the cells that call changed or rewrote.
package life

import (
	"math/rand/v2"
	"strings"

	"github.com/emstresh/lifecanvas/grid"
)

// Option configures a Universe.
type Option func(*Universe)

// WithRand sets the random source used by Reset.
func WithRand(r *rand.Rand) Option {
	return func(u *Universe) {
		if r != nil {
			u.rng = r
		}
	}
}

// WithEmpty starts the universe with every cell dead instead of a random
// fill.
func WithEmpty() Option {
	return func(u *Universe) {
		u.empty = true
	}
}

// Universe is a width x height Conway grid.
// It is not safe for concurrent use.
type Universe struct {
	width, height int

	cells grid.PackedGrid
	next  grid.PackedGrid
	diff  grid.DiffList

	rng   *rand.Rand
	empty bool
}

// New creates a universe, randomly filled unless WithEmpty is given.
// The diff list of a new universe lists every cell. Non-positive
// dimensions yield an empty universe.
func New(width, height int, opts ...Option) *Universe {
	u := &Universe{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	for _, opt := range opts {
		opt(u)
	}
	u.alloc(width, height)
	if u.empty {
		u.Clear()
	} else {
		u.Reset()
	}
	return u
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.height }

// Cells returns the packed cell buffer. It is owned by the universe and
// is replaced by Tick; callers must re-acquire it after every mutation.
func (u *Universe) Cells() grid.PackedGrid { return u.cells }

// DiffCells returns the indices changed by the last mutating call.
func (u *Universe) DiffCells() grid.DiffList { return u.diff }

// NumChanged returns len(DiffCells()).
func (u *Universe) NumChanged() int { return len(u.diff) }

// Alive reports whether the cell at (row, col) is alive. Out-of-range
// coordinates report false.
func (u *Universe) Alive(row, col int) bool {
	if !u.inside(row, col) {
		return false
	}
	return grid.IsAlive(u.cells, grid.Index(row, col, u.width))
}

// Population returns the number of alive cells.
func (u *Universe) Population() int {
	return grid.Count(u.cells, u.width*u.height)
}

// Tick advances one generation.
func (u *Universe) Tick() {
	u.diff = u.diff[:0]
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := grid.Index(row, col, u.width)
			cell := grid.IsAlive(u.cells, idx)
			n := u.liveNeighbors(row, col)

			next := n == 3 || (cell && n == 2)
			grid.Set(u.next, idx, next)
			if next != cell {
				u.diff = append(u.diff, uint32(idx))
			}
		}
	}
	u.cells, u.next = u.next, u.cells
}

// ToggleCell flips one cell. Out-of-range coordinates leave the grid
// unchanged and the diff list empty.
func (u *Universe) ToggleCell(row, col int) {
	u.diff = u.diff[:0]
	if !u.inside(row, col) {
		return
	}
	idx := grid.Index(row, col, u.width)
	grid.Set(u.cells, idx, !grid.IsAlive(u.cells, idx))
	u.diff = append(u.diff, uint32(idx))
}

// SetCell stores one cell and appends it to the diff list.
func (u *Universe) SetCell(row, col int, alive bool) {
	if !u.inside(row, col) {
		return
	}
	idx := grid.Index(row, col, u.width)
	grid.Set(u.cells, idx, alive)
	u.diff = append(u.diff, uint32(idx))
}

// InsertGlider writes a glider centred at (row, col).
func (u *Universe) InsertGlider(row, col int) {
	u.stamp(row, col, glider)
}

// InsertPulsar writes a pulsar centred at (row, col).
func (u *Universe) InsertPulsar(row, col int) {
	u.stamp(row, col, pulsar)
}

// Reset refills the grid randomly. Every cell is listed as changed.
func (u *Universe) Reset() {
	n := u.width * u.height
	for i := 0; i < n; i++ {
		grid.Set(u.cells, i, u.rng.IntN(2) == 1)
	}
	u.diffAll()
}

// Clear kills every cell. Every cell is listed as changed.
func (u *Universe) Clear() {
	clear(u.cells)
	u.diffAll()
}

// Resize reallocates the grid and refills it as Reset does.
func (u *Universe) Resize(width, height int) {
	u.alloc(width, height)
	if u.empty {
		u.Clear()
	} else {
		u.Reset()
	}
}

// String renders the grid one row per line with filled and empty squares.
func (u *Universe) String() string {
	var b strings.Builder
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if grid.IsAlive(u.cells, grid.Index(row, col, u.width)) {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (u *Universe) alloc(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	u.width, u.height = width, height
	n := grid.PackedLen(width, height)
	u.cells = make(grid.PackedGrid, n)
	u.next = make(grid.PackedGrid, n)
	u.diff = make(grid.DiffList, 0, width*height)
}

func (u *Universe) diffAll() {
	n := u.width * u.height
	u.diff = u.diff[:0]
	for i := 0; i < n; i++ {
		u.diff = append(u.diff, uint32(i))
	}
}

func (u *Universe) inside(row, col int) bool {
	return row >= 0 && row < u.height && col >= 0 && col < u.width
}

func (u *Universe) liveNeighbors(row, col int) int {
	north := (row - 1 + u.height) % u.height
	south := (row + 1) % u.height
	west := (col - 1 + u.width) % u.width
	east := (col + 1) % u.width

	count := 0
	for _, r := range [3]int{north, row, south} {
		for _, c := range [3]int{west, col, east} {
			if r == row && c == col {
				continue
			}
			if grid.IsAlive(u.cells, grid.Index(r, c, u.width)) {
				count++
			}
		}
	}
	return count
}
