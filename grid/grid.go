// Package grid decodes the packed cell buffer shared with a simulation engine.
//
// A PackedGrid stores one bit per cell in row-major order, 8 cells per
// byte: cell i lives in byte i/8 at bit i%8, and a set bit means alive.
// The engine owns the buffer; readers must re-acquire it after any engine
// call that can reallocate (tick, reset, clear, resize).
package grid

// PackedGrid is a row-major bit-per-cell grid.
type PackedGrid []byte

// DiffList holds the indices of the cells that changed since the previous
// engine step, using the same indexing as PackedGrid.
type DiffList []uint32

// PackedLen returns the number of bytes needed to hold width*height cells.
func PackedLen(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (width*height + 7) / 8 // Ceiling division
}

// IsAlive reports whether the cell at index is alive.
// The index must be in [0, width*height); out-of-range indices are a
// programmer error and panic on the slice access.
func IsAlive(g PackedGrid, index int) bool {
	mask := byte(1) << (index & 7) // index % 8
	return g[index>>3]&mask == mask
}

// Set stores the state of the cell at index. Engines use it to build
// the buffer they hand out; renderers never write.
func Set(g PackedGrid, index int, alive bool) {
	mask := byte(1) << (index & 7)
	if alive {
		g[index>>3] |= mask
	} else {
		g[index>>3] &^= mask
	}
}

// Count returns the number of alive cells among the first n cells.
func Count(g PackedGrid, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		if IsAlive(g, i) {
			count++
		}
	}
	return count
}

// Index converts a (row, col) pair to a cell index.
func Index(row, col, width int) int {
	return row*width + col
}

// RowCol converts a cell index back to its (row, col) pair.
func RowCol(index, width int) (row, col int) {
	return index / width, index % width
}
