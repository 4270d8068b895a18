package grid

import "testing"

func TestPackedLen(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"exact byte", 4, 2, 1},
		{"partial byte", 3, 3, 2},
		{"4x4", 4, 4, 2},
		{"64x64", 64, 64, 512},
		{"single cell", 1, 1, 1},
		{"zero width", 0, 10, 0},
		{"zero height", 10, 0, 0},
		{"negative", -1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackedLen(tt.width, tt.height); got != tt.want {
				t.Errorf("PackedLen(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestIsAliveBitLayout(t *testing.T) {
	// byte 0 = 0b0100_0001: cells 0 and 6 alive
	// byte 1 = 0b1000_0000: cell 15 alive
	g := PackedGrid{0x41, 0x80}
	alive := map[int]bool{0: true, 6: true, 15: true}

	for i := 0; i < 16; i++ {
		if got := IsAlive(g, i); got != alive[i] {
			t.Errorf("IsAlive(g, %d) = %v, want %v", i, got, alive[i])
		}
	}
}

func TestIsAliveStable(t *testing.T) {
	const width, height = 13, 7
	g := make(PackedGrid, PackedLen(width, height))
	for i := 0; i < width*height; i += 3 {
		Set(g, i, true)
	}

	first := make([]bool, width*height)
	for i := range first {
		first[i] = IsAlive(g, i)
	}
	for pass := 0; pass < 3; pass++ {
		for i := range first {
			if got := IsAlive(g, i); got != first[i] {
				t.Fatalf("pass %d: IsAlive(g, %d) = %v, first call returned %v", pass, i, got, first[i])
			}
		}
	}
}

func TestSet(t *testing.T) {
	g := make(PackedGrid, 2)

	Set(g, 9, true)
	if g[1] != 0x02 {
		t.Fatalf("after Set(9, true) byte 1 = %#x, want 0x02", g[1])
	}
	if !IsAlive(g, 9) {
		t.Error("IsAlive(9) = false after Set(9, true)")
	}

	Set(g, 9, true)
	if g[1] != 0x02 {
		t.Errorf("Set is not idempotent: byte 1 = %#x", g[1])
	}

	Set(g, 9, false)
	if IsAlive(g, 9) || g[1] != 0 {
		t.Errorf("after Set(9, false) byte 1 = %#x, want 0", g[1])
	}
}

func TestCount(t *testing.T) {
	g := PackedGrid{0xFF, 0x01}
	if got := Count(g, 16); got != 9 {
		t.Errorf("Count(16) = %d, want 9", got)
	}
	// Padding bits beyond n are ignored.
	if got := Count(g, 8); got != 8 {
		t.Errorf("Count(8) = %d, want 8", got)
	}
}

func TestIndexRowColRoundTrip(t *testing.T) {
	const width, height = 4, 4
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			idx := Index(row, col, width)
			r, c := RowCol(idx, width)
			if r != row || c != col {
				t.Errorf("RowCol(Index(%d, %d)) = (%d, %d)", row, col, r, c)
			}
		}
	}
	if got := Index(1, 2, 4); got != 6 {
		t.Errorf("Index(1, 2, 4) = %d, want 6", got)
	}
}
