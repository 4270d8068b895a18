package life

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/emstresh/lifecanvas/grid"
)

func newEmpty(w, h int) *Universe {
	return New(w, h, WithEmpty())
}

func alive(u *Universe) []int {
	var out []int
	for i := 0; i < u.Width()*u.Height(); i++ {
		if grid.IsAlive(u.Cells(), i) {
			out = append(out, i)
		}
	}
	return out
}

func diffInts(u *Universe) []int {
	out := make([]int, 0, u.NumChanged())
	for _, d := range u.DiffCells() {
		out = append(out, int(d))
	}
	return out
}

func TestNewListsEveryCell(t *testing.T) {
	u := New(8, 4, WithRand(rand.New(rand.NewPCG(1, 2))))
	if u.NumChanged() != 32 || len(u.Cells()) != 4 {
		t.Fatalf("NumChanged = %d, len(Cells) = %d", u.NumChanged(), len(u.Cells()))
	}
	if p := u.Population(); p == 0 || p == 32 {
		t.Errorf("Population = %d, want a random mix", p)
	}
}

func TestResetDeterministicWithSeed(t *testing.T) {
	a := New(16, 16, WithRand(rand.New(rand.NewPCG(7, 7))))
	b := New(16, 16, WithRand(rand.New(rand.NewPCG(7, 7))))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Error("same seed produced different grids")
	}
}

func TestBlinker(t *testing.T) {
	u := newEmpty(5, 5)
	for col := 1; col <= 3; col++ {
		u.SetCell(2, col, true)
	}
	u.Tick()

	want := []int{grid.Index(1, 2, 5), grid.Index(2, 2, 5), grid.Index(3, 2, 5)}
	if got := alive(u); !slices.Equal(got, want) {
		t.Errorf("alive after tick = %v, want %v", got, want)
	}
	wantDiff := []int{grid.Index(1, 2, 5), grid.Index(2, 1, 5), grid.Index(2, 3, 5), grid.Index(3, 2, 5)}
	if got := diffInts(u); !slices.Equal(got, wantDiff) {
		t.Errorf("diff = %v, want %v", got, wantDiff)
	}
}

func TestBlockIsStill(t *testing.T) {
	u := newEmpty(4, 4)
	u.SetCell(1, 1, true)
	u.SetCell(1, 2, true)
	u.SetCell(2, 1, true)
	u.SetCell(2, 2, true)
	before := alive(u)
	u.Tick()
	if u.NumChanged() != 0 {
		t.Errorf("NumChanged = %d, want 0", u.NumChanged())
	}
	if !slices.Equal(alive(u), before) {
		t.Error("block changed")
	}
}

func TestToroidalWrap(t *testing.T) {
	// a vertical blinker on the left edge wraps its horizontal phase
	u := newEmpty(5, 5)
	u.SetCell(1, 0, true)
	u.SetCell(2, 0, true)
	u.SetCell(3, 0, true)
	u.Tick()
	for _, c := range []int{4, 0, 1} {
		if !u.Alive(2, c) {
			t.Errorf("cell (2,%d) dead, want alive", c)
		}
	}
	if got := u.Population(); got != 3 {
		t.Errorf("Population = %d, want 3", got)
	}
}

func TestToggleCell(t *testing.T) {
	u := newEmpty(4, 4)
	u.ToggleCell(1, 2)
	if got := diffInts(u); !slices.Equal(got, []int{6}) {
		t.Errorf("diff = %v, want [6]", got)
	}
	if !u.Alive(1, 2) {
		t.Error("toggled cell is dead")
	}
	u.ToggleCell(1, 2)
	if u.Alive(1, 2) {
		t.Error("second toggle left cell alive")
	}

	u.ToggleCell(9, 9)
	if u.NumChanged() != 0 {
		t.Errorf("out-of-range toggle diff = %v", u.DiffCells())
	}
}

func TestInsertGlider(t *testing.T) {
	u := newEmpty(10, 10)
	u.InsertGlider(5, 5)
	if u.NumChanged() != 25 {
		t.Errorf("NumChanged = %d, want 25", u.NumChanged())
	}
	want := []int{grid.Index(4, 5, 10), grid.Index(5, 3, 10), grid.Index(5, 5, 10), grid.Index(6, 4, 10), grid.Index(6, 5, 10)}
	if got := alive(u); !slices.Equal(got, want) {
		t.Errorf("alive = %v, want %v", got, want)
	}
}

func TestInsertClipsAtEdges(t *testing.T) {
	u := newEmpty(10, 10)
	u.InsertPulsar(0, 0)
	// only the 8x8 quadrant at and below/right of the centre lands
	if u.NumChanged() != 64 {
		t.Errorf("NumChanged = %d, want 64", u.NumChanged())
	}
	if got := u.Population(); got != 12 {
		t.Errorf("Population = %d, want 12", got)
	}
	for _, d := range u.DiffCells() {
		if int(d) >= 100 {
			t.Fatalf("diff index %d out of range", d)
		}
	}
}

func TestPulsarPeriod(t *testing.T) {
	u := newEmpty(17, 17)
	u.InsertPulsar(8, 8)
	start := slices.Clone(u.Cells())
	if got := u.Population(); got != 48 {
		t.Fatalf("Population = %d, want 48", got)
	}
	for i, want := range []int{56, 72, 48} {
		u.Tick()
		if got := u.Population(); got != want {
			t.Errorf("generation %d: Population = %d, want %d", i+1, got, want)
		}
		if i < 2 && slices.Equal(u.Cells(), start) {
			t.Errorf("generation %d already matches the start", i+1)
		}
	}
	if !slices.Equal(u.Cells(), start) {
		t.Error("pulsar did not return after 3 generations")
	}
}

func TestPulsarSymmetric(t *testing.T) {
	u := newEmpty(15, 15)
	u.InsertPulsar(7, 7)
	for row := 0; row < 15; row++ {
		for col := 0; col < 15; col++ {
			a := u.Alive(row, col)
			if a != u.Alive(14-row, col) || a != u.Alive(row, 14-col) || a != u.Alive(col, row) {
				t.Fatalf("pulsar not symmetric at (%d,%d)", row, col)
			}
		}
	}
}

func TestClearAndResize(t *testing.T) {
	u := New(6, 6, WithRand(rand.New(rand.NewPCG(3, 4))))
	u.Clear()
	if u.Population() != 0 || u.NumChanged() != 36 {
		t.Errorf("after Clear: population %d, changed %d", u.Population(), u.NumChanged())
	}

	u.Resize(9, 3)
	if u.Width() != 9 || u.Height() != 3 || u.NumChanged() != 27 {
		t.Errorf("after Resize: %dx%d, changed %d", u.Width(), u.Height(), u.NumChanged())
	}
	if len(u.Cells()) != grid.PackedLen(9, 3) {
		t.Errorf("len(Cells) = %d", len(u.Cells()))
	}
}

func TestZeroSize(t *testing.T) {
	u := New(0, 5)
	u.Tick()
	u.ToggleCell(0, 0)
	u.InsertGlider(0, 0)
	u.Reset()
	if u.Width() != 0 || u.Height() != 0 || u.NumChanged() != 0 || len(u.Cells()) != 0 {
		t.Errorf("zero universe = %dx%d, changed %d", u.Width(), u.Height(), u.NumChanged())
	}
	if u.String() != "" {
		t.Errorf("String = %q", u.String())
	}
}

func TestString(t *testing.T) {
	u := newEmpty(3, 2)
	u.SetCell(0, 1, true)
	want := "◻◼◻\n◻◻◻\n"
	if got := u.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if strings.Count(u.String(), "\n") != 2 {
		t.Error("want one line per row")
	}
}
