package life

// template is a square stamp; rows are listed top to bottom.
type template struct {
	size int
	rows []string
}

var glider = template{size: 5, rows: []string{
	".....",
	"..#..",
	"#.#..",
	".##..",
	".....",
}}

var pulsar = template{size: 15, rows: []string{
	"...............",
	"...###...###...",
	"...............",
	".#....#.#....#.",
	".#....#.#....#.",
	".#....#.#....#.",
	"...###...###...",
	"...............",
	"...###...###...",
	".#....#.#....#.",
	".#....#.#....#.",
	".#....#.#....#.",
	"...............",
	"...###...###...",
	"...............",
}}

// stamp writes t centred at (row, col), dead cells included. Template
// cells that fall outside the grid are skipped. The diff list holds the
// cells written.
func (u *Universe) stamp(row, col int, t template) {
	u.diff = u.diff[:0]
	half := t.size / 2
	for i, line := range t.rows {
		for j := 0; j < len(line); j++ {
			u.SetCell(row-half+i, col-half+j, line[j] == '#')
		}
	}
}
