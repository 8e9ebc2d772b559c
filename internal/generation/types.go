package generation

import "strings"

// Terrain is a single grid cell category. Each category has its own
// one-character symbol; neighborhood keys are built by concatenating them.
type Terrain string

const (
	Fairway Terrain = "F"
	Rough   Terrain = "R"
	Water   Terrain = "W"
	Sand    Terrain = "S"
	Green   Terrain = "G"
	TeeBox  Terrain = "A"
	Woods   Terrain = "O"
)

// Terrains lists every category in legend order.
func Terrains() []Terrain {
	return []Terrain{Fairway, Rough, Water, Sand, Green, TeeBox, Woods}
}

// FullName returns the display name for a terrain category.
func (t Terrain) FullName() string {
	switch t {
	case Fairway:
		return "Fairway"
	case Rough:
		return "Rough"
	case Water:
		return "Water"
	case Sand:
		return "Sand"
	case Green:
		return "Green"
	case TeeBox:
		return "Tee Box"
	case Woods:
		return "Woods"
	}
	return "Unknown"
}

// Direction chooses where the next hole is placed relative to the previous
// one, and therefore how its grid is rotated before placement.
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionLeft  Direction = "L"
	DirectionUp    Direction = "U"
	DirectionRight Direction = "R"
	DirectionDown  Direction = "D"
)

// Grid is a rectangular 2D array of terrain cells, indexed [row][col].
type Grid struct {
	Width, Height int
	Cells         [][]Terrain
}

// NewGrid creates a grid filled with a single terrain.
func NewGrid(width, height int, fill Terrain) *Grid {
	cells := make([][]Terrain, height)
	for r := 0; r < height; r++ {
		cells[r] = make([]Terrain, width)
		for c := 0; c < width; c++ {
			cells[r][c] = fill
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// EmptyGrid returns the zero-row grid used for degenerate dimensions.
func EmptyGrid() *Grid {
	return &Grid{Width: 0, Height: 0, Cells: [][]Terrain{}}
}

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool {
	return g.Height == 0 || g.Width == 0
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) Terrain {
	return g.Cells[row][col]
}

// Set assigns the cell at (row, col).
func (g *Grid) Set(row, col int, t Terrain) {
	g.Cells[row][col] = t
}

// Clone returns a deep copy whose rows share nothing with the original.
func (g *Grid) Clone() *Grid {
	cells := make([][]Terrain, g.Height)
	for r := 0; r < g.Height; r++ {
		cells[r] = make([]Terrain, g.Width)
		copy(cells[r], g.Cells[r])
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Stamp writes other into g with its top-left corner at (row, col).
// Staying in bounds is the caller's responsibility: the course canvas is
// sized so that placements never leave it.
func (g *Grid) Stamp(other *Grid, row, col int) {
	for r := 0; r < other.Height; r++ {
		for c := 0; c < other.Width; c++ {
			g.Cells[row+r][col+c] = other.Cells[r][c]
		}
	}
}

// Rotate returns a new grid transformed for the given placement direction.
// Left mirrors each row, Down rotates 90 degrees clockwise, Up rotates 90
// degrees counter-clockwise. Any other direction leaves the grid as-is.
func (g *Grid) Rotate(dir Direction) *Grid {
	switch dir {
	case DirectionLeft:
		return g.mirrorRows()
	case DirectionDown:
		return g.rotateCW()
	case DirectionUp:
		return g.rotateCCW()
	}
	return g.Clone()
}

func (g *Grid) mirrorRows() *Grid {
	out := NewGrid(g.Width, g.Height, Rough)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			out.Cells[r][g.Width-1-c] = g.Cells[r][c]
		}
	}
	return out
}

func (g *Grid) rotateCW() *Grid {
	out := NewGrid(g.Height, g.Width, Rough)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			out.Cells[c][g.Height-1-r] = g.Cells[r][c]
		}
	}
	return out
}

func (g *Grid) rotateCCW() *Grid {
	out := NewGrid(g.Height, g.Width, Rough)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			out.Cells[g.Width-1-c][r] = g.Cells[r][c]
		}
	}
	return out
}

// CropTo returns the smallest sub-grid containing every cell not equal to
// bg. A grid with no such cell crops to the empty grid.
func (g *Grid) CropTo(bg Terrain) *Grid {
	top, left := g.Height, g.Width
	bottom, right := -1, -1

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.Cells[r][c] == bg {
				continue
			}
			top = min(top, r)
			left = min(left, c)
			bottom = max(bottom, r)
			right = max(right, c)
		}
	}

	if bottom < 0 {
		return EmptyGrid()
	}

	out := NewGrid(right-left+1, bottom-top+1, bg)
	for r := top; r <= bottom; r++ {
		copy(out.Cells[r-top], g.Cells[r][left:right+1])
	}
	return out
}

// String renders the grid as space-separated symbols, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(g.Cells[r][c]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
