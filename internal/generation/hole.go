package generation

const (
	// MinHoleWidth and MinHoleHeight are the smallest dimensions with room
	// for a tee box, fairway seed, and green seed. Anything smaller
	// generates as an empty grid.
	MinHoleWidth  = 10
	MinHoleHeight = 5
)

// HoleGenerator builds single golf holes by seeding a tee box, fairway,
// and green, then filling the interior with a Markov-chain walk over the
// transition model.
type HoleGenerator struct {
	model *TransitionModel
	rng   *RNG
}

// NewHoleGenerator creates a generator drawing from the given model and
// random source.
func NewHoleGenerator(model *TransitionModel, rng *RNG) *HoleGenerator {
	return &HoleGenerator{model: model, rng: rng}
}

// Generate builds a hole grid of the given dimensions. Width runs along
// the fairway axis (columns), height across it (rows). Dimensions below
// the minimums return the empty grid rather than an error: there is no
// room for a fairway and green, so there is nothing to design.
func (hg *HoleGenerator) Generate(width, height int) (*Grid, error) {
	if width < MinHoleWidth || height < MinHoleHeight {
		return EmptyGrid(), nil
	}

	grid := setupHole(width, height)

	// Fill the fairway region. Columns go left to right because each
	// cell's neighborhood reads the column before it.
	for col := 3; col <= width-7; col++ {
		for row := 1; row <= height-2; row++ {
			next, err := hg.nextTerrain(grid, row, col, false)
			if err != nil {
				return nil, err
			}
			grid.Set(row, col, next)
		}
	}

	// Fill the region around and past the green.
	for col := width - 3; col <= width-1; col++ {
		for row := 2; row <= height-3; row++ {
			next, err := hg.nextTerrain(grid, row, col, true)
			if err != nil {
				return nil, err
			}
			grid.Set(row, col, next)
		}
	}

	return grid, nil
}

// setupHole lays out the fixed features: all rough, a tee box on the
// midline at column 0, a 3-cell fairway seed at column 2, and a 3-cell
// green seed at column width-4.
func setupHole(width, height int) *Grid {
	grid := NewGrid(width, height, Rough)
	mid := height / 2

	grid.Set(mid, 0, TeeBox)

	grid.Set(mid-1, 2, Fairway)
	grid.Set(mid, 2, Fairway)
	grid.Set(mid+1, 2, Fairway)

	grid.Set(mid-1, width-4, Green)
	grid.Set(mid, width-4, Green)
	grid.Set(mid+1, width-4, Green)

	return grid
}

// nextTerrain draws the terrain for (row, col) conditioned on the three
// cells in the previous column: upper-left, left, lower-left. Near the
// green, a sampled fairway becomes rough so fairway never abuts the green.
func (hg *HoleGenerator) nextTerrain(grid *Grid, row, col int, nearGreen bool) (Terrain, error) {
	key := string(grid.At(row-1, col-1)) +
		string(grid.At(row, col-1)) +
		string(grid.At(row+1, col-1))

	dist, err := hg.model.Distribution(key)
	if err != nil {
		return "", err
	}

	next := Choose(hg.rng, dist)
	if nearGreen && next == Fairway {
		return Rough, nil
	}
	return next, nil
}
