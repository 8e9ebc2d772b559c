package generation

// DefaultCanvasSize is the side length of the square working canvas a
// course is assembled on before cropping.
const DefaultCanvasSize = 1000

// CourseConfig defines how a course is assembled.
type CourseConfig struct {
	// HoleWidth and HoleHeight are the dimensions of every hole in the
	// course, width along the fairway axis.
	HoleWidth  int
	HoleHeight int

	// CanvasSize is the working canvas side length. It must be large
	// enough that placements never leave the canvas for the configured
	// hole count and dimensions; zero means DefaultCanvasSize.
	CanvasSize int

	// DirectionWeights is the distribution the next hole's placement
	// direction is drawn from; nil means uniform across L, U, R, D.
	DirectionWeights map[Direction]float64
}

// CourseAssembler arranges generated holes on a shared canvas.
type CourseAssembler struct {
	config CourseConfig
	holes  *HoleGenerator
	rng    *RNG
}

// NewCourseAssembler creates an assembler that generates holes from the
// given model and draws all randomness from rng.
func NewCourseAssembler(model *TransitionModel, rng *RNG, config CourseConfig) *CourseAssembler {
	if config.CanvasSize == 0 {
		config.CanvasSize = DefaultCanvasSize
	}
	if config.DirectionWeights == nil {
		config.DirectionWeights = DefaultDirectionWeights()
	}
	return &CourseAssembler{
		config: config,
		holes:  NewHoleGenerator(model, rng),
		rng:    rng,
	}
}

// DesignCourse generates the given number of holes and places each on a
// woods-filled canvas at a pointer that walks outward from the center,
// rotating every hole to match a randomly drawn direction. The result is
// cropped to the bounding box of all non-woods cells; a course with no
// placed cells crops to the empty grid.
func (ca *CourseAssembler) DesignCourse(holesPerCourse int) (*Grid, error) {
	holes := make([]*Grid, 0, holesPerCourse)
	for i := 0; i < holesPerCourse; i++ {
		hole, err := ca.holes.Generate(ca.config.HoleWidth, ca.config.HoleHeight)
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole.Clone())
	}

	size := ca.config.CanvasSize
	canvas := NewGrid(size, size, Woods)
	row, col := size/2, size/2

	for _, hole := range holes {
		if hole.Empty() {
			continue
		}

		dir := Choose(ca.rng, ca.config.DirectionWeights)
		rotated := hole.Rotate(dir)

		row, col = advanceForDirection(dir, row, col, rotated.Height, rotated.Width)
		canvas.Stamp(rotated, row, col)

		row += rotated.Height
		col += rotated.Width
	}

	return canvas.CropTo(Woods), nil
}

// advanceForDirection applies the placement offset for a direction before
// a hole is written, given the rotated grid's height h and width w. The
// offsets are the recorded contract: they position each hole so it grows
// outward from the previous hole's attachment edge.
func advanceForDirection(dir Direction, row, col, h, w int) (int, int) {
	switch dir {
	case DirectionRight:
		col -= h
	case DirectionLeft:
		row -= w
	case DirectionDown:
		row -= w
	case DirectionUp:
		row -= w
		col -= h
	}
	return row, col
}
