package services

import (
	"bytes"
	"fmt"
	"log"
	mathrand "math/rand/v2"
	"os"
	"path/filepath"

	"linksmith.dev/internal/config"
	"linksmith.dev/internal/generation"
	"linksmith.dev/internal/models"
	"linksmith.dev/internal/render"
)

// DesignService generates holes and courses and renders them. It holds
// the validated transition model and the renderer; each request draws
// from its own seeded RNG so concurrent calls never share state.
type DesignService struct {
	cfg      *config.Config
	model    *generation.TransitionModel
	renderer *render.Renderer
}

// NewDesignService builds the service around the default transition
// table, validating it eagerly.
func NewDesignService(cfg *config.Config) (*DesignService, error) {
	model, err := generation.NewTransitionModel(generation.DefaultTransitions())
	if err != nil {
		return nil, fmt.Errorf("building transition model: %w", err)
	}

	return &DesignService{
		cfg:      cfg,
		model:    model,
		renderer: render.New(cfg.CellSize),
	}, nil
}

// Hole generates a single hole. A zero seed picks a random one.
func (s *DesignService) Hole(width, height int, seed uint64) (*generation.Grid, error) {
	gen := generation.NewHoleGenerator(s.model, generation.NewRNG(pickSeed(seed)))
	return gen.Generate(width, height)
}

// Course assembles a course of the given hole count. A zero seed picks a
// random one.
func (s *DesignService) Course(holes, width, height int, seed uint64) (*generation.Grid, error) {
	asm := generation.NewCourseAssembler(s.model, generation.NewRNG(pickSeed(seed)), generation.CourseConfig{
		HoleWidth:  width,
		HoleHeight: height,
		CanvasSize: s.cfg.CanvasSize,
	})
	return asm.DesignCourse(holes)
}

// RenderPNG encodes a grid as a PNG image.
func (s *DesignService) RenderPNG(grid *generation.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.renderer.WritePNG(&buf, grid); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CreateExamples writes n example course images into directory. Courses
// whose cropped sides exceed the configured maximum are discarded and
// regenerated, so every saved image is reasonably compact.
func (s *DesignService) CreateExamples(directory string, n int) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i := 1; i <= n; i++ {
		course, err := s.compactCourse()
		if err != nil {
			return err
		}

		path := filepath.Join(directory, fmt.Sprintf("example-%d.png", i))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := s.renderer.WritePNG(f, course); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		log.Printf("Created %s (%dx%d)", path, course.Width, course.Height)
	}

	return nil
}

// compactCourse regenerates until the cropped course fits the configured
// maximum side length.
func (s *DesignService) compactCourse() (*generation.Grid, error) {
	for {
		course, err := s.Course(s.cfg.HolesPerCourse, s.cfg.HoleWidth, s.cfg.HoleHeight, 0)
		if err != nil {
			return nil, err
		}
		if course.Width <= s.cfg.MaxCourseSide && course.Height <= s.cfg.MaxCourseSide {
			return course, nil
		}
	}
}

// Legend returns the terrain legend shared by every rendered artifact.
func (s *DesignService) Legend() models.LegendResponse {
	terrains := generation.Terrains()
	defs := make([]models.TerrainDef, len(terrains))
	for i, t := range terrains {
		defs[i] = models.TerrainDef{
			Symbol: string(t),
			Name:   t.FullName(),
			Color:  render.HexColor(t),
		}
	}
	return models.LegendResponse{Terrains: defs}
}

// GridCells converts a grid to the JSON cell representation.
func GridCells(grid *generation.Grid) [][]string {
	cells := make([][]string, grid.Height)
	for r := 0; r < grid.Height; r++ {
		cells[r] = make([]string, grid.Width)
		for c := 0; c < grid.Width; c++ {
			cells[r][c] = string(grid.At(r, c))
		}
	}
	return cells
}

func pickSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return mathrand.Uint64()
}
