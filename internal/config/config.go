package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string

	// Hole dimensions: width runs along the fairway, height across it.
	HoleWidth  int
	HoleHeight int

	// Course assembly settings.
	HolesPerCourse int
	CanvasSize     int

	// MaxCourseSide is the largest cropped course side the batch
	// generator accepts before retrying.
	MaxCourseSide int

	// CellSize is the rendered pixel size of one grid cell.
	CellSize int
}

// Load reads configuration from the environment, falling back to the
// standard defaults.
func Load() *Config {
	return &Config{
		ServerAddr:     envString("SERVER_ADDR", ":8080"),
		HoleWidth:      envInt("HOLE_WIDTH", 30),
		HoleHeight:     envInt("HOLE_HEIGHT", 7),
		HolesPerCourse: envInt("HOLES_PER_COURSE", 9),
		CanvasSize:     envInt("CANVAS_SIZE", 1000),
		MaxCourseSide:  envInt("MAX_COURSE_SIDE", 250),
		CellSize:       envInt("CELL_SIZE", 8),
	}
}

func envString(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic("invalid " + name + ": " + v)
	}
	return n
}
