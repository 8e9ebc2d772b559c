package models

// TerrainDef describes one legend entry sent to clients.
type TerrainDef struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// HoleResponse is a single generated hole.
type HoleResponse struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  [][]string `json:"cells"`
}

// CourseResponse is a cropped assembled course.
type CourseResponse struct {
	Holes  int        `json:"holes"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  [][]string `json:"cells"`
}

// LegendResponse is the fixed terrain legend.
type LegendResponse struct {
	Terrains []TerrainDef `json:"terrains"`
}
