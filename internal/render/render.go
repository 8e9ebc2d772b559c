// Package render draws terrain grids as PNG images with a color legend.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"linksmith.dev/internal/generation"
)

// Legend layout constants, sized around basicfont.Face7x13.
const (
	legendColumns  = 4
	legendRowH     = 18
	legendSwatch   = 12
	legendPad      = 6
	legendEntryW   = 90
	legendTextYOff = 11
)

var background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// terrainColors is the fixed palette, one entry per terrain category.
var terrainColors = map[generation.Terrain]color.RGBA{
	generation.Fairway: {R: 0x1c, G: 0xb3, B: 0x14, A: 0xff},
	generation.Rough:   {R: 0x27, G: 0x75, B: 0x23, A: 0xff},
	generation.Water:   {R: 0x24, G: 0x7e, B: 0xc7, A: 0xff},
	generation.Sand:    {R: 0xe3, G: 0xbf, B: 0x54, A: 0xff},
	generation.Green:   {R: 0xb3, G: 0xe8, B: 0xb0, A: 0xff},
	generation.TeeBox:  {R: 0xec, G: 0xf2, B: 0xeb, A: 0xff},
	generation.Woods:   {R: 0x12, G: 0x38, B: 0x0c, A: 0xff},
}

// Color returns the palette color for a terrain category.
func Color(t generation.Terrain) color.RGBA {
	return terrainColors[t]
}

// HexColor returns the palette color as a #rrggbb string.
func HexColor(t generation.Terrain) string {
	c := terrainColors[t]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Renderer converts terrain grids to images. Each cell becomes a square
// of cellSize pixels; a legend naming every terrain is drawn underneath.
type Renderer struct {
	cellSize int
}

// New creates a renderer with the given cell size in pixels.
func New(cellSize int) *Renderer {
	if cellSize < 1 {
		cellSize = 1
	}
	return &Renderer{cellSize: cellSize}
}

// Render draws the grid and legend into a new image.
func (rd *Renderer) Render(grid *generation.Grid) *image.RGBA {
	gridW := grid.Width * rd.cellSize
	gridH := grid.Height * rd.cellSize

	terrains := generation.Terrains()
	legendRows := (len(terrains) + legendColumns - 1) / legendColumns
	legendH := legendRows*legendRowH + 2*legendPad
	legendW := legendColumns*legendEntryW + 2*legendPad

	imgW := max(gridW, legendW)
	imgH := gridH + legendH

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			cell := image.Rect(
				c*rd.cellSize, r*rd.cellSize,
				(c+1)*rd.cellSize, (r+1)*rd.cellSize,
			)
			draw.Draw(img, cell, image.NewUniform(terrainColors[grid.At(r, c)]), image.Point{}, draw.Src)
		}
	}

	rd.drawLegend(img, terrains, gridH)
	return img
}

// WritePNG renders the grid and encodes it as PNG.
func (rd *Renderer) WritePNG(w io.Writer, grid *generation.Grid) error {
	if err := png.Encode(w, rd.Render(grid)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (rd *Renderer) drawLegend(img *image.RGBA, terrains []generation.Terrain, top int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	for i, t := range terrains {
		row := i / legendColumns
		col := i % legendColumns
		x := legendPad + col*legendEntryW
		y := top + legendPad + row*legendRowH

		swatch := image.Rect(x, y, x+legendSwatch, y+legendSwatch)
		draw.Draw(img, swatch, image.NewUniform(terrainColors[t]), image.Point{}, draw.Src)

		drawer.Dot = fixed.P(x+legendSwatch+4, y+legendTextYOff)
		drawer.DrawString(t.FullName())
	}
}
