package render

import (
	"bytes"
	"image/png"
	"testing"

	"linksmith.dev/internal/generation"
)

func TestRender_Dimensions(t *testing.T) {
	grid := generation.NewGrid(10, 5, generation.Rough)
	img := New(4).Render(grid)

	bounds := img.Bounds()
	// Legend is wider than a small grid, so it sets the image width:
	// 4 columns of 90px plus padding. Height is grid plus legend rows.
	wantW := legendColumns*legendEntryW + 2*legendPad
	wantH := 5*4 + 2*legendRowH + 2*legendPad

	if bounds.Dx() != wantW || bounds.Dy() != wantH {
		t.Errorf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
	}
}

func TestRender_CellColors(t *testing.T) {
	grid := generation.NewGrid(3, 3, generation.Rough)
	grid.Set(1, 2, generation.Water)

	img := New(10).Render(grid)

	if got := img.RGBAAt(5, 5); got != Color(generation.Rough) {
		t.Errorf("rough cell rendered as %v", got)
	}
	// Cell (row 1, col 2) covers pixels x 20..29, y 10..19.
	if got := img.RGBAAt(25, 15); got != Color(generation.Water) {
		t.Errorf("water cell rendered as %v", got)
	}
}

func TestRender_DistinctPalette(t *testing.T) {
	seen := map[string]generation.Terrain{}
	for _, terrain := range generation.Terrains() {
		hex := HexColor(terrain)
		if prev, ok := seen[hex]; ok {
			t.Errorf("%s and %s share color %s", prev, terrain, hex)
		}
		seen[hex] = terrain
	}
}

func TestWritePNG_Encodes(t *testing.T) {
	grid := generation.NewGrid(12, 6, generation.Fairway)

	var buf bytes.Buffer
	if err := New(2).WritePNG(&buf, grid); err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dy() <= 12 {
		t.Error("decoded image missing legend rows")
	}
}
