package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linksmith.dev/internal/config"
	"linksmith.dev/internal/models"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	router, err := SetupRoutes(&config.Config{
		HoleWidth:      30,
		HoleHeight:     7,
		HolesPerCourse: 9,
		CanvasSize:     1000,
		MaxCourseSide:  250,
		CellSize:       4,
	})
	if err != nil {
		t.Fatal(err)
	}
	return router
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, testRouter(t), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestGetHole(t *testing.T) {
	rec := get(t, testRouter(t), "/api/hole?width=12&height=5&seed=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var hole models.HoleResponse
	if err := json.NewDecoder(rec.Body).Decode(&hole); err != nil {
		t.Fatal(err)
	}
	if hole.Width != 12 || hole.Height != 5 {
		t.Errorf("hole is %dx%d, want 12x5", hole.Width, hole.Height)
	}
	if len(hole.Cells) != 5 {
		t.Errorf("%d cell rows, want 5", len(hole.Cells))
	}
}

func TestGetHole_InvalidWidth(t *testing.T) {
	rec := get(t, testRouter(t), "/api/hole?width=wide")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestGetHole_SeedReproducible(t *testing.T) {
	router := testRouter(t)
	a := get(t, router, "/api/hole?seed=77").Body.String()
	b := get(t, router, "/api/hole?seed=77").Body.String()
	if a != b {
		t.Error("same seed returned different holes")
	}
}

func TestGetCourse(t *testing.T) {
	rec := get(t, testRouter(t), "/api/course?holes=3&seed=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var course models.CourseResponse
	if err := json.NewDecoder(rec.Body).Decode(&course); err != nil {
		t.Fatal(err)
	}
	if course.Holes != 3 {
		t.Errorf("holes = %d, want 3", course.Holes)
	}
	if course.Width == 0 || course.Height == 0 {
		t.Error("course has no cells")
	}
}

func TestGetHoleImage(t *testing.T) {
	rec := get(t, testRouter(t), "/api/hole/image?seed=9")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type %q", ct)
	}
}

func TestGetLegend(t *testing.T) {
	rec := get(t, testRouter(t), "/api/legend")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var legend models.LegendResponse
	if err := json.NewDecoder(rec.Body).Decode(&legend); err != nil {
		t.Fatal(err)
	}
	if len(legend.Terrains) != 7 {
		t.Errorf("%d legend entries, want 7", len(legend.Terrains))
	}
}
