package handlers

import (
	"net/http"
	"strconv"

	"linksmith.dev/internal/config"
	"linksmith.dev/internal/generation"
	"linksmith.dev/internal/models"
	"linksmith.dev/internal/services"
)

// DesignHandler serves generated holes and courses
type DesignHandler struct {
	designService *services.DesignService
	cfg           *config.Config
}

// NewDesignHandler creates a new DesignHandler
func NewDesignHandler(ds *services.DesignService, cfg *config.Config) *DesignHandler {
	return &DesignHandler{designService: ds, cfg: cfg}
}

// GetHole handles GET /api/hole - returns a freshly generated hole
func (h *DesignHandler) GetHole(w http.ResponseWriter, r *http.Request) {
	width, height, _, seed, ok := h.params(w, r)
	if !ok {
		return
	}

	hole, err := h.designService.Hole(width, height, seed)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.HoleResponse{
		Width:  hole.Width,
		Height: hole.Height,
		Cells:  services.GridCells(hole),
	})
}

// GetHoleImage handles GET /api/hole/image - returns a hole as PNG
func (h *DesignHandler) GetHoleImage(w http.ResponseWriter, r *http.Request) {
	width, height, _, seed, ok := h.params(w, r)
	if !ok {
		return
	}

	hole, err := h.designService.Hole(width, height, seed)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondPNG(w, hole)
}

// GetCourse handles GET /api/course - returns a freshly assembled course
func (h *DesignHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	width, height, holes, seed, ok := h.params(w, r)
	if !ok {
		return
	}

	course, err := h.designService.Course(holes, width, height, seed)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.CourseResponse{
		Holes:  holes,
		Width:  course.Width,
		Height: course.Height,
		Cells:  services.GridCells(course),
	})
}

// GetCourseImage handles GET /api/course/image - returns a course as PNG
func (h *DesignHandler) GetCourseImage(w http.ResponseWriter, r *http.Request) {
	width, height, holes, seed, ok := h.params(w, r)
	if !ok {
		return
	}

	course, err := h.designService.Course(holes, width, height, seed)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondPNG(w, course)
}

// GetLegend handles GET /api/legend - returns the terrain legend
func (h *DesignHandler) GetLegend(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.designService.Legend())
}

func (h *DesignHandler) respondPNG(w http.ResponseWriter, grid *generation.Grid) {
	data, err := h.designService.RenderPNG(grid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// params parses the shared query parameters, falling back to configured
// defaults. It writes a 400 response and returns ok=false on bad input.
func (h *DesignHandler) params(w http.ResponseWriter, r *http.Request) (width, height, holes int, seed uint64, ok bool) {
	width = h.cfg.HoleWidth
	height = h.cfg.HoleHeight
	holes = h.cfg.HolesPerCourse

	var err error
	if v := r.URL.Query().Get("width"); v != "" {
		if width, err = strconv.Atoi(v); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid width")
			return 0, 0, 0, 0, false
		}
	}
	if v := r.URL.Query().Get("height"); v != "" {
		if height, err = strconv.Atoi(v); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid height")
			return 0, 0, 0, 0, false
		}
	}
	if v := r.URL.Query().Get("holes"); v != "" {
		if holes, err = strconv.Atoi(v); err != nil || holes < 1 {
			respondError(w, http.StatusBadRequest, "Invalid holes")
			return 0, 0, 0, 0, false
		}
	}
	if v := r.URL.Query().Get("seed"); v != "" {
		if seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid seed")
			return 0, 0, 0, 0, false
		}
	}

	return width, height, holes, seed, true
}
