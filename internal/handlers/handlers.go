package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linksmith.dev/internal/config"
	"linksmith.dev/internal/middleware"
	"linksmith.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	designService, err := services.NewDesignService(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	designHandler := NewDesignHandler(designService, cfg)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/hole", designHandler.GetHole)
		r.Get("/hole/image", designHandler.GetHoleImage)
		r.Get("/course", designHandler.GetCourse)
		r.Get("/course/image", designHandler.GetCourseImage)
		r.Get("/legend", designHandler.GetLegend)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
