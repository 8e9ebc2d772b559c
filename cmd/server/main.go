package main

import (
	"log"
	"net/http"

	"linksmith.dev/internal/config"
	"linksmith.dev/internal/handlers"
)

func main() {
	cfg := config.Load()

	router, err := handlers.SetupRoutes(cfg)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	log.Printf("Listening on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		log.Fatal(err)
	}
}
