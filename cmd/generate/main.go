package main

import (
	"fmt"
	"os"
	"strconv"

	"linksmith.dev/internal/config"
	"linksmith.dev/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir> [count]")
		os.Exit(1)
	}

	outputDir := os.Args[1]
	count := 5
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "Invalid count: %s\n", os.Args[2])
			os.Exit(1)
		}
		count = n
	}

	cfg := config.Load()
	svc, err := services.NewDesignService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating %d example courses (%d holes of %dx%d each)...\n",
		count, cfg.HolesPerCourse, cfg.HoleWidth, cfg.HoleHeight)

	if err := svc.CreateExamples(outputDir, count); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}
