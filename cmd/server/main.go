package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ayna/brand-harvester/config"
	httpDelivery "github.com/ayna/brand-harvester/internal/delivery/http"
	"github.com/ayna/brand-harvester/internal/infrastructure/cse"
	"github.com/ayna/brand-harvester/internal/infrastructure/fetch"
	"github.com/ayna/brand-harvester/internal/usecase"
)

func main() {
	// Load .env if present; real env vars win either way
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Brand Harvester v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	searchClient := cse.NewClient(cfg.CSE.APIKey, cfg.CSE.CX, cfg.CSE.BaseURL)
	pageFetcher := fetch.NewClient(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		searchClient.SetDebug(true)
		log.Printf("CSE client debug mode enabled")
	}

	if cfg.CSE.APIKey != "" && cfg.CSE.CX != "" {
		log.Printf("CSE configured: %s (cx: %s)", cfg.CSE.BaseURL, cfg.CSE.CX)
	} else {
		log.Printf("WARNING: CSE credentials not configured - search-based resolution will degrade to not-found")
	}

	// Initialize usecase layer
	enrichmentService := usecase.NewEnrichmentService(pageFetcher, searchClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(enrichmentService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
