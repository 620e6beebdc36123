package main

import (
	"context"
	"log"

	"github.com/dormhub/dormhub-go/internal/api/middleware"
	"github.com/dormhub/dormhub-go/internal/api/routes"
	"github.com/dormhub/dormhub-go/internal/application"
	"github.com/dormhub/dormhub-go/internal/config"
	"github.com/dormhub/dormhub-go/internal/config/db"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed default categories and budgets; idempotent, safe on restart
	if seed, err := config.LoadSeedData(config.SeedFile); err != nil {
		log.Printf("Warning: seed file not loaded: %v", err)
	} else if err := db.Seed(db.DB, seed); err != nil {
		log.Printf("Warning: seeding failed: %v", err)
	}

	// Daily sweep of audit entries past the retention window
	application.NewAuditService(repository.NewRepositories(db.DB)).
		StartRetentionLoop(config.AuditRetentionDays)

	// Receipt storage is optional; the API degrades gracefully without it
	var receipts application.ReceiptStore
	if store, err := storage.NewMinioStore(context.Background()); err != nil {
		log.Printf("Warning: receipt storage unavailable: %v", err)
	} else {
		receipts = store
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB, receipts)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
