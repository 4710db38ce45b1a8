package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"songcrate/internal/auth"
	"songcrate/internal/catalog"
	"songcrate/internal/database"
	"songcrate/internal/handlers"
	"songcrate/internal/metadata"
	"songcrate/internal/stream"
	"songcrate/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load database configuration
	dbConfig := database.LoadConfig()

	// Connect to database
	if err := database.Connect(dbConfig); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Build the ingestion pipeline
	resolver := metadata.NewClient(getEnv("LOOKUP_API_URL", "http://localhost:8081"))
	ingestor := catalog.NewIngestor(database.DB, resolver, catalog.NewScorer(), loadIngestConfig())

	// Start the feed consumer when a feed is configured
	var workerService *worker.WorkerService
	if feedURL := os.Getenv("POST_FEED_URL"); feedURL != "" {
		consumer := stream.NewConsumer(feedURL, ingestor)
		workerService = worker.NewWorkerService(consumer)
		if err := workerService.Start(); err != nil {
			log.Fatal("Failed to start background workers:", err)
		}
	}

	setupGracefulShutdown(workerService)
	setupServer(ingestor)
}

// loadIngestConfig reads ingestion settings from environment variables
func loadIngestConfig() catalog.Config {
	return catalog.Config{
		DefaultIdentity: catalog.Identity{
			Name:       getEnv("DEFAULT_USER_NAME", "Default User"),
			ExternalID: getEnv("DEFAULT_USER_EXTERNAL_ID", "1637563079601213"),
			ImageURL:   getEnv("DEFAULT_USER_IMAGE_URL", ""),
		},
		MergeGenresOnRepeatArtist: os.Getenv("MERGE_GENRES_ON_REPEAT_ARTIST") == "true",
	}
}

func setupGracefulShutdown(workerService *worker.WorkerService) {
	// Setup signal handling for graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received shutdown signal, gracefully shutting down...")

		if workerService != nil {
			workerService.Stop()
		}

		database.Close()

		log.Println("Shutdown complete")
		os.Exit(0)
	}()
}

func setupServer(ingestor *catalog.Ingestor) {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	verifier := auth.NewTokenVerifier(getEnv("SERVICE_TOKEN_SECRET", "dev-secret"))
	ingestHandler := handlers.NewIngestHandler(ingestor)
	catalogHandler := handlers.NewCatalogHandler(database.DB)
	docsHandler := handlers.NewDocsHandler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/ingest", verifier.Middleware(), ingestHandler.IngestPost)
		api.GET("/songs", catalogHandler.ListSongs)
		api.GET("/songs/:id", catalogHandler.GetSong)
		api.GET("/links", catalogHandler.GetLink)
		api.GET("/stats", catalogHandler.GetStats)
	}

	r.GET("/docs/:doc", docsHandler.ServeMarkdownAsHTML)

	port := getEnv("PORT", "8080")
	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
