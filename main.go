package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gridiron/internal/config"
	"gridiron/internal/datastore"
	"gridiron/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	store := datastore.NewStore(appConfig.Data.DatasetPath)

	// Warm the cache so the first request does not pay the file read. A
	// missing file is not fatal here: the store retries on request and the
	// health endpoint stays up either way.
	if _, err := store.Load(); err != nil {
		log.Printf("Dataset not loaded at startup: %v", err)
	}

	server := ui.NewServer(store)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
