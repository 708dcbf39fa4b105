package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/smores-api/internal/app"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Create logger
	appLogger, err := app.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to start application", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer application.Close()

	// Run migrations
	if err := application.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		application.Close()
		os.Exit(1)
	}

	// Settings row and bootstrap employee
	if err := application.Seed(ctx); err != nil {
		appLogger.Error("Failed to seed database", map[string]any{"error": err.Error()})
	}

	if err := application.Serve(ctx); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		application.Close()
		os.Exit(1)
	}
}
