package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/roamio/travelagency/config"
)

func main() {
	// Initialize configuration
	// Try to load from config.yaml first, fallback to environment variables
	cfg, err := config.Load("config.yaml", false)
	if err != nil {
		log.Printf("Config file not found or invalid, using environment variables: %v", err)
		cfg, err = config.Load("", true)
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	router, err := SetupRouter(cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up router", zap.Error(err))
	}

	logger.Info("starting travel agency API", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
