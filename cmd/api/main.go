package main

import (
	"os"

	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
	"github.com/wildtrack/wildlife-tracker/internal/server"
)

// @title Wildlife Tracker API
// @version 1.0
// @description Species catalogue, field observations and patrol records for park rangers

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from POST /auth/login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
