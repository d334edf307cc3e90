package main

import (
	stdlog "log"

	"github.com/joho/godotenv"

	"github.com/kbamnote/patil-admin/cmd"
	"github.com/kbamnote/patil-admin/internal/config"
	"github.com/kbamnote/patil-admin/internal/logger"
)

func main() {
	// Load environment variables; a missing .env file is fine, real
	// environment variables still apply.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger with configuration
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}

	log := logger.WithComponent("main")
	log.Debug().Str("api", cfg.APIBaseURL).Msg("Starting patil-admin CLI")

	cmd.Execute(cfg)
}
