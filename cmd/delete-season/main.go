package main

import (
	"context"
	"os"

	"github.com/wgomg/backendprobe/internal/config"
	"github.com/wgomg/backendprobe/internal/seasons"
	"github.com/wgomg/backendprobe/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error", false)
		log.Fatal("Failed to load configuration: ", err)
	}
	if err := cfg.ValidateDeleter(); err != nil {
		log := utils.NewLogger("error", cfg.App.RawBodyLog)
		log.Fatal("Invalid configuration: ", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)

	logger.Debug(nil, "Environment: %s", cfg.App.Env)
	logger.Debug(nil, "Default base URL: %s", cfg.Backend.BaseURL)

	code := seasons.Run(context.Background(), os.Args[1:], seasons.Options{
		Config: cfg,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})

	logger.Sync()
	os.Exit(code)
}
