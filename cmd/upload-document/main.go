package main

import (
	"context"
	"os"

	"github.com/wgomg/backendprobe/internal/config"
	"github.com/wgomg/backendprobe/internal/uploader"
	"github.com/wgomg/backendprobe/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error", false)
		log.Fatal("Failed to load configuration: ", err)
	}
	if err := cfg.ValidateUploader(); err != nil {
		log := utils.NewLogger("error", cfg.App.RawBodyLog)
		log.Fatal("Invalid configuration: ", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)

	logger.Debug(nil, "Environment: %s", cfg.App.Env)
	logger.Debug(nil, "API base: %s", cfg.Backend.APIBase)

	code, err := uploader.Run(context.Background(), os.Args[1:], uploader.Options{
		Config: cfg,
		Logger: logger,
		Stdout: os.Stdout,
	})
	if err != nil {
		logger.Fatal("Upload failed: ", err)
	}

	logger.Sync()
	os.Exit(code)
}
