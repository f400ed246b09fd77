package main

import (
	"fmt"
	"os"

	"github.com/uvr-go/uvr-shell/internal/config"
	"github.com/uvr-go/uvr-shell/internal/logging"
	"github.com/uvr-go/uvr-shell/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "uvr: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "uvr: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, level)
	logger.Info("Ultimate Vocal Remover starting", "version", version)

	if err := ui.Run(cfg, logger); err != nil {
		logger.Error("application failed", logging.Err(err))
		os.Exit(1)
	}
}
