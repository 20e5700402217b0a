package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/EdJoPaTo/edc/internal/cli"
	"github.com/EdJoPaTo/edc/internal/config"
	"github.com/EdJoPaTo/edc/internal/logging"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New("edc", logging.Options{Level: level, File: cfg.LogFile})
	defer logger.Close()
	if err != nil {
		logger.Warn("%v, using %s", err, level)
	}
	for _, warning := range cfg.Warnings {
		logger.Warn("%s", warning)
	}
	if cfg.Source != "" {
		logger.Debug("Configuration loaded from %s", cfg.Source)
	}
	logger.Debug("Tools: convert=%s ffmpeg=%s oxipng=%s", cfg.Tools.Convert, cfg.Tools.FFmpeg, cfg.Tools.Oxipng)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.NewApp(cfg, logger, version))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
