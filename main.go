package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kilianp07/scenariolp/app"
	"github.com/kilianp07/scenariolp/config"
	"github.com/kilianp07/scenariolp/infra/logger"
)

func main() {
	if err := run(); err != nil {
		logger.New("main").Errorf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv("SCENARIOLP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}
