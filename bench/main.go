package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bench/internal/attack"
	"bench/internal/config"
	"bench/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var ids []string
	if cfg.BenchType != "create" {
		ids, err = seed.Run(ctx, &seed.Config{
			BaseURL:            cfg.BaseURL,
			Count:              cfg.SeedCount,
			Workers:            cfg.SeedWorkers,
			BypassSecret:       cfg.ThrottleBypass,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			Timeout:            cfg.SeedTimeout,
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		IDs:                ids,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		CreateRatio:        cfg.CreateRatio,
		Type:               cfg.BenchType,
		ThrottleBypass:     cfg.ThrottleBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
	})
}
