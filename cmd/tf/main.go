package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"taskflow/internal/auth"
	"taskflow/internal/cli"
	"taskflow/internal/config"
	"taskflow/internal/logging"
	"taskflow/internal/session"
	"taskflow/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	provider := auth.NewMockProviderWithLatency(cfg.Auth.SimulatedLatency)
	sessions := session.NewManagerWithSlot(repo, cfg.Session.SlotName)

	s := store.New(provider, sessions)
	if err := s.RestoreSession(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring session: %v\n", err)
		os.Exit(1)
	}

	loaded, err := s.LoadSnapshot(ctx, repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tasks: %v\n", err)
		os.Exit(1)
	}
	if !loaded && cfg.Seed.Enabled {
		logging.Debugf("no snapshot found, seeding defaults\n")
		s.Seed()
		if err := s.SaveSnapshot(ctx, repo); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving tasks: %v\n", err)
			os.Exit(1)
		}
	}

	app := cli.NewApp(s, repo, cfg)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
