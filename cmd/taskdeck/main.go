// Package main is the entry point for the taskdeck CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"taskdeck/internal/backend/boltstore"
	"taskdeck/internal/cli"
	"taskdeck/internal/commands"
	"taskdeck/internal/config"
	"taskdeck/internal/repo"

	// Import all command packages to register them via init()
	_ "taskdeck/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create repository factory
	factory := func(ctx context.Context, cfg *config.Config) (*repo.Repository, error) {
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("failed to create config dir: %w", err)
		}

		store, err := boltstore.Open(cfg.StorePath())
		if err != nil {
			return nil, err
		}

		return repo.New(store, newLogger(cfg)), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

// newLogger builds the logger the repository reports persist failures
// through. Warnings always reach stderr; --debug raises the level.
func newLogger(cfg *config.Config) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log.WithField("app", config.AppName)
}
