package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/osse101/PrintMiner_Go/internal/bootstrap"
	"github.com/osse101/PrintMiner_Go/internal/config"
	"github.com/osse101/PrintMiner_Go/internal/console"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

const (
	serviceName = "console"
	sessionKey  = "local"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "print miner: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, serviceName, version, false)
	if err != nil {
		return err
	}
	defer logFile.Close()

	g, err := bootstrap.InitializeGame(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	c, err := console.New(screen)
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.Run(ctx, g.Manager, sessionKey); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
