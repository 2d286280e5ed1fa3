package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PrintMiner_Go/internal/bootstrap"
	"github.com/osse101/PrintMiner_Go/internal/config"
	"github.com/osse101/PrintMiner_Go/internal/discord"
	"github.com/osse101/PrintMiner_Go/internal/worker"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

const (
	serviceName     = "discord"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireDiscord(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, serviceName, version, true)
	if err != nil {
		return err
	}
	defer logFile.Close()

	g, err := bootstrap.InitializeGame(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start(ctx)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, g.Manager, pool)
	if err != nil {
		pool.Stop()
		return err
	}

	bot.Registry.Register(discord.PingCommand(g.Manager))
	bot.Registry.Register(discord.PrintMineCommand(g.Manager))

	httpServer := discord.NewHTTPServer(cfg.Addr(), bot)
	httpServer.Start()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			HTTPServer: httpServer,
			Pool:       pool,
			Manager:    g.Manager,
		})
	}()

	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceCommandUpdate); err != nil {
		// Don't exit - bot can still run if commands are already registered
		slog.Error("Failed to register commands", "error", err)
	}

	return bot.Run(ctx)
}
