package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	// Discord
	DiscordToken              string `env:"DISCORD_TOKEN"`
	DiscordAppID              string `env:"DISCORD_APP_ID"`
	DiscordGuildID            string `env:"DISCORD_GUILD_ID"`
	DiscordForceCommandUpdate bool   `env:"DISCORD_FORCE_COMMAND_UPDATE" envDefault:"false"`

	// Server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8082" validate:"min=1,max=65535"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod production"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`

	// Game
	CatalogPath      string        `env:"CATALOG_PATH"`
	SessionCacheSize int           `env:"SESSION_CACHE_SIZE" envDefault:"1000" validate:"min=1"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m" validate:"min=1s"`
	StepDelay        time.Duration `env:"STEP_DELAY" envDefault:"500ms" validate:"min=0"`
	TurnDelay        time.Duration `env:"TURN_DELAY" envDefault:"1s" validate:"min=0"`
	FleeEveryRound   bool          `env:"FLEE_EVERY_ROUND" envDefault:"true"`

	// Workers
	WorkerCount     int `env:"WORKER_COUNT" envDefault:"4" validate:"min=1,max=256"`
	WorkerQueueSize int `env:"WORKER_QUEUE_SIZE" envDefault:"64" validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load(ConfigPathDotEnv)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// RequireDiscord checks the settings the Discord bot cannot start without
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return errors.New(ErrMsgDiscordTokenUnset)
	}
	return nil
}

// GameOptions returns the pacing options for game sessions
func (c *Config) GameOptions() game.Options {
	return game.Options{
		StepDelay:      c.StepDelay,
		TurnDelay:      c.TurnDelay,
		FleeEveryRound: c.FleeEveryRound,
	}
}

// ManagerConfig returns the session manager configuration
func (c *Config) ManagerConfig() game.ManagerConfig {
	opts := c.GameOptions()
	return game.ManagerConfig{
		Size:    c.SessionCacheSize,
		TTL:     c.SessionTTL,
		Options: &opts,
	}
}

// LoggerConfig returns the logger configuration for the given service
func (c *Config) LoggerConfig(service, version string) logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, service, version, c.Environment, c.Environment == DefaultEnvironment)
}

// Addr returns the listen address of the internal HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
