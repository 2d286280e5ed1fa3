package config

import "time"

// Default values applied when the environment leaves a setting unset
const (
	DefaultHTTPPort         = 8082
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultLogDir           = "logs"
	DefaultSessionCacheSize = 1000
	DefaultSessionTTL       = 30 * time.Minute
	DefaultWorkerCount      = 4
	DefaultWorkerQueueSize  = 64
	DefaultStepDelay        = 500 * time.Millisecond
	DefaultTurnDelay        = time.Second
)

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.json"
	ConfigPathDotEnv  = ".env"
)

// Error messages
const (
	ErrMsgParseEnv          = "parse env"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgDiscordTokenUnset = "DISCORD_TOKEN must be set to run the Discord bot"
)

// Warning messages returned by Warnings
const (
	WarnMsgNoGuild           = "DISCORD_GUILD_ID is empty - commands will register globally and may take up to an hour to appear"
	WarnMsgForceUpdate       = "DISCORD_FORCE_COMMAND_UPDATE is set - commands will be re-registered on every start"
	WarnMsgNoStepDelay       = "STEP_DELAY is zero - mining progress will not be visible"
	WarnMsgDebugInProduction = "LOG_LEVEL is debug in production"
)
