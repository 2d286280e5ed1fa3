package bootstrap

// File permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Log files are named <service>_<timestamp>.log so that lexical order is age
// order. LogFileKeep old files survive each start, plus the new one.
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "%s_%s" + LogFileExtension
	LogFileExtension       = ".log"
	LogFileKeep            = 9
)

// Startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPrintMiner  = "Starting Print Miner"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	ErrMsgCreateLogDirFmt   = "create log directory: %w"
	ErrMsgOpenLogFileFmt    = "open log file: %w"
	ErrMsgFailedLoadCatalog = "failed to load catalog"
)

// Game wiring
const (
	LogMsgCatalogDefault             = "Using built-in catalog"
	LogMsgCatalogLoaded              = "Catalog loaded"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSessionManagerReady        = "Session manager ready"
)

// Shutdown
const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgStoppingHTTPServer   = "Stopping HTTP server"
	LogMsgDrainingWorkerPool   = "Draining worker pool"
	LogMsgShutdownComplete     = "Shutdown complete"
	LogMsgShutdownTimeout      = "Shutdown did not finish before the deadline"
	LogMsgActiveSessionsAtExit = "Sessions still open at exit"
)
