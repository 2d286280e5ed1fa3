package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/PrintMiner_Go/internal/config"
	"github.com/osse101/PrintMiner_Go/internal/logger"
)

// SetupLogger initializes the application logger with file output.
// It creates the log directory, cleans up old logs and opens a timestamped
// log file. With toStdout the logger writes to stdout as well; the console
// front end owns the terminal and logs to the file alone.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config, service, version string, toStdout bool) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateLogDirFmt, err)
	}

	cleanupLogs(cfg.LogDir, service)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, service, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenLogFileFmt, err)
	}

	var w io.Writer = logFile
	if toStdout {
		w = io.MultiWriter(os.Stdout, logFile)
	}

	logCfg := cfg.LoggerConfig(service, version)
	logger.InitWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingPrintMiner,
		"service", service,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", version)

	slog.Debug(LogMsgConfigurationLoaded,
		"http_port", cfg.HTTPPort,
		"catalog_path", cfg.CatalogPath,
		"session_cache_size", cfg.SessionCacheSize,
		"session_ttl", cfg.SessionTTL,
		"workers", cfg.WorkerCount)

	for _, warning := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}

	return logFile, nil
}

// cleanupLogs removes all but the LogFileKeep newest log files of service.
// os.ReadDir sorts by name, and names end in a sortable timestamp.
func cleanupLogs(logDir, service string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, service+"_") && strings.HasSuffix(name, LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	for i := 0; i < len(logFiles)-LogFileKeep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i].Name(), "error", err)
		}
	}
}
