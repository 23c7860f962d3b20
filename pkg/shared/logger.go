package shared

import (
	"context"
	"log/slog"
	"os"
)

var (
	// Global structured logger
	logger *slog.Logger

	// Log levels
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// LogConfig holds configuration for the logger
type LogConfig struct {
	Level       slog.Level
	Format      string // "json" or "text"
	AddSource   bool
	ServiceName string
}

// DefaultLogConfig returns a default logger configuration
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:       slog.LevelInfo,
		Format:      "text",
		AddSource:   false,
		ServiceName: "stunner",
	}
}

// InitLogger initializes the structured logger
func InitLogger(config *LogConfig) {
	if config == nil {
		config = DefaultLogConfig()
	}

	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     config.Level,
		AddSource: config.AddSource,
	}

	if config.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger = slog.New(handler).With("service", config.ServiceName)

	// Set as default logger
	slog.SetDefault(logger)
}

// GetLogger returns the global structured logger
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger(nil) // Initialize with defaults
	}
	return logger
}

// LogDebug logs a debug message with structured fields
func LogDebug(msg string, attrs ...slog.Attr) {
	GetLogger().LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// StructuredInfo logs an info message with structured fields
func StructuredInfo(msg string, attrs ...slog.Attr) {
	GetLogger().LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}

// StructuredWarn logs a warning message with structured fields
func StructuredWarn(msg string, attrs ...slog.Attr) {
	GetLogger().LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

// StructuredError logs an error message with structured fields
func StructuredError(msg string, attrs ...slog.Attr) {
	GetLogger().LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// ParseLogLevel maps a config string to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
