package config

import (
	"fmt"

	"github.com/stunkit/stunner/pkg/shared"
)

// DefaultCLIConfig returns a CLIConfig with all default values
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Client: ClientConfig{
			LocalAddr: shared.DefaultLocalAddr,
			LocalPort: shared.DefaultLocalPort,
			Timeout:   shared.NoTimeout,
		},
		Server: ServerConfig{
			Port: shared.DefaultServerPort,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ValidateCLIConfig validates a CLIConfig and returns any errors
func ValidateCLIConfig(cfg *CLIConfig) []error {
	var errors []error

	// Validate client bind port; 0 means ephemeral
	if cfg.Client.LocalPort < 0 || cfg.Client.LocalPort > 65535 {
		errors = append(errors, &ConfigError{
			Field:   "client.local_port",
			Value:   cfg.Client.LocalPort,
			Message: "local port must be between 0 and 65535",
		})
	}

	// Validate client timeout
	if cfg.Client.Timeout < 0 {
		errors = append(errors, &ConfigError{
			Field:   "client.timeout",
			Value:   cfg.Client.Timeout,
			Message: "timeout cannot be negative",
		})
	}

	// Validate server listening port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errors = append(errors, &ConfigError{
			Field:   "server.port",
			Value:   cfg.Server.Port,
			Message: "port must be between 1 and 65535",
		})
	}

	// Validate log level
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, &ConfigError{
			Field:   "log.level",
			Value:   cfg.Log.Level,
			Message: "level must be one of: debug, info, warn, error",
		})
	}

	// Validate log format
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errors = append(errors, &ConfigError{
			Field:   "log.format",
			Value:   cfg.Log.Format,
			Message: "format must be one of: text, json",
		})
	}

	return errors
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
