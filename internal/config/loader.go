package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoadCLIConfig loads configuration from files, environment, and returns a merged config
func LoadCLIConfig(configPath string) (*CLIConfig, error) {
	cfg := DefaultCLIConfig()

	// Initialize viper
	v := viper.New()
	v.SetConfigName("stunner")
	v.SetConfigType("yaml")

	// Add search paths
	if configPath != "" {
		// Use specific config file path if provided
		v.SetConfigFile(configPath)
	} else {
		// Search in XDG-compliant locations
		v.AddConfigPath(".")                                  // Current directory
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "stunner")) // User config (~/.config/stunner)
		v.AddConfigPath("/etc/stunner")                       // System directory

		// Also check XDG config dirs
		for _, dir := range xdg.ConfigDirs {
			v.AddConfigPath(filepath.Join(dir, "stunner"))
		}
	}

	// Map environment variables to config keys, e.g. STUNNER_SERVER_PORT
	v.SetEnvPrefix("STUNNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind keys explicitly so env-only values survive Unmarshal
	v.BindEnv("client.local_addr")
	v.BindEnv("client.local_port")
	v.BindEnv("client.timeout")
	v.BindEnv("server.port")
	v.BindEnv("log.level")
	v.BindEnv("log.format")

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, continue with defaults and env vars
	}

	// Unmarshal into our config struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// WriteExampleConfig creates an example configuration file
func WriteExampleConfig(filePath string) error {
	exampleConfig := `# Stunner Configuration File
# This file contains all available configuration options with their default values

# Binding client (stunner discover)
client:
  local_addr: "0.0.0.0"   # Local bind address ("0.0.0.0" for any interface)
  local_port: 0           # Local bind port (0 for an ephemeral port)
  timeout: 0s             # Wait bound for the server reply (0 blocks forever)

# Binding server (stunner serve)
server:
  port: 3478              # Listening port (IANA-assigned STUN port)

# Logging
log:
  level: "info"           # Log level: debug, info, warn, error
  format: "text"          # Log format: text, json
`

	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Write the example config
	if err := os.WriteFile(filePath, []byte(exampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", filePath, err)
	}

	return nil
}

// FindConfigFile searches for a config file in XDG-compliant locations
func FindConfigFile() (string, error) {
	searchPaths := []string{
		"stunner.yaml",
		"stunner.yml",
		filepath.Join(xdg.ConfigHome, "stunner", "stunner.yaml"),
		filepath.Join(xdg.ConfigHome, "stunner", "stunner.yml"),
		"/etc/stunner/stunner.yaml",
		"/etc/stunner/stunner.yml",
	}

	// Also check XDG config dirs
	for _, dir := range xdg.ConfigDirs {
		searchPaths = append(searchPaths,
			filepath.Join(dir, "stunner", "stunner.yaml"),
			filepath.Join(dir, "stunner", "stunner.yml"),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no config file found in standard locations")
}

// GetDefaultConfigPath returns the default path for creating a new config file
func GetDefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "stunner", "stunner.yaml")
}
