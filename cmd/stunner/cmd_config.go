package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stunkit/stunner/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long: `Manage stunner configuration files.

Configuration is loaded from multiple sources in order of precedence:
1. Command line flags
2. Environment variables (STUNNER_ prefix)
3. Configuration file
4. Default values

The configuration file is searched in:
- Current directory (stunner.yaml)
- ~/.config/stunner/stunner.yaml (XDG config home)
- /etc/stunner/stunner.yaml (system-wide)`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long: `Create a new configuration file with default values.

This command creates a stunner.yaml file in the user's config directory
(~/.config/stunner/) with all available configuration options and their
default values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration values.

This command shows the merged configuration from all sources
(defaults, config file, environment variables) and where it was loaded
from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

func init() {
	// Add subcommands to config
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	// Add config init specific flags
	configInitCmd.Flags().StringP("output", "o", "", "Output file path (defaults to XDG config directory)")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite existing config file")

	// Add config show specific flags
	configShowCmd.Flags().StringP("format", "", "yaml", "Output format (yaml, json)")
}

// runConfigInit implements the config init command
func runConfigInit(cmd *cobra.Command) error {
	outputPath, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	// Use default config path if not specified
	if outputPath == "" {
		outputPath = config.GetDefaultConfigPath()
	}

	// Check if file already exists
	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", outputPath)
	}

	// Create example config
	if err := config.WriteExampleConfig(outputPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Configuration file created: %s\n", outputPath)
	fmt.Println("Edit this file to customize your stunner settings.")

	return nil
}

// runConfigShow implements the config show command
func runConfigShow(cmd *cobra.Command) error {
	// Load configuration
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadCLIConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Show config source information
	fmt.Printf("# Configuration loaded from: %s\n\n", getConfigSource(configPath))

	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(cfg)
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// getConfigSource returns a user-friendly description of where config is loaded from
func getConfigSource(configPath string) string {
	if configPath != "" {
		// Explicit config file specified
		return configPath
	}

	// Check if config file exists in standard locations
	if foundPath, err := config.FindConfigFile(); err == nil {
		return foundPath
	}

	// No config file found, using defaults
	return "defaults (no config file found)"
}
