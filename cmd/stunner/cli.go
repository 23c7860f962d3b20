package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stunkit/stunner/pkg/shared"
)

// executeCliCommand executes the cobra CLI
func executeCliCommand() error {
	return rootCmd.Execute()
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stunner",
	Short: "A STUN Binding client and server (RFC 5389)",
	Long: `stunner implements the STUN Binding usage of RFC 5389: a client that
discovers the transport address under which it is visible to the public
internet, and a server that echoes back the source address it observes on
each inbound Binding Request.`,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  "Print the version information for stunner",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stunner v1.0.0")
	},
}

func init() {
	// Initialize structured logging for CLI
	shared.InitLogger(&shared.LogConfig{
		Level:       shared.LevelInfo,
		Format:      "text", // Human-readable format for CLI
		AddSource:   false,
		ServiceName: "stunner",
	})

	// Add global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add commands to root
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
