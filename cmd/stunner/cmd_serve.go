package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/stunkit/stunner/internal/config"
	"github.com/stunkit/stunner/internal/server"
	"github.com/stunkit/stunner/pkg/shared"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the STUN Binding server",
	Long: `Run a STUN server answering Binding Requests on a UDP port.

Each valid Binding Request is answered with a success response carrying the
XOR-MAPPED-ADDRESS the server observed as the request's source. Indications
get no reply; responses arriving at the server are rejected with error 400.
Non-STUN traffic is silently dropped.

The server runs until stopped with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	// Load configuration
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadCLIConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Apply command line flag overrides
	if port, _ := cmd.Flags().GetInt("port"); cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}

	// Validate configuration
	if errors := config.ValidateCLIConfig(cfg); len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "Configuration validation errors:\n")
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", err.Error())
		}
		return fmt.Errorf("configuration validation failed")
	}

	shared.InitLogger(&shared.LogConfig{
		Level:       shared.ParseLogLevel(cfg.Log.Level),
		Format:      cfg.Log.Format,
		ServiceName: "stunner",
	})

	// The listening bind is fatal at startup.
	conn, err := shared.CreateUDPSocket(shared.DefaultLocalAddr, cfg.Server.Port)
	if err != nil {
		return fmt.Errorf("could not start server: %w", err)
	}
	defer conn.Close()

	// Create context with interrupt handling
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	return server.New(conn).Serve(ctx)
}

func init() {
	// Add serve-specific flags
	serveCmd.Flags().IntP("port", "p", shared.DefaultServerPort, "UDP port to listen on")
}
