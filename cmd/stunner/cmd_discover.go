package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stunkit/stunner/internal/client"
	"github.com/stunkit/stunner/internal/config"
	"github.com/stunkit/stunner/pkg/shared"
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover <server-addr> <server-port>",
	Short: "Discover the reflexive address of a local UDP socket",
	Long: `Send a single STUN Binding Request to the given server and report the
mapped (reflexive) address it observes for this host.

The local socket binds to an ephemeral port on all interfaces unless
--local-addr or --local-port say otherwise. No retransmission is attempted;
without --timeout a non-responding server blocks the exchange indefinitely.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiscover(cmd, args)
	},
}

func runDiscover(cmd *cobra.Command, args []string) error {
	// Load configuration
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadCLIConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Apply command line flag overrides
	if localAddr, _ := cmd.Flags().GetString("local-addr"); cmd.Flags().Changed("local-addr") {
		cfg.Client.LocalAddr = localAddr
	}
	if localPort, _ := cmd.Flags().GetInt("local-port"); cmd.Flags().Changed("local-port") {
		cfg.Client.LocalPort = localPort
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); cmd.Flags().Changed("timeout") {
		cfg.Client.Timeout = timeout
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

	serverPort, err := strconv.Atoi(args[1])
	if err != nil || serverPort < 1 || serverPort > 65535 {
		return fmt.Errorf("invalid server port: %s", args[1])
	}

	serverAddr, err := shared.ResolveServerAddr(args[0], serverPort)
	if err != nil {
		return err
	}

	// Bind the local socket; its result is always reported.
	conn, err := shared.CreateUDPSocket(cfg.Client.LocalAddr, cfg.Client.LocalPort)
	if err != nil {
		return err
	}
	defer shared.CloseUDPSocketGracefully(conn)

	localAddr := conn.LocalAddr()

	ctx := cmd.Context()
	if cfg.Client.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Client.Timeout)
		defer cancel()
	}

	mapped, err := client.New().DiscoverMappedAddress(ctx, conn, serverAddr)
	if err != nil {
		fmt.Println("Binding test: failure")
		fmt.Printf("Local address: %s\n", localAddr)
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	fmt.Println("Binding test: success")
	fmt.Printf("Local address: %s\n", localAddr)
	fmt.Printf("Mapped address: %s\n", mapped)
	return nil
}

func init() {
	// Add discover-specific flags
	discoverCmd.Flags().String("local-addr", shared.DefaultLocalAddr, "Local bind address")
	discoverCmd.Flags().Int("local-port", shared.DefaultLocalPort, "Local bind port (0 for ephemeral)")
	discoverCmd.Flags().DurationP("timeout", "t", 0, "Bound on the wait for a reply (0 blocks forever)")
}
