package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileforge/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tileforge SSH server",
	Long: `Start an SSH server that lets users browse the map catalog remotely.

Each SSH connection gets its own session with a map picker; selecting a
layer opens the pan viewer. All sessions share the server's catalog.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tileforge/host_key

Examples:
  tileforge serve                           # Listen on :23234 with auto-generated key
  tileforge serve --ssh :2222               # Listen on port 2222
  tileforge serve --host-key ./my_host_key  # Use specific host key
  tileforge serve --db ./catalog.db         # Use specific catalog

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Catalog.DBPath,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutMins) * time.Minute,
		Viewer:      cfg.Viewer,
	}

	// Command-line overrides
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tileforge SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
