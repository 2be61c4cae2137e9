package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/satbox/internal/platform/tui"
	"github.com/vovakirdan/satbox/internal/scene"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagSSHDBPath    string
	flagSSHScene     string
	flagSSHSacrifice bool
	flagIdleTimeout  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sandbox SSH server",
	Long: `Start an SSH server that serves the collision sandbox to remote users.

Each SSH connection gets its own world built from the configured scene.
Session stats are stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.satbox/host_key

Examples:
  satbox serve                           # Listen on :23234 with auto-generated key
  satbox serve --ssh :2222               # Listen on port 2222
  satbox serve --scene orbit             # Serve a specific scene
  satbox serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.satbox/sessions.db", "Path to sessions database")
	serveCmd.Flags().StringVar(&flagSSHScene, "scene", scene.DefaultSceneName, "Scene served to every connection")
	serveCmd.Flags().BoolVar(&flagSSHSacrifice, "sacrifice-mtv", false, "Deduplicate rectangle axes for all sessions")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagSSHDBPath,
		SceneName:    flagSSHScene,
		SacrificeMTV: flagSSHSacrifice,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting satbox SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
