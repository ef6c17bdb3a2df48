package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyscatter/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the polyscatter SSH server",
	Long: `Start an SSH server that shows every connection its own scene viewer.

Each SSH session samples its own scenes sized to its terminal.
Snapshots are written on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.polyscatter/host_key

Examples:
  polyscatter serve                           # Listen on :23234 with auto-generated key
  polyscatter serve --ssh :2222               # Listen on port 2222
  polyscatter serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagBackdrop, "backdrop", "#ffffff", "Color shown through transparent pixels")
	serveCmd.Flags().BoolVar(&flagTrackViewport, "track-viewport", false, "Size the canvas to each terminal")
	serveCmd.Flags().StringVar(&flagSnapshotDir, "snapshots", "", "Snapshot directory (default ~/.polyscatter/snapshots)")
}

func runServe(cmd *cobra.Command, _ []string) {
	viewer, err := viewerConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Viewer:      viewer,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting polyscatter SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
