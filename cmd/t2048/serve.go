package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		sshAddr     string
		hostKey     string
		idleTimeout int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the 2048 SSH server",
		Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game.

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                           # Listen on :2048 with auto-generated key
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2048`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sshCfg := a.cfg.SSH
			flags := cmd.Flags()
			if flags.Changed("ssh") {
				sshCfg.Address = sshAddr
			}
			if flags.Changed("host-key") {
				sshCfg.HostKeyPath = hostKey
			}
			if flags.Changed("idle-timeout") {
				sshCfg.IdleTimeoutMinutes = idleTimeout
			}
			if sshCfg.IdleTimeoutMinutes < 0 {
				return fmt.Errorf("--idle-timeout must be >= 0, got %d", sshCfg.IdleTimeoutMinutes)
			}

			server, err := tui.NewSSHServer(tui.SSHServerConfig{
				Address:     sshCfg.Address,
				HostKeyPath: sshCfg.HostKeyPath,
				IdleTimeout: time.Duration(sshCfg.IdleTimeoutMinutes) * time.Minute,
			}, a.logger)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Starting t2048 SSH server on %s\n", server.Addr())
			fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

			return server.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&sshAddr, "ssh", ":2048", "SSH server address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().IntVar(&idleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting (0 = never)")
	return cmd
}
