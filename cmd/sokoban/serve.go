package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sokoban SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own copy of the level. Solves are stored
per server under the SSH user name.

Flags override the server section of the config file.

Examples:
  sokoban serve
  sokoban serve --ssh :2222
  sokoban serve --host-key ./host_key --idle-timeout 10m

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", -1, "Disconnect idle sessions after this long (0 disables)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     appConfig.Server.Address,
		HostKeyPath: appConfig.Server.HostKeyPath,
		IdleTimeout: appConfig.Server.IdleTimeout,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	var recorder tui.SolveRecorder
	if store := openStore(); store != nil {
		defer store.Close()
		recorder = store
	}

	factory := func() (tui.Game, error) {
		return newGame(), nil
	}

	server, err := tui.NewSSHServer(cfg, factory, recorder, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("press Ctrl+C to stop", "connect", "ssh -p <port> <host>")
	return server.ListenAndServe(ctx)
}
