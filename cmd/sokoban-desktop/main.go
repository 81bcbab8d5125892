// sokoban-desktop plays the built-in Sokoban level in a window.
//
// Usage:
//
//	sokoban-desktop [--config path] [--db path] [--player name]
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/desktop"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagConfig string
	flagDBPath string
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban-desktop",
	Short: "Play Sokoban in a window",
	Long: `Play the built-in Sokoban level in a desktop window.

Controls:
  Arrows/WASD  - Move and push
  Left click   - Step onto a neighbouring tile
  Q/Esc        - Quit

Window size, colors and the records database come from the same config
file as the terminal game.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "", "Path to records database")
	rootCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your solves (default: login name)")
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban-desktop",
		Level:           level,
	})

	name := flagPlayer
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}

	opts := desktop.Options{
		Width:  cfg.Desktop.Width,
		Height: cfg.Desktop.Height,
		Player: name,
		Logger: logger,
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open records database", "path", cfg.Storage.Path, "error", err)
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	theme := sokoban.NewTheme(cfg.Theme)
	return desktop.Run(sokoban.NewBuiltin(theme), theme, opts)
}
