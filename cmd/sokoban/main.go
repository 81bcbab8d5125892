// sokoban is a box-pushing puzzle game for the terminal.
//
// Usage:
//
//	sokoban play       - Play the built-in level
//	sokoban serve      - Start SSH server for remote play
//	sokoban records    - Show the fastest solves
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.sokoban, ./configs, embedded)
//	--db <path>         - Records database (default: storage.path from config)
//	--log-level <level> - debug, info, warn or error (default: log.level from config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Set by loadConfig before any subcommand runs.
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push every box onto a goal",
	Long: `Sokoban is a box-pushing puzzle for the terminal.

Walk the warehouse and push every box onto a goal square. Boxes can only
be pushed, never pulled, and only one at a time.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  records  - View the fastest solves

Examples:
  sokoban play
  sokoban serve --ssh :2222
  sokoban records --tui`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
}

// loadConfig reads the configuration and builds the logger.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
		Level:           level,
	})
	logger.Debug("config loaded", "source", source)

	appConfig = cfg
	return nil
}

// newGame creates a game for the built-in level with the configured theme.
func newGame() *sokoban.Game {
	return sokoban.NewBuiltin(sokoban.NewTheme(appConfig.Theme))
}

// openStore opens the records database. Failures are logged and yield nil,
// so play continues without records.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open records database", "path", appConfig.Storage.Path, "error", err)
		return nil
	}
	return store
}
