package main

import (
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the built-in level",
	Long: `Play the built-in level in this terminal.

Controls:
  Arrows/WASD/HJKL  - Move and push
  ?                 - Toggle help
  Q/Esc/Ctrl+C      - Quit

Your time is saved to the records database when you solve the level.
Session logs go to log.file from the config (default ~/.sokoban/sokoban.log).

Examples:
  sokoban play
  sokoban play --player alice
  sokoban play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your solves (default: login name)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	session := tui.SessionConfig{
		Player: playerName(),
		Logger: log.New(io.Discard),
	}
	if path := appConfig.Log.File; path != "" {
		sessionLogger, closer, err := tui.OpenSessionLog(path, logger.GetLevel())
		if err != nil {
			logger.Warn("session log disabled", "path", path, "error", err)
		} else {
			defer closer.Close()
			session.Logger = sessionLogger
		}
	}
	if store := openStore(); store != nil {
		defer store.Close()
		session.Recorder = store
	}

	return tui.Run(newGame(), core.RuntimeConfig{ScreenW: width, ScreenH: height}, session)
}

// playerName returns --player, the login name, or "player".
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
