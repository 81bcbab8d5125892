package tui

import (
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

func TestSolveIsLoggedToSessionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sokoban.log")
	t.Cleanup(func() { stdlog.SetOutput(os.Stderr) })

	logger, closer, err := OpenSessionLog(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("OpenSessionLog failed: %v", err)
	}

	m := NewModel(
		sokoban.NewBuiltin(sokoban.DefaultTheme()),
		core.RuntimeConfig{ScreenW: 60, ScreenH: 20},
		SessionConfig{Player: "alice", Logger: logger, Now: stepClock()},
	)
	for _, r := range solution {
		m, _ = send(t, m, arrowKey(t, r))
	}
	if !m.Solved() {
		t.Fatal("expected the level to be solved")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "level solved") {
		t.Errorf("expected the solve in the log file, got %q", data)
	}
	if !strings.Contains(string(data), "player=alice") {
		t.Errorf("expected the player in the log file, got %q", data)
	}
}

func TestSessionLogRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sokoban.log")
	t.Cleanup(func() { stdlog.SetOutput(os.Stderr) })

	logger, closer, err := OpenSessionLog(path, log.WarnLevel)
	if err != nil {
		t.Fatalf("OpenSessionLog failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("unexpected log contents %q", data)
	}
}
