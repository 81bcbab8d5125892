package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// OpenSessionLog opens (appending) a log file for a local session.
// The terminal belongs to Bubble Tea while the program runs, so session
// logging has to go somewhere else. Bubble Tea's own debug output goes to
// the same file.
func OpenSessionLog(path string, level log.Level) (*log.Logger, io.Closer, error) {
	p, err := storage.ExpandPath(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}

	f, err := tea.LogToFile(p, "sokoban")
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
		Level:           level,
	})
	return logger, f, nil
}
