package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

const (
	userDirName  = ".sokoban"
	userFileName = "config.yaml"
	localPath    = "configs/sokoban.yaml"
)

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.sokoban/config.yaml -> ./configs/sokoban.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or unreadable.
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is like Load but also reports which file was used.
// The source is "embedded" when no file was found.
func LoadWithSource(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{localPath}
	if p := userConfigPath(); p != "" {
		candidates = []string{p, localPath}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), "builtin", nil
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	styles := []struct {
		name  string
		style GlyphStyle
	}{
		{"wall", c.Theme.Wall},
		{"floor", c.Theme.Floor},
		{"goal", c.Theme.Goal},
		{"box", c.Theme.Box},
		{"box_on_goal", c.Theme.BoxOnGoal},
		{"player", c.Theme.Player},
		{"player_on_goal", c.Theme.PlayerOnGoal},
	}
	for _, s := range styles {
		if utf8.RuneCountInString(s.style.Rune) != 1 {
			return fmt.Errorf("theme.%s.rune must be a single character, got %q", s.name, s.style.Rune)
		}
		if _, ok := core.ParseColor(s.style.Color); !ok {
			return fmt.Errorf("theme.%s.color: unknown color %q", s.name, s.style.Color)
		}
	}
	if _, ok := core.ParseColor(c.Theme.FrameColor); !ok {
		return fmt.Errorf("theme.frame_color: unknown color %q", c.Theme.FrameColor)
	}

	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path must not be empty")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	if c.Server.HostKeyPath == "" {
		return fmt.Errorf("server.host_key_path must not be empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must not be negative")
	}
	if c.Desktop.Width <= 0 || c.Desktop.Height <= 0 {
		return fmt.Errorf("desktop size must be positive, got %dx%d", c.Desktop.Width, c.Desktop.Height)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDirName, userFileName)
}
