package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Loaded files are applied on
// top of it, so a file only needs the keys it changes.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Wall:         GlyphStyle{Rune: "#", Color: "white"},
			Floor:        GlyphStyle{Rune: " ", Color: "default"},
			Goal:         GlyphStyle{Rune: ".", Color: "yellow"},
			Box:          GlyphStyle{Rune: "$", Color: "red"},
			BoxOnGoal:    GlyphStyle{Rune: "*", Color: "green"},
			Player:       GlyphStyle{Rune: "@", Color: "bright_blue"},
			PlayerOnGoal: GlyphStyle{Rune: "+", Color: "bright_blue"},
			Frame:        true,
			FrameColor:   "gray",
		},
		Storage: StorageConfig{
			Path: "~/.sokoban/sokoban.db",
		},
		Server: ServerConfig{
			Address:     "0.0.0.0:2222",
			HostKeyPath: ".ssh/sokoban_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Desktop: DesktopConfig{
			Width:  640,
			Height: 480,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.sokoban/sokoban.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
