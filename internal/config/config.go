// Package config provides YAML-based configuration for the Sokoban
// front-ends: theme, storage, SSH server, desktop window and logging.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Desktop DesktopConfig `yaml:"desktop"`
	Log     LogConfig     `yaml:"log"`
}

// GlyphStyle is the character and color used to draw one map element.
type GlyphStyle struct {
	Rune  string `yaml:"rune"`  // Exactly one character
	Color string `yaml:"color"` // Color name, e.g. "bright_yellow"
}

// ThemeConfig defines how each map element is drawn in the terminal.
// The desktop window uses only the colors.
type ThemeConfig struct {
	Wall         GlyphStyle `yaml:"wall"`
	Floor        GlyphStyle `yaml:"floor"`
	Goal         GlyphStyle `yaml:"goal"`
	Box          GlyphStyle `yaml:"box"`
	BoxOnGoal    GlyphStyle `yaml:"box_on_goal"`
	Player       GlyphStyle `yaml:"player"`
	PlayerOnGoal GlyphStyle `yaml:"player_on_goal"`
	Frame        bool       `yaml:"frame"`       // Draw a box around the map
	FrameColor   string     `yaml:"frame_color"` // Color of the frame
}

// StorageConfig locates the solve records database.
type StorageConfig struct {
	Path string `yaml:"path"` // "~" expands to the home directory
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"` // 0 disables the timeout
}

// DesktopConfig configures the desktop window.
type DesktopConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Session log for local play; empty discards it
}
