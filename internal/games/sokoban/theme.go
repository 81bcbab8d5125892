package sokoban

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
)

// Glyph is the character and color for one map element.
type Glyph struct {
	Rune  rune
	Color platformcore.Color
}

// Theme maps every drawable element to a glyph.
type Theme struct {
	Wall         Glyph
	Floor        Glyph
	Goal         Glyph
	Box          Glyph
	BoxOnGoal    Glyph
	Player       Glyph
	PlayerOnGoal Glyph
	Frame        bool
	FrameColor   platformcore.Color
}

// DefaultTheme returns the theme described by config.Default.
func DefaultTheme() Theme {
	return NewTheme(config.Default().Theme)
}

// NewTheme converts a theme section of the configuration.
// Values that fail to parse fall back to a space or the default color;
// config.Validate reports them before this point.
func NewTheme(cfg config.ThemeConfig) Theme {
	frame, _ := platformcore.ParseColor(cfg.FrameColor)
	return Theme{
		Wall:         glyphOf(cfg.Wall),
		Floor:        glyphOf(cfg.Floor),
		Goal:         glyphOf(cfg.Goal),
		Box:          glyphOf(cfg.Box),
		BoxOnGoal:    glyphOf(cfg.BoxOnGoal),
		Player:       glyphOf(cfg.Player),
		PlayerOnGoal: glyphOf(cfg.PlayerOnGoal),
		Frame:        cfg.Frame,
		FrameColor:   frame,
	}
}

func glyphOf(s config.GlyphStyle) Glyph {
	r, _ := utf8.DecodeRuneInString(s.Rune)
	if r == utf8.RuneError {
		r = ' '
	}
	c, _ := platformcore.ParseColor(s.Color)
	return Glyph{Rune: r, Color: c}
}
