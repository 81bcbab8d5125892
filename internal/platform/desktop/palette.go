package desktop

import (
	"image/color"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// palette maps terminal colors to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0x80, 0x80, 0x80, 0xff},
	core.ColorRed:           {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0xff, 0x00, 0xff},
	core.ColorYellow:        {0xff, 0xff, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xff, 0xff},
	core.ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:         {0xff, 0xff, 0xff, 0xff},
	core.ColorBrightRed:     {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:   {0x55, 0xff, 0x55, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightBlue:    {0x55, 0x55, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	core.ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

var background = color.RGBA{0x00, 0x00, 0x00, 0xff}

// rgba returns the window color for c.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
