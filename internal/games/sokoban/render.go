package sokoban

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Rows used above and below the map: title, gap, gap, status.
const chromeRows = 4

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	pad := 0
	if g.theme.Frame {
		pad = 1
	}
	boxW := g.world.Width() + 2*pad
	boxH := g.world.Height() + 2*pad

	status := g.statusLine()
	if dst.Width() < max(boxW, len(status)) || dst.Height() < boxH+chromeRows {
		g.renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(0, g.Title())

	box := platformcore.CenteredRect(dst.Width(), dst.Height()-chromeRows, boxW, boxH)
	box.Y += 2
	if g.theme.Frame {
		dst.DrawBox(box, g.theme.FrameColor)
	}
	inner := box.Inset(pad)
	g.renderMap(dst, inner.X, inner.Y)

	dst.DrawTextCentered(box.Bottom()+1, status)
}

// renderMap draws the tiles, boxes and player with the map origin at (ox, oy).
func (g *Game) renderMap(dst *platformcore.Screen, ox, oy int) {
	for c, t := range g.world.All() {
		gl := g.glyphAt(c, t)
		dst.SetColor(ox+c.X, oy+c.Y, gl.Rune, gl.Color)
	}
}

// glyphAt picks the glyph for one cell: player, then box, then terrain.
func (g *Game) glyphAt(c core.Coord, t core.Tile) Glyph {
	onGoal := t == core.Goal
	switch {
	case c == g.world.Player() && onGoal:
		return g.theme.PlayerOnGoal
	case c == g.world.Player():
		return g.theme.Player
	case g.world.HasBox(c) && onGoal:
		return g.theme.BoxOnGoal
	case g.world.HasBox(c):
		return g.theme.Box
	}

	switch t {
	case core.Wall:
		return g.theme.Wall
	case core.Goal:
		return g.theme.Goal
	case core.Floor:
		return g.theme.Floor
	}
	return Glyph{Rune: ' '}
}

func (g *Game) statusLine() string {
	msg := "Play!"
	switch g.phase {
	case platformcore.PhaseWin:
		msg = "You win!"
	case platformcore.PhaseQuit:
		msg = "Bye!"
	}
	return fmt.Sprintf("%s  Boxes: %d/%d", msg, g.world.BoxesOnGoal(), g.world.BoxCount())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}
