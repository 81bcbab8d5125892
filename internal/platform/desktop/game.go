// Package desktop runs the game in a window using Ebiten. Tiles are drawn
// as filled squares, boxes as smaller squares and the player as a circle.
package desktop

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	sokocore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// hudHeight is the strip at the bottom reserved for status text.
const hudHeight = 20

// keyActions lists the keys the window listens to.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// SolveRecorder stores completed levels.
type SolveRecorder interface {
	SaveSolve(levelID, player string, d time.Duration) (int64, error)
}

// Options configures the window.
type Options struct {
	Width    int
	Height   int
	Player   string
	Recorder SolveRecorder // May be nil
	Logger   *log.Logger
}

// Game adapts a sokoban.Game to ebiten.Game.
type Game struct {
	game    *sokoban.Game
	theme   sokoban.Theme
	opts    Options
	started time.Time
	solved  bool
	width   int // Last layout size
	height  int
}

// New creates a window adapter for the game.
func New(game *sokoban.Game, theme sokoban.Theme, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Game{
		game:    game,
		theme:   theme,
		opts:    opts,
		started: time.Now(),
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *sokoban.Game, theme sokoban.Theme, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(New(game, theme, opts)); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// Update applies the key presses and the mouse click of one frame.
func (g *Game) Update() error {
	frame := core.NewInputFrame()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			frame.Set(ka.action)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(g.clickAction(ebiten.CursorPosition()))
	}
	if frame.Empty() {
		return nil
	}

	prev := g.game.State().Phase
	res := g.game.Step(frame)

	if prev != core.PhaseWin && res.State.Phase == core.PhaseWin {
		g.recordSolve()
	}
	if res.State.Phase == core.PhaseQuit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) recordSolve() {
	if g.solved {
		return
	}
	g.solved = true

	elapsed := time.Since(g.started)
	logger := g.opts.Logger.With("level", g.game.LevelID(), "player", g.opts.Player)
	if g.opts.Recorder != nil {
		if _, err := g.opts.Recorder.SaveSolve(g.game.LevelID(), g.opts.Player, elapsed); err != nil {
			logger.Warn("could not save solve", "error", err)
			return
		}
	}
	logger.Info("level solved", "elapsed", elapsed)
}

// clickAction steps toward the tile under the cursor when it is next to
// the player.
func (g *Game) clickAction(px, py int) core.Action {
	snap := g.game.Snapshot()
	size, ox, oy := tileLayout(g.width, g.height-hudHeight, snap.Width, snap.Height)
	c, ok := cellAt(float32(px), float32(py), size, ox, oy)
	if !ok {
		return core.ActionNone
	}
	return snap.MoveToward(c)
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	snap := g.game.Snapshot()
	b := screen.Bounds()
	size, ox, oy := tileLayout(b.Dx(), b.Dy()-hudHeight, snap.Width, snap.Height)

	for i, t := range snap.Tiles {
		x := ox + float32(i%snap.Width)*size
		y := oy + float32(i/snap.Width)*size
		switch t {
		case sokocore.Wall:
			vector.DrawFilledRect(screen, x, y, size, size, rgba(g.theme.Wall.Color), false)
		case sokocore.Goal:
			vector.DrawFilledRect(screen, x, y, size, size, rgba(g.theme.Goal.Color), false)
		}
	}

	inset := size / 8
	for _, c := range snap.Boxes {
		clr := rgba(g.theme.Box.Color)
		if snap.TileAt(c) == sokocore.Goal {
			clr = rgba(g.theme.BoxOnGoal.Color)
		}
		x := ox + float32(c.X)*size
		y := oy + float32(c.Y)*size
		vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, clr, false)
	}

	px := ox + (float32(snap.Player.X)+0.5)*size
	py := oy + (float32(snap.Player.Y)+0.5)*size
	vector.DrawFilledCircle(screen, px, py, max(size/2-2, 1), rgba(g.theme.Player.Color), true)

	status := "Play!"
	if snap.Won() {
		status = "You win!"
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  Boxes: %d/%d  Arrows/WASD: move  Esc: quit", status, snap.BoxesOnGoal, len(snap.Boxes)),
		4, b.Dy()-hudHeight+2)
}

// Layout keeps the logical screen equal to the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// tileLayout picks the largest square tile that fits the map in w x h and
// the offset that centers it.
func tileLayout(w, h, mapW, mapH int) (size, ox, oy float32) {
	if mapW <= 0 || mapH <= 0 || w <= 0 || h <= 0 {
		return 0, 0, 0
	}
	size = min(float32(w)/float32(mapW), float32(h)/float32(mapH))
	ox = (float32(w) - size*float32(mapW)) / 2
	oy = (float32(h) - size*float32(mapH)) / 2
	return size, ox, oy
}

// cellAt converts a window position to a map cell for the given layout.
func cellAt(px, py, size, ox, oy float32) (sokocore.Coord, bool) {
	if size <= 0 {
		return sokocore.Coord{}, false
	}
	x := int(math.Floor(float64((px - ox) / size)))
	y := int(math.Floor(float64((py - oy) / size)))
	return sokocore.C(x, y), true
}
