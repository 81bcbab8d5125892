package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// build creates a world from ASCII rows using # . $ * @ + and space.
func build(t *testing.T, rows ...string) *core.World {
	t.Helper()

	h := len(rows)
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}

	tiles := make([]core.Tile, w*h)
	var boxes []core.Coord
	var player core.Coord
	for y, row := range rows {
		for x := range w {
			ch := byte(' ')
			if x < len(row) {
				ch = row[x]
			}
			tile := core.Floor
			switch ch {
			case '#':
				tile = core.Wall
			case '.':
				tile = core.Goal
			case '$':
				boxes = append(boxes, core.C(x, y))
			case '*':
				tile = core.Goal
				boxes = append(boxes, core.C(x, y))
			case '@':
				player = core.C(x, y)
			case '+':
				tile = core.Goal
				player = core.C(x, y)
			}
			tiles[y*w+x] = tile
		}
	}

	m, err := core.NewMap(w, h, tiles)
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	world, err := core.NewWorld(m, boxes, player)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return world
}

var builtinRows = []string{
	"#######",
	"#.@ # #",
	"#$* $ #",
	"#   $ #",
	"# ..  #",
	"#  *  #",
	"#######",
}

func dirOf(t *testing.T, r rune) core.Dir {
	t.Helper()
	switch r {
	case 'U':
		return core.Up
	case 'D':
		return core.Down
	case 'L':
		return core.Left
	case 'R':
		return core.Right
	}
	t.Fatalf("bad move %q", r)
	return 0
}

func TestWallBlocksPlayer(t *testing.T) {
	w := build(t,
		"#####",
		"#@  #",
		"#####",
	)

	if w.TryMovePlayer(core.Left) {
		t.Error("move into wall should fail")
	}
	if w.TryMovePlayer(core.Up) {
		t.Error("move into wall should fail")
	}
	if got := w.Player(); got != core.C(1, 1) {
		t.Errorf("player moved to %v", got)
	}
}

func TestFreeMove(t *testing.T) {
	w := build(t,
		"#####",
		"#@  #",
		"#####",
	)

	if !w.TryMovePlayer(core.Right) {
		t.Fatal("move onto floor should succeed")
	}
	if got := w.Player(); got != core.C(2, 1) {
		t.Errorf("expected player at (2,1), got %v", got)
	}
}

func TestPushBox(t *testing.T) {
	w := build(t,
		"######",
		"#@$ .#",
		"######",
	)

	if !w.TryMovePlayer(core.Right) {
		t.Fatal("push should succeed")
	}
	if got := w.Player(); got != core.C(2, 1) {
		t.Errorf("expected player at (2,1), got %v", got)
	}
	if !w.HasBox(core.C(3, 1)) || w.HasBox(core.C(2, 1)) {
		t.Errorf("box not moved: %v", w.Boxes())
	}
	if w.IsWon() {
		t.Error("box is not on goal yet")
	}

	if !w.TryMovePlayer(core.Right) {
		t.Fatal("second push should succeed")
	}
	if !w.IsWon() {
		t.Error("expected win with box on goal")
	}
}

func TestPushBlocked(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{
			name: "wall behind box",
			rows: []string{
				"#####",
				"#@$##",
				"#####",
			},
		},
		{
			name: "box behind box",
			rows: []string{
				"######",
				"#@$$ #",
				"######",
			},
		},
		{
			name: "box behind box on goals",
			rows: []string{
				"######",
				"#@** #",
				"######",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := build(t, tt.rows...)
			before := w.Boxes()

			if w.TryMovePlayer(core.Right) {
				t.Fatal("push should be blocked")
			}
			if got := w.Player(); got != core.C(1, 1) {
				t.Errorf("player moved to %v", got)
			}
			after := w.Boxes()
			if len(before) != len(after) {
				t.Fatalf("box count changed: %d -> %d", len(before), len(after))
			}
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("box %d moved: %v -> %v", i, before[i], after[i])
				}
			}
		})
	}
}

func TestPushOntoGoalAndOff(t *testing.T) {
	w := build(t,
		"#######",
		"#@$.  #",
		"#######",
	)

	w.TryMovePlayer(core.Right)
	if w.BoxesOnGoal() != 1 || !w.IsWon() {
		t.Fatalf("expected box on goal, got %d", w.BoxesOnGoal())
	}

	w.TryMovePlayer(core.Right)
	if w.BoxesOnGoal() != 0 || w.IsWon() {
		t.Errorf("box pushed off goal should not count, got %d", w.BoxesOnGoal())
	}
	if w.TileAt(core.C(3, 1)) != core.Goal {
		t.Error("tiles must not change when boxes move")
	}
}

func TestBuiltinLevelSolution(t *testing.T) {
	w := build(t, builtinRows...)

	if w.BoxCount() != 5 {
		t.Fatalf("expected 5 boxes, got %d", w.BoxCount())
	}
	if w.IsWon() {
		t.Fatal("level should not start solved")
	}

	solution := "DDRDRRULRULLDLLU"
	for i, r := range solution {
		if !w.TryMovePlayer(dirOf(t, r)) {
			t.Fatalf("move %d (%c) was blocked", i, r)
		}
		if i < len(solution)-1 && w.IsWon() {
			t.Fatalf("won early after move %d", i)
		}
	}

	if !w.IsWon() {
		t.Errorf("expected win, boxes on goal %d/%d", w.BoxesOnGoal(), w.BoxCount())
	}
	if w.BoxCount() != 5 {
		t.Errorf("box count changed to %d", w.BoxCount())
	}
}

func TestBlockedMoveLeavesWorldUnchanged(t *testing.T) {
	w := build(t, builtinRows...)
	player := w.Player()
	boxes := w.Boxes()

	// Up is a wall from the start position.
	if w.TryMovePlayer(core.Up) {
		t.Fatal("expected blocked move")
	}
	if w.Player() != player {
		t.Errorf("player changed: %v -> %v", player, w.Player())
	}
	for i, b := range w.Boxes() {
		if b != boxes[i] {
			t.Errorf("box %d changed: %v -> %v", i, boxes[i], b)
		}
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	w := build(t, builtinRows...)

	for range 3 {
		if w.IsWon() {
			t.Fatal("IsWon changed")
		}
		if w.Player() != core.C(2, 1) {
			t.Fatal("Player changed")
		}
		if w.BoxesOnGoal() != 2 {
			t.Fatalf("expected 2 boxes on goal, got %d", w.BoxesOnGoal())
		}
	}
}

func TestBoxesReturnsCopyInRowMajorOrder(t *testing.T) {
	w := build(t, builtinRows...)

	boxes := w.Boxes()
	want := []core.Coord{
		core.C(1, 2), core.C(2, 2), core.C(4, 2),
		core.C(4, 3), core.C(3, 5),
	}
	if len(boxes) != len(want) {
		t.Fatalf("expected %d boxes, got %d", len(want), len(boxes))
	}
	for i := range want {
		if boxes[i] != want[i] {
			t.Errorf("box %d: expected %v, got %v", i, want[i], boxes[i])
		}
	}

	boxes[0] = core.C(5, 5)
	if w.HasBox(core.C(5, 5)) {
		t.Error("mutating returned slice changed the world")
	}
}

func TestAllVisitsEveryCell(t *testing.T) {
	w := build(t, builtinRows...)

	seen := make(map[core.Coord]bool)
	prev := core.C(-1, -1)
	for c, tile := range w.All() {
		if seen[c] {
			t.Fatalf("cell %v visited twice", c)
		}
		seen[c] = true
		if prev.X >= 0 && !prev.Less(c) {
			t.Errorf("cells out of order: %v then %v", prev, c)
		}
		prev = c
		if tile != w.TileAt(c) {
			t.Errorf("tile mismatch at %v", c)
		}
	}

	if len(seen) != w.Width()*w.Height() {
		t.Errorf("visited %d cells, want %d", len(seen), w.Width()*w.Height())
	}
}

func TestAllStopsEarly(t *testing.T) {
	w := build(t, builtinRows...)

	n := 0
	for range w.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected 3 iterations, got %d", n)
	}
}

func TestTileOutOfRangePanics(t *testing.T) {
	w := build(t, builtinRows...)

	coords := []core.Coord{
		core.C(-1, 0), core.C(0, -1), core.C(7, 0), core.C(0, 7),
	}
	for _, c := range coords {
		t.Run(c.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %v", c)
				}
			}()
			w.TileAt(c)
		})
	}
}

func TestInvalidDirPanics(t *testing.T) {
	w := build(t, builtinRows...)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid direction")
		}
	}()
	w.TryMovePlayer(core.Dir(9))
}

func TestEmptyWorldIsWon(t *testing.T) {
	w := build(t,
		"####",
		"#@.#",
		"####",
	)
	if !w.IsWon() {
		t.Error("a world without boxes counts as won")
	}
}

func TestNewWorldValidation(t *testing.T) {
	tiles := []core.Tile{
		core.Wall, core.Wall, core.Wall, core.Wall,
		core.Wall, core.Floor, core.Goal, core.Wall,
		core.Wall, core.Wall, core.Wall, core.Wall,
	}
	m, err := core.NewMap(4, 3, tiles)
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}

	tests := []struct {
		name   string
		m      *core.Map
		boxes  []core.Coord
		player core.Coord
		code   string
	}{
		{"nil map", nil, nil, core.C(1, 1), core.CodeNilMap},
		{"player outside", m, nil, core.C(5, 1), core.CodePlayerOutOfBounds},
		{"player on wall", m, nil, core.C(0, 0), core.CodePlayerOnWall},
		{"box outside", m, []core.Coord{core.C(-1, 1)}, core.C(1, 1), core.CodeBoxOutOfBounds},
		{"box on wall", m, []core.Coord{core.C(3, 1)}, core.C(1, 1), core.CodeBoxOnWall},
		{"duplicate box", m, []core.Coord{core.C(2, 1), core.C(2, 1)}, core.C(1, 1), core.CodeDuplicateBox},
		{"player on box", m, []core.Coord{core.C(1, 1)}, core.C(1, 1), core.CodePlayerOnBox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewWorld(tt.m, tt.boxes, tt.player)
			var ve core.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, ve.Code)
			}
		})
	}
}

func TestNewMapValidation(t *testing.T) {
	if _, err := core.NewMap(0, 3, nil); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := core.NewMap(2, 2, make([]core.Tile, 3)); err == nil {
		t.Error("expected error for short tile slice")
	}

	src := []core.Tile{core.Floor, core.Wall}
	m, err := core.NewMap(2, 1, src)
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	src[0] = core.Wall
	if m.Tile(0, 0) != core.Floor {
		t.Error("map must copy its tiles")
	}
}

func TestGoals(t *testing.T) {
	tiles := []core.Tile{
		core.Goal, core.Floor,
		core.Floor, core.Goal,
	}
	m, _ := core.NewMap(2, 2, tiles)
	goals := m.Goals()
	if len(goals) != 2 || goals[0] != core.C(0, 0) || goals[1] != core.C(1, 1) {
		t.Errorf("unexpected goals: %v", goals)
	}
}
