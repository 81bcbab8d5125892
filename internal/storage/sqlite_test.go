package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSolve("classic-1", "alice", 3*time.Second); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, ok, err := store.BestTime("classic-1")
	if err != nil || !ok || best != 3*time.Second {
		t.Errorf("BestTime() = %v, %v, %v after reopen", best, ok, err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.sokoban/sokoban.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".sokoban", "sokoban.db"); got != want {
		t.Errorf("ExpandPath() = %s, want %s", got, want)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %s", got)
	}
}

func TestFastestSolves(t *testing.T) {
	store := openTestStore(t)

	solves := []struct {
		level  string
		player string
		d      time.Duration
	}{
		{"classic-1", "alice", 40 * time.Second},
		{"classic-1", "bob", 25 * time.Second},
		{"classic-1", "carol", 90 * time.Second},
		{"other", "dave", time.Second},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve(s.level, s.player, s.d); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	got, err := store.FastestSolves("classic-1", 10)
	if err != nil {
		t.Fatalf("FastestSolves() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(got))
	}

	want := []string{"bob", "alice", "carol"}
	for i, p := range want {
		if got[i].Player != p {
			t.Errorf("solve %d: expected %s, got %s", i, p, got[i].Player)
		}
		if got[i].LevelID != "classic-1" {
			t.Errorf("solve %d: wrong level %s", i, got[i].LevelID)
		}
		if got[i].CreatedAt.IsZero() {
			t.Errorf("solve %d: missing created_at", i)
		}
	}
	if got[0].Duration != 25*time.Second {
		t.Errorf("Expected 25s, got %v", got[0].Duration)
	}

	limited, err := store.FastestSolves("classic-1", 2)
	if err != nil {
		t.Fatalf("FastestSolves() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 solves with limit, got %d", len(limited))
	}
}

func TestRecentSolves(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"a", "b", "c"} {
		if _, err := store.SaveSolve("classic-1", p, time.Second); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	got, err := store.RecentSolves(2)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 solves, got %d", len(got))
	}
	if got[0].Player != "c" || got[1].Player != "b" {
		t.Errorf("Expected newest first, got %s, %s", got[0].Player, got[1].Player)
	}
}

func TestSaveSolveValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSolve("", "alice", time.Second); err == nil {
		t.Error("Expected error for empty level id")
	}
	if _, err := store.SaveSolve("classic-1", "alice", -time.Second); err == nil {
		t.Error("Expected error for negative duration")
	}

	if _, err := store.SaveSolve("classic-1", "", time.Second); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	got, _ := store.FastestSolves("classic-1", 1)
	if len(got) != 1 || got[0].Player != "anonymous" {
		t.Errorf("Expected anonymous player, got %+v", got)
	}
}

func TestBestTimeEmpty(t *testing.T) {
	store := openTestStore(t)

	best, ok, err := store.BestTime("classic-1")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("Expected no best time, got %v (%v)", best, ok)
	}
}

func TestLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve("classic-1", "alice", 10*time.Second)
	store.SaveSolve("classic-1", "alice", 20*time.Second)
	store.SaveSolve("classic-1", "bob", 30*time.Second)

	stats, err := store.LevelStats("classic-1")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Solves != 3 {
		t.Errorf("Expected 3 solves, got %d", stats.Solves)
	}
	if stats.Players != 2 {
		t.Errorf("Expected 2 players, got %d", stats.Players)
	}
	if stats.Best != 10*time.Second {
		t.Errorf("Expected best 10s, got %v", stats.Best)
	}
	if stats.Average != 20*time.Second {
		t.Errorf("Expected average 20s, got %v", stats.Average)
	}
	if stats.LastSolved.IsZero() {
		t.Error("Expected LastSolved to be set")
	}

	empty, err := store.LevelStats("none")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.Solves != 0 || !empty.LastSolved.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve("classic-1", "alice", time.Second)
	store.SaveSolve("other", "bob", time.Second)

	if err := store.ClearSolves("classic-1"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	if got, _ := store.FastestSolves("classic-1", 10); len(got) != 0 {
		t.Errorf("Expected 0 solves after clear, got %d", len(got))
	}
	if got, _ := store.FastestSolves("other", 10); len(got) != 1 {
		t.Errorf("Other level should be untouched, got %d", len(got))
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.SaveSolve("classic-1", "p", time.Duration(i+1)*time.Second); err != nil {
				t.Errorf("SaveSolve() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	stats, err := store.LevelStats("classic-1")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Solves != 8 {
		t.Errorf("Expected 8 solves, got %d", stats.Solves)
	}
}
