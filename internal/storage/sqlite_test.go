package storage

import (
	"errors"
	"os"
	"path/filepath"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "flounder", Outcome: OutcomeGameOver, LevelReached: 3, Kills: 7})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.LevelReached != 3 || run.Kills != 7 || run.Outcome != OutcomeGameOver {
		t.Errorf("RunByID() = %+v", run)
	}
	if run.EndedAt.IsZero() {
		t.Error("EndedAt should default to now")
	}

	if _, err := store.RunByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestSaveRunRejectsDuplicateID(t *testing.T) {
	store := openTestStore(t)
	run := Run{ID: "fixed", GameID: "flounder", Outcome: OutcomeQuit}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run); err == nil {
		t.Error("expected error on duplicate ID")
	}
}

func TestRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, lvl := range []int{2, 5, 1} {
		_, err := store.SaveRun(Run{
			GameID:       "flounder",
			Outcome:      OutcomeGameOver,
			LevelReached: lvl,
			StartedAt:    base.Add(time.Duration(i) * time.Hour),
			EndedAt:      base.Add(time.Duration(i)*time.Hour + 10*time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{GameID: "other", Outcome: OutcomeQuit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("flounder", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	want := []int{1, 5, 2}
	for i, r := range runs {
		if r.LevelReached != want[i] {
			t.Errorf("runs[%d].LevelReached = %d, expected %d", i, r.LevelReached, want[i])
		}
	}
	if d := runs[0].Duration(); d != 10*time.Minute {
		t.Errorf("Duration() = %v, expected 10m", d)
	}

	limited, err := store.RecentRuns("flounder", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestBestRunsOrder(t *testing.T) {
	store := openTestStore(t)
	runs := []Run{
		{ID: "far-many-deaths", Outcome: OutcomeGameOver, LevelReached: 9, Deaths: 4},
		{ID: "win-slow", Outcome: OutcomeVictory, LevelReached: 12, Deaths: 2, Ticks: 90000},
		{ID: "far-few-deaths", Outcome: OutcomeGameOver, LevelReached: 9, Deaths: 1},
		{ID: "win-fast", Outcome: OutcomeVictory, LevelReached: 12, Deaths: 2, Ticks: 60000},
		{ID: "short", Outcome: OutcomeQuit, LevelReached: 2},
	}
	for _, r := range runs {
		r.GameID = "flounder"
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("flounder", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	want := []string{"win-fast", "win-slow", "far-few-deaths", "far-many-deaths", "short"}
	if len(best) != len(want) {
		t.Fatalf("Expected %d runs, got %d", len(want), len(best))
	}
	for i, r := range best {
		if r.ID != want[i] {
			t.Errorf("best[%d] = %s, expected %s", i, r.ID, want[i])
		}
	}
}

func TestStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("flounder")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", stats)
	}

	for _, r := range []Run{
		{Outcome: OutcomeVictory, LevelReached: 12, Kills: 30, Ticks: 1000},
		{Outcome: OutcomeGameOver, LevelReached: 4, Kills: 5, Ticks: 200},
	} {
		r.GameID = "flounder"
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.Stats("flounder")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Victories != 1 || stats.BestLevel != 12 || stats.TotalKills != 35 || stats.TotalTicks != 1200 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if err := store.ClearRuns("flounder"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns("flounder", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}
