package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{SceneID: "rain", Score: 100, Impacts: 4, Ticks: 600},
		{SceneID: "rain", Score: 50, Impacts: 2, Ticks: 300},
		{SceneID: "rain", Score: 200, Impacts: 9, CascadeHits: 3, PeakEnergy: 14.5, Ticks: 900, Seed: 42, Intensity: "violent"},
		{SceneID: "burst", Score: 500, Impacts: 20},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("rain", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rain runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}

	best := top[0]
	if best.Seed != 42 || best.Intensity != "violent" || best.CascadeHits != 3 || best.Ticks != 900 {
		t.Errorf("Run fields not round-tripped: %+v", best)
	}
	if math.Abs(best.PeakEnergy-14.5) > 1e-9 {
		t.Errorf("PeakEnergy = %v, expected 14.5", best.PeakEnergy)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
	if top[1].Intensity != "normal" {
		t.Errorf("missing intensity should default to normal, got %q", top[1].Intensity)
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].SceneID != "burst" {
		t.Errorf("TopRuns across scenes should lead with burst, got %d runs", len(all))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{SceneID: "drift", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("drift", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreBestScoreAndCount(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("rain")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score 0 without runs, got %d", best)
	}

	for _, score := range []int{100, 300, 200} {
		store.SaveRun(Run{SceneID: "rain", Score: score})
	}
	store.SaveRun(Run{SceneID: "burst", Score: 900})

	best, err = store.BestScore("rain")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}

	n, err := store.RunCount("rain")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 rain runs, got %d", n)
	}
}

func TestStoreRejectsRunWithoutScene(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("SaveRun() should reject a run without a scene id")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{SceneID: "rain", Score: 100})
	store.SaveRun(Run{SceneID: "rain", Score: 200})
	store.SaveRun(Run{SceneID: "burst", Score: 300})

	if err := store.ClearRuns("rain"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if n, _ := store.RunCount("rain"); n != 0 {
		t.Errorf("Expected 0 rain runs after clear, got %d", n)
	}
	if n, _ := store.RunCount("burst"); n != 1 {
		t.Error("Burst runs should not be affected by clearing rain")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(\"\") failed: %v", err)
	}
	if n, _ := store.RunCount("burst"); n != 0 {
		t.Errorf("Expected every scene cleared, burst still has %d", n)
	}
}

func TestStoreAllSceneStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{SceneID: "rain", Score: 100, Impacts: 3, PeakEnergy: 2})
	store.SaveRun(Run{SceneID: "rain", Score: 300, Impacts: 5, PeakEnergy: 7})
	store.SaveRun(Run{SceneID: "burst", Score: 50, Impacts: 1, PeakEnergy: 1})

	stats, err := store.AllSceneStats()
	if err != nil {
		t.Fatalf("AllSceneStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 scenes, got %d", len(stats))
	}

	rain := stats["rain"]
	if rain == nil {
		t.Fatal("missing rain stats")
	}
	if rain.Runs != 2 || rain.BestScore != 300 || rain.TotalImpacts != 8 {
		t.Errorf("unexpected rain stats %+v", rain)
	}
	if math.Abs(rain.AvgScore-200) > 1e-9 || math.Abs(rain.PeakEnergy-7) > 1e-9 {
		t.Errorf("unexpected rain averages %+v", rain)
	}
}
