package storage

import (
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, steps := range []int{14, 9, 22} {
		if _, err := store.SaveScore("qmaze", steps); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("qmaze_tilted", 11); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.BestScores("qmaze", 10)
	if err != nil {
		t.Fatalf("BestScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Fewest steps first
	want := []int{9, 14, 22}
	for i, w := range want {
		if scores[i].Steps != w {
			t.Errorf("scores[%d].Steps = %d, want %d", i, scores[i].Steps, w)
		}
		if scores[i].GameID != "qmaze" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	tilted, err := store.BestScores("qmaze_tilted", 10)
	if err != nil {
		t.Fatalf("BestScores() failed: %v", err)
	}
	if len(tilted) != 1 {
		t.Errorf("Expected 1 tilted score, got %d", len(tilted))
	}
}

func TestStoreBestScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("qmaze", (i+1)*10)
	}

	scores, err := store.BestScores("qmaze", 3)
	if err != nil {
		t.Fatalf("BestScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Steps != 10 || scores[1].Steps != 20 || scores[2].Steps != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestScore("qmaze")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok {
		t.Error("Expected no best score for empty game")
	}

	store.SaveScore("qmaze", 30)
	store.SaveScore("qmaze", 12)
	store.SaveScore("qmaze", 20)

	best, ok, err := store.BestScore("qmaze")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if !ok || best != 12 {
		t.Errorf("BestScore() = %d, %v; want 12, true", best, ok)
	}
}

func TestStoreZeroStepScore(t *testing.T) {
	store := openTestStore(t)

	// A 1x1 maze is won before any move
	if _, err := store.SaveScore("qmaze", 0); err != nil {
		t.Fatalf("SaveScore(0) failed: %v", err)
	}
	best, ok, _ := store.BestScore("qmaze")
	if !ok || best != 0 {
		t.Errorf("BestScore() = %d, %v; want 0, true", best, ok)
	}

	if _, err := store.SaveScore("qmaze", -1); err == nil {
		t.Error("SaveScore(-1) should fail")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("qmaze", 10)
	store.SaveScore("qmaze", 20)
	store.SaveScore("qmaze_tilted", 30)

	if err := store.ClearScores("qmaze"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.BestScores("qmaze", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 qmaze scores after clear, got %d", len(scores))
	}

	tilted, _ := store.BestScores("qmaze_tilted", 10)
	if len(tilted) != 1 {
		t.Errorf("Tilted scores should not be affected by clearing qmaze")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("qmaze", 40-i)
	}

	scores, err := store.AllScores("qmaze")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Fatalf("Expected 20 scores, got %d", len(scores))
	}
	// Insertion order
	if scores[0].Steps != 40 || scores[19].Steps != 21 {
		t.Errorf("AllScores() order: first=%d last=%d", scores[0].Steps, scores[19].Steps)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("qmaze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Wins != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("qmaze", 10)
	store.SaveScore("qmaze", 20)

	stats, err = store.GetGameStats("qmaze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Wins != 2 || stats.BestSteps != 10 || stats.AvgSteps != 15 {
		t.Errorf("stats = %+v, want 2 wins, best 10, avg 15", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
