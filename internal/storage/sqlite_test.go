package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("platformer", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different mode keeps its own board
	if _, err := store.SaveScore("platformer_trial", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}

	// Ordered by score descending
	expected := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d].Score = %d, expected %d", i, e.Score, expected[i])
		}
		if e.GameID != "platformer" {
			t.Errorf("scores[%d].GameID = %q, expected %q", i, e.GameID, "platformer")
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("platformer", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("platformer", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("TopScores(5) returned %d entries", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("top score = %d, expected 190", scores[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d on empty board, expected 0", high)
	}

	store.SaveScore("platformer", 130)
	store.SaveScore("platformer", 260)

	high, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 260 {
		t.Errorf("HighScore() = %d, expected 260", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer_trial", 200)

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("platformer", 10)
	if len(scores) != 0 {
		t.Errorf("platformer scores not cleared, %d remain", len(scores))
	}

	// Other modes are untouched
	scores, _ = store.TopScores("platformer_trial", 10)
	if len(scores) != 1 {
		t.Errorf("trial scores = %d, expected 1", len(scores))
	}
}

func TestStoreLevelClears(t *testing.T) {
	store := openTestStore(t)

	// Never cleared
	_, ok, err := store.BestClear("rolling-start")
	if err != nil {
		t.Fatalf("BestClear() failed: %v", err)
	}
	if ok {
		t.Error("BestClear() should report no record for an uncleared level")
	}

	clears := []struct {
		levelID string
		seconds float64
	}{
		{"rolling-start", 14.5},
		{"rolling-start", 9.25},
		{"rolling-start", 11.0},
		{"spike-alley", 30.0},
	}
	for _, c := range clears {
		if err := store.SaveClear(c.levelID, c.seconds); err != nil {
			t.Fatalf("SaveClear() failed: %v", err)
		}
	}

	best, ok, err := store.BestClear("rolling-start")
	if err != nil {
		t.Fatalf("BestClear() failed: %v", err)
	}
	if !ok {
		t.Fatal("BestClear() should find a record")
	}
	if best != 9.25 {
		t.Errorf("BestClear() = %f, expected fastest 9.25", best)
	}
}

func TestStoreBestClears(t *testing.T) {
	store := openTestStore(t)

	store.SaveClear("spike-alley", 30.0)
	store.SaveClear("rolling-start", 14.5)
	store.SaveClear("rolling-start", 9.25)

	entries, err := store.BestClears()
	if err != nil {
		t.Fatalf("BestClears() failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("BestClears() returned %d entries, expected 2", len(entries))
	}

	// Ordered by level ID, one row per level with the fastest time
	if entries[0].LevelID != "rolling-start" || entries[0].Seconds != 9.25 || entries[0].Clears != 2 {
		t.Errorf("entries[0] = %+v, expected rolling-start best 9.25 with 2 clears", entries[0])
	}
	if entries[1].LevelID != "spike-alley" || entries[1].Seconds != 30.0 || entries[1].Clears != 1 {
		t.Errorf("entries[1] = %+v, expected spike-alley best 30.0 with 1 clear", entries[1])
	}
}

func TestStoreNestedPathCreation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "nested", "records.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
