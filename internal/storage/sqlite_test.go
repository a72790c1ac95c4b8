package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreRecord{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "lines", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("lines"); high != 42 {
		t.Errorf("HighScore() after reopen = %d, want 42", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	session := uuid.New()

	id, err := store.SaveScore(ScoreRecord{
		GameID:  "lines",
		Score:   100,
		Moves:   37,
		Player:  "ada",
		Session: session,
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveScore() id = %d, want positive", id)
	}
	save(t, store, "lines", 50)
	save(t, store, "lines", 200)
	save(t, store, "lines_mini", 500)

	scores, err := store.TopScores("lines", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d scores, want 3", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	full := scores[1]
	if full.Moves != 37 || full.Player != "ada" || full.Session != session {
		t.Errorf("entry = %+v, want moves 37, player ada, session %s", full, session)
	}
	if full.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if scores[0].Session != uuid.Nil {
		t.Errorf("entry without session = %s, want uuid.Nil", scores[0].Session)
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreRecord{Score: 10}); err == nil {
		t.Error("SaveScore() without game ID should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		save(t, store, "lines", (i+1)*100)
	}

	scores, err := store.TopScores("lines", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores(3) returned %d scores", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("lines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, want 0", high)
	}

	save(t, store, "lines", 100)
	save(t, store, "lines", 300)
	save(t, store, "lines", 200)

	if high, _ = store.HighScore("lines"); high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "lines", 100)
	save(t, store, "lines", 200)
	save(t, store, "lines_big", 300)

	if err := store.ClearScores("lines"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("lines", 10); len(scores) != 0 {
		t.Errorf("lines has %d scores after clear, want 0", len(scores))
	}
	if scores, _ := store.TopScores("lines_big", 10); len(scores) != 1 {
		t.Error("other variants should not be affected by ClearScores")
	}
}

func TestStoreSessionScores(t *testing.T) {
	store := openTestStore(t)
	a, b := uuid.New(), uuid.New()

	for _, rec := range []ScoreRecord{
		{GameID: "lines", Score: 10, Session: a},
		{GameID: "lines_mini", Score: 20, Session: a},
		{GameID: "lines", Score: 30, Session: b},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.SessionScores(a)
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("SessionScores() returned %d scores, want 2", len(scores))
	}
	if scores[0].Score != 20 {
		t.Errorf("newest score = %d, want 20", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("lines")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, rec := range []ScoreRecord{
		{GameID: "lines", Score: 10, Moves: 20},
		{GameID: "lines", Score: 30, Moves: 40},
		{GameID: "lines_mini", Score: 5, Moves: 7},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err = store.GetGameStats("lines")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalMoves != 60 {
		t.Errorf("stats = %+v, want 2 games, high 30, avg 20, 60 moves", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["lines_mini"].HighScore != 5 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}
