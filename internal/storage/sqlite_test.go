package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	save(t, store, "dodge", 100)
	save(t, store, "dodge", 50)
	save(t, store, "dodge", 200)
	save(t, store, "pong", 5)

	scores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}
	for i, expected := range []int{200, 100, 50} {
		if scores[i].Score != expected {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, expected)
		}
	}

	pong, err := store.TopScores("pong", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pong) != 1 {
		t.Errorf("TopScores(pong) returned %d entries, expected 1", len(pong))
	}
}

func TestStoreSaveScoreSession(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore(ScoreRecord{GameID: "whack", Score: 7, Ticks: 1800}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	fixed := uuid.NewString()
	if _, err := store.SaveScore(ScoreRecord{GameID: "whack", Score: 3, SessionID: fixed}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, _ := store.TopScores("whack", 10)
	if len(scores) != 2 {
		t.Fatalf("TopScores() returned %d entries, expected 2", len(scores))
	}
	if _, err := uuid.Parse(scores[0].SessionID); err != nil {
		t.Errorf("generated SessionID %q is not a UUID: %v", scores[0].SessionID, err)
	}
	if scores[0].Ticks != 1800 {
		t.Errorf("Ticks = %d, expected 1800", scores[0].Ticks)
	}
	if scores[1].SessionID != fixed {
		t.Errorf("SessionID = %q, expected %q", scores[1].SessionID, fixed)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	if _, err := store.SaveScore(ScoreRecord{Score: 1}); err == nil {
		t.Error("SaveScore() without a game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := range 5 {
		save(t, store, "test", (i+1)*100)
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{3, 3},
		{10, 5},
		{0, 5}, // default limit
	}
	for _, tc := range tests {
		scores, err := store.TopScores("test", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.expected {
			t.Errorf("TopScores(%d) returned %d, expected %d", tc.limit, len(scores), tc.expected)
		}
		if scores[0].Score != 500 {
			t.Errorf("TopScores(%d)[0] = %d, expected 500", tc.limit, scores[0].Score)
		}
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTemp(t)
	a := uuid.NewString()
	b := uuid.NewString()
	store.SaveScore(ScoreRecord{GameID: "pong", Score: 3, SessionID: a})
	store.SaveScore(ScoreRecord{GameID: "pong", Score: 3, SessionID: b})

	scores, _ := store.TopScores("pong", 10)
	if len(scores) != 2 || scores[0].SessionID != a || scores[1].SessionID != b {
		t.Errorf("tied scores out of insertion order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0 for empty game", high)
	}

	save(t, store, "dodge", 100)
	save(t, store, "dodge", 300)
	save(t, store, "dodge", 200)

	high, err = store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	save(t, store, "dodge", 100)
	save(t, store, "dodge", 200)
	save(t, store, "blaster", 300)

	if err := store.ClearScores("dodge"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	dodge, _ := store.TopScores("dodge", 10)
	if len(dodge) != 0 {
		t.Errorf("dodge scores after clear = %d, expected 0", len(dodge))
	}
	blaster, _ := store.TopScores("blaster", 10)
	if len(blaster) != 1 {
		t.Error("blaster scores should not be affected by clearing dodge")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTemp(t)

	for i := range 20 {
		save(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("AllScores() returned %d, expected 20", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetGameStats("bayam")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty game = %+v", empty)
	}

	store.SaveScore(ScoreRecord{GameID: "bayam", Score: 10, Ticks: 100})
	store.SaveScore(ScoreRecord{GameID: "bayam", Score: 30, Ticks: 200})
	store.SaveScore(ScoreRecord{GameID: "pong", Score: 5, Ticks: 50})

	stats, err := store.GetGameStats("bayam")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.TotalTicks != 300 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() returned %d games, expected 2", len(all))
	}
	if all["pong"].HighScore != 5 || all["bayam"].GamesCount != 2 {
		t.Errorf("GetAllGamesStats() = pong %+v, bayam %+v", all["pong"], all["bayam"])
	}
}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('dodge', 42);`)
	db.Close()
	if err != nil {
		t.Fatalf("legacy schema setup failed: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy db failed: %v", err)
	}
	defer store.Close()

	save(t, store, "dodge", 7)
	scores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 42 || scores[0].SessionID != "" {
		t.Errorf("legacy rows after migration = %+v", scores)
	}
}

func TestStoreReopenKeepsSchemaVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	for i := 0; i < 2; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}
		save(t, store, "pong", i+1)

		var version int
		if err := store.db.QueryRow("SELECT MAX(version_id) FROM goose_db_version").Scan(&version); err != nil {
			t.Fatalf("reading schema version failed: %v", err)
		}
		if version != 2 {
			t.Errorf("schema version = %d, expected 2", version)
		}
		store.Close()
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if scores, _ := store.AllScores("pong"); len(scores) != 2 {
		t.Errorf("AllScores() = %d rows, expected 2", len(scores))
	}
}
