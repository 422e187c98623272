// Package storage keeps finished-session results in a SQLite database.
// It uses the pure-Go modernc.org/sqlite driver, so no CGO is required.
// Live sessions are never saved.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Migration 1 is the first scores layout, so databases written before
// session tracking upgrade in place.
//
//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	scoreColumns = "id, game_id, score, session_id, ticks, created_at"
	statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		COALESCE(SUM(score), 0), COALESCE(SUM(ticks), 0), MAX(created_at)`
)

// Store is a handle on the scores database.
type Store struct {
	db *sql.DB
}

// ScoreRecord is the result of one finished session.
type ScoreRecord struct {
	GameID    string
	Score     int
	SessionID string // generated when empty
	Ticks     int    // simulation ticks the session lasted
}

// ScoreEntry is a stored ScoreRecord.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	SessionID string
	Ticks     int
	CreatedAt time.Time
}

// GameStats aggregates every stored session of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalTicks int64
	LastPlayed time.Time
}

// Open opens the database at dbPath, creating parent directories and
// upgrading the schema as needed. A leading "~" is the home directory.
func Open(dbPath string) (*Store, error) {
	path, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return err
	}
	p, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore stores a finished session and returns its row id.
func (s *Store) SaveScore(rec ScoreRecord) (int64, error) {
	if rec.GameID == "" {
		return 0, errors.New("storage: cannot save score: empty game id")
	}
	if rec.SessionID == "" {
		rec.SessionID = uuid.NewString()
	}

	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, session_id, ticks) VALUES (?, ?, ?, ?)",
		rec.GameID, rec.Score, rec.SessionID, rec.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read inserted id: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores for gameID, best first, with ties in
// the order they were saved. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.scores("WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?", gameID, limit)
}

// AllScores returns every score for gameID in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.scores("WHERE game_id = ? ORDER BY score DESC, id ASC", gameID)
}

func (s *Store) scores(clause string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query("SELECT "+scoreColumns+" FROM scores "+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.SessionID, &e.Ticks, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scores: %w", err)
	}
	return out, nil
}

// HighScore returns the best score for gameID, or 0 when none is stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every score for gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// statsDest lists scan targets for statsColumns.
func statsDest(gs *GameStats, last *any) []any {
	return []any{&gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &gs.TotalTicks, last}
}

// GetGameStats aggregates the sessions of gameID. A game with no scores
// yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow("SELECT "+statsColumns+" FROM scores WHERE game_id = ?", gameID).
		Scan(statsDest(gs, &last)...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	gs.LastPlayed = parseTime(last)
	return gs, nil
}

// GetAllGamesStats returns stats for every game with at least one score,
// keyed by game id.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT game_id, " + statsColumns + " FROM scores GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		gs := &GameStats{}
		var last any
		if err := rows.Scan(append([]any{&gs.GameID}, statsDest(gs, &last)...)...); err != nil {
			return nil, fmt.Errorf("storage: cannot scan game stats: %w", err)
		}
		gs.LastPlayed = parseTime(last)
		out[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read game stats: %w", err)
	}
	return out, nil
}

// parseTime accepts DATETIME values as the driver returns them, either
// time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{sqliteTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
