// Package storage provides SQLite-based persistence for game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// AnonymousPlayer is recorded when a score is saved without a name.
const AnonymousPlayer = "anonymous"

// MaxPlayerLen is the longest player name kept, in runes.
const MaxPlayerLen = 32

// DefaultLimit is the number of entries returned by TopScores when no limit
// is given.
const DefaultLimit = 10

var (
	// ErrInvalidScore is returned for negative scores or an empty game ID.
	ErrInvalidScore = errors.New("storage: invalid score")

	// ErrNotFound is returned when a score ID does not exist.
	ErrNotFound = errors.New("storage: score not found")
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// GameStats summarizes the scores of one game.
type GameStats struct {
	GameID  string
	Games   int
	Best    int
	Players int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows one writer; the SSH server and HTTP API share the store.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'anonymous',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(game_id, player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NormalizePlayer trims a player name, truncates it to MaxPlayerLen runes and
// substitutes AnonymousPlayer for an empty name.
func NormalizePlayer(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousPlayer
	}
	if utf8.RuneCountInString(name) > MaxPlayerLen {
		name = string([]rune(name)[:MaxPlayerLen])
	}
	return name
}

// SaveScore records a new score for the given game and player.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, player string, score int) (int64, error) {
	if gameID == "" || score < 0 {
		return 0, fmt.Errorf("%w: game %q score %d", ErrInvalidScore, gameID, score)
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)",
		gameID, NormalizePlayer(player), score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Score returns the entry with the given ID.
func (s *Store) Score(id int64) (ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at
		 FROM scores
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot query score: %w", err)
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return ScoreEntry{}, err
	}
	if len(entries) == 0 {
		return ScoreEntry{}, ErrNotFound
	}
	return entries[0], nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending; ties go to the earlier entry.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanEntries(rows)
}

// scanEntries reads score rows and closes them.
func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and SQLite's text timestamps.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// PlayerBest returns the best score of one player in the given game.
// Returns 0 if the player has no scores.
func (s *Store) PlayerBest(gameID, player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ? AND player = ?",
		gameID, NormalizePlayer(player),
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query player best: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats returns per-game summaries for every game with at least one score,
// ordered by game ID.
func (s *Store) Stats() ([]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), COUNT(DISTINCT player)
		 FROM scores
		 GROUP BY game_id
		 ORDER BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []GameStats
	for rows.Next() {
		var st GameStats
		if err := rows.Scan(&st.GameID, &st.Games, &st.Best, &st.Players); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
