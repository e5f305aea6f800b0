package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Outcome values recorded with a game result.
const (
	OutcomeGameOver = "gameover"
	OutcomeWin      = "win"
	OutcomeQuit     = "quit"
)

// GameResult is one finished (or abandoned) game.
type GameResult struct {
	SessionID string
	Score     int
	Level     int // 1-based level reached
	Outcome   string
}

// ScoreEntry represents a stored game result.
type ScoreEntry struct {
	ID        int64
	SessionID string
	Score     int
	Level     int
	Outcome   string
	CreatedAt time.Time
}

// SaveResult records a game result.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r GameResult) (int64, error) {
	if r.Outcome == "" {
		r.Outcome = OutcomeQuit
	}
	if r.Level <= 0 {
		r.Level = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (session_id, score, level, outcome) VALUES (?, ?, ?, ?)",
		r.SessionID, r.Score, r.Level, r.Outcome,
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

// TopScores retrieves the top N results ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, session_id, score, level, outcome, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentScores retrieves the most recent N results.
func (s *Store) RecentScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, session_id, score, level, outcome, created_at
		 FROM scores
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Score, &e.Level, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded result.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded results.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics over all results.
type GameStats struct {
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLevel  int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics.
func (s *Store) Stats() (*GameStats, error) {
	stats := &GameStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(level), 0)
		 FROM scores`,
		OutcomeWin,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.BestLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM scores ORDER BY id DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
