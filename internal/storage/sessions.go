package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/panelpop/internal/core"
)

// SessionEntry is one stored session report.
type SessionEntry struct {
	ID     int64
	GameID string
	core.SessionReport
	CreatedAt time.Time
}

// SaveSession records a finished session and its score in one transaction.
func (s *Store) SaveSession(gameID string, r core.SessionReport) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin session save: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO sessions
		 (game_id, player, score, level, cleared, highest_chain, max_combo, garbage_sent, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gameID, int(r.Player), r.Score, r.Level, r.Cleared,
		r.HighestChain, r.MaxCombo, r.GarbageSent, int64(r.Frames),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, r.Score); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return id, nil
}

// RecentSessions returns the newest sessions for a game, newest first.
// A limit of 0 or less returns every session.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionEntry, error) {
	return s.querySessions(gameID, "id DESC", limit)
}

// TopSessions returns the best sessions for a game by score. Ties go to
// the longer chain, then to the older session.
func (s *Store) TopSessions(gameID string, limit int) ([]SessionEntry, error) {
	return s.querySessions(gameID, "score DESC, highest_chain DESC, id ASC", limit)
}

// querySessions runs the session select with a fixed ORDER BY clause.
func (s *Store) querySessions(gameID, orderBy string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, level, cleared, highest_chain,
		        max_combo, garbage_sent, frames, created_at
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY `+orderBy+`
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var player int
		var frames int64
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.GameID, &player, &e.Score, &e.Level, &e.Cleared,
			&e.HighestChain, &e.MaxCombo, &e.GarbageSent, &frames, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		e.Player = core.PlayerID(player)
		e.Frames = uint64(frames)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
