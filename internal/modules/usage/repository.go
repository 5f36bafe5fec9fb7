package usage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const timestampLayout = "2006-01-02 15:04:05"

// Repository persists usage counters in SQLite
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new usage repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "usage").Logger(),
	}
}

// Get fetches a user's usage record. Returns (nil, nil) when absent.
func (r *Repository) Get(userID string) (*Record, error) {
	var rec Record
	var lastReset string

	err := r.db.QueryRow(
		`SELECT user_id, ai_calls_this_month, last_reset_at FROM usage WHERE user_id = ?`,
		userID,
	).Scan(&rec.UserID, &rec.AICallsThisMonth, &lastReset)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usage for %s: %w", userID, err)
	}

	rec.LastResetAt, _ = time.Parse(timestampLayout, lastReset)
	return &rec, nil
}

// Save upserts a usage record
func (r *Repository) Save(rec *Record) error {
	_, err := r.db.Exec(`
		INSERT INTO usage (user_id, ai_calls_this_month, last_reset_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			ai_calls_this_month = excluded.ai_calls_this_month,
			last_reset_at = excluded.last_reset_at
	`, rec.UserID, rec.AICallsThisMonth, rec.LastResetAt.UTC().Format(timestampLayout))
	if err != nil {
		return fmt.Errorf("failed to save usage for %s: %w", rec.UserID, err)
	}
	return nil
}

// Increment bumps a user's counter by one
func (r *Repository) Increment(userID string) error {
	result, err := r.db.Exec(
		`UPDATE usage SET ai_calls_this_month = ai_calls_this_month + 1 WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment usage for %s: %w", userID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no usage record for %s", userID)
	}
	return nil
}

// ResetBefore zeroes every counter whose last reset predates the cutoff
// (the start of the current month). Returns how many rows changed.
func (r *Repository) ResetBefore(cutoff, now time.Time) (int64, error) {
	result, err := r.db.Exec(`
		UPDATE usage SET ai_calls_this_month = 0, last_reset_at = ?
		WHERE last_reset_at < ?
	`, now.UTC().Format(timestampLayout), cutoff.UTC().Format(timestampLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to reset stale usage: %w", err)
	}
	return result.RowsAffected()
}
