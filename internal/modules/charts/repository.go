package charts

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// Repository handles natal chart persistence
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new chart repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "charts").Logger(),
	}
}

// Create stores a computed chart and assigns it an id
func (r *Repository) Create(chart *Chart) (*Chart, error) {
	data, err := json.Marshal(chart.ChartData)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize chart data: %w", err)
	}

	chart.ID = uuid.New().String()
	chart.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO natal_charts (
			id, user_id, birth_date, birth_time, latitude, longitude,
			timezone, location, chart_data, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(
		query,
		chart.ID,
		chart.UserID,
		chart.BirthDate,
		chart.BirthTime,
		chart.Latitude,
		chart.Longitude,
		chart.Timezone,
		chart.Location,
		string(data),
		chart.CreatedAt.Format(timestampLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chart: %w", err)
	}

	return chart, nil
}

// GetByID fetches one stored chart. Returns (nil, nil) when absent.
func (r *Repository) GetByID(id string) (*Chart, error) {
	query := `
		SELECT id, user_id, birth_date, birth_time, latitude, longitude,
		       timezone, location, chart_data, created_at
		FROM natal_charts WHERE id = ?
	`

	chart, err := scanChart(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chart %s: %w", id, err)
	}
	return chart, nil
}

// ListByUser returns chart summaries for a user, newest first
func (r *Repository) ListByUser(userID string) ([]Summary, error) {
	query := `
		SELECT id, user_id, birth_date, location, created_at
		FROM natal_charts WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var s Summary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.UserID, &s.BirthDate, &s.Location, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chart summary: %w", err)
		}
		s.CreatedAt, _ = time.Parse(timestampLayout, createdAt)
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// CountByUser returns how many charts a user has stored
func (r *Repository) CountByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM natal_charts WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count charts: %w", err)
	}
	return count, nil
}

// Delete removes a stored chart. Reports whether a row was deleted.
func (r *Repository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM natal_charts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete chart %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteOlderThan removes charts created before the cutoff and returns
// how many were deleted. Used by the retention cleanup job.
func (r *Repository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(
		`DELETE FROM natal_charts WHERE created_at < ?`,
		cutoff.UTC().Format(timestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old charts: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the total number of stored charts
func (r *Repository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM natal_charts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count charts: %w", err)
	}
	return count, nil
}

func scanChart(row *sql.Row) (*Chart, error) {
	var c Chart
	var data, createdAt string

	err := row.Scan(
		&c.ID, &c.UserID, &c.BirthDate, &c.BirthTime, &c.Latitude,
		&c.Longitude, &c.Timezone, &c.Location, &data, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	var chartData domain.ChartData
	if err := json.Unmarshal([]byte(data), &chartData); err != nil {
		return nil, fmt.Errorf("failed to parse stored chart data: %w", err)
	}
	c.ChartData = chartData
	c.CreatedAt, _ = time.Parse(timestampLayout, createdAt)

	return &c, nil
}
