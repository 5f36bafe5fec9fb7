package jobs

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/events"
	"github.com/astralis/astro-server/internal/modules/charts"
)

// CleanupJob deletes stored charts older than the retention window
type CleanupJob struct {
	repo          *charts.Repository
	retentionDays int
	eventManager  *events.Manager
	log           zerolog.Logger
}

// NewCleanupJob creates a chart retention cleanup job. A retention of 0
// days disables deletion entirely.
func NewCleanupJob(repo *charts.Repository, retentionDays int, ev *events.Manager, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		repo:          repo,
		retentionDays: retentionDays,
		eventManager:  ev,
		log:           log.With().Str("job", "chart_cleanup").Logger(),
	}
}

// Name identifies the job in scheduler logs
func (j *CleanupJob) Name() string {
	return "chart_cleanup"
}

// Run deletes charts past the retention cutoff
func (j *CleanupJob) Run() error {
	if j.retentionDays <= 0 {
		j.log.Debug().Msg("Chart retention disabled, skipping cleanup")
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)

	deleted, err := j.repo.DeleteOlderThan(cutoff)
	if err != nil {
		j.eventManager.EmitError("charts", err, map[string]interface{}{
			"step": "delete_old_charts",
		})
		return fmt.Errorf("chart cleanup failed: %w", err)
	}

	if deleted > 0 {
		j.log.Info().Int64("deleted", deleted).Msg("Removed charts past retention")
		j.eventManager.Emit(events.ChartRetentionCleanup, "charts", map[string]interface{}{
			"deleted_count":  deleted,
			"retention_days": j.retentionDays,
			"cutoff":         cutoff.Format(time.RFC3339),
		})
	}

	return nil
}
