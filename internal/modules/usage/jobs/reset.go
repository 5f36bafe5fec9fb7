package jobs

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/modules/usage"
)

// ResetJob sweeps usage counters whose month rolled over while the user
// was idle. The lazy reset in the service covers active users; this job
// keeps stored counters for everyone else from going stale.
type ResetJob struct {
	service *usage.Service
	log     zerolog.Logger
}

// NewResetJob creates a usage reset job
func NewResetJob(service *usage.Service, log zerolog.Logger) *ResetJob {
	return &ResetJob{
		service: service,
		log:     log.With().Str("job", "usage_reset").Logger(),
	}
}

// Name identifies the job in scheduler logs
func (j *ResetJob) Name() string {
	return "usage_reset"
}

// Run rolls over every stale counter
func (j *ResetJob) Run() error {
	reset, err := j.service.ResetStale()
	if err != nil {
		return fmt.Errorf("usage reset failed: %w", err)
	}

	j.log.Debug().Int64("reset", reset).Msg("Usage reset sweep completed")
	return nil
}
